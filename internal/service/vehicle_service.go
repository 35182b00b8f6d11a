package service

import (
	"rentacar/internal/apperr"
	"rentacar/internal/auth"
	"rentacar/internal/db"
	"rentacar/internal/repository"

	"github.com/sirupsen/logrus"
)

type CreateVehicleParams struct {
	VehicleName        string
	Type               string
	RegistrationNumber string
	DailyRentPrice     float64
	AvailabilityStatus string
}

type UpdateVehicleParams struct {
	VehicleName        *string
	Type               *string
	RegistrationNumber *string
	DailyRentPrice     *float64
	AvailabilityStatus *string
}

type VehicleService struct {
	vehicles repository.VehicleRepository
	bookings repository.BookingRepository
	log      *logrus.Logger
}

func NewVehicleService(vehicles repository.VehicleRepository, bookings repository.BookingRepository, log *logrus.Logger) *VehicleService {
	return &VehicleService{vehicles: vehicles, bookings: bookings, log: log}
}

func (s *VehicleService) Create(ident auth.Identity, params CreateVehicleParams) (*db.Vehicle, error) {
	if err := auth.Authorize(ident, auth.OpVehicleCreate, 0); err != nil {
		return nil, err
	}
	if params.VehicleName == "" || params.RegistrationNumber == "" {
		return nil, apperr.New(apperr.KindInvalidArgument, "vehicle_name and registration_number are required")
	}
	if params.DailyRentPrice <= 0 {
		return nil, apperr.New(apperr.KindInvalidArgument, "daily_rent_price must be positive")
	}

	status := params.AvailabilityStatus
	if status == "" {
		status = db.VehicleAvailable
	}
	if status != db.VehicleAvailable && status != db.VehicleBooked {
		return nil, apperr.New(apperr.KindInvalidArgument, "unknown availability status")
	}

	vehicle := &db.Vehicle{
		VehicleName:        params.VehicleName,
		Type:               params.Type,
		RegistrationNumber: params.RegistrationNumber,
		DailyRentPrice:     params.DailyRentPrice,
		AvailabilityStatus: status,
	}
	if err := s.vehicles.Create(vehicle); err != nil {
		return nil, err
	}
	s.log.WithField("vehicle_id", vehicle.ID).Info("vehicle created")
	return vehicle, nil
}

func (s *VehicleService) List() ([]db.Vehicle, error) {
	return s.vehicles.List()
}

func (s *VehicleService) Get(id int) (*db.Vehicle, error) {
	vehicle, err := s.vehicles.GetByID(id)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, apperr.New(apperr.KindNotFound, "vehicle not found")
	}
	return vehicle, nil
}

func (s *VehicleService) Update(ident auth.Identity, id int, params UpdateVehicleParams) (*db.Vehicle, error) {
	if err := auth.Authorize(ident, auth.OpVehicleUpdate, 0); err != nil {
		return nil, err
	}
	if params.DailyRentPrice != nil && *params.DailyRentPrice <= 0 {
		return nil, apperr.New(apperr.KindInvalidArgument, "daily_rent_price must be positive")
	}
	if params.AvailabilityStatus != nil &&
		*params.AvailabilityStatus != db.VehicleAvailable && *params.AvailabilityStatus != db.VehicleBooked {
		return nil, apperr.New(apperr.KindInvalidArgument, "unknown availability status")
	}

	vehicle, err := s.vehicles.Update(id, repository.UpdateVehicleParams{
		VehicleName:        params.VehicleName,
		Type:               params.Type,
		RegistrationNumber: params.RegistrationNumber,
		DailyRentPrice:     params.DailyRentPrice,
		AvailabilityStatus: params.AvailabilityStatus,
	})
	if err != nil {
		return nil, err
	}
	s.log.WithField("vehicle_id", id).Info("vehicle updated")
	return vehicle, nil
}

// Delete removes a vehicle; refused while a holding booking references it.
func (s *VehicleService) Delete(ident auth.Identity, id int) error {
	if err := auth.Authorize(ident, auth.OpVehicleDelete, 0); err != nil {
		return err
	}

	holding, err := s.bookings.VehicleHasHolding(id)
	if err != nil {
		return err
	}
	if holding {
		return apperr.New(apperr.KindConflict, "cannot delete vehicle with active bookings")
	}

	if err := s.vehicles.Delete(id); err != nil {
		return err
	}
	s.log.WithField("vehicle_id", id).Info("vehicle deleted")
	return nil
}
