package service

import (
	"time"

	"rentacar/internal/apperr"
	"rentacar/internal/auth"
	"rentacar/internal/db"
	"rentacar/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type CreateBookingParams struct {
	CustomerID int // 0 means the caller books for themselves
	VehicleID  int
	StartDate  time.Time
	EndDate    time.Time
}

// BookingService is the booking lifecycle engine: it validates requests,
// computes prices and drives status transitions while the repository keeps
// vehicle availability consistent inside each transaction.
type BookingService struct {
	bookings repository.BookingRepository
	vehicles repository.VehicleRepository
	log      *logrus.Logger
	now      func() time.Time
}

func NewBookingService(bookings repository.BookingRepository, vehicles repository.VehicleRepository, log *logrus.Logger) *BookingService {
	return &BookingService{
		bookings: bookings,
		vehicles: vehicles,
		log:      log,
		now:      time.Now,
	}
}

// RentalDays is the inclusive day count of a booking: a rental whose start
// and end date are equal bills one day.
func RentalDays(start, end time.Time) int {
	return int(dateOnly(end).Sub(dateOnly(start)).Hours()/24) + 1
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *BookingService) Create(ident auth.Identity, params CreateBookingParams) (*db.Booking, error) {
	customerID := ident.UserID
	if params.CustomerID != 0 {
		customerID = params.CustomerID
	}
	if err := auth.Authorize(ident, auth.OpBookingCreate, customerID); err != nil {
		return nil, err
	}

	if params.EndDate.Before(params.StartDate) {
		return nil, apperr.New(apperr.KindInvalidRange, "end_date must not be before start_date")
	}

	vehicle, err := s.vehicles.GetByID(params.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, apperr.New(apperr.KindNotFound, "vehicle not found")
	}

	days := RentalDays(params.StartDate, params.EndDate)
	booking := &db.Booking{
		Code:       uuid.NewString(),
		CustomerID: customerID,
		VehicleID:  params.VehicleID,
		StartDate:  dateOnly(params.StartDate),
		EndDate:    dateOnly(params.EndDate),
		TotalPrice: float64(days) * vehicle.DailyRentPrice,
		Status:     db.BookingStatusActive,
	}

	if err := s.bookings.Create(booking); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"booking_id":  booking.ID,
		"vehicle_id":  booking.VehicleID,
		"customer_id": booking.CustomerID,
		"days":        days,
	}).Info("booking created")
	return booking, nil
}

// List returns every booking for admins and only the caller's own bookings
// for customers, joined with customer and vehicle details.
func (s *BookingService) List(ident auth.Identity) ([]db.BookingWithDetails, error) {
	if err := auth.Authorize(ident, auth.OpBookingList, ident.UserID); err != nil {
		return nil, err
	}
	if ident.IsAdmin() {
		return s.bookings.ListAll()
	}
	return s.bookings.ListByCustomer(ident.UserID)
}

func (s *BookingService) Transition(ident auth.Identity, bookingID int, rawStatus string) (*db.Booking, error) {
	booking, err := s.bookings.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, apperr.New(apperr.KindNotFound, "booking not found")
	}

	to, ok := ParseBookingStatus(rawStatus)
	if !ok {
		return nil, apperr.New(apperr.KindInvalidArgument, "unknown booking status")
	}

	var op auth.Operation
	switch to {
	case db.BookingStatusCancelled:
		op = auth.OpBookingCancel
	case db.BookingStatusReturned:
		op = auth.OpBookingReturn
	default:
		return nil, apperr.New(apperr.KindInvalidTransition, "bookings can only be cancelled or returned")
	}
	if err := auth.Authorize(ident, op, booking.CustomerID); err != nil {
		return nil, err
	}

	if !CanTransition(booking.Status, to) {
		return nil, apperr.New(apperr.KindInvalidTransition, "booking is already "+string(booking.Status))
	}

	// Customers may cancel only before the rental start date; admins may
	// cancel or return at any time.
	if !ident.IsAdmin() && !dateOnly(s.now()).Before(dateOnly(booking.StartDate)) {
		return nil, apperr.New(apperr.KindInvalidTransition, "cannot cancel after rental has started")
	}

	if err := s.bookings.Transition(booking, to); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"booking_id": booking.ID,
		"vehicle_id": booking.VehicleID,
		"status":     to,
	}).Info("booking status updated")
	return booking, nil
}

// Availability reports whether the vehicle is free for the inclusive date
// range, without side effects.
func (s *BookingService) Availability(vehicleID int, start, end time.Time) (bool, error) {
	if end.Before(start) {
		return false, apperr.New(apperr.KindInvalidRange, "end_date must not be before start_date")
	}
	vehicle, err := s.vehicles.GetByID(vehicleID)
	if err != nil {
		return false, err
	}
	if vehicle == nil {
		return false, apperr.New(apperr.KindNotFound, "vehicle not found")
	}
	conflict, err := s.bookings.HasOverlap(vehicleID, &db.Booking{StartDate: dateOnly(start), EndDate: dateOnly(end)})
	if err != nil {
		return false, err
	}
	return !conflict, nil
}
