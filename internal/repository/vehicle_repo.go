package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"rentacar/internal/apperr"
	"rentacar/internal/db"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// UpdateVehicleParams carries the optional fields of a partial vehicle
// update. Nil fields keep their current value.
type UpdateVehicleParams struct {
	VehicleName        *string
	Type               *string
	RegistrationNumber *string
	DailyRentPrice     *float64
	AvailabilityStatus *string
}

type VehicleRepository interface {
	Create(v *db.Vehicle) error
	GetByID(id int) (*db.Vehicle, error)
	List() ([]db.Vehicle, error)
	Update(id int, params UpdateVehicleParams) (*db.Vehicle, error)
	Delete(id int) error
}

type vehicleRepository struct {
	db *sqlx.DB
}

func NewVehicleRepository(database *sqlx.DB) VehicleRepository {
	return &vehicleRepository{db: database}
}

func (r *vehicleRepository) Create(v *db.Vehicle) error {
	query := `
		INSERT INTO vehicles (vehicle_name, type, registration_number, daily_rent_price, availability_status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.db.QueryRow(query, v.VehicleName, v.Type, v.RegistrationNumber, v.DailyRentPrice, v.AvailabilityStatus).Scan(&v.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return apperr.New(apperr.KindConflict, "registration number already exists")
		}
		return fmt.Errorf("insert vehicle: %w", err)
	}
	return nil
}

func (r *vehicleRepository) GetByID(id int) (*db.Vehicle, error) {
	var v db.Vehicle
	err := r.db.Get(&v, `SELECT id, vehicle_name, type, registration_number, daily_rent_price, availability_status FROM vehicles WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query vehicle by id: %w", err)
	}
	return &v, nil
}

func (r *vehicleRepository) List() ([]db.Vehicle, error) {
	var vehicles []db.Vehicle
	err := r.db.Select(&vehicles, `SELECT id, vehicle_name, type, registration_number, daily_rent_price, availability_status FROM vehicles ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	return vehicles, nil
}

func (r *vehicleRepository) Update(id int, params UpdateVehicleParams) (*db.Vehicle, error) {
	query := `
		UPDATE vehicles
		SET vehicle_name = COALESCE($1, vehicle_name),
		    type = COALESCE($2, type),
		    registration_number = COALESCE($3, registration_number),
		    daily_rent_price = COALESCE($4, daily_rent_price),
		    availability_status = COALESCE($5, availability_status)
		WHERE id = $6
		RETURNING id, vehicle_name, type, registration_number, daily_rent_price, availability_status`
	var v db.Vehicle
	err := r.db.QueryRowx(query, params.VehicleName, params.Type, params.RegistrationNumber, params.DailyRentPrice, params.AvailabilityStatus, id).StructScan(&v)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.New(apperr.KindNotFound, "vehicle not found")
		}
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return nil, apperr.New(apperr.KindConflict, "registration number already exists")
		}
		return nil, fmt.Errorf("update vehicle: %w", err)
	}
	return &v, nil
}

func (r *vehicleRepository) Delete(id int) error {
	result, err := r.db.Exec(`DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete vehicle: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete vehicle rows affected: %w", err)
	}
	if affected == 0 {
		return apperr.New(apperr.KindNotFound, "vehicle not found")
	}
	return nil
}
