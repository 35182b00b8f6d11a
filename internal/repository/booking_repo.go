package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"rentacar/internal/apperr"
	"rentacar/internal/db"

	"github.com/jmoiron/sqlx"
)

// overlapPredicate is the closed-interval conflict test: two date ranges
// on the same vehicle overlap iff existing.start <= new.end AND
// existing.end >= new.start. Only holding (active) bookings block.
const overlapPredicate = `
	SELECT EXISTS (
		SELECT 1 FROM bookings
		WHERE vehicle_id = $1
		  AND status = 'active'
		  AND start_date <= $3
		  AND end_date >= $2
	)`

type BookingRepository interface {
	// Create runs the whole check-and-reserve sequence in one transaction:
	// lock the vehicle row, verify it exists, verify no overlapping holding
	// booking, insert the booking and flip the vehicle to booked.
	Create(b *db.Booking) error
	GetByID(id int) (*db.Booking, error)
	ListAll() ([]db.BookingWithDetails, error)
	ListByCustomer(customerID int) ([]db.BookingWithDetails, error)
	HasOverlap(vehicleID int, b *db.Booking) (bool, error)
	// Transition moves a booking from its current status to a terminal one
	// and frees the vehicle when no other holding booking remains, all in
	// one transaction. The fromStatus guard makes concurrent transitions
	// lose cleanly instead of double-applying.
	Transition(b *db.Booking, to db.BookingStatus) error
	VehicleHasHolding(vehicleID int) (bool, error)
	CustomerHasHolding(customerID int) (bool, error)
}

type bookingRepository struct {
	db *sqlx.DB
}

func NewBookingRepository(database *sqlx.DB) BookingRepository {
	return &bookingRepository{db: database}
}

func (r *bookingRepository) Create(b *db.Booking) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("begin create booking tx: %w", err)
	}
	defer tx.Rollback()

	// Row lock serializes concurrent creates for the same vehicle so two
	// overlapping requests cannot both pass the conflict check.
	var vehicleStatus string
	err = tx.QueryRow(`SELECT availability_status FROM vehicles WHERE id = $1 FOR UPDATE`, b.VehicleID).Scan(&vehicleStatus)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.New(apperr.KindNotFound, "vehicle not found")
		}
		return fmt.Errorf("lock vehicle: %w", err)
	}

	var conflict bool
	if err := tx.QueryRow(overlapPredicate, b.VehicleID, b.StartDate, b.EndDate).Scan(&conflict); err != nil {
		return fmt.Errorf("check overlap: %w", err)
	}
	if conflict {
		return apperr.New(apperr.KindConflict, "vehicle is already booked during the selected dates")
	}

	insert := `
		INSERT INTO bookings (code, customer_id, vehicle_id, start_date, end_date, total_price, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`
	err = tx.QueryRow(insert, b.Code, b.CustomerID, b.VehicleID, b.StartDate, b.EndDate, b.TotalPrice, b.Status).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	if _, err := tx.Exec(`UPDATE vehicles SET availability_status = $1 WHERE id = $2`, db.VehicleBooked, b.VehicleID); err != nil {
		return fmt.Errorf("mark vehicle booked: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit create booking tx: %w", err)
	}
	return nil
}

func (r *bookingRepository) GetByID(id int) (*db.Booking, error) {
	var b db.Booking
	err := r.db.Get(&b, `
		SELECT id, code, customer_id, vehicle_id, start_date, end_date, total_price, status, created_at, updated_at
		FROM bookings WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query booking by id: %w", err)
	}
	return &b, nil
}

const bookingDetailsQuery = `
	SELECT b.id, b.code, b.customer_id, b.vehicle_id, b.start_date, b.end_date,
	       b.total_price, b.status, b.created_at, b.updated_at,
	       u.name AS customer_name, u.email AS customer_email,
	       v.vehicle_name, v.registration_number, v.daily_rent_price
	FROM bookings b
	JOIN users u ON b.customer_id = u.id
	JOIN vehicles v ON b.vehicle_id = v.id`

func (r *bookingRepository) ListAll() ([]db.BookingWithDetails, error) {
	var bookings []db.BookingWithDetails
	err := r.db.Select(&bookings, bookingDetailsQuery+` ORDER BY b.id`)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

func (r *bookingRepository) ListByCustomer(customerID int) ([]db.BookingWithDetails, error) {
	var bookings []db.BookingWithDetails
	err := r.db.Select(&bookings, bookingDetailsQuery+` WHERE b.customer_id = $1 ORDER BY b.id`, customerID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by customer: %w", err)
	}
	return bookings, nil
}

func (r *bookingRepository) HasOverlap(vehicleID int, b *db.Booking) (bool, error) {
	var conflict bool
	err := r.db.QueryRow(overlapPredicate, vehicleID, b.StartDate, b.EndDate).Scan(&conflict)
	if err != nil {
		return false, fmt.Errorf("check overlap: %w", err)
	}
	return conflict, nil
}

func (r *bookingRepository) Transition(b *db.Booking, to db.BookingStatus) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("begin transition tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`SELECT id FROM vehicles WHERE id = $1 FOR UPDATE`, b.VehicleID); err != nil {
		return fmt.Errorf("lock vehicle: %w", err)
	}

	result, err := tx.Exec(`
		UPDATE bookings SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3`, to, b.ID, b.Status)
	if err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("transition rows affected: %w", err)
	}
	if affected == 0 {
		// Lost a race against another transition on the same booking.
		return apperr.New(apperr.KindInvalidTransition, "booking status changed concurrently")
	}

	// Free the vehicle only when no other holding booking remains.
	_, err = tx.Exec(`
		UPDATE vehicles SET availability_status = $1
		WHERE id = $2
		  AND NOT EXISTS (
			SELECT 1 FROM bookings
			WHERE vehicle_id = $2 AND status = 'active' AND id <> $3
		  )`, db.VehicleAvailable, b.VehicleID, b.ID)
	if err != nil {
		return fmt.Errorf("free vehicle: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transition tx: %w", err)
	}
	b.Status = to
	return nil
}

func (r *bookingRepository) VehicleHasHolding(vehicleID int) (bool, error) {
	var holding bool
	err := r.db.QueryRow(`SELECT EXISTS (SELECT 1 FROM bookings WHERE vehicle_id = $1 AND status = 'active')`, vehicleID).Scan(&holding)
	if err != nil {
		return false, fmt.Errorf("check vehicle holding bookings: %w", err)
	}
	return holding, nil
}

func (r *bookingRepository) CustomerHasHolding(customerID int) (bool, error) {
	var holding bool
	err := r.db.QueryRow(`SELECT EXISTS (SELECT 1 FROM bookings WHERE customer_id = $1 AND status = 'active')`, customerID).Scan(&holding)
	if err != nil {
		return false, fmt.Errorf("check customer holding bookings: %w", err)
	}
	return holding, nil
}
