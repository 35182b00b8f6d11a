package repository

import (
	"fmt"

	"rentacar/internal/db"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type JobRepository interface {
	GetOverdueActiveBookingIDs() ([]int, error)
	MarkReturned(ids []int) (int64, error)
}

type jobRepository struct {
	db *sqlx.DB
}

func NewJobRepository(database *sqlx.DB) JobRepository {
	return &jobRepository{db: database}
}

func (r *jobRepository) GetOverdueActiveBookingIDs() ([]int, error) {
	var ids []int
	err := r.db.Select(&ids, `SELECT id FROM bookings WHERE status = 'active' AND end_date < CURRENT_DATE`)
	if err != nil {
		return nil, fmt.Errorf("query overdue active bookings: %w", err)
	}
	return ids, nil
}

// MarkReturned transitions the given active bookings to returned and frees
// every vehicle left without a holding booking, in one transaction.
func (r *jobRepository) MarkReturned(ids []int) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	tx, err := r.db.Beginx()
	if err != nil {
		return 0, fmt.Errorf("begin sweep tx: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(`
		UPDATE bookings SET status = $1, updated_at = NOW()
		WHERE id = ANY($2) AND status = 'active'`, db.BookingStatusReturned, pq.Array(ids))
	if err != nil {
		return 0, fmt.Errorf("mark bookings returned: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("sweep rows affected: %w", err)
	}

	_, err = tx.Exec(`
		UPDATE vehicles SET availability_status = $1
		WHERE id IN (SELECT vehicle_id FROM bookings WHERE id = ANY($2))
		  AND NOT EXISTS (
			SELECT 1 FROM bookings b
			WHERE b.vehicle_id = vehicles.id AND b.status = 'active'
		  )`, db.VehicleAvailable, pq.Array(ids))
	if err != nil {
		return 0, fmt.Errorf("free vehicles: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit sweep tx: %w", err)
	}
	return affected, nil
}
