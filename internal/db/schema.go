package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		email VARCHAR(100) UNIQUE NOT NULL,
		password VARCHAR(255) NOT NULL,
		phone VARCHAR(20) NOT NULL DEFAULT '',
		role VARCHAR(20) NOT NULL DEFAULT 'customer'
	)`,
	`CREATE TABLE IF NOT EXISTS vehicles (
		id SERIAL PRIMARY KEY,
		vehicle_name VARCHAR(100) NOT NULL,
		type VARCHAR(50) NOT NULL,
		registration_number VARCHAR(50) UNIQUE NOT NULL,
		daily_rent_price DOUBLE PRECISION NOT NULL,
		availability_status VARCHAR(20) NOT NULL DEFAULT 'available'
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id SERIAL PRIMARY KEY,
		code VARCHAR(36) UNIQUE NOT NULL,
		customer_id INT NOT NULL REFERENCES users(id),
		vehicle_id INT NOT NULL REFERENCES vehicles(id),
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		total_price DOUBLE PRECISION NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'active',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_vehicle_status
		ON bookings (vehicle_id, status)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_customer
		ON bookings (customer_id)`,
}

// InitSchema creates the tables if they do not exist. Statements are
// idempotent so the server can run it on every startup.
func InitSchema(database *sqlx.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := database.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}
