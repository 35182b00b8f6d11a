package db

import "time"

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

const (
	VehicleAvailable = "available"
	VehicleBooked    = "booked"
)

// BookingStatus is the lifecycle state of a booking. New bookings start
// active; cancelled and returned are terminal.
type BookingStatus string

const (
	BookingStatusActive    BookingStatus = "active"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusReturned  BookingStatus = "returned"
)

type User struct {
	ID           int    `db:"id"`
	Name         string `db:"name"`
	Email        string `db:"email"`
	PasswordHash string `db:"password"`
	Phone        string `db:"phone"`
	Role         string `db:"role"`
}

type Vehicle struct {
	ID                 int     `db:"id"`
	VehicleName        string  `db:"vehicle_name"`
	Type               string  `db:"type"`
	RegistrationNumber string  `db:"registration_number"`
	DailyRentPrice     float64 `db:"daily_rent_price"`
	AvailabilityStatus string  `db:"availability_status"`
}

type Booking struct {
	ID         int           `db:"id"`
	Code       string        `db:"code"`
	CustomerID int           `db:"customer_id"`
	VehicleID  int           `db:"vehicle_id"`
	StartDate  time.Time     `db:"start_date"`
	EndDate    time.Time     `db:"end_date"`
	TotalPrice float64       `db:"total_price"`
	Status     BookingStatus `db:"status"`
	CreatedAt  time.Time     `db:"created_at"`
	UpdatedAt  time.Time     `db:"updated_at"`
}

// BookingWithDetails is a booking joined with the customer and vehicle
// columns the admin listing shows.
type BookingWithDetails struct {
	Booking
	CustomerName       string  `db:"customer_name"`
	CustomerEmail      string  `db:"customer_email"`
	VehicleName        string  `db:"vehicle_name"`
	RegistrationNumber string  `db:"registration_number"`
	DailyRentPrice     float64 `db:"daily_rent_price"`
}
