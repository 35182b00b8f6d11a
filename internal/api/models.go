package api

import (
	"time"

	"rentacar/internal/db"
)

const dateLayout = "2006-01-02"

// Auth
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SigninResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// Users
type UserResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}

// Vehicles
type VehicleRequest struct {
	VehicleName        string  `json:"vehicle_name"`
	Type               string  `json:"type"`
	RegistrationNumber string  `json:"registration_number"`
	DailyRentPrice     float64 `json:"daily_rent_price"`
	AvailabilityStatus string  `json:"availability_status"`
}

type UpdateVehicleRequest struct {
	VehicleName        *string  `json:"vehicle_name"`
	Type               *string  `json:"type"`
	RegistrationNumber *string  `json:"registration_number"`
	DailyRentPrice     *float64 `json:"daily_rent_price"`
	AvailabilityStatus *string  `json:"availability_status"`
}

type VehicleResponse struct {
	ID                 int     `json:"id"`
	VehicleName        string  `json:"vehicle_name"`
	Type               string  `json:"type"`
	RegistrationNumber string  `json:"registration_number"`
	DailyRentPrice     float64 `json:"daily_rent_price"`
	AvailabilityStatus string  `json:"availability_status"`
}

type AvailabilityResponse struct {
	VehicleID int    `json:"vehicle_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Available bool   `json:"available"`
}

// Bookings
type CreateBookingRequest struct {
	VehicleID  int    `json:"vehicle_id"`
	CustomerID int    `json:"customer_id,omitempty"` // admin booking on behalf
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

type UpdateBookingRequest struct {
	Status string `json:"status"`
}

type BookingResponse struct {
	ID         int       `json:"id"`
	Code       string    `json:"code"`
	CustomerID int       `json:"customer_id"`
	VehicleID  int       `json:"vehicle_id"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	TotalPrice float64   `json:"total_price"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type BookingDetailsResponse struct {
	BookingResponse
	CustomerName       string  `json:"customer_name"`
	CustomerEmail      string  `json:"customer_email"`
	VehicleName        string  `json:"vehicle_name"`
	RegistrationNumber string  `json:"registration_number"`
	DailyRentPrice     float64 `json:"daily_rent_price"`
}

func toUserResponse(u *db.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, Phone: u.Phone, Role: u.Role}
}

func toVehicleResponse(v *db.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:                 v.ID,
		VehicleName:        v.VehicleName,
		Type:               v.Type,
		RegistrationNumber: v.RegistrationNumber,
		DailyRentPrice:     v.DailyRentPrice,
		AvailabilityStatus: v.AvailabilityStatus,
	}
}

func toBookingResponse(b *db.Booking) BookingResponse {
	return BookingResponse{
		ID:         b.ID,
		Code:       b.Code,
		CustomerID: b.CustomerID,
		VehicleID:  b.VehicleID,
		StartDate:  b.StartDate.Format(dateLayout),
		EndDate:    b.EndDate.Format(dateLayout),
		TotalPrice: b.TotalPrice,
		Status:     string(b.Status),
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func toBookingDetailsResponse(b *db.BookingWithDetails) BookingDetailsResponse {
	return BookingDetailsResponse{
		BookingResponse:    toBookingResponse(&b.Booking),
		CustomerName:       b.CustomerName,
		CustomerEmail:      b.CustomerEmail,
		VehicleName:        b.VehicleName,
		RegistrationNumber: b.RegistrationNumber,
		DailyRentPrice:     b.DailyRentPrice,
	}
}
