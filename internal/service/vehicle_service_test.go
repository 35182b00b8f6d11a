package service

import (
	"testing"

	"rentacar/internal/apperr"
	"rentacar/internal/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVehicleFixture(t *testing.T) (*VehicleService, *fakeVehicleRepo, *fakeBookingRepo) {
	t.Helper()
	vehicles := newFakeVehicleRepo()
	bookings := newFakeBookingRepo(vehicles)
	return NewVehicleService(vehicles, bookings, testLogger()), vehicles, bookings
}

func TestVehicleCreateValidation(t *testing.T) {
	svc, _, _ := newVehicleFixture(t)

	_, err := svc.Create(admin, CreateVehicleParams{VehicleName: "Corolla", RegistrationNumber: "AB-1", DailyRentPrice: 0})
	require.Error(t, err)
	assert.Equal(t, apperr.KindInvalidArgument, apperr.KindOf(err))

	_, err = svc.Create(admin, CreateVehicleParams{VehicleName: "", RegistrationNumber: "AB-1", DailyRentPrice: 10})
	require.Error(t, err)
	assert.Equal(t, apperr.KindInvalidArgument, apperr.KindOf(err))

	vehicle, err := svc.Create(admin, CreateVehicleParams{VehicleName: "Corolla", RegistrationNumber: "AB-1", DailyRentPrice: 10})
	require.NoError(t, err)
	assert.Equal(t, db.VehicleAvailable, vehicle.AvailabilityStatus)
}

func TestVehicleCreateAdminOnly(t *testing.T) {
	svc, _, _ := newVehicleFixture(t)

	_, err := svc.Create(customer, CreateVehicleParams{VehicleName: "Corolla", RegistrationNumber: "AB-1", DailyRentPrice: 10})
	require.Error(t, err)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}

func TestVehicleGetNotFound(t *testing.T) {
	svc, _, _ := newVehicleFixture(t)

	_, err := svc.Get(123)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestVehicleDeleteBlockedByHoldingBooking(t *testing.T) {
	svc, vehicles, bookings := newVehicleFixture(t)

	vehicle := &db.Vehicle{VehicleName: "Corolla", RegistrationNumber: "AB-1", DailyRentPrice: 50, AvailabilityStatus: db.VehicleAvailable}
	require.NoError(t, vehicles.Create(vehicle))
	require.NoError(t, bookings.Create(&db.Booking{
		Code:       "c-1",
		CustomerID: 7,
		VehicleID:  vehicle.ID,
		StartDate:  date(t, "2024-01-01"),
		EndDate:    date(t, "2024-01-03"),
		Status:     db.BookingStatusActive,
	}))

	err := svc.Delete(admin, vehicle.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	stored, err := bookings.GetByID(1)
	require.NoError(t, err)
	require.NoError(t, bookings.Transition(stored, db.BookingStatusCancelled))
	assert.NoError(t, svc.Delete(admin, vehicle.ID))
}

func TestVehicleUpdateValidation(t *testing.T) {
	svc, vehicles, _ := newVehicleFixture(t)

	vehicle := &db.Vehicle{VehicleName: "Corolla", RegistrationNumber: "AB-1", DailyRentPrice: 50, AvailabilityStatus: db.VehicleAvailable}
	require.NoError(t, vehicles.Create(vehicle))

	bad := -5.0
	_, err := svc.Update(admin, vehicle.ID, UpdateVehicleParams{DailyRentPrice: &bad})
	require.Error(t, err)
	assert.Equal(t, apperr.KindInvalidArgument, apperr.KindOf(err))

	status := "lost"
	_, err = svc.Update(admin, vehicle.ID, UpdateVehicleParams{AvailabilityStatus: &status})
	require.Error(t, err)
	assert.Equal(t, apperr.KindInvalidArgument, apperr.KindOf(err))

	rate := 75.0
	updated, err := svc.Update(admin, vehicle.ID, UpdateVehicleParams{DailyRentPrice: &rate})
	require.NoError(t, err)
	assert.Equal(t, 75.0, updated.DailyRentPrice)
	assert.Equal(t, "Corolla", updated.VehicleName)
}
