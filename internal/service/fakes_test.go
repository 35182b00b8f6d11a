package service

import (
	"io"
	"time"

	"rentacar/internal/apperr"
	"rentacar/internal/db"
	"rentacar/internal/repository"

	"github.com/sirupsen/logrus"
)

// In-memory repository fakes mirroring the SQL behavior of the real
// implementations, including the closed-interval overlap predicate and the
// availability flip inside create/transition.

type fakeVehicleRepo struct {
	vehicles map[int]*db.Vehicle
	nextID   int
}

func newFakeVehicleRepo() *fakeVehicleRepo {
	return &fakeVehicleRepo{vehicles: map[int]*db.Vehicle{}, nextID: 1}
}

func (f *fakeVehicleRepo) Create(v *db.Vehicle) error {
	v.ID = f.nextID
	f.nextID++
	copied := *v
	f.vehicles[v.ID] = &copied
	return nil
}

func (f *fakeVehicleRepo) GetByID(id int) (*db.Vehicle, error) {
	v, ok := f.vehicles[id]
	if !ok {
		return nil, nil
	}
	copied := *v
	return &copied, nil
}

func (f *fakeVehicleRepo) List() ([]db.Vehicle, error) {
	var out []db.Vehicle
	for _, v := range f.vehicles {
		out = append(out, *v)
	}
	return out, nil
}

func (f *fakeVehicleRepo) Update(id int, params repository.UpdateVehicleParams) (*db.Vehicle, error) {
	v, ok := f.vehicles[id]
	if !ok {
		return nil, apperr.New(apperr.KindNotFound, "vehicle not found")
	}
	if params.VehicleName != nil {
		v.VehicleName = *params.VehicleName
	}
	if params.Type != nil {
		v.Type = *params.Type
	}
	if params.RegistrationNumber != nil {
		v.RegistrationNumber = *params.RegistrationNumber
	}
	if params.DailyRentPrice != nil {
		v.DailyRentPrice = *params.DailyRentPrice
	}
	if params.AvailabilityStatus != nil {
		v.AvailabilityStatus = *params.AvailabilityStatus
	}
	copied := *v
	return &copied, nil
}

func (f *fakeVehicleRepo) Delete(id int) error {
	if _, ok := f.vehicles[id]; !ok {
		return apperr.New(apperr.KindNotFound, "vehicle not found")
	}
	delete(f.vehicles, id)
	return nil
}

type fakeBookingRepo struct {
	vehicles *fakeVehicleRepo
	bookings map[int]*db.Booking
	nextID   int
}

func newFakeBookingRepo(vehicles *fakeVehicleRepo) *fakeBookingRepo {
	return &fakeBookingRepo{vehicles: vehicles, bookings: map[int]*db.Booking{}, nextID: 1}
}

func (f *fakeBookingRepo) overlaps(vehicleID int, start, end time.Time) bool {
	for _, b := range f.bookings {
		if b.VehicleID != vehicleID || b.Status != db.BookingStatusActive {
			continue
		}
		if !b.StartDate.After(end) && !b.EndDate.Before(start) {
			return true
		}
	}
	return false
}

func (f *fakeBookingRepo) Create(b *db.Booking) error {
	v, ok := f.vehicles.vehicles[b.VehicleID]
	if !ok {
		return apperr.New(apperr.KindNotFound, "vehicle not found")
	}
	if f.overlaps(b.VehicleID, b.StartDate, b.EndDate) {
		return apperr.New(apperr.KindConflict, "vehicle is already booked during the selected dates")
	}
	b.ID = f.nextID
	f.nextID++
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	copied := *b
	f.bookings[b.ID] = &copied
	v.AvailabilityStatus = db.VehicleBooked
	return nil
}

func (f *fakeBookingRepo) GetByID(id int) (*db.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) ListAll() ([]db.BookingWithDetails, error) {
	var out []db.BookingWithDetails
	for _, b := range f.bookings {
		out = append(out, db.BookingWithDetails{Booking: *b})
	}
	return out, nil
}

func (f *fakeBookingRepo) ListByCustomer(customerID int) ([]db.BookingWithDetails, error) {
	var out []db.BookingWithDetails
	for _, b := range f.bookings {
		if b.CustomerID == customerID {
			out = append(out, db.BookingWithDetails{Booking: *b})
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) HasOverlap(vehicleID int, b *db.Booking) (bool, error) {
	return f.overlaps(vehicleID, b.StartDate, b.EndDate), nil
}

func (f *fakeBookingRepo) Transition(b *db.Booking, to db.BookingStatus) error {
	stored, ok := f.bookings[b.ID]
	if !ok {
		return apperr.New(apperr.KindNotFound, "booking not found")
	}
	if stored.Status != b.Status {
		return apperr.New(apperr.KindInvalidTransition, "booking status changed concurrently")
	}
	stored.Status = to
	stored.UpdatedAt = time.Now()
	b.Status = to

	holding := false
	for _, other := range f.bookings {
		if other.VehicleID == stored.VehicleID && other.Status == db.BookingStatusActive {
			holding = true
			break
		}
	}
	if !holding {
		if v, ok := f.vehicles.vehicles[stored.VehicleID]; ok {
			v.AvailabilityStatus = db.VehicleAvailable
		}
	}
	return nil
}

func (f *fakeBookingRepo) VehicleHasHolding(vehicleID int) (bool, error) {
	for _, b := range f.bookings {
		if b.VehicleID == vehicleID && b.Status == db.BookingStatusActive {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBookingRepo) CustomerHasHolding(customerID int) (bool, error) {
	for _, b := range f.bookings {
		if b.CustomerID == customerID && b.Status == db.BookingStatusActive {
			return true, nil
		}
	}
	return false, nil
}

type fakeUserRepo struct {
	users  map[int]*db.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int]*db.User{}, nextID: 1}
}

func (f *fakeUserRepo) Create(u *db.User) error {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return apperr.New(apperr.KindConflict, "email already exists")
		}
	}
	u.ID = f.nextID
	f.nextID++
	copied := *u
	f.users[u.ID] = &copied
	return nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*db.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByID(id int) (*db.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) List() ([]db.User, error) {
	var out []db.User
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) Update(id int, params repository.UpdateUserParams) (*db.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, apperr.New(apperr.KindNotFound, "user not found")
	}
	if params.Name != nil {
		u.Name = *params.Name
	}
	if params.Email != nil {
		u.Email = *params.Email
	}
	if params.Phone != nil {
		u.Phone = *params.Phone
	}
	if params.PasswordHash != nil {
		u.PasswordHash = *params.PasswordHash
	}
	if params.Role != nil {
		u.Role = *params.Role
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) Delete(id int) error {
	if _, ok := f.users[id]; !ok {
		return apperr.New(apperr.KindNotFound, "user not found")
	}
	delete(f.users, id)
	return nil
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
