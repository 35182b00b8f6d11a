package auth

import (
	"rentacar/internal/apperr"
	"rentacar/internal/db"
)

// Operation names a protected action. Handlers consult the policy table
// once per request instead of scattering role checks.
type Operation string

const (
	OpUserList   Operation = "user.list"
	OpUserUpdate Operation = "user.update"
	OpUserDelete Operation = "user.delete"

	OpVehicleCreate Operation = "vehicle.create"
	OpVehicleUpdate Operation = "vehicle.update"
	OpVehicleDelete Operation = "vehicle.delete"

	OpBookingCreate Operation = "booking.create"
	OpBookingList   Operation = "booking.list"
	OpBookingCancel Operation = "booking.cancel"
	OpBookingReturn Operation = "booking.return"
)

type rule struct {
	roles     map[string]bool
	ownerOnly bool // non-admin callers must own the target resource
}

var policy = map[Operation]rule{
	OpUserList:   {roles: map[string]bool{db.RoleAdmin: true}},
	OpUserUpdate: {roles: map[string]bool{db.RoleAdmin: true, db.RoleCustomer: true}, ownerOnly: true},
	OpUserDelete: {roles: map[string]bool{db.RoleAdmin: true}},

	OpVehicleCreate: {roles: map[string]bool{db.RoleAdmin: true}},
	OpVehicleUpdate: {roles: map[string]bool{db.RoleAdmin: true}},
	OpVehicleDelete: {roles: map[string]bool{db.RoleAdmin: true}},

	OpBookingCreate: {roles: map[string]bool{db.RoleAdmin: true, db.RoleCustomer: true}, ownerOnly: true},
	OpBookingList:   {roles: map[string]bool{db.RoleAdmin: true, db.RoleCustomer: true}},
	OpBookingCancel: {roles: map[string]bool{db.RoleAdmin: true, db.RoleCustomer: true}, ownerOnly: true},
	OpBookingReturn: {roles: map[string]bool{db.RoleAdmin: true}},
}

// Authorize checks ident against the policy table. ownerID is the user that
// owns the target resource; it is ignored for admin callers and for
// operations without an ownership predicate.
func Authorize(ident Identity, op Operation, ownerID int) error {
	r, ok := policy[op]
	if !ok {
		return apperr.New(apperr.KindForbidden, "access denied")
	}
	if !r.roles[ident.Role] {
		return apperr.New(apperr.KindForbidden, "access denied")
	}
	if r.ownerOnly && !ident.IsAdmin() && ident.UserID != ownerID {
		return apperr.New(apperr.KindForbidden, "access denied")
	}
	return nil
}
