package auth

import (
	"testing"

	"rentacar/internal/db"

	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	adminIdent := Identity{UserID: 1, Role: db.RoleAdmin}
	customerIdent := Identity{UserID: 7, Role: db.RoleCustomer}

	tests := []struct {
		name    string
		ident   Identity
		op      Operation
		ownerID int
		wantErr bool
	}{
		{"admin lists users", adminIdent, OpUserList, 0, false},
		{"customer lists users", customerIdent, OpUserList, 0, true},
		{"customer updates self", customerIdent, OpUserUpdate, 7, false},
		{"customer updates other", customerIdent, OpUserUpdate, 8, true},
		{"admin updates anyone", adminIdent, OpUserUpdate, 8, false},
		{"customer creates vehicle", customerIdent, OpVehicleCreate, 0, true},
		{"admin creates vehicle", adminIdent, OpVehicleCreate, 0, false},
		{"customer books for self", customerIdent, OpBookingCreate, 7, false},
		{"customer books for other", customerIdent, OpBookingCreate, 8, true},
		{"admin books on behalf", adminIdent, OpBookingCreate, 8, false},
		{"customer cancels own", customerIdent, OpBookingCancel, 7, false},
		{"customer cancels other's", customerIdent, OpBookingCancel, 8, true},
		{"customer returns", customerIdent, OpBookingReturn, 7, true},
		{"admin returns", adminIdent, OpBookingReturn, 8, false},
		{"unknown role", Identity{UserID: 2, Role: "ghost"}, OpBookingList, 2, true},
		{"unknown operation", adminIdent, Operation("nope"), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.ident, tt.op, tt.ownerID)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
