package user

import (
	"deals-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidRole = errs.New("invalid role")

type Role string

const (
	RoleCustomer Role = "customer"
	RoleVendor   Role = "vendor"
	RoleAdmin    Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleVendor, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Principal is the caller asserted by a validated access token. For vendors the
// principal id is the vendor id; for customers it is the customer id.
type Principal struct {
	ID   uuid.UUID
	Role Role
}

func (p Principal) Is(roles ...Role) bool {
	for _, r := range roles {
		if p.Role == r {
			return true
		}
	}
	return false
}
