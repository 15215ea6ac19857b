package entities

import "github.com/google/uuid"

type Role string

const (
	RoleCustomer    Role = "CUSTOMER"
	RoleTransporter Role = "TRANSPORTER"
	RoleAdmin       Role = "ADMIN"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleTransporter, RoleAdmin:
		return true
	default:
		return false
	}
}

// Actor is the caller of an operation as resolved by the auth layer.
type Actor struct {
	ID       uuid.UUID
	Role     Role
	Verified bool
}

func (a Actor) Is(role Role) bool {
	return a.Role == role
}

// UserInfo is the display data of a user fetched from the user directory.
type UserInfo struct {
	ID       uuid.UUID
	FullName string
	Email    string
	Role     Role
	Verified bool
}
