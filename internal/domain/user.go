package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role access role of an account
type Role string

const (
	RoleOwner    Role = "ROLE_OWNER"
	RoleCustomer Role = "ROLE_CUSTOMER"
)

// User is a login account. Customers are linked to users through Customer.UserID.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	Role         Role
	Enabled      bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u *User) IsOwner() bool {
	return u.Role == RoleOwner
}

// IsValidRole checks known roles
func IsValidRole(role string) bool {
	return Role(role) == RoleOwner || Role(role) == RoleCustomer
}
