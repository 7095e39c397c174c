package domain

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a person who books appointments. Email and phone are unique.
// UserID and Username are set when the customer has an account.
type Customer struct {
	ID        uuid.UUID
	UserID    *uuid.UUID
	Username  *string
	FirstName string
	LastName  string
	Email     string
	Phone     string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsNew returns true for a customer not persisted yet
func (c *Customer) IsNew() bool {
	return c.ID == uuid.Nil
}

// HasName compares first and last name exactly
func (c *Customer) HasName(firstName, lastName string) bool {
	return c.FirstName == firstName && c.LastName == lastName
}

// IsLinkedToOtherUser returns true when the customer belongs to an account other than username
func (c *Customer) IsLinkedToOtherUser(username string) bool {
	return c.Username != nil && *c.Username != username
}

func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
