package update_profile

import (
	"errors"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

// UpdateProfileRequest HTTP request model
type UpdateProfileRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// Validate проверяет обязательные поля
func (r *UpdateProfileRequest) Validate() error {
	if strings.TrimSpace(r.FirstName) == "" || strings.TrimSpace(r.LastName) == "" {
		return errors.New("first and last name are required")
	}
	if len(r.FirstName) > domain.MaxNameLength || len(r.LastName) > domain.MaxNameLength {
		return errors.New("name is too long")
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return errors.New("invalid email")
	}
	if strings.TrimSpace(r.Phone) == "" {
		return errors.New("phone is required")
	}
	return nil
}

// ProfileResponse HTTP response model
type ProfileResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
}

// FromDomainCustomer конвертирует клиента в HTTP response
func FromDomainCustomer(c *domain.Customer) *ProfileResponse {
	resp := &ProfileResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
	}
	if c.Username != nil {
		resp.Username = *c.Username
	}
	return resp
}
