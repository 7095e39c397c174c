package models

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

// Request модели

// AddOwnerRequest новый аккаунт владельца
type AddOwnerRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// ChangePasswordRequest смена пароля
type ChangePasswordRequest struct {
	OldPassword        string `json:"oldPassword"`
	NewPassword        string `json:"newPassword"`
	ConfirmNewPassword string `json:"confirmNewPassword"`
}

// Response модели

// UserResponse аккаунт без хеша пароля
type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
	Enabled  bool      `json:"enabled"`
}

// FromDomainUser конвертирует доменный аккаунт в ответ
func FromDomainUser(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Role:     string(u.Role),
		Enabled:  u.Enabled,
	}
}
