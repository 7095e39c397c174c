package register_customer

import (
	"github.com/google/uuid"

	registerCustomer "github.com/m04kA/SMC-SchedulerService/internal/usecase/register_customer"
)

// RegisterRequest HTTP request model
type RegisterRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
}

// RegisterResponse HTTP response model
type RegisterResponse struct {
	UserID     uuid.UUID `json:"userId"`
	CustomerID uuid.UUID `json:"customerId"`
	Username   string    `json:"username"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RegisterRequest) ToUseCaseRequest() *registerCustomer.Request {
	return &registerCustomer.Request{
		Username:        r.Username,
		Password:        r.Password,
		ConfirmPassword: r.ConfirmPassword,
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Email:           r.Email,
		Phone:           r.Phone,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *registerCustomer.Response) *RegisterResponse {
	return &RegisterResponse{
		UserID:     resp.UserID,
		CustomerID: resp.CustomerID,
		Username:   resp.Username,
	}
}
