package register_customer

import "github.com/google/uuid"

// Request модель запроса на регистрацию клиента
type Request struct {
	Username        string
	Password        string
	ConfirmPassword string

	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// Response модель ответа с созданным аккаунтом
type Response struct {
	UserID     uuid.UUID
	CustomerID uuid.UUID
	Username   string
}
