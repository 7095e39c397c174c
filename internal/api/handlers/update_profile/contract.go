package update_profile

import (
	"context"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

type CustomerService interface {
	UpdateDetails(ctx context.Context, username, email, phone, firstName, lastName string) (*domain.Customer, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
