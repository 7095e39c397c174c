package register_customer

import (
	"context"

	registerCustomer "github.com/m04kA/SMC-SchedulerService/internal/usecase/register_customer"
)

type RegisterCustomerUseCase interface {
	Execute(ctx context.Context, req *registerCustomer.Request) (*registerCustomer.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
