package get_my_appointments

import (
	"context"

	"github.com/m04kA/SMC-SchedulerService/internal/service/appointments/models"
)

type AppointmentService interface {
	ListForCustomer(ctx context.Context, username string) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
