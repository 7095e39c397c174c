package get_appointments

import (
	"context"

	"github.com/m04kA/SMC-SchedulerService/internal/service/appointments/models"
)

type AppointmentService interface {
	ListAll(ctx context.Context, activeOnly bool) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
