package get_business_hours

import (
	"context"

	"github.com/m04kA/SMC-SchedulerService/internal/service/businesshours/models"
)

type BusinessHoursService interface {
	List(ctx context.Context) ([]models.BusinessHourResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
