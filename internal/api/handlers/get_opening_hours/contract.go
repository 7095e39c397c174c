package get_opening_hours

import (
	"context"

	"github.com/m04kA/SMC-SchedulerService/internal/service/businesshours/models"
)

type BusinessHoursService interface {
	OpeningHours(ctx context.Context) ([]models.OpeningHoursResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
