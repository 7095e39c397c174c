package save_business_hours

import (
	"context"

	"github.com/m04kA/SMC-SchedulerService/internal/service/businesshours/models"
)

type BusinessHoursService interface {
	SaveRange(ctx context.Context, req *models.SaveRangeRequest) (*models.BusinessHourResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
