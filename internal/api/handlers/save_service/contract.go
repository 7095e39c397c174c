package save_service

import (
	"context"

	"github.com/m04kA/SMC-SchedulerService/internal/service/services/models"
)

type ServiceCatalogue interface {
	Save(ctx context.Context, req *models.SaveServiceRequest) (*models.ServiceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
