package list_all_services

import (
	"context"

	"github.com/m04kA/SMC-SchedulerService/internal/service/services/models"
)

type ServiceCatalogue interface {
	List(ctx context.Context) ([]models.ServiceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
