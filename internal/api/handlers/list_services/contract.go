package list_services

import (
	"context"

	"github.com/m04kA/SMC-SchedulerService/internal/service/services/models"
)

type CatalogueService interface {
	ActivePage(ctx context.Context, page, size int) (*models.ServicePageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
