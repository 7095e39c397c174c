package update_business_info

import (
	"context"

	"github.com/m04kA/SMC-SchedulerService/internal/service/businessinfo/models"
)

type BusinessInfoService interface {
	Update(ctx context.Context, req *models.UpdateBusinessInfoRequest) (*models.BusinessInfoResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
