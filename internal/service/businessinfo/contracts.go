package businessinfo

import (
	"context"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

type BusinessInfoRepository interface {
	Get(ctx context.Context) (*domain.BusinessInfo, error)
	Save(ctx context.Context, info *domain.BusinessInfo) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
