package businesshours

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	"github.com/m04kA/SMC-SchedulerService/pkg/types"
)

// BusinessHourRepository интерфейс репозитория часов работы
type BusinessHourRepository interface {
	Create(ctx context.Context, hour *domain.BusinessHour) (*domain.BusinessHour, error)
	Update(ctx context.Context, hour *domain.BusinessHour) error
	GetByID(ctx context.Context, id int64) (*domain.BusinessHour, error)
	ListByDay(ctx context.Context, day time.Weekday, openOnly bool) ([]*domain.BusinessHour, error)
	List(ctx context.Context) ([]*domain.BusinessHour, error)
	ExistsOverlapping(ctx context.Context, day time.Weekday, start, end types.TimeString, excludeID *int64) (bool, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

// Locker выполняет проверку и запись под блокировкой ресурса в одной транзакции
type Locker interface {
	WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
