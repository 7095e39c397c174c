package get_available_slots

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

// ServiceProvider источник услуг
type ServiceProvider interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Service, error)
}

// BusinessHoursProvider источник часов работы
type BusinessHoursProvider interface {
	// ListByDay возвращает диапазоны дня, упорядоченные по времени начала
	ListByDay(ctx context.Context, day time.Weekday, openOnly bool) ([]*domain.BusinessHour, error)
}

// AvailabilityChecker проверка свободного интервала
type AvailabilityChecker interface {
	IsSlotAvailable(ctx context.Context, start, end time.Time) (bool, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени в часовом поясе бизнеса
type RealTimeProvider struct {
	Location *time.Location
}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	if p.Location == nil {
		return time.Now()
	}
	return time.Now().In(p.Location)
}
