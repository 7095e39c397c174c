package jobs

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

// AppointmentRepository источник записей для фоновых задач
type AppointmentRepository interface {
	ListDueIDs(ctx context.Context, now time.Time) ([]uuid.UUID, error)
	MarkCompleted(ctx context.Context, ids []uuid.UUID) (int, error)
	ListDetails(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.AppointmentDetails, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier отправка писем клиентам
type Notifier interface {
	SendMail(ctx context.Context, to, subject, body string) error
}

// MetricsRecorder учет результатов фоновых задач
type MetricsRecorder interface {
	ObserveCompleted(count int)
	ObserveReminder(err error)
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
