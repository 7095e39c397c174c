package book_appointment

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
	ListByDay(ctx context.Context, day time.Weekday, openOnly bool) ([]*domain.BusinessHour, error)
}

// AvailabilityChecker проверка свободного интервала
type AvailabilityChecker interface {
	IsSlotAvailable(ctx context.Context, start, end time.Time) (bool, error)
}

// SlotPlanner перечисляет возможные слоты дня без учета записей
type SlotPlanner interface {
	Candidates(durationMinutes int, date time.Time, ranges []*domain.BusinessHour, now time.Time) ([]domain.Slot, error)
}

// CustomerResolver определение и сохранение клиента
type CustomerResolver interface {
	FindByUsername(ctx context.Context, username string) (*domain.Customer, bool, error)
	FindByEmailAndPhone(ctx context.Context, email, phone string) (*domain.Customer, bool, error)
	Resolve(ctx context.Context, existing *domain.Customer, email, phone, firstName, lastName string, username *string) (*domain.Customer, error)
	Save(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
	Update(ctx context.Context, appointment *domain.Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error)
	GetDetailsByID(ctx context.Context, id uuid.UUID) (*domain.AppointmentDetails, error)
}

// Locker выполняет fn под блокировкой ресурса в сериализуемой транзакции
type Locker interface {
	WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error
}

// Notifier отправка писем клиентам
type Notifier interface {
	SendMail(ctx context.Context, to, subject, body string) error
}

// MetricsRecorder учет записей
type MetricsRecorder interface {
	ObserveBooking(kind string)
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
