package appointments

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error)
	ListDetails(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.AppointmentDetails, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CustomerFinder поиск клиента аккаунта
type CustomerFinder interface {
	FindByUsername(ctx context.Context, username string) (*domain.Customer, bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
