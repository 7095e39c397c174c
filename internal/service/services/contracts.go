package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	Create(ctx context.Context, service *domain.Service) (*domain.Service, error)
	Update(ctx context.Context, service *domain.Service) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error)
	ExistsByName(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error)
	ListActivePage(ctx context.Context, page, size int) ([]*domain.Service, int, error)
	List(ctx context.Context) ([]*domain.Service, error)
	Delete(ctx context.Context, id uuid.UUID) error
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
