package register_customer

import (
	"context"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

// AccountService создание аккаунтов
type AccountService interface {
	ValidateNewUser(ctx context.Context, username, password, confirmPassword string) error
	CreateAccount(ctx context.Context, username, password string, role domain.Role) (*domain.User, error)
}

// CustomerResolver определение и сохранение клиента
type CustomerResolver interface {
	FindByEmailAndPhone(ctx context.Context, email, phone string) (*domain.Customer, bool, error)
	Resolve(ctx context.Context, existing *domain.Customer, email, phone, firstName, lastName string, username *string) (*domain.Customer, error)
	Save(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
}

// Locker выполняет fn под блокировкой ресурса в сериализуемой транзакции
type Locker interface {
	WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
