package register_customer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	"github.com/m04kA/SMC-SchedulerService/internal/service/users"
)

// UseCase use case регистрации клиента: аккаунт и клиент создаются атомарно
type UseCase struct {
	accounts  AccountService
	customers CustomerResolver
	locker    Locker
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(accounts AccountService, customers CustomerResolver, locker Locker, logger Logger) *UseCase {
	return &UseCase{
		accounts:  accounts,
		customers: customers,
		locker:    locker,
		logger:    logger,
	}
}

// Execute регистрирует клиента.
// Если клиент с той же парой email+телефон уже записывался гостем, он привязывается к новому аккаунту.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	username := strings.TrimSpace(req.Username)
	uc.logger.Info("RegisterCustomer: username=%s", username)

	// 1. Валидация контактов
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RegisterCustomer: validation failed: %v", err)
		return nil, err
	}

	var result *Response

	// 2. Проверки и запись под блокировкой имен пользователей
	err := uc.locker.WithLock(ctx, domain.LockKeyUsernames, func(txCtx context.Context) error {
		// 2.1. Аккаунт: формат, занятость username, совпадение паролей
		if err := uc.accounts.ValidateNewUser(txCtx, username, req.Password, req.ConfirmPassword); err != nil {
			return err
		}

		// 2.2. Клиент: email, телефон, имя, привязка к другому аккаунту
		existing, found, err := uc.customers.FindByEmailAndPhone(txCtx, req.Email, req.Phone)
		if err != nil {
			return err
		}
		if !found {
			existing = nil
		}

		customer, err := uc.customers.Resolve(txCtx, existing, req.Email, req.Phone, req.FirstName, req.LastName, &username)
		if err != nil {
			return err
		}

		// 2.3. Аккаунт
		user, err := uc.accounts.CreateAccount(txCtx, username, req.Password, domain.RoleCustomer)
		if err != nil {
			return err
		}

		// 2.4. Привязываем клиента к аккаунту
		customer.UserID = &user.ID
		customer.Username = &user.Username
		saved, err := uc.customers.Save(txCtx, customer)
		if err != nil {
			return err
		}

		result = &Response{UserID: user.ID, CustomerID: saved.ID, Username: user.Username}
		return nil
	})

	if err != nil {
		if _, ok := domain.AsBusinessError(err); ok {
			uc.logger.Warn("RegisterCustomer: username=%s rejected: %v", username, err)
			return nil, err
		}
		if errors.Is(err, users.ErrInvalidInput) {
			uc.logger.Warn("RegisterCustomer: validation failed: %v", err)
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		uc.logger.Error("RegisterCustomer: failed for username=%s: %v", username, err)
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	uc.logger.Info("RegisterCustomer: registered username=%s, customer=%s", result.Username, result.CustomerID)
	return result, nil
}
