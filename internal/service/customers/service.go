// Package customers resolves the customer identity used by bookings and
// registrations and keeps email and phone unique across customers.
package customers

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	customerRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/customer"
)

// Service сервис клиентов
type Service struct {
	repo   CustomerRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(repo CustomerRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Resolve определяет клиента для записи или регистрации.
//
// existing - клиент, найденный по паре (email, phone), либо nil.
// Проверки строго по порядку: email, телефон, имя, username.
// Если existing == nil, возвращается новый клиент без привязки к аккаунту (в хранилище не сохраняется).
func (s *Service) Resolve(
	ctx context.Context,
	existing *domain.Customer,
	email, phone, firstName, lastName string,
	username *string,
) (*domain.Customer, error) {
	var excludeID *uuid.UUID
	if existing != nil {
		excludeID = &existing.ID
	}

	// 1. Email, затем телефон. Телефон не проверяется, если email занят.
	if err := s.checkContacts(ctx, email, phone, excludeID); err != nil {
		return nil, err
	}

	// 2. Новый клиент
	if existing == nil {
		return &domain.Customer{
			FirstName: firstName,
			LastName:  lastName,
			Email:     email,
			Phone:     phone,
		}, nil
	}

	// 3. Та же пара email+телефон у человека с другим именем
	if !existing.HasName(firstName, lastName) {
		s.logger.Warn("Resolve: name mismatch for customer id=%s", existing.ID)
		return nil, domain.ErrNameConflict
	}

	// 4. Клиент уже привязан к другому аккаунту
	if username != nil && existing.IsLinkedToOtherUser(*username) {
		s.logger.Warn("Resolve: customer id=%s is linked to another account", existing.ID)
		return nil, domain.ErrUsernameConflict
	}

	return existing, nil
}

// FindByEmailAndPhone ищет клиента по точной паре email+телефон
func (s *Service) FindByEmailAndPhone(ctx context.Context, email, phone string) (*domain.Customer, bool, error) {
	customer, err := s.repo.GetByEmailAndPhone(ctx, email, phone)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			return nil, false, nil
		}
		s.logger.Error("FindByEmailAndPhone: repository error: %v", err)
		return nil, false, fmt.Errorf("%w: FindByEmailAndPhone - repository error: %w", ErrInternal, err)
	}
	return customer, true, nil
}

// FindByUsername ищет клиента, привязанного к аккаунту
func (s *Service) FindByUsername(ctx context.Context, username string) (*domain.Customer, bool, error) {
	customer, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			return nil, false, nil
		}
		s.logger.Error("FindByUsername: repository error for username=%s: %v", username, err)
		return nil, false, fmt.Errorf("%w: FindByUsername - repository error: %w", ErrInternal, err)
	}
	return customer, true, nil
}

// GetByID получает клиента по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	customer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - repository error: %w", ErrInternal, err)
	}
	return customer, nil
}

// Save создает нового клиента или обновляет существующего.
// Нарушение уникальности в хранилище возвращается как EmailConflict / PhoneConflict.
func (s *Service) Save(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if customer.IsNew() {
		created, err := s.repo.Create(ctx, customer)
		if err != nil {
			return nil, s.mapWriteError("Save", err)
		}
		s.logger.Info("Save: created customer id=%s", created.ID)
		return created, nil
	}

	if err := s.repo.Update(ctx, customer); err != nil {
		return nil, s.mapWriteError("Save", err)
	}
	return customer, nil
}

// UpdateDetails меняет контакты и имя клиента аккаунта username.
// Email и телефон проверяются на уникальность без учета самого клиента.
func (s *Service) UpdateDetails(ctx context.Context, username, email, phone, firstName, lastName string) (*domain.Customer, error) {
	customer, found, err := s.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrCustomerNotFound
	}

	if err := s.checkContacts(ctx, email, phone, &customer.ID); err != nil {
		return nil, err
	}

	customer.Email = email
	customer.Phone = phone
	customer.FirstName = firstName
	customer.LastName = lastName

	if err := s.repo.Update(ctx, customer); err != nil {
		return nil, s.mapWriteError("UpdateDetails", err)
	}

	s.logger.Info("UpdateDetails: updated customer id=%s", customer.ID)
	return customer, nil
}

func (s *Service) checkContacts(ctx context.Context, email, phone string, excludeID *uuid.UUID) error {
	emailTaken, err := s.repo.ExistsByEmail(ctx, email, excludeID)
	if err != nil {
		return fmt.Errorf("%w: email check: %w", ErrInternal, err)
	}
	if emailTaken {
		return domain.ErrEmailConflict
	}

	phoneTaken, err := s.repo.ExistsByPhone(ctx, phone, excludeID)
	if err != nil {
		return fmt.Errorf("%w: phone check: %w", ErrInternal, err)
	}
	if phoneTaken {
		return domain.ErrPhoneConflict
	}

	return nil
}

func (s *Service) mapWriteError(op string, err error) error {
	switch {
	case errors.Is(err, customerRepo.ErrEmailTaken):
		return domain.ErrEmailConflict
	case errors.Is(err, customerRepo.ErrPhoneTaken):
		return domain.ErrPhoneConflict
	case errors.Is(err, customerRepo.ErrCustomerNotFound):
		return ErrCustomerNotFound
	}
	s.logger.Error("%s: repository error: %v", op, err)
	return fmt.Errorf("%w: %s - repository error: %w", ErrInternal, op, err)
}
