package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	serviceRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/service"
	"github.com/m04kA/SMC-SchedulerService/internal/service/services/models"
)

const minServiceNameLength = 3

// Service сервис каталога услуг
type Service struct {
	repo   ServiceRepository
	locker Locker
	logger Logger
}

// NewService создает новый экземпляр сервиса услуг
func NewService(repo ServiceRepository, locker Locker, logger Logger) *Service {
	return &Service{
		repo:   repo,
		locker: locker,
		logger: logger,
	}
}

// Save добавляет услугу (ID == nil) или изменяет существующую.
// Название уникально среди всех услуг, кроме изменяемой.
func (s *Service) Save(ctx context.Context, req *models.SaveServiceRequest) (*models.ServiceResponse, error) {
	if err := validateSave(req); err != nil {
		s.logger.Warn("Save: validation failed: %v", err)
		return nil, err
	}
	name := strings.TrimSpace(req.Name)

	var saved *domain.Service
	err := s.locker.WithLock(ctx, domain.LockKeyServiceNames, func(ctx context.Context) error {
		// 1. Проверка уникальности названия
		taken, err := s.repo.ExistsByName(ctx, name, req.ID)
		if err != nil {
			return fmt.Errorf("%w: Save - name check: %w", ErrInternal, err)
		}
		if taken {
			return domain.ErrServiceNameConflict
		}

		// 2. Новая услуга активна сразу
		if req.ID == nil {
			saved, err = s.repo.Create(ctx, &domain.Service{
				Name:            name,
				Price:           req.Price,
				DurationMinutes: req.DurationMinutes,
				ImagePath:       req.ImagePath,
				IsActive:        true,
			})
			if err != nil {
				return mapWriteError("Save", err)
			}
			return nil
		}

		// 3. Изменение существующей, флаг активности сохраняется
		existing, err := s.repo.GetByID(ctx, *req.ID)
		if err != nil {
			return mapWriteError("Save", err)
		}
		existing.Name = name
		existing.Price = req.Price
		existing.DurationMinutes = req.DurationMinutes
		if req.ImagePath != nil {
			existing.ImagePath = req.ImagePath
		}
		if err := s.repo.Update(ctx, existing); err != nil {
			return mapWriteError("Save", err)
		}
		saved = existing
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInternal) {
			s.logger.Error("Save: %v", err)
		} else {
			s.logger.Warn("Save: service name=%q rejected: %v", name, err)
		}
		return nil, err
	}

	s.logger.Info("Save: saved service id=%s name=%q", saved.ID, saved.Name)
	return models.FromDomainService(saved), nil
}

// SetActive показывает или скрывает услугу в публичном каталоге
func (s *Service) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	if err := s.repo.SetActive(ctx, id, active); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("SetActive: service id=%s not found", id)
			return ErrServiceNotFound
		}
		s.logger.Error("SetActive: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: SetActive - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("SetActive: service id=%s active=%t", id, active)
	return nil
}

// Delete удаляет услугу вместе с ее записями
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("Delete: service id=%s not found", id)
			return ErrServiceNotFound
		}
		s.logger.Error("Delete: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("Delete: service id=%s deleted", id)
	return nil
}

// Get получает услугу по ID
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	service, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		s.logger.Error("Get: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Get - repository error: %w", ErrInternal, err)
	}
	return service, nil
}

// ActivePage страница активных услуг, page считается с 0.
// Страница за пределами непустого каталога возвращает ErrPageNotFound.
func (s *Service) ActivePage(ctx context.Context, page, size int) (*models.ServicePageResponse, error) {
	if page < 0 {
		return nil, fmt.Errorf("%w: page must be >= 0", ErrInvalidInput)
	}
	if size <= 0 {
		size = domain.DefaultPageSize
	}
	if size > domain.MaxPageSize {
		size = domain.MaxPageSize
	}

	items, total, err := s.repo.ListActivePage(ctx, page, size)
	if err != nil {
		s.logger.Error("ActivePage: repository error: %v", err)
		return nil, fmt.Errorf("%w: ActivePage - repository error: %w", ErrInternal, err)
	}

	result := &domain.ServicePage{Items: items, Page: page, Size: size, TotalItems: total}
	if page > 0 && page >= result.TotalPages() {
		return nil, ErrPageNotFound
	}

	return models.FromDomainServicePage(result), nil
}

// List все услуги, включая скрытые
func (s *Service) List(ctx context.Context) ([]models.ServiceResponse, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %w", ErrInternal, err)
	}
	return models.FromDomainServiceList(items), nil
}

func validateSave(req *models.SaveServiceRequest) error {
	name := strings.TrimSpace(req.Name)
	if n := utf8.RuneCountInString(name); n < minServiceNameLength || n > domain.MaxServiceNameLength {
		return fmt.Errorf("%w: serviceName must be between %d and %d characters", ErrInvalidInput, minServiceNameLength, domain.MaxServiceNameLength)
	}
	if req.Price < 0 {
		return fmt.Errorf("%w: price must be >= 0", ErrInvalidInput)
	}
	if req.DurationMinutes < domain.MinServiceDuration || req.DurationMinutes > domain.MaxServiceDuration {
		return fmt.Errorf("%w: duration must be between %d and %d minutes", ErrInvalidInput, domain.MinServiceDuration, domain.MaxServiceDuration)
	}
	return nil
}

func mapWriteError(op string, err error) error {
	switch {
	case errors.Is(err, serviceRepo.ErrNameTaken):
		return domain.ErrServiceNameConflict
	case errors.Is(err, serviceRepo.ErrServiceNotFound):
		return ErrServiceNotFound
	}
	return fmt.Errorf("%w: %s - repository error: %w", ErrInternal, op, err)
}
