package businessinfo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	businessInfoRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/businessinfo"
	"github.com/m04kA/SMC-SchedulerService/internal/service/businessinfo/models"
)

// Service профиль бизнеса
type Service struct {
	repo   BusinessInfoRepository
	logger Logger
}

func NewService(repo BusinessInfoRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) Get(ctx context.Context) (*models.BusinessInfoResponse, error) {
	info, err := s.get(ctx)
	if err != nil {
		return nil, err
	}
	return models.FromDomainBusinessInfo(info), nil
}

// Exists проверяет, создан ли профиль
func (s *Service) Exists(ctx context.Context) (bool, error) {
	_, err := s.get(ctx)
	if errors.Is(err, ErrBusinessInfoNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Update меняет название и описание, фон меняется только если передан новый путь или флаг удаления
func (s *Service) Update(ctx context.Context, req *models.UpdateBusinessInfoRequest) (*models.BusinessInfoResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || utf8.RuneCountInString(name) > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: name must be between 1 and %d characters", ErrInvalidInput, domain.MaxNameLength)
	}
	if req.Description != nil && utf8.RuneCountInString(*req.Description) > domain.MaxDescriptionLength {
		return nil, fmt.Errorf("%w: description is longer than %d characters", ErrInvalidInput, domain.MaxDescriptionLength)
	}

	info, err := s.get(ctx)
	if errors.Is(err, ErrBusinessInfoNotFound) {
		info = &domain.BusinessInfo{ID: domain.BusinessInfoID}
	} else if err != nil {
		return nil, err
	}

	info.Name = name
	info.Description = req.Description
	switch {
	case req.RemoveBackground:
		info.BackgroundImagePath = nil
	case req.BackgroundImagePath != nil:
		info.BackgroundImagePath = req.BackgroundImagePath
	}

	if err := s.Save(ctx, info); err != nil {
		return nil, err
	}

	s.logger.Info("Update: business info saved, name=%q", info.Name)
	return models.FromDomainBusinessInfo(info), nil
}

// Save сохраняет профиль целиком
func (s *Service) Save(ctx context.Context, info *domain.BusinessInfo) error {
	info.ID = domain.BusinessInfoID
	if err := s.repo.Save(ctx, info); err != nil {
		s.logger.Error("Save: repository error: %v", err)
		return fmt.Errorf("%w: Save - repository error: %w", ErrInternal, err)
	}
	return nil
}

func (s *Service) get(ctx context.Context) (*domain.BusinessInfo, error) {
	info, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, businessInfoRepo.ErrBusinessInfoNotFound) {
			return nil, ErrBusinessInfoNotFound
		}
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %w", ErrInternal, err)
	}
	return info, nil
}
