package businesshours

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	businessHourRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/businesshour"
	"github.com/m04kA/SMC-SchedulerService/internal/service/businesshours/models"
	"github.com/m04kA/SMC-SchedulerService/pkg/types"
)

// Service сервис часов работы
type Service struct {
	repo   BusinessHourRepository
	locker Locker
	logger Logger
}

// NewService создает новый экземпляр сервиса часов работы
func NewService(repo BusinessHourRepository, locker Locker, logger Logger) *Service {
	return &Service{
		repo:   repo,
		locker: locker,
		logger: logger,
	}
}

// SaveRange добавляет новый диапазон (ID == nil) или изменяет существующий.
// Диапазон не должен пересекаться с открытыми диапазонами того же дня, кроме самого себя.
func (s *Service) SaveRange(ctx context.Context, req *models.SaveRangeRequest) (*models.BusinessHourResponse, error) {
	// 1. Валидация
	hour, err := toDomain(req)
	if err != nil {
		return nil, err
	}

	// 2. start должен быть раньше end
	if !hour.StartTime.IsBefore(hour.EndTime) {
		s.logger.Warn("SaveRange: start=%s is not before end=%s", hour.StartTime, hour.EndTime)
		return nil, domain.ErrStartAfterEnd
	}

	// 3. Проверка пересечения и запись под блокировкой дня
	var saved *domain.BusinessHour
	err = s.locker.WithLock(ctx, domain.LockKeyBusinessHours(hour.DayOfWeek), func(ctx context.Context) error {
		overlapping, err := s.repo.ExistsOverlapping(ctx, hour.DayOfWeek, hour.StartTime, hour.EndTime, req.ID)
		if err != nil {
			return fmt.Errorf("%w: SaveRange - overlap check: %w", ErrInternal, err)
		}
		if overlapping {
			return domain.ErrOverlappingRange
		}

		if req.ID == nil {
			saved, err = s.repo.Create(ctx, hour)
			if err != nil {
				return fmt.Errorf("%w: SaveRange - create: %w", ErrInternal, err)
			}
			return nil
		}

		if _, err := s.repo.GetByID(ctx, *req.ID); err != nil {
			if errors.Is(err, businessHourRepo.ErrBusinessHourNotFound) {
				return ErrBusinessHourNotFound
			}
			return fmt.Errorf("%w: SaveRange - get: %w", ErrInternal, err)
		}

		hour.ID = *req.ID
		if err := s.repo.Update(ctx, hour); err != nil {
			if errors.Is(err, businessHourRepo.ErrBusinessHourNotFound) {
				return ErrBusinessHourNotFound
			}
			return fmt.Errorf("%w: SaveRange - update: %w", ErrInternal, err)
		}
		saved = hour
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInternal) {
			s.logger.Error("SaveRange: day=%s: %v", hour.DayOfWeek, err)
		} else {
			s.logger.Warn("SaveRange: day=%s %s-%s rejected: %v", hour.DayOfWeek, hour.StartTime, hour.EndTime, err)
		}
		return nil, err
	}

	s.logger.Info("SaveRange: saved id=%d day=%s %s-%s open=%t", saved.ID, saved.DayOfWeek, saved.StartTime, saved.EndTime, saved.IsOpen)
	return models.FromDomainBusinessHour(saved), nil
}

// ListByDay диапазоны дня недели, упорядоченные по началу
func (s *Service) ListByDay(ctx context.Context, day time.Weekday, openOnly bool) ([]*domain.BusinessHour, error) {
	hours, err := s.repo.ListByDay(ctx, day, openOnly)
	if err != nil {
		s.logger.Error("ListByDay: repository error for day=%s: %v", day, err)
		return nil, fmt.Errorf("%w: ListByDay - repository error: %w", ErrInternal, err)
	}
	return hours, nil
}

// List все диапазоны
func (s *Service) List(ctx context.Context) ([]models.BusinessHourResponse, error) {
	hours, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %w", ErrInternal, err)
	}
	return models.FromDomainBusinessHourList(hours), nil
}

// OpeningHours неделя с воскресенья по субботу, у каждого дня свои диапазоны
func (s *Service) OpeningHours(ctx context.Context) ([]models.OpeningHoursResponse, error) {
	hours, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("OpeningHours: repository error: %v", err)
		return nil, fmt.Errorf("%w: OpeningHours - repository error: %w", ErrInternal, err)
	}
	return models.FromDomainOpeningHours(GroupByDay(hours)), nil
}

// Delete удаляет диапазон
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, businessHourRepo.ErrBusinessHourNotFound) {
			s.logger.Warn("Delete: business hour id=%d not found", id)
			return ErrBusinessHourNotFound
		}
		s.logger.Error("Delete: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("Delete: business hour id=%d deleted", id)
	return nil
}

// Count количество диапазонов, используется при первичном заполнении
func (s *Service) Count(ctx context.Context) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: Count - repository error: %w", ErrInternal, err)
	}
	return count, nil
}

// GroupByDay раскладывает диапазоны по семи дням недели, порядок внутри дня сохраняется
func GroupByDay(hours []*domain.BusinessHour) []domain.DayOpeningHours {
	week := make([]domain.DayOpeningHours, 7)
	for day := time.Sunday; day <= time.Saturday; day++ {
		week[day] = domain.DayOpeningHours{Day: day, Ranges: []*domain.BusinessHour{}}
	}
	for _, h := range hours {
		if h.DayOfWeek < time.Sunday || h.DayOfWeek > time.Saturday {
			continue
		}
		week[h.DayOfWeek].Ranges = append(week[h.DayOfWeek].Ranges, h)
	}
	return week
}

func toDomain(req *models.SaveRangeRequest) (*domain.BusinessHour, error) {
	if !domain.IsValidWeekday(req.DayOfWeek) {
		return nil, fmt.Errorf("%w: dayOfWeek must be 0..6", ErrInvalidInput)
	}

	start, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: startTime: %w", ErrInvalidInput, err)
	}
	end, err := types.NewTimeStringFromString(req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: endTime: %w", ErrInvalidInput, err)
	}

	return &domain.BusinessHour{
		DayOfWeek: time.Weekday(req.DayOfWeek),
		StartTime: start,
		EndTime:   end,
		IsOpen:    req.IsOpen,
	}, nil
}
