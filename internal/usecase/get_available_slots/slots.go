package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

// Generator вычисляет свободные слоты услуги на дату по диапазонам часов работы
type Generator struct {
	checker       AvailabilityChecker
	horizonMonths int
}

// NewGenerator создает генератор. horizonMonths - на сколько месяцев вперед открыта запись.
func NewGenerator(checker AvailabilityChecker, horizonMonths int) *Generator {
	if horizonMonths <= 0 {
		horizonMonths = domain.BookingHorizonMonths
	}
	return &Generator{checker: checker, horizonMonths: horizonMonths}
}

// Generate возвращает слоты, которые не пересекаются ни с одной записью.
// Порядок: диапазоны в переданном порядке, внутри диапазона по возрастанию.
func (g *Generator) Generate(
	ctx context.Context,
	durationMinutes int,
	date time.Time,
	ranges []*domain.BusinessHour,
	now time.Time,
) ([]domain.Slot, error) {
	candidates, err := g.Candidates(durationMinutes, date, ranges, now)
	if err != nil {
		return nil, err
	}

	slots := make([]domain.Slot, 0, len(candidates))
	for _, candidate := range candidates {
		available, err := g.checker.IsSlotAvailable(ctx, candidate.Start, candidate.End)
		if err != nil {
			return nil, fmt.Errorf("%w: availability check: %w", ErrInternal, err)
		}
		if available {
			slots = append(slots, candidate)
		}
	}

	return slots, nil
}

// Candidates возвращает все возможные слоты без учета существующих записей
func (g *Generator) Candidates(durationMinutes int, date time.Time, ranges []*domain.BusinessHour, now time.Time) ([]domain.Slot, error) {
	return Candidates(durationMinutes, date, ranges, now, g.horizonMonths)
}

// Candidates перечисляет слоты длительностью durationMinutes на дату date.
//
// Пусто, если дата раньше сегодняшней или позже сегодня + horizonMonths.
// Закрытые диапазоны пропускаются. Начала идут от range.start с шагом durationMinutes,
// пока start + duration <= range.end. Для сегодняшней даты прошедшие начала отбрасываются.
func Candidates(
	durationMinutes int,
	date time.Time,
	ranges []*domain.BusinessHour,
	now time.Time,
	horizonMonths int,
) ([]domain.Slot, error) {
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}

	loc := date.Location()
	day := startOfDay(date)
	today := startOfDay(now.In(loc))

	slots := make([]domain.Slot, 0)
	if day.Before(today) || day.After(today.AddDate(0, horizonMonths, 0)) {
		return slots, nil
	}
	isToday := day.Equal(today)
	duration := time.Duration(durationMinutes) * time.Minute

	for _, r := range ranges {
		if !r.IsOpen {
			continue
		}

		from, err := r.StartTime.Minutes()
		if err != nil {
			return nil, fmt.Errorf("%w: range id=%d: %w", ErrInternal, r.ID, err)
		}
		to, err := r.EndTime.Minutes()
		if err != nil {
			return nil, fmt.Errorf("%w: range id=%d: %w", ErrInternal, r.ID, err)
		}

		for m := from; m+durationMinutes <= to; m += durationMinutes {
			start := time.Date(day.Year(), day.Month(), day.Day(), m/60, m%60, 0, 0, loc)
			if isToday && start.Before(now) {
				continue
			}
			slots = append(slots, domain.Slot{Start: start, End: start.Add(duration)})
		}
	}

	return slots, nil
}

// Contains проверяет, что start совпадает с началом одного из слотов
func Contains(slots []domain.Slot, start time.Time) bool {
	for _, s := range slots {
		if s.Start.Equal(start) {
			return true
		}
	}
	return false
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
