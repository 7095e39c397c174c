// Package availability answers whether a time interval is free on the single
// bookable resource.
package availability

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidInterval возвращается, когда end не позже start
	ErrInvalidInterval = errors.New("availability: end must be after start")

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("availability: internal error")
)

// AppointmentRepository источник существующих записей
type AppointmentRepository interface {
	ExistsOverlapping(ctx context.Context, start, end time.Time) (bool, error)
}

// Checker проверка доступности интервала
type Checker struct {
	repo AppointmentRepository
}

func NewChecker(repo AppointmentRepository) *Checker {
	return &Checker{repo: repo}
}

// IsSlotAvailable возвращает true, если ни одна существующая запись не пересекает [start, end).
// Завершенные записи тоже учитываются.
func (c *Checker) IsSlotAvailable(ctx context.Context, start, end time.Time) (bool, error) {
	if !end.After(start) {
		return false, ErrInvalidInterval
	}

	taken, err := c.repo.ExistsOverlapping(ctx, start, end)
	if err != nil {
		return false, fmt.Errorf("%w: IsSlotAvailable - repository error: %w", ErrInternal, err)
	}

	return !taken, nil
}
