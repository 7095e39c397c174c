package domain

import (
	"time"

	"github.com/google/uuid"
)

// Service is a bookable offering with a fixed duration
type Service struct {
	ID              uuid.UUID
	Name            string
	Price           float64
	DurationMinutes int
	ImagePath       *string
	IsActive        bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Duration returns the duration as time.Duration
func (s *Service) Duration() time.Duration {
	return time.Duration(s.DurationMinutes) * time.Minute
}

// ServicePage is one page of services
type ServicePage struct {
	Items      []*Service
	Page       int
	Size       int
	TotalItems int
}

// TotalPages returns the number of pages for the page size
func (p *ServicePage) TotalPages() int {
	if p.Size <= 0 {
		return 0
	}
	return (p.TotalItems + p.Size - 1) / p.Size
}
