package models

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

// Request модели

// SaveServiceRequest добавление (ID == nil) или изменение услуги
type SaveServiceRequest struct {
	ID              *uuid.UUID `json:"id,omitempty"`
	Name            string     `json:"serviceName"`
	Price           float64    `json:"price"`
	DurationMinutes int        `json:"duration"`
	ImagePath       *string    `json:"imagePath,omitempty"`
}

// Response модели

// ServiceResponse услуга
type ServiceResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"serviceName"`
	Price           float64   `json:"price"`
	DurationMinutes int       `json:"duration"`
	ImagePath       *string   `json:"imagePath,omitempty"`
	IsActive        bool      `json:"isActive"`
}

// ServicePageResponse страница каталога
type ServicePageResponse struct {
	Items      []ServiceResponse `json:"items"`
	Page       int               `json:"page"`
	Size       int               `json:"size"`
	TotalItems int               `json:"totalItems"`
	TotalPages int               `json:"totalPages"`
}

// FromDomainService конвертирует доменную услугу в ответ
func FromDomainService(s *domain.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		ImagePath:       s.ImagePath,
		IsActive:        s.IsActive,
	}
}

// FromDomainServiceList конвертирует список услуг
func FromDomainServiceList(services []*domain.Service) []ServiceResponse {
	result := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		result = append(result, *FromDomainService(s))
	}
	return result
}

// FromDomainServicePage конвертирует страницу каталога
func FromDomainServicePage(p *domain.ServicePage) *ServicePageResponse {
	return &ServicePageResponse{
		Items:      FromDomainServiceList(p.Items),
		Page:       p.Page,
		Size:       p.Size,
		TotalItems: p.TotalItems,
		TotalPages: p.TotalPages(),
	}
}
