package models

import (
	"encoding/xml"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

// Response модели

// AppointmentResponse запись с данными клиента и услуги.
// Время в часовом поясе бизнеса, формат "2006-01-02T15:04".
type AppointmentResponse struct {
	ID            uuid.UUID `json:"id"`
	CustomerID    uuid.UUID `json:"customerId"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	CustomerPhone string    `json:"customerPhone"`
	ServiceID     uuid.UUID `json:"serviceId"`
	ServiceName   string    `json:"serviceName"`
	ServicePrice  float64   `json:"servicePrice"`
	Start         string    `json:"start"`
	End           string    `json:"end"`
	IsCompleted   bool      `json:"isCompleted"`
}

// AppointmentListResponse список записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// FromDomainDetails конвертирует запись в ответ
func FromDomainDetails(d *domain.AppointmentDetails) *AppointmentResponse {
	return &AppointmentResponse{
		ID:            d.ID,
		CustomerID:    d.CustomerID,
		CustomerName:  d.CustomerFullName(),
		CustomerEmail: d.CustomerEmail,
		CustomerPhone: d.CustomerPhone,
		ServiceID:     d.ServiceID,
		ServiceName:   d.ServiceName,
		ServicePrice:  d.ServicePrice,
		Start:         d.Start.Format(domain.DateTimeFormat),
		End:           d.End.Format(domain.DateTimeFormat),
		IsCompleted:   d.IsCompleted,
	}
}

// FromDomainDetailsList конвертирует список записей
func FromDomainDetailsList(items []*domain.AppointmentDetails) *AppointmentListResponse {
	result := make([]AppointmentResponse, 0, len(items))
	for _, d := range items {
		result = append(result, *FromDomainDetails(d))
	}
	return &AppointmentListResponse{Appointments: result, Total: len(result)}
}

// XML выгрузка

// XMLAppointments корневой элемент выгрузки
type XMLAppointments struct {
	XMLName      xml.Name         `xml:"appointments"`
	Appointments []XMLAppointment `xml:"appointment"`
}

// XMLAppointment одна запись выгрузки
type XMLAppointment struct {
	ID       string `xml:"id"`
	Customer string `xml:"customer"`
	Service  string `xml:"service"`
	Start    string `xml:"start"`
	End      string `xml:"end"`
}

// FromDomainDetailsXML конвертирует записи в выгрузку
func FromDomainDetailsXML(items []*domain.AppointmentDetails) *XMLAppointments {
	result := &XMLAppointments{Appointments: make([]XMLAppointment, 0, len(items))}
	for _, d := range items {
		result.Appointments = append(result.Appointments, XMLAppointment{
			ID:       d.ID.String(),
			Customer: d.CustomerFullName(),
			Service:  d.ServiceName,
			Start:    d.Start.Format(domain.DateTimeFormat),
			End:      d.End.Format(domain.DateTimeFormat),
		})
	}
	return result
}
