package models

import (
	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

// Request модели

// SaveRangeRequest добавление (ID == nil) или изменение диапазона
type SaveRangeRequest struct {
	ID        *int64 `json:"id,omitempty"`
	DayOfWeek int    `json:"dayOfWeek"` // 0 = воскресенье
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "17:00"
	IsOpen    bool   `json:"isOpen"`
}

// Response модели

// BusinessHourResponse диапазон часов работы
type BusinessHourResponse struct {
	ID        int64  `json:"id"`
	DayOfWeek int    `json:"dayOfWeek"`
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	IsOpen    bool   `json:"isOpen"`
}

// OpeningHoursResponse диапазоны одного дня недели
type OpeningHoursResponse struct {
	Day    string                 `json:"day"`
	Ranges []BusinessHourResponse `json:"ranges"`
}

// FromDomainBusinessHour конвертирует доменный диапазон в ответ
func FromDomainBusinessHour(h *domain.BusinessHour) *BusinessHourResponse {
	return &BusinessHourResponse{
		ID:        h.ID,
		DayOfWeek: int(h.DayOfWeek),
		Day:       h.DayOfWeek.String(),
		StartTime: h.StartTime.String(),
		EndTime:   h.EndTime.String(),
		IsOpen:    h.IsOpen,
	}
}

// FromDomainBusinessHourList конвертирует список диапазонов
func FromDomainBusinessHourList(hours []*domain.BusinessHour) []BusinessHourResponse {
	result := make([]BusinessHourResponse, 0, len(hours))
	for _, h := range hours {
		result = append(result, *FromDomainBusinessHour(h))
	}
	return result
}

// FromDomainOpeningHours конвертирует неделю (воскресенье первым)
func FromDomainOpeningHours(days []domain.DayOpeningHours) []OpeningHoursResponse {
	result := make([]OpeningHoursResponse, 0, len(days))
	for _, d := range days {
		result = append(result, OpeningHoursResponse{
			Day:    d.Day.String(),
			Ranges: FromDomainBusinessHourList(d.Ranges),
		})
	}
	return result
}
