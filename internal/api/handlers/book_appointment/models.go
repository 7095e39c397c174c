package book_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	"github.com/m04kA/SMC-SchedulerService/internal/service/appointments/models"
	bookAppointment "github.com/m04kA/SMC-SchedulerService/internal/usecase/book_appointment"
)

// BookAppointmentRequest HTTP request model.
// Для гостя обязательны имя и контакты, для аккаунта они берутся из профиля.
type BookAppointmentRequest struct {
	AppointmentID *uuid.UUID `json:"appointmentId,omitempty"` // задан при переносе
	ServiceID     uuid.UUID  `json:"serviceId"`
	Start         string     `json:"start"`         // "2024-06-03T10:00"
	End           *string    `json:"end,omitempty"` // по умолчанию start + длительность услуги
	FirstName     string     `json:"firstName"`
	LastName      string     `json:"lastName"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
}

// BookAppointmentResponse HTTP response model
type BookAppointmentResponse struct {
	models.AppointmentResponse
	Rescheduled bool `json:"rescheduled"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookAppointmentRequest) ToUseCaseRequest(loc *time.Location) (*bookAppointment.Request, error) {
	start, err := time.ParseInLocation(domain.DateTimeFormat, r.Start, loc)
	if err != nil {
		return nil, err
	}

	var end time.Time
	if r.End != nil && *r.End != "" {
		end, err = time.ParseInLocation(domain.DateTimeFormat, *r.End, loc)
		if err != nil {
			return nil, err
		}
	}

	return &bookAppointment.Request{
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Email:         r.Email,
		Phone:         r.Phone,
		ServiceID:     r.ServiceID,
		AppointmentID: r.AppointmentID,
		Start:         start,
		End:           end,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookAppointment.Response) *BookAppointmentResponse {
	return &BookAppointmentResponse{
		AppointmentResponse: *models.FromDomainDetails(resp.Appointment),
		Rescheduled:         resp.Rescheduled,
	}
}
