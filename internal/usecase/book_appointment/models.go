package book_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

// Виды записи для метрик
const (
	KindCreated     = "created"
	KindRescheduled = "rescheduled"
)

// Request модель запроса на запись или перенос
type Request struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Username  *string     // аккаунт клиента, nil для гостя
	Role      domain.Role // роль аккаунта, пусто для гостя

	ServiceID     uuid.UUID
	AppointmentID *uuid.UUID // задан при переносе
	Start         time.Time
	End           time.Time // если не задан, вычисляется по длительности услуги
}

// IsReschedule запрос на перенос существующей записи
func (r *Request) IsReschedule() bool {
	return r.AppointmentID != nil
}

// Response модель ответа с сохраненной записью
type Response struct {
	Appointment *domain.AppointmentDetails
	Rescheduled bool
}
