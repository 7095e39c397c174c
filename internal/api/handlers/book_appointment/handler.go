package book_appointment

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SchedulerService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulerService/internal/api/middleware"
	bookAppointment "github.com/m04kA/SMC-SchedulerService/internal/usecase/book_appointment"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidTime         = "некорректный формат времени, ожидается YYYY-MM-DDTHH:MM"
	msgServiceNotFound     = "услуга не найдена"
	msgAppointmentNotFound = "запись не найдена"
	msgForbidden           = "запись принадлежит другому клиенту"
)

type Handler struct {
	useCase  BookAppointmentUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase BookAppointmentUseCase, location *time.Location, logger Logger) *Handler {
	if location == nil {
		location = time.Local
	}
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle POST /api/v1/appointments
// Гость записывается по имени и контактам, аутентифицированный пользователь - по X-Username.
// С appointmentId запрос переносит существующую запись.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(h.location)
	if err != nil {
		h.logger.Warn("POST /appointments - Invalid time format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	// Пользователь из контекста, если запрос аутентифицирован
	if username, ok := middleware.GetUsername(r.Context()); ok {
		useCaseReq.Username = &username
		useCaseReq.Role = middleware.GetRole(r.Context())
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if handlers.RespondBusinessError(w, err) {
			h.logger.Warn("POST /appointments - Rejected: service_id=%s, start=%s, reason=%v",
				req.ServiceID, req.Start, err)
			return
		}

		switch {
		case errors.Is(err, bookAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: service_id=%s", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, bookAppointment.ErrAppointmentNotFound):
			h.logger.Warn("POST /appointments - Appointment not found: appointment_id=%v", req.AppointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, bookAppointment.ErrAccessDenied):
			h.logger.Warn("POST /appointments - Access denied: appointment_id=%v", req.AppointmentID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /appointments - Failed to book appointment: service_id=%s, start=%s, error=%v",
				req.ServiceID, req.Start, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusCreated
	if result.Rescheduled {
		status = http.StatusOK
	}

	h.logger.Info("POST /appointments - Appointment saved successfully: appointment_id=%s, rescheduled=%t",
		result.Appointment.ID, result.Rescheduled)
	handlers.RespondJSON(w, status, FromUseCaseResponse(result))
}
