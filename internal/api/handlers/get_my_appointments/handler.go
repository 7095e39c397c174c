package get_my_appointments

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulerService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulerService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulerService/internal/service/appointments"
	"github.com/m04kA/SMC-SchedulerService/internal/service/appointments/models"
)

const msgUnauthorized = "требуется аутентификация"

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/me/appointments
// Активные записи текущего клиента
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	username, ok := middleware.GetUsername(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.ListForCustomer(r.Context(), username)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrCustomerNotFound):
			// У аккаунта без профиля клиента записей нет
			h.logger.Warn("GET /me/appointments - No customer profile: username=%s", username)
			handlers.RespondJSON(w, http.StatusOK, &models.AppointmentListResponse{
				Appointments: []models.AppointmentResponse{},
			})

		default:
			h.logger.Error("GET /me/appointments - Failed to get appointments: username=%s, error=%v", username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /me/appointments - Appointments retrieved successfully: username=%s, total=%d",
		username, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
