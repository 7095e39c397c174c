package get_appointments

import (
	"net/http"

	"github.com/m04kA/SMC-SchedulerService/internal/api/handlers"
)

const msgInvalidActive = "параметр active должен быть true или false"

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

// Handle GET /api/v1/owner/appointments
// Query params: active (optional, true - только незавершенные)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	activeOnly, err := handlers.QueryBool(r, "active")
	if err != nil {
		h.logger.Warn("GET /owner/appointments - Invalid active param: %v", err)
		handlers.RespondBadRequest(w, msgInvalidActive)
		return
	}

	result, err := h.service.ListAll(r.Context(), activeOnly)
	if err != nil {
		h.logger.Error("GET /owner/appointments - Failed to get appointments: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /owner/appointments - Appointments retrieved successfully: active=%t, total=%d",
		activeOnly, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
