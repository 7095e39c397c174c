package get_opening_hours

import (
	"net/http"

	"github.com/m04kA/SMC-SchedulerService/internal/api/handlers"
)

type Handler struct {
	service BusinessHoursService
	logger  Logger
}

func NewHandler(service BusinessHoursService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/opening-hours
// Часы работы по дням недели, воскресенье первым
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.OpeningHours(r.Context())
	if err != nil {
		h.logger.Error("GET /opening-hours - Failed to get opening hours: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /opening-hours - Opening hours retrieved successfully")
	handlers.RespondJSON(w, http.StatusOK, result)
}
