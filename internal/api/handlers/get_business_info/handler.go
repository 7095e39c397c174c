package get_business_info

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulerService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulerService/internal/service/businessinfo"
)

const msgNotFound = "профиль бизнеса не заполнен"

type Handler struct {
	service BusinessInfoService
	logger  Logger
}

func NewHandler(service BusinessInfoService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/business-info
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Get(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, businessinfo.ErrBusinessInfoNotFound):
			h.logger.Warn("GET /business-info - Business info not found")
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /business-info - Failed to get business info: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /business-info - Business info retrieved successfully")
	handlers.RespondJSON(w, http.StatusOK, result)
}
