package update_business_info

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulerService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulerService/internal/service/businessinfo"
	"github.com/m04kA/SMC-SchedulerService/internal/service/businessinfo/models"
)

const msgInvalidRequestBody = "некорректное тело запроса"

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

// Handle PUT /api/v1/owner/business-info
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateBusinessInfoRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /owner/business-info - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, businessinfo.ErrInvalidInput):
			h.logger.Warn("PUT /owner/business-info - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /owner/business-info - Failed to update business info: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /owner/business-info - Business info updated successfully: name=%q", result.Name)
	handlers.RespondJSON(w, http.StatusOK, result)
}
