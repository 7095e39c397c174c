package set_service_availability

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulerService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulerService/internal/service/services"
)

const (
	msgInvalidServiceID   = "некорректный ID услуги"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "услуга не найдена"
)

// AvailabilityRequest HTTP request model
type AvailabilityRequest struct {
	IsActive *bool `json:"isActive"`
}

type Handler struct {
	service ServiceCatalogue
	logger  Logger
}

func NewHandler(service ServiceCatalogue, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/owner/services/{serviceId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceID, err := uuid.Parse(mux.Vars(r)["serviceId"])
	if err != nil {
		h.logger.Warn("PATCH /owner/services/{id}/availability - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	var req AvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil || req.IsActive == nil {
		h.logger.Warn("PATCH /owner/services/{id}/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err = h.service.SetActive(r.Context(), serviceID, *req.IsActive)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrServiceNotFound):
			h.logger.Warn("PATCH /owner/services/{id}/availability - Service not found: service_id=%s", serviceID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /owner/services/{id}/availability - Failed to update service: service_id=%s, error=%v",
				serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /owner/services/{id}/availability - Service availability updated: service_id=%s, active=%t",
		serviceID, *req.IsActive)
	handlers.RespondNoContent(w)
}
