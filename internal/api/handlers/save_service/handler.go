package save_service

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulerService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulerService/internal/service/services"
	"github.com/m04kA/SMC-SchedulerService/internal/service/services/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingServiceID   = "ID услуги обязателен при изменении"
	msgNotFound           = "услуга не найдена"
)

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

// Handle POST /api/v1/owner/services - новая услуга
// Handle PUT /api/v1/owner/services - изменение услуги, id в теле
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	route := r.Method + " /owner/services"

	var req models.SaveServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	status := http.StatusOK
	if r.Method == http.MethodPost {
		req.ID = nil
		status = http.StatusCreated
	} else if req.ID == nil {
		h.logger.Warn("%s - Missing service ID", route)
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	result, err := h.service.Save(r.Context(), &req)
	if err != nil {
		if handlers.RespondBusinessError(w, err) {
			h.logger.Warn("%s - Rejected: name=%q, reason=%v", route, req.Name, err)
			return
		}

		switch {
		case errors.Is(err, services.ErrServiceNotFound):
			h.logger.Warn("%s - Service not found: service_id=%v", route, req.ID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, services.ErrInvalidInput):
			h.logger.Warn("%s - Invalid input: %v", route, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("%s - Failed to save service: name=%q, error=%v", route, req.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Service saved successfully: service_id=%s", route, result.ID)
	handlers.RespondJSON(w, status, result)
}
