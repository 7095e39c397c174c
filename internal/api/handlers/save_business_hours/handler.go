package save_business_hours

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulerService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulerService/internal/service/businesshours"
	"github.com/m04kA/SMC-SchedulerService/internal/service/businesshours/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "диапазон не найден"
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

// Handle PUT /api/v1/owner/business-hours
// Без id добавляет диапазон, с id изменяет существующий
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.SaveRangeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /owner/business-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SaveRange(r.Context(), &req)
	if err != nil {
		if handlers.RespondBusinessError(w, err) {
			h.logger.Warn("PUT /owner/business-hours - Rejected: day=%d, %s-%s, reason=%v",
				req.DayOfWeek, req.StartTime, req.EndTime, err)
			return
		}

		switch {
		case errors.Is(err, businesshours.ErrBusinessHourNotFound):
			h.logger.Warn("PUT /owner/business-hours - Range not found: id=%v", req.ID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, businesshours.ErrInvalidInput):
			h.logger.Warn("PUT /owner/business-hours - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /owner/business-hours - Failed to save range: day=%d, error=%v", req.DayOfWeek, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /owner/business-hours - Range saved successfully: id=%d, day=%s", result.ID, result.Day)
	handlers.RespondJSON(w, http.StatusOK, result)
}
