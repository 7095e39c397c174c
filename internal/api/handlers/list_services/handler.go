package list_services

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulerService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	"github.com/m04kA/SMC-SchedulerService/internal/service/services"
)

const (
	defaultPage = 0
	defaultSize = domain.DefaultPageSize
)

const (
	msgInvalidPage  = "некорректный номер страницы"
	msgInvalidSize  = "некорректный размер страницы"
	msgPageNotFound = "страница не найдена"
)

type Handler struct {
	service CatalogueService
	logger  Logger
}

func NewHandler(service CatalogueService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/services
// Query params: page (с нуля, по умолчанию 0), size
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	page, err := handlers.QueryInt(r, "page", defaultPage)
	if err != nil {
		h.logger.Warn("GET /services - Invalid page: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPage)
		return
	}

	size, err := handlers.QueryInt(r, "size", defaultSize)
	if err != nil {
		h.logger.Warn("GET /services - Invalid size: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSize)
		return
	}

	result, err := h.service.ActivePage(r.Context(), page, size)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPageNotFound):
			h.logger.Warn("GET /services - Page not found: page=%d, size=%d", page, size)
			handlers.RespondNotFound(w, msgPageNotFound)

		case errors.Is(err, services.ErrInvalidInput):
			h.logger.Warn("GET /services - Invalid input: page=%d, size=%d", page, size)
			handlers.RespondBadRequest(w, msgInvalidPage)

		default:
			h.logger.Error("GET /services - Failed to get services: page=%d, error=%v", page, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /services - Services retrieved successfully: page=%d, count=%d", page, len(result.Items))
	handlers.RespondJSON(w, http.StatusOK, result)
}
