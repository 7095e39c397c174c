package add_owner

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulerService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulerService/internal/service/users"
	"github.com/m04kA/SMC-SchedulerService/internal/service/users/models"
)

const msgInvalidRequestBody = "некорректное тело запроса"

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/owner/owners
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.AddOwnerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /owner/owners - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.AddOwner(r.Context(), &req)
	if err != nil {
		if handlers.RespondBusinessError(w, err) {
			h.logger.Warn("POST /owner/owners - Rejected: username=%s, reason=%v", req.Username, err)
			return
		}

		switch {
		case errors.Is(err, users.ErrInvalidInput):
			h.logger.Warn("POST /owner/owners - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /owner/owners - Failed to add owner: username=%s, error=%v", req.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /owner/owners - Owner added successfully: username=%s", result.Username)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
