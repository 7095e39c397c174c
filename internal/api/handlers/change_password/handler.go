package change_password

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulerService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulerService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulerService/internal/service/users"
	"github.com/m04kA/SMC-SchedulerService/internal/service/users/models"
)

const (
	msgUnauthorized       = "требуется аутентификация"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "аккаунт не найден"
)

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

// Handle PUT /api/v1/me/password
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	username, ok := middleware.GetUsername(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req models.ChangePasswordRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /me/password - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err := h.service.ChangePassword(r.Context(), username, &req)
	if err != nil {
		if handlers.RespondBusinessError(w, err) {
			h.logger.Warn("PUT /me/password - Rejected: username=%s, reason=%v", username, err)
			return
		}

		switch {
		case errors.Is(err, users.ErrUserNotFound):
			h.logger.Warn("PUT /me/password - User not found: username=%s", username)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, users.ErrInvalidInput):
			h.logger.Warn("PUT /me/password - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /me/password - Failed to change password: username=%s, error=%v", username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /me/password - Password changed successfully: username=%s", username)
	handlers.RespondNoContent(w)
}
