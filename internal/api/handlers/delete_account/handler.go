package delete_account

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulerService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulerService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulerService/internal/service/users"
)

const (
	msgUnauthorized = "требуется аутентификация"
	msgNotFound     = "аккаунт не найден"
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

// Handle DELETE /api/v1/me
// Профиль клиента и его записи остаются, клиент становится гостем
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	username, ok := middleware.GetUsername(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	err := h.service.DeleteAccount(r.Context(), username)
	if err != nil {
		if handlers.RespondBusinessError(w, err) {
			h.logger.Warn("DELETE /me - Rejected: username=%s, reason=%v", username, err)
			return
		}

		switch {
		case errors.Is(err, users.ErrUserNotFound):
			h.logger.Warn("DELETE /me - User not found: username=%s", username)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /me - Failed to delete account: username=%s, error=%v", username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /me - Account deleted successfully: username=%s", username)
	handlers.RespondNoContent(w)
}
