package update_profile

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulerService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulerService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulerService/internal/service/customers"
)

const (
	msgUnauthorized       = "требуется аутентификация"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "профиль клиента не найден"
)

type Handler struct {
	service CustomerService
	logger  Logger
}

func NewHandler(service CustomerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/me/profile
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	username, ok := middleware.GetUsername(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req UpdateProfileRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /me/profile - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := req.Validate(); err != nil {
		h.logger.Warn("PUT /me/profile - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	customer, err := h.service.UpdateDetails(r.Context(), username, req.Email, req.Phone, req.FirstName, req.LastName)
	if err != nil {
		if handlers.RespondBusinessError(w, err) {
			h.logger.Warn("PUT /me/profile - Rejected: username=%s, reason=%v", username, err)
			return
		}

		switch {
		case errors.Is(err, customers.ErrCustomerNotFound):
			h.logger.Warn("PUT /me/profile - Customer not found: username=%s", username)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /me/profile - Failed to update profile: username=%s, error=%v", username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /me/profile - Profile updated successfully: username=%s", username)
	handlers.RespondJSON(w, http.StatusOK, FromDomainCustomer(customer))
}
