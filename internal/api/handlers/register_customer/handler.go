package register_customer

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulerService/internal/api/handlers"
	registerCustomer "github.com/m04kA/SMC-SchedulerService/internal/usecase/register_customer"
)

const msgInvalidRequestBody = "некорректное тело запроса"

type Handler struct {
	useCase RegisterCustomerUseCase
	logger  Logger
}

func NewHandler(useCase RegisterCustomerUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		if handlers.RespondBusinessError(w, err) {
			h.logger.Warn("POST /register - Rejected: username=%s, reason=%v", req.Username, err)
			return
		}

		switch {
		case errors.Is(err, registerCustomer.ErrInvalidInput):
			h.logger.Warn("POST /register - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /register - Failed to register: username=%s, error=%v", req.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /register - Customer registered successfully: username=%s, customer_id=%s",
		result.Username, result.CustomerID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
