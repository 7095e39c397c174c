package export_appointments

import (
	"bytes"
	"net/http"

	"github.com/m04kA/SMC-SchedulerService/internal/api/handlers"
)

const (
	exportFileName   = "appointments.xml"
	msgInvalidActive = "параметр active должен быть true или false"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/owner/appointments/export
// Query params: active (optional). Ответ - XML файл.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	activeOnly, err := handlers.QueryBool(r, "active")
	if err != nil {
		h.logger.Warn("GET /owner/appointments/export - Invalid active param: %v", err)
		handlers.RespondBadRequest(w, msgInvalidActive)
		return
	}

	// Выгрузка собирается целиком, чтобы ошибка не оборвала файл на середине
	var buf bytes.Buffer
	if err := h.service.ExportXML(r.Context(), &buf, activeOnly); err != nil {
		h.logger.Error("GET /owner/appointments/export - Failed to export appointments: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+exportFileName+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Warn("GET /owner/appointments/export - Failed to write response: %v", err)
		return
	}

	h.logger.Info("GET /owner/appointments/export - Appointments exported successfully: active=%t, bytes=%d",
		activeOnly, buf.Len())
}
