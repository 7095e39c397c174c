package get_my_appointments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulerService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulerService/internal/service/appointments"
	"github.com/m04kA/SMC-SchedulerService/internal/service/appointments/models"
)

type stubService struct {
	result *models.AppointmentListResponse
	err    error
}

func (s *stubService) ListForCustomer(context.Context, string) (*models.AppointmentListResponse, error) {
	return s.result, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	booked := &models.AppointmentListResponse{
		Appointments: []models.AppointmentResponse{{ID: uuid.New()}},
		Total:        1,
	}

	tests := []struct {
		name      string
		username  string
		svc       *stubService
		status    int
		wantTotal int
	}{
		{"listed", "jodoe", &stubService{result: booked}, http.StatusOK, 1},
		{"no customer profile", "owner", &stubService{err: appointments.ErrCustomerNotFound}, http.StatusOK, 0},
		{"anonymous", "", &stubService{result: booked}, http.StatusUnauthorized, 0},
		{"internal", "jodoe", &stubService{err: errors.New("db down")}, http.StatusInternalServerError, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := middleware.Identify(http.HandlerFunc(NewHandler(tt.svc, nopLogger{}).Handle))

			r := httptest.NewRequest(http.MethodGet, "/me/appointments", nil)
			if tt.username != "" {
				r.Header.Set(middleware.UsernameHeader, tt.username)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, r)

			require.Equal(t, tt.status, rec.Code)
			if tt.status != http.StatusOK {
				return
			}

			var resp models.AppointmentListResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantTotal, resp.Total)
			assert.NotNil(t, resp.Appointments)
			assert.Len(t, resp.Appointments, tt.wantTotal)
		})
	}
}
