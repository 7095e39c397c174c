package book_appointment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulerService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulerService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	bookAppointment "github.com/m04kA/SMC-SchedulerService/internal/usecase/book_appointment"
)

type stubUseCase struct {
	req  *bookAppointment.Request
	resp *bookAppointment.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *bookAppointment.Request) (*bookAppointment.Response, error) {
	s.req = req
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	serviceID     = uuid.MustParse("5e1c0000-0000-0000-0000-000000000001")
	appointmentID = uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000001")
)

func savedResponse(rescheduled bool) *bookAppointment.Response {
	start := time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC)
	return &bookAppointment.Response{
		Appointment: &domain.AppointmentDetails{
			Appointment: domain.Appointment{
				ID:        appointmentID,
				ServiceID: serviceID,
				Start:     start,
				End:       start.Add(45 * time.Minute),
			},
			CustomerFirstName: "Jo",
			CustomerLastName:  "Doe",
			ServiceName:       "Haircut",
		},
		Rescheduled: rescheduled,
	}
}

func post(t *testing.T, h http.Handler, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewReader(raw))
	for k, v := range headers {
		r.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	return rec
}

func guestBody() map[string]interface{} {
	return map[string]interface{}{
		"serviceId": serviceID,
		"start":     "2024-06-10T10:00",
		"firstName": "Jo",
		"lastName":  "Doe",
		"email":     "jo@example.com",
		"phone":     "555-0100",
	}
}

func TestHandle_Guest(t *testing.T) {
	uc := &stubUseCase{resp: savedResponse(false)}
	h := middleware.Identify(http.HandlerFunc(NewHandler(uc, time.UTC, nopLogger{}).Handle))

	rec := post(t, h, guestBody(), nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	assert.Nil(t, uc.req.Username)
	assert.Equal(t, "jo@example.com", uc.req.Email)
	assert.Equal(t, time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC), uc.req.Start)
	assert.True(t, uc.req.End.IsZero())

	var body BookAppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, appointmentID, body.ID)
	assert.Equal(t, "2024-06-10T10:45", body.End)
	assert.False(t, body.Rescheduled)
}

func TestHandle_AuthenticatedReschedule(t *testing.T) {
	uc := &stubUseCase{resp: savedResponse(true)}
	h := middleware.Identify(http.HandlerFunc(NewHandler(uc, time.UTC, nopLogger{}).Handle))

	body := map[string]interface{}{
		"appointmentId": appointmentID,
		"serviceId":     serviceID,
		"start":         "2024-06-10T10:00",
		"end":           "2024-06-10T10:45",
	}
	rec := post(t, h, body, map[string]string{
		middleware.UsernameHeader: "owner",
		middleware.RoleHeader:     string(domain.RoleOwner),
	})
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, uc.req.Username)
	assert.Equal(t, "owner", *uc.req.Username)
	assert.Equal(t, domain.RoleOwner, uc.req.Role)
	assert.Equal(t, appointmentID, *uc.req.AppointmentID)
	assert.Equal(t, 45*time.Minute, uc.req.End.Sub(uc.req.Start))
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"slot taken", domain.ErrSlotTaken, http.StatusConflict, "SlotTaken"},
		{"time window", domain.ErrTimeWindowInvalid, http.StatusBadRequest, "TimeWindowInvalid"},
		{"email conflict", domain.ErrEmailConflict, http.StatusConflict, "EmailConflict"},
		{"service not found", bookAppointment.ErrServiceNotFound, http.StatusNotFound, ""},
		{"access denied", bookAppointment.ErrAccessDenied, http.StatusForbidden, ""},
		{"invalid input", bookAppointment.ErrInvalidInput, http.StatusBadRequest, ""},
		{"internal", errors.New("db down"), http.StatusInternalServerError, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := http.HandlerFunc(NewHandler(&stubUseCase{err: tt.err}, time.UTC, nopLogger{}).Handle)

			rec := post(t, h, guestBody(), nil)
			assert.Equal(t, tt.status, rec.Code)

			var body handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
		})
	}
}

func TestHandle_BadRequest(t *testing.T) {
	uc := &stubUseCase{}
	h := http.HandlerFunc(NewHandler(uc, time.UTC, nopLogger{}).Handle)

	body := guestBody()
	body["start"] = "10.06.2024 10:00"
	assert.Equal(t, http.StatusBadRequest, post(t, h, body, nil).Code)

	body = guestBody()
	body["notes"] = "unknown field"
	assert.Equal(t, http.StatusBadRequest, post(t, h, body, nil).Code)

	assert.Nil(t, uc.req)
}
