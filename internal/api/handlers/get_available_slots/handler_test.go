package get_available_slots

import (
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

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-SchedulerService/internal/usecase/get_available_slots"
)

type stubUseCase struct {
	req  *getAvailableSlots.Request
	resp *getAvailableSlots.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	s.req = req
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var serviceID = uuid.MustParse("5e1c0000-0000-0000-0000-000000000001")

func TestHandle(t *testing.T) {
	loc := time.FixedZone("Business", 3*60*60)
	start := time.Date(2024, 6, 9, 9, 0, 0, 0, loc)
	uc := &stubUseCase{resp: &getAvailableSlots.Response{
		Date:            time.Date(2024, 6, 9, 0, 0, 0, 0, loc),
		ServiceID:       serviceID,
		DurationMinutes: 45,
		Slots:           []domain.Slot{{Start: start, End: start.Add(45 * time.Minute)}},
	}}
	h := NewHandler(uc, loc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/slots?serviceId="+serviceID.String()+"&date=2024-06-09", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, serviceID, uc.req.ServiceID)
	assert.Equal(t, loc, uc.req.Date.Location())

	var body AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2024-06-09", body.Date)
	require.Len(t, body.Slots, 1)
	assert.Equal(t, "09:00", body.Slots[0].StartTime)
	assert.Equal(t, "2024-06-09T09:45", body.Slots[0].End)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		err    error
		status int
	}{
		{"missing service", "?date=2024-06-09", nil, http.StatusBadRequest},
		{"invalid service", "?serviceId=42&date=2024-06-09", nil, http.StatusBadRequest},
		{"missing date", "?serviceId=" + serviceID.String(), nil, http.StatusBadRequest},
		{"invalid date", "?serviceId=" + serviceID.String() + "&date=09.06.2024", nil, http.StatusBadRequest},
		{"service not found", "?serviceId=" + serviceID.String() + "&date=2024-06-09", getAvailableSlots.ErrServiceNotFound, http.StatusNotFound},
		{"internal", "?serviceId=" + serviceID.String() + "&date=2024-06-09", errors.New("db down"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubUseCase{err: tt.err}, time.UTC, nopLogger{})

			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/slots"+tt.query, nil))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
