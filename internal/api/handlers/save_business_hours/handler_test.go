package save_business_hours

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulerService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	"github.com/m04kA/SMC-SchedulerService/internal/service/businesshours"
	"github.com/m04kA/SMC-SchedulerService/internal/service/businesshours/models"
)

type stubHours struct {
	err error
}

func (s *stubHours) SaveRange(_ context.Context, req *models.SaveRangeRequest) (*models.BusinessHourResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.BusinessHourResponse{ID: 7, DayOfWeek: req.DayOfWeek, StartTime: req.StartTime, EndTime: req.EndTime, IsOpen: req.IsOpen}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const body = `{"dayOfWeek":1,"startTime":"09:00","endTime":"17:00","isOpen":true}`

func TestHandle(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"saved", nil, http.StatusOK, ""},
		{"start after end", domain.ErrStartAfterEnd, http.StatusBadRequest, "StartAfterEnd"},
		{"overlap", domain.ErrOverlappingRange, http.StatusConflict, "OverlappingRange"},
		{"not found", businesshours.ErrBusinessHourNotFound, http.StatusNotFound, ""},
		{"invalid", businesshours.ErrInvalidInput, http.StatusBadRequest, ""},
		{"internal", errors.New("db down"), http.StatusInternalServerError, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			NewHandler(&stubHours{err: tt.err}, nopLogger{}).Handle(rec,
				httptest.NewRequest(http.MethodPut, "/api/v1/owner/business-hours", strings.NewReader(body)))
			require.Equal(t, tt.status, rec.Code)

			if tt.err == nil {
				return
			}
			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.code, resp.Code)
		})
	}
}
