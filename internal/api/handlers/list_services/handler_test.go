package list_services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SchedulerService/internal/service/services"
	"github.com/m04kA/SMC-SchedulerService/internal/service/services/models"
)

type stubCatalogue struct {
	page, size int
	totalPages int
}

func (s *stubCatalogue) ActivePage(_ context.Context, page, size int) (*models.ServicePageResponse, error) {
	s.page, s.size = page, size
	if page > s.totalPages {
		return nil, services.ErrPageNotFound
	}
	return &models.ServicePageResponse{Page: page, Size: size, TotalPages: s.totalPages}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	tests := []struct {
		query  string
		status int
		page   int
		size   int
	}{
		{"", http.StatusOK, defaultPage, defaultSize},
		{"?page=2&size=3", http.StatusOK, 2, 3},
		{"?page=3", http.StatusNotFound, 3, defaultSize},
		{"?page=x", http.StatusBadRequest, 0, 0},
		{"?size=big", http.StatusBadRequest, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			catalogue := &stubCatalogue{totalPages: 2}
			h := NewHandler(catalogue, nopLogger{})

			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/services"+tt.query, nil))
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.page, catalogue.page)
			assert.Equal(t, tt.size, catalogue.size)
		})
	}
}
