package export_appointments

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubService struct {
	activeOnly bool
	err        error
}

func (s *stubService) ExportXML(_ context.Context, w io.Writer, activeOnly bool) error {
	s.activeOnly = activeOnly
	if s.err != nil {
		_, _ = io.WriteString(w, "<appointments>")
		return s.err
	}
	_, err := io.WriteString(w, "<appointments></appointments>")
	return err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	svc := &stubService{}
	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/export?active=true", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, svc.activeOnly)
	assert.Equal(t, "application/xml; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "appointments.xml")
	assert.Equal(t, "<appointments></appointments>", rec.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(&stubService{}, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/export?active=maybe", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	NewHandler(&stubService{err: errors.New("db down")}, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/export", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "<appointments>")
}
