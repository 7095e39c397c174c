package save_service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	"github.com/m04kA/SMC-SchedulerService/internal/service/services"
	"github.com/m04kA/SMC-SchedulerService/internal/service/services/models"
)

type stubCatalogue struct {
	req *models.SaveServiceRequest
	err error
}

func (s *stubCatalogue) Save(_ context.Context, req *models.SaveServiceRequest) (*models.ServiceResponse, error) {
	s.req = req
	if s.err != nil {
		return nil, s.err
	}
	id := uuid.New()
	if req.ID != nil {
		id = *req.ID
	}
	return &models.ServiceResponse{ID: id, Name: req.Name, IsActive: true}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func call(svc ServiceCatalogue, method, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, httptest.NewRequest(method, "/api/v1/owner/services", strings.NewReader(body)))
	return rec
}

func TestHandle_Create(t *testing.T) {
	svc := &stubCatalogue{}

	// id в теле POST игнорируется
	rec := call(svc, http.MethodPost, `{"id":"`+uuid.New().String()+`","serviceName":"Haircut","price":20,"duration":45}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, svc.req)
	assert.Nil(t, svc.req.ID)
	assert.Equal(t, 45, svc.req.DurationMinutes)
}

func TestHandle_Update(t *testing.T) {
	svc := &stubCatalogue{}
	id := uuid.New()

	rec := call(svc, http.MethodPut, `{"id":"`+id.String()+`","serviceName":"Haircut","price":20,"duration":45}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, id, *svc.req.ID)

	rec = call(&stubCatalogue{}, http.MethodPut, `{"serviceName":"Haircut","price":20,"duration":45}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_Errors(t *testing.T) {
	body := `{"serviceName":"Haircut","price":20,"duration":45}`

	assert.Equal(t, http.StatusConflict, call(&stubCatalogue{err: domain.ErrServiceNameConflict}, http.MethodPost, body).Code)
	assert.Equal(t, http.StatusBadRequest, call(&stubCatalogue{err: services.ErrInvalidInput}, http.MethodPost, body).Code)
	assert.Equal(t, http.StatusBadRequest, call(&stubCatalogue{}, http.MethodPost, `{"serviceName":`).Code)
}
