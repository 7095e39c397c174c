package delete_account

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SchedulerService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	"github.com/m04kA/SMC-SchedulerService/internal/service/users"
)

type stubService struct {
	username string
	err      error
}

func (s *stubService) DeleteAccount(_ context.Context, username string) error {
	s.username = username
	return s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	tests := []struct {
		name     string
		username string
		err      error
		status   int
	}{
		{"deleted", "jodoe", nil, http.StatusNoContent},
		{"anonymous", "", nil, http.StatusUnauthorized},
		{"default owner", "owner", domain.ErrDefaultOwnerProtected, http.StatusForbidden},
		{"not found", "jodoe", users.ErrUserNotFound, http.StatusNotFound},
		{"internal", "jodoe", errors.New("db down"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{err: tt.err}
			h := middleware.Identify(http.HandlerFunc(NewHandler(svc, nopLogger{}).Handle))

			r := httptest.NewRequest(http.MethodDelete, "/me", nil)
			if tt.username != "" {
				r.Header.Set(middleware.UsernameHeader, tt.username)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, r)

			assert.Equal(t, tt.status, rec.Code)
			if tt.username != "" {
				assert.Equal(t, tt.username, svc.username)
			} else {
				assert.Empty(t, svc.username)
			}
		})
	}
}
