package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-SchedulerService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

type contextKey string

const (
	// UsernameHeader заголовок с именем пользователя, проставляется шлюзом аутентификации
	UsernameHeader = "X-Username"
	// RoleHeader заголовок с ролью пользователя
	RoleHeader = "X-User-Role"

	usernameKey contextKey = "username"
	roleKey     contextKey = "role"
)

const (
	msgUnauthorized = "требуется аутентификация"
	msgForbidden    = "доступ только для владельца"
)

// Identify кладет пользователя из заголовков в контекст, если он передан.
// Анонимные запросы пропускаются дальше.
func Identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username := strings.TrimSpace(r.Header.Get(UsernameHeader))
		if username == "" {
			next.ServeHTTP(w, r)
			return
		}

		role := domain.RoleCustomer
		if domain.Role(r.Header.Get(RoleHeader)) == domain.RoleOwner {
			role = domain.RoleOwner
		}

		ctx := WithUser(r.Context(), username, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Auth требует аутентифицированного пользователя
func Auth(next http.Handler) http.Handler {
	return Identify(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUsername(r.Context()); !ok {
			handlers.RespondUnauthorized(w, msgUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	}))
}

// RequireOwner пропускает только пользователей с ролью владельца
func RequireOwner(next http.Handler) http.Handler {
	return Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if GetRole(r.Context()) != domain.RoleOwner {
			handlers.RespondForbidden(w, msgForbidden)
			return
		}
		next.ServeHTTP(w, r)
	}))
}

// WithUser возвращает контекст с пользователем
func WithUser(ctx context.Context, username string, role domain.Role) context.Context {
	ctx = context.WithValue(ctx, usernameKey, username)
	return context.WithValue(ctx, roleKey, role)
}

// GetUsername извлекает имя пользователя из контекста
func GetUsername(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(usernameKey).(string)
	return username, ok && username != ""
}

// GetRole извлекает роль пользователя из контекста, пустая роль у анонимных запросов
func GetRole(ctx context.Context) domain.Role {
	role, _ := ctx.Value(roleKey).(domain.Role)
	return role
}
