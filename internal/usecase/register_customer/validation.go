package register_customer

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

// validateRequest проверяет формат контактов. Аккаунт проверяет AccountService.
func validateRequest(req *Request) error {
	names := []struct{ field, value string }{
		{"firstName", req.FirstName},
		{"lastName", req.LastName},
	}
	for _, n := range names {
		value := strings.TrimSpace(n.value)
		if value == "" || len(value) > domain.MaxNameLength {
			return fmt.Errorf("%w: %s must be between 1 and %d characters", ErrInvalidInput, n.field, domain.MaxNameLength)
		}
	}

	if _, err := mail.ParseAddress(req.Email); err != nil {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	return nil
}
