package book_appointment

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ServiceID == uuid.Nil {
		return fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}

	if req.Start.IsZero() {
		return fmt.Errorf("%w: start is required", ErrInvalidInput)
	}

	if req.AppointmentID != nil && *req.AppointmentID == uuid.Nil {
		return fmt.Errorf("%w: appointmentId must not be empty", ErrInvalidInput)
	}

	// Клиент с аккаунтом определяется по username, гость - по контактам
	if req.Username != nil {
		if strings.TrimSpace(*req.Username) == "" {
			return fmt.Errorf("%w: username must not be empty", ErrInvalidInput)
		}
		return nil
	}

	return validateContacts(req)
}

func validateContacts(req *Request) error {
	if err := validateName("firstName", req.FirstName); err != nil {
		return err
	}
	if err := validateName("lastName", req.LastName); err != nil {
		return err
	}

	if _, err := mail.ParseAddress(req.Email); err != nil {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	return nil
}

func validateName(field, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidInput, field)
	}
	if len(value) > domain.MaxNameLength {
		return fmt.Errorf("%w: %s must not exceed %d characters", ErrInvalidInput, field, domain.MaxNameLength)
	}
	return nil
}

// resolveEnd вычисляет конец записи. Переданный конец должен совпадать с start + длительность.
func resolveEnd(start, end time.Time, durationMinutes int) (time.Time, error) {
	expected := start.Add(time.Duration(durationMinutes) * time.Minute)
	if end.IsZero() {
		return expected, nil
	}
	if !end.Equal(expected) {
		return time.Time{}, fmt.Errorf("%w: end must equal start plus %d minutes", ErrInvalidInput, durationMinutes)
	}
	return expected, nil
}

// validateTimeWindow now <= start <= now + horizonMonths
func validateTimeWindow(start, now time.Time, horizonMonths int) error {
	if start.Before(now) || start.After(now.AddDate(0, horizonMonths, 0)) {
		return domain.ErrTimeWindowInvalid
	}
	return nil
}
