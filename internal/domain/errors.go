package domain

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a business-rule violation
type ErrorCode string

const (
	CodeTimeWindowInvalid     ErrorCode = "TimeWindowInvalid"
	CodeSlotTaken             ErrorCode = "SlotTaken"
	CodeEmailConflict         ErrorCode = "EmailConflict"
	CodePhoneConflict         ErrorCode = "PhoneConflict"
	CodeNameConflict          ErrorCode = "NameConflict"
	CodeUsernameConflict      ErrorCode = "UsernameConflict"
	CodeStartAfterEnd         ErrorCode = "StartAfterEnd"
	CodeOverlappingRange      ErrorCode = "OverlappingRange"
	CodeServiceNameConflict   ErrorCode = "ServiceNameConflict"
	CodeUsernameTaken         ErrorCode = "UsernameTaken"
	CodePasswordMismatch      ErrorCode = "PasswordMismatch"
	CodeOldPasswordIncorrect  ErrorCode = "OldPasswordIncorrect"
	CodeCustomerNotFound      ErrorCode = "CustomerNotFound"
	CodeDefaultOwnerProtected ErrorCode = "DefaultOwnerProtected"
)

// BusinessError is a tagged business-rule violation. Field names the offending
// input (for form feedback) and may be empty.
type BusinessError struct {
	Code  ErrorCode
	Field string
}

func (e *BusinessError) Error() string {
	if e.Field == "" {
		return string(e.Code)
	}
	return fmt.Sprintf("%s (%s)", e.Code, e.Field)
}

// Is matches any BusinessError with the same code, so errors.Is(err, ErrSlotTaken)
// works regardless of Field
func (e *BusinessError) Is(target error) bool {
	var other *BusinessError
	if !errors.As(target, &other) {
		return false
	}
	return e.Code == other.Code
}

// NewBusinessError creates a violation for the given input field
func NewBusinessError(code ErrorCode, field string) *BusinessError {
	return &BusinessError{Code: code, Field: field}
}

// AsBusinessError extracts a BusinessError from the chain
func AsBusinessError(err error) (*BusinessError, bool) {
	var be *BusinessError
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}

var (
	ErrTimeWindowInvalid     = &BusinessError{Code: CodeTimeWindowInvalid, Field: "start"}
	ErrSlotTaken             = &BusinessError{Code: CodeSlotTaken, Field: "start"}
	ErrEmailConflict         = &BusinessError{Code: CodeEmailConflict, Field: "email"}
	ErrPhoneConflict         = &BusinessError{Code: CodePhoneConflict, Field: "phone"}
	ErrNameConflict          = &BusinessError{Code: CodeNameConflict, Field: "firstName"}
	ErrUsernameConflict      = &BusinessError{Code: CodeUsernameConflict, Field: "username"}
	ErrStartAfterEnd         = &BusinessError{Code: CodeStartAfterEnd, Field: "startTime"}
	ErrOverlappingRange      = &BusinessError{Code: CodeOverlappingRange, Field: "startTime"}
	ErrServiceNameConflict   = &BusinessError{Code: CodeServiceNameConflict, Field: "serviceName"}
	ErrUsernameTaken         = &BusinessError{Code: CodeUsernameTaken, Field: "username"}
	ErrPasswordMismatch      = &BusinessError{Code: CodePasswordMismatch, Field: "confirmPassword"}
	ErrOldPasswordIncorrect  = &BusinessError{Code: CodeOldPasswordIncorrect, Field: "oldPassword"}
	ErrCustomerNotFound      = &BusinessError{Code: CodeCustomerNotFound, Field: "username"}
	ErrDefaultOwnerProtected = &BusinessError{Code: CodeDefaultOwnerProtected, Field: "username"}
)
