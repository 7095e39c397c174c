package businesshours

import "errors"

var (
	// ErrBusinessHourNotFound возвращается, когда диапазон не найден
	ErrBusinessHourNotFound = errors.New("business hour not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
