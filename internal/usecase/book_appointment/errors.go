package book_appointment

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена или скрыта
	ErrServiceNotFound = errors.New("book_appointment: service not found")

	// ErrAppointmentNotFound возвращается, когда переносимая запись не найдена
	ErrAppointmentNotFound = errors.New("book_appointment: appointment not found")

	// ErrAccessDenied возвращается при попытке перенести чужую запись
	ErrAccessDenied = errors.New("book_appointment: appointment belongs to another customer")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_appointment: internal error")
)
