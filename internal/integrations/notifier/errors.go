package notifier

import "errors"

var (
	// ErrInvalidConfig возвращается при некорректной настройке транспорта
	ErrInvalidConfig = errors.New("notifier: invalid config")

	// ErrSend возвращается, когда письмо не удалось отправить
	ErrSend = errors.New("notifier: failed to send mail")
)
