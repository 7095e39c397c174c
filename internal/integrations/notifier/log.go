package notifier

import "context"

// Log пишет письма в лог вместо отправки. Для разработки.
type Log struct {
	logger Logger
}

func NewLog(logger Logger) *Log {
	return &Log{logger: logger}
}

func (l *Log) SendMail(_ context.Context, to, subject, body string) error {
	l.logger.Info("Notifier: mail to=%s subject=%q body=%q", to, subject, body)
	return nil
}

func (l *Log) Close() error {
	return nil
}
