// Package notifier delivers customer mail through SMTP, a Kafka topic or the log.
package notifier

import (
	"context"
	"fmt"
	"strings"
)

// Транспорты
const (
	TransportSMTP  = "smtp"
	TransportKafka = "kafka"
	TransportLog   = "log"
)

// Notifier отправка письма одному получателю
type Notifier interface {
	SendMail(ctx context.Context, to, subject, body string) error
	Close() error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Config настройки транспорта
type Config struct {
	Transport string
	From      string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string

	KafkaBrokers []string
	KafkaTopic   string
}

// New создает notifier для выбранного транспорта
func New(cfg Config, logger Logger) (Notifier, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Transport)) {
	case TransportSMTP:
		if cfg.SMTPHost == "" || cfg.SMTPPort <= 0 {
			return nil, fmt.Errorf("%w: smtp host and port are required", ErrInvalidConfig)
		}
		return NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.From), nil
	case TransportKafka:
		if len(cfg.KafkaBrokers) == 0 || cfg.KafkaTopic == "" {
			return nil, fmt.Errorf("%w: kafka brokers and topic are required", ErrInvalidConfig)
		}
		return NewKafka(NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic), cfg.From), nil
	case TransportLog, "":
		return NewLog(logger), nil
	default:
		return nil, fmt.Errorf("%w: unknown transport %q", ErrInvalidConfig, cfg.Transport)
	}
}
