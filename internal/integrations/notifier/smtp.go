package notifier

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"
)

const defaultFrom = "no-reply@scheduler.local"

// sendMailFunc сигнатура smtp.SendMail
type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTP отправляет письма через SMTP-сервер. Без имени пользователя работает без авторизации.
type SMTP struct {
	addr     string
	from     string
	auth     smtp.Auth
	sendMail sendMailFunc
}

// NewSMTP создает SMTP-транспорт
func NewSMTP(host string, port int, username, password, from string) *SMTP {
	host = strings.TrimSpace(host)
	from = strings.TrimSpace(from)
	if from == "" {
		from = defaultFrom
	}

	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}

	return &SMTP{
		addr:     net.JoinHostPort(host, strconv.Itoa(port)),
		from:     from,
		auth:     auth,
		sendMail: smtp.SendMail,
	}
}

// SendMail отправляет письмо
func (s *SMTP) SendMail(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrSend, err)
	}

	msg := buildMessage(s.from, to, subject, body)
	if err := s.sendMail(s.addr, s.auth, s.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("%w: smtp %s: %w", ErrSend, s.addr, err)
	}
	return nil
}

// Close у SMTP нет долгоживущих соединений
func (s *SMTP) Close() error {
	return nil
}

// buildMessage минимальное RFC 5322 письмо в UTF-8
func buildMessage(from, to, subject, body string) string {
	return fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		from,
		to,
		subject,
		body,
	)
}
