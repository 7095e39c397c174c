package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/smtp"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *recordingWriter) Close() error {
	w.closed = true
	return nil
}

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Info(format string, v ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, v...))
}
func (l *recordingLogger) Warn(string, ...interface{})  {}
func (l *recordingLogger) Error(string, ...interface{}) {}

func TestSMTP_SendMail(t *testing.T) {
	s := NewSMTP("mail.local", 2525, "", "", "")

	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte
	var gotAuth smtp.Auth
	s.sendMail = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotAuth, gotFrom, gotTo, gotMsg = addr, a, from, to, msg
		return nil
	}

	require.NoError(t, s.SendMail(context.Background(), "jo@example.com", "Hello", "Body"))
	assert.Equal(t, "mail.local:2525", gotAddr)
	assert.Nil(t, gotAuth)
	assert.Equal(t, defaultFrom, gotFrom)
	assert.Equal(t, []string{"jo@example.com"}, gotTo)
	assert.Contains(t, string(gotMsg), "Subject: Hello\r\n")
	assert.Contains(t, string(gotMsg), "\r\n\r\nBody\r\n")
}

func TestSMTP_Errors(t *testing.T) {
	s := NewSMTP("mail.local", 25, "user", "pass", "shop@example.com")
	assert.NotNil(t, s.auth)
	s.sendMail = func(string, smtp.Auth, string, []string, []byte) error {
		return errors.New("connection refused")
	}

	assert.ErrorIs(t, s.SendMail(context.Background(), "jo@example.com", "s", "b"), ErrSend)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.SendMail(ctx, "jo@example.com", "s", "b"), ErrSend)
}

func TestKafka_SendMail(t *testing.T) {
	w := &recordingWriter{}
	k := NewKafka(w, "shop@example.com")
	k.now = func() time.Time { return time.Date(2024, 6, 5, 7, 0, 0, 0, time.UTC) }

	require.NoError(t, k.SendMail(context.Background(), "jo@example.com", "Reminder", "See you"))
	require.Len(t, w.messages, 1)
	assert.Equal(t, "jo@example.com", string(w.messages[0].Key))

	var msg MailMessage
	require.NoError(t, json.Unmarshal(w.messages[0].Value, &msg))
	assert.Equal(t, MailMessage{
		From:    "shop@example.com",
		To:      "jo@example.com",
		Subject: "Reminder",
		Body:    "See you",
		SentAt:  time.Date(2024, 6, 5, 7, 0, 0, 0, time.UTC),
	}, msg)

	require.NoError(t, k.Close())
	assert.True(t, w.closed)
}

func TestKafka_WriteError(t *testing.T) {
	k := NewKafka(&recordingWriter{err: errors.New("broker down")}, "")
	assert.ErrorIs(t, k.SendMail(context.Background(), "jo@example.com", "s", "b"), ErrSend)
}

func TestLog_SendMail(t *testing.T) {
	logger := &recordingLogger{}
	require.NoError(t, NewLog(logger).SendMail(context.Background(), "jo@example.com", "Hi", "Body"))
	require.Len(t, logger.lines, 1)
	assert.Contains(t, logger.lines[0], "jo@example.com")
}

func TestNew(t *testing.T) {
	logger := &recordingLogger{}

	n, err := New(Config{Transport: "log"}, logger)
	require.NoError(t, err)
	assert.IsType(t, &Log{}, n)

	n, err = New(Config{Transport: "SMTP", SMTPHost: "mail.local", SMTPPort: 25}, logger)
	require.NoError(t, err)
	assert.IsType(t, &SMTP{}, n)

	n, err = New(Config{Transport: "kafka", KafkaBrokers: []string{"localhost:9092"}, KafkaTopic: "mail"}, logger)
	require.NoError(t, err)
	assert.IsType(t, &Kafka{}, n)

	_, err = New(Config{Transport: "smtp"}, logger)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = New(Config{Transport: "kafka"}, logger)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = New(Config{Transport: "pigeon"}, logger)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
