package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// MessageWriter часть *kafka.Writer, используемая транспортом
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// MailMessage сообщение в топике для внешнего почтового сервиса
type MailMessage struct {
	From    string    `json:"from"`
	To      string    `json:"to"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	SentAt  time.Time `json:"sentAt"`
}

// Kafka публикует письма в топик. Ключ сообщения - адрес получателя.
type Kafka struct {
	writer MessageWriter
	from   string
	now    func() time.Time
}

// NewKafkaWriter создает writer для топика
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}
}

// NewKafka создает Kafka-транспорт
func NewKafka(writer MessageWriter, from string) *Kafka {
	if from == "" {
		from = defaultFrom
	}
	return &Kafka{writer: writer, from: from, now: time.Now}
}

// SendMail публикует письмо
func (k *Kafka) SendMail(ctx context.Context, to, subject, body string) error {
	payload, err := json.Marshal(MailMessage{
		From:    k.from,
		To:      to,
		Subject: subject,
		Body:    body,
		SentAt:  k.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("%w: marshal message: %w", ErrSend, err)
	}

	if err := k.writer.WriteMessages(ctx, kafka.Message{Key: []byte(to), Value: payload}); err != nil {
		return fmt.Errorf("%w: kafka write: %w", ErrSend, err)
	}
	return nil
}

// Close закрывает writer
func (k *Kafka) Close() error {
	return k.writer.Close()
}
