package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

// ReminderSweep рассылает напоминания о записях текущего дня
type ReminderSweep struct {
	repo         AppointmentRepository
	notifier     Notifier
	metrics      MetricsRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewReminderSweep создает задачу напоминаний. metrics может быть nil.
func NewReminderSweep(repo AppointmentRepository, notifier Notifier, metrics MetricsRecorder, timeProvider TimeProvider, logger Logger) *ReminderSweep {
	return &ReminderSweep{
		repo:         repo,
		notifier:     notifier,
		metrics:      metrics,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Run отправляет по одному напоминанию на каждую незавершенную запись
// с началом в [сегодня 00:00, завтра 00:00). Ошибка отправки одного письма
// логируется, остальные письма отправляются. Возвращает число отправленных.
func (s *ReminderSweep) Run(ctx context.Context) (int, error) {
	now := s.timeProvider.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 0, 1)

	appointments, err := s.repo.ListDetails(ctx, domain.AppointmentFilter{
		ActiveOnly: true,
		StartFrom:  &from,
		StartTo:    &to,
	})
	if err != nil {
		return 0, fmt.Errorf("%w: ReminderSweep - list appointments: %w", ErrInternal, err)
	}

	sent := 0
	for _, a := range appointments {
		mail := domain.ReminderMail(a)
		err := s.notifier.SendMail(ctx, mail.To, mail.Subject, mail.Body)
		if s.metrics != nil {
			s.metrics.ObserveReminder(err)
		}
		if err != nil {
			s.logger.Warn("ReminderSweep: failed to send reminder for appointment id=%s: %v", a.ID, err)
			continue
		}
		sent++
	}

	s.logger.Info("ReminderSweep: sent %d of %d reminders for %s", sent, len(appointments), from.Format(domain.DateFormat))
	return sent, nil
}

// Task адаптер для планировщика
func (s *ReminderSweep) Task(ctx context.Context) error {
	_, err := s.Run(ctx)
	return err
}
