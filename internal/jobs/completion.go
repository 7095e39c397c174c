// Package jobs holds the lifecycle sweeps run by the scheduler.
package jobs

import (
	"context"
	"fmt"
)

// Имена задач для планировщика и метрик
const (
	CompletionJobName = "appointments_completion"
	ReminderJobName   = "appointments_reminder"
)

// CompletionSweep отмечает завершенными записи, которые закончились
type CompletionSweep struct {
	repo         AppointmentRepository
	txManager    TransactionManager
	metrics      MetricsRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewCompletionSweep создает задачу завершения записей. metrics может быть nil.
func NewCompletionSweep(repo AppointmentRepository, txManager TransactionManager, metrics MetricsRecorder, timeProvider TimeProvider, logger Logger) *CompletionSweep {
	return &CompletionSweep{
		repo:         repo,
		txManager:    txManager,
		metrics:      metrics,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Run выполняет один проход: все незавершенные записи с end <= now становятся завершенными.
// Повторный запуск без сдвига времени ничего не меняет.
func (s *CompletionSweep) Run(ctx context.Context) (int, error) {
	now := s.timeProvider.Now()

	var completed int
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		ids, err := s.repo.ListDueIDs(txCtx, now)
		if err != nil {
			return fmt.Errorf("%w: CompletionSweep - list due: %w", ErrInternal, err)
		}
		if len(ids) == 0 {
			return nil
		}

		completed, err = s.repo.MarkCompleted(txCtx, ids)
		if err != nil {
			return fmt.Errorf("%w: CompletionSweep - mark completed: %w", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if completed > 0 {
		s.logger.Info("CompletionSweep: marked %d appointments as completed", completed)
	}
	if s.metrics != nil {
		s.metrics.ObserveCompleted(completed)
	}
	return completed, nil
}

// Task адаптер для планировщика
func (s *CompletionSweep) Task(ctx context.Context) error {
	_, err := s.Run(ctx)
	return err
}
