package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

type memoryAppointments struct {
	items []*domain.AppointmentDetails
	err   error
}

func (m *memoryAppointments) ListDueIDs(_ context.Context, now time.Time) ([]uuid.UUID, error) {
	if m.err != nil {
		return nil, m.err
	}
	var ids []uuid.UUID
	for _, a := range m.items {
		if a.IsDue(now) {
			ids = append(ids, a.ID)
		}
	}
	return ids, nil
}

func (m *memoryAppointments) MarkCompleted(_ context.Context, ids []uuid.UUID) (int, error) {
	n := 0
	for _, id := range ids {
		for _, a := range m.items {
			if a.ID == id && !a.IsCompleted {
				a.IsCompleted = true
				n++
			}
		}
	}
	return n, nil
}

func (m *memoryAppointments) ListDetails(_ context.Context, filter domain.AppointmentFilter) ([]*domain.AppointmentDetails, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []*domain.AppointmentDetails
	for _, a := range m.items {
		if filter.ActiveOnly && a.IsCompleted {
			continue
		}
		if filter.StartFrom != nil && a.Start.Before(*filter.StartFrom) {
			continue
		}
		if filter.StartTo != nil && !a.Start.Before(*filter.StartTo) {
			continue
		}
		result = append(result, a)
	}
	return result, nil
}

type passthroughTx struct{ calls int }

func (p *passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	p.calls++
	return fn(ctx)
}

type recordingNotifier struct {
	to     []string
	failTo string
}

func (n *recordingNotifier) SendMail(_ context.Context, to, _, _ string) error {
	n.to = append(n.to, to)
	if to == n.failTo {
		return errors.New("mailbox unavailable")
	}
	return nil
}

type recordingMetrics struct {
	completed int
	reminders []error
}

func (m *recordingMetrics) ObserveCompleted(count int) { m.completed += count }
func (m *recordingMetrics) ObserveReminder(err error)  { m.reminders = append(m.reminders, err) }

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// среда, 5 июня 2024, 12:00
var now = time.Date(2024, 6, 5, 12, 0, 0, 0, time.UTC)

func appointment(email string, start time.Time, completed bool) *domain.AppointmentDetails {
	return &domain.AppointmentDetails{
		Appointment: domain.Appointment{
			ID:          uuid.New(),
			Start:       start,
			End:         start.Add(30 * time.Minute),
			IsCompleted: completed,
		},
		CustomerFirstName: "Jo",
		CustomerEmail:     email,
		ServiceName:       "Haircut",
	}
}

func TestCompletionSweep(t *testing.T) {
	repo := &memoryAppointments{items: []*domain.AppointmentDetails{
		appointment("past@example.com", now.Add(-2*time.Hour), false),
		appointment("ends-now@example.com", now.Add(-30*time.Minute), false),
		appointment("running@example.com", now.Add(-10*time.Minute), false),
		appointment("done@example.com", now.Add(-5*time.Hour), true),
		appointment("future@example.com", now.Add(time.Hour), false),
	}}
	metrics := &recordingMetrics{}
	tx := &passthroughTx{}
	sweep := NewCompletionSweep(repo, tx, metrics, fixedTime{now: now}, nopLogger{})

	count, err := sweep.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, 1, tx.calls)

	for _, a := range repo.items {
		assert.Equal(t, !a.End.After(now), a.IsCompleted, a.CustomerEmail)
	}

	// повторный запуск без сдвига времени ничего не меняет
	count, err = sweep.Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Equal(t, 2, metrics.completed)
}

func TestCompletionSweep_Error(t *testing.T) {
	repo := &memoryAppointments{err: errors.New("db down")}
	sweep := NewCompletionSweep(repo, &passthroughTx{}, nil, fixedTime{now: now}, nopLogger{})

	assert.ErrorIs(t, sweep.Task(context.Background()), ErrInternal)
}

func TestReminderSweep(t *testing.T) {
	today := time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)
	repo := &memoryAppointments{items: []*domain.AppointmentDetails{
		appointment("early@example.com", today.Add(9*time.Hour), false),
		appointment("broken@example.com", today.Add(10*time.Hour), false),
		appointment("late@example.com", today.Add(23*time.Hour+30*time.Minute), false),
		appointment("done@example.com", today.Add(8*time.Hour), true),
		appointment("yesterday@example.com", today.Add(-time.Hour), false),
		appointment("tomorrow@example.com", today.AddDate(0, 0, 1), false),
	}}
	notifier := &recordingNotifier{failTo: "broken@example.com"}
	metrics := &recordingMetrics{}
	current := time.Date(2024, 6, 5, 7, 0, 0, 0, time.UTC)
	sweep := NewReminderSweep(repo, notifier, metrics, fixedTime{now: current}, nopLogger{})

	sent, err := sweep.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, sent)
	assert.Equal(t, []string{"early@example.com", "broken@example.com", "late@example.com"}, notifier.to)
	require.Len(t, metrics.reminders, 3)
	assert.Error(t, metrics.reminders[1])
}

func TestReminderSweep_Error(t *testing.T) {
	repo := &memoryAppointments{err: errors.New("db down")}
	sweep := NewReminderSweep(repo, &recordingNotifier{}, nil, fixedTime{now: now}, nopLogger{})

	_, err := sweep.Run(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
