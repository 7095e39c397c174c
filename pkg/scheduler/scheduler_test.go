package scheduler

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testLogger struct {
	mu     sync.Mutex
	errors []string
}

func (l *testLogger) Info(string, ...interface{}) {}

func (l *testLogger) Error(format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, format)
}

type testObserver struct {
	mu      sync.Mutex
	results map[string][]error
}

func (o *testObserver) ObserveJob(job string, _ time.Duration, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.results == nil {
		o.results = make(map[string][]error)
	}
	o.results[job] = append(o.results[job], err)
}

func TestDailySchedule(t *testing.T) {
	loc := time.UTC

	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "before run time today",
			now:  time.Date(2024, 5, 10, 6, 59, 0, 0, loc),
			want: time.Date(2024, 5, 10, 7, 0, 0, 0, loc),
		},
		{
			name: "exactly at run time moves to tomorrow",
			now:  time.Date(2024, 5, 10, 7, 0, 0, 0, loc),
			want: time.Date(2024, 5, 11, 7, 0, 0, 0, loc),
		},
		{
			name: "after run time",
			now:  time.Date(2024, 5, 31, 20, 0, 0, 0, loc),
			want: time.Date(2024, 6, 1, 7, 0, 0, 0, loc),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schedule, err := DailySchedule(7, 0, loc)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(schedule.Next(tt.now)), "got %s", schedule.Next(tt.now))
		})
	}
}

func TestRunOnce_LogsErrorsAndPanics(t *testing.T) {
	log := &testLogger{}
	obs := &testObserver{}
	s := New(log, obs)

	s.RunOnce(context.Background(), "failing", func(ctx context.Context) error {
		return errors.New("db down")
	})
	s.RunOnce(context.Background(), "panicking", func(ctx context.Context) error {
		panic("boom")
	})
	s.RunOnce(context.Background(), "ok", func(ctx context.Context) error { return nil })

	assert.Len(t, log.errors, 2)
	assert.Error(t, obs.results["failing"][0])
	assert.Error(t, obs.results["panicking"][0])
	assert.NoError(t, obs.results["ok"][0])
}

func TestEvery_KeepsRunningAfterFailure(t *testing.T) {
	s := New(&testLogger{}, nil)
	var runs int32

	s.Every("completion", time.Millisecond, func(ctx context.Context) error {
		atomic.AddInt32(&runs, 1)
		return errors.New("transient")
	})

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)

	assert.Eventually(t, func() bool { return atomic.LoadInt32(&runs) >= 3 }, time.Second, time.Millisecond)

	cancel()
	s.Wait()
}

func TestDailySchedule_UsesLocation(t *testing.T) {
	moscow := time.FixedZone("MSK", 3*60*60)
	schedule, err := DailySchedule(7, 30, moscow)
	require.NoError(t, err)

	next := schedule.Next(time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC))
	assert.True(t, time.Date(2024, 5, 10, 4, 30, 0, 0, time.UTC).Equal(next), "got %s", next)
}

func TestDailyAt_RejectsInvalidTime(t *testing.T) {
	s := New(&testLogger{}, nil)

	err := s.DailyAt("reminder", 25, 0, time.UTC, func(ctx context.Context) error { return nil })
	assert.Error(t, err)
}
