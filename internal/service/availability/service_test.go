package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

type memoryAppointments struct {
	items []domain.Appointment
	err   error
}

func (m *memoryAppointments) ExistsOverlapping(_ context.Context, start, end time.Time) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	for _, a := range m.items {
		if a.Overlaps(start, end) {
			return true, nil
		}
	}
	return false, nil
}

func at(h, m int) time.Time {
	return time.Date(2024, 6, 3, h, m, 0, 0, time.UTC)
}

func TestIsSlotAvailable(t *testing.T) {
	repo := &memoryAppointments{items: []domain.Appointment{
		{Start: at(10, 0), End: at(10, 30)},
		{Start: at(12, 0), End: at(13, 0), IsCompleted: true},
	}}
	checker := NewChecker(repo)
	ctx := context.Background()

	tests := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{"free before", at(9, 0), at(10, 0), true},
		{"touches end of existing", at(10, 30), at(11, 0), true},
		{"overlaps existing", at(10, 15), at(10, 45), false},
		{"completed appointment still blocks", at(12, 30), at(13, 30), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := checker.IsSlotAvailable(ctx, tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsSlotAvailable_Errors(t *testing.T) {
	checker := NewChecker(&memoryAppointments{})
	_, err := checker.IsSlotAvailable(context.Background(), at(10, 0), at(10, 0))
	assert.ErrorIs(t, err, ErrInvalidInterval)

	failing := NewChecker(&memoryAppointments{err: errors.New("db down")})
	_, err = failing.IsSlotAvailable(context.Background(), at(10, 0), at(11, 0))
	assert.ErrorIs(t, err, ErrInternal)
}
