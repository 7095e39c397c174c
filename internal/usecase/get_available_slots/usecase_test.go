package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	"github.com/m04kA/SMC-SchedulerService/internal/service/services"
)

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

type staticServices map[uuid.UUID]*domain.Service

func (s staticServices) Get(_ context.Context, id uuid.UUID) (*domain.Service, error) {
	service, ok := s[id]
	if !ok {
		return nil, services.ErrServiceNotFound
	}
	return service, nil
}

type staticHours []*domain.BusinessHour

func (h staticHours) ListByDay(_ context.Context, day time.Weekday, openOnly bool) ([]*domain.BusinessHour, error) {
	var result []*domain.BusinessHour
	for _, r := range h {
		if r.DayOfWeek == day && (!openOnly || r.IsOpen) {
			result = append(result, r)
		}
	}
	return result, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	haircutID = uuid.MustParse("5e1c0000-0000-0000-0000-000000000001")
	hiddenID  = uuid.MustParse("5e1c0000-0000-0000-0000-000000000002")
)

func newTestUseCase(checker AvailabilityChecker) *UseCase {
	catalogue := staticServices{
		haircutID: {ID: haircutID, Name: "Haircut", DurationMinutes: 45, IsActive: true},
		hiddenID:  {ID: hiddenID, Name: "Hidden", DurationMinutes: 30, IsActive: false},
	}
	hours := staticHours{
		openRange(time.Sunday, "09:00", "12:00"),
		openRange(time.Monday, "10:00", "11:00"),
	}
	return NewUseCase(catalogue, hours, NewGenerator(checker, 1), fixedTime{now: now}, nopLogger{})
}

func TestExecute(t *testing.T) {
	uc := newTestUseCase(&memoryChecker{})

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: haircutID, Date: sunday})
	require.NoError(t, err)
	assert.Equal(t, 45, resp.DurationMinutes)
	assert.Equal(t, []string{"09:00", "09:45", "10:30", "11:15"}, startTimes(resp.Slots))
}

func TestExecute_UsesDayOfWeekRanges(t *testing.T) {
	uc := newTestUseCase(&memoryChecker{})

	monday := sunday.AddDate(0, 0, 1)
	resp, err := uc.Execute(context.Background(), &Request{ServiceID: haircutID, Date: monday})
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00"}, startTimes(resp.Slots))

	tuesday := sunday.AddDate(0, 0, 2)
	resp, err = uc.Execute(context.Background(), &Request{ServiceID: haircutID, Date: tuesday})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_Errors(t *testing.T) {
	uc := newTestUseCase(&memoryChecker{})
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{ServiceID: uuid.New(), Date: sunday})
	assert.ErrorIs(t, err, ErrServiceNotFound)

	_, err = uc.Execute(ctx, &Request{ServiceID: hiddenID, Date: sunday})
	assert.ErrorIs(t, err, ErrServiceNotFound)

	_, err = uc.Execute(ctx, &Request{Date: sunday})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{ServiceID: haircutID})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
