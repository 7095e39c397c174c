package domain

import (
	"time"

	"github.com/m04kA/SMC-SchedulerService/pkg/types"
)

// Slot is a bookable interval [Start, End) on a concrete date
type Slot struct {
	Start time.Time
	End   time.Time
}

// StartTime returns the wall clock start ("HH:MM")
func (s Slot) StartTime() types.TimeString {
	return types.NewTimeString(s.Start)
}

// DurationMinutes returns the slot length in minutes
func (s Slot) DurationMinutes() int {
	return int(s.End.Sub(s.Start) / time.Minute)
}
