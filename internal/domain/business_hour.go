package domain

import (
	"time"

	"github.com/m04kA/SMC-SchedulerService/pkg/types"
)

// BusinessHour is one opening range of a weekday. Sunday is day 0.
type BusinessHour struct {
	ID        int64
	DayOfWeek time.Weekday
	StartTime types.TimeString
	EndTime   types.TimeString
	IsOpen    bool
}

// OverlapsWith reports whether the range intersects [start, end) on the same day
func (h *BusinessHour) OverlapsWith(start, end types.TimeString) bool {
	return h.StartTime.IsBefore(end) && h.EndTime.IsAfter(start)
}

// Window returns the range as absolute times on date
func (h *BusinessHour) Window(date time.Time) (time.Time, time.Time, error) {
	start, err := h.StartTime.OnDate(date)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := h.EndTime.OnDate(date)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// DayOpeningHours groups the ranges of one weekday
type DayOpeningHours struct {
	Day    time.Weekday
	Ranges []*BusinessHour
}

// IsValidWeekday checks 0 (Sunday) .. 6 (Saturday)
func IsValidWeekday(day int) bool {
	return day >= int(time.Sunday) && day <= int(time.Saturday)
}
