package domain

import (
	"time"

	"github.com/google/uuid"
)

// Appointment is a booked half-open interval [Start, End) for one customer and one service
type Appointment struct {
	ID          uuid.UUID
	CustomerID  uuid.UUID
	ServiceID   uuid.UUID
	Start       time.Time
	End         time.Time
	IsCompleted bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Overlaps reports whether the appointment intersects [start, end)
func (a *Appointment) Overlaps(start, end time.Time) bool {
	return Overlaps(a.Start, a.End, start, end)
}

// IsDue returns true when the appointment has ended by now and is not completed yet
func (a *Appointment) IsDue(now time.Time) bool {
	return !a.IsCompleted && !a.End.After(now)
}

// AppointmentDetails is an appointment joined with its customer and service
type AppointmentDetails struct {
	Appointment

	CustomerFirstName string
	CustomerLastName  string
	CustomerEmail     string
	CustomerPhone     string

	ServiceName  string
	ServicePrice float64
}

// CustomerFullName returns "First Last"
func (d *AppointmentDetails) CustomerFullName() string {
	return d.CustomerFirstName + " " + d.CustomerLastName
}

// AppointmentFilter narrows appointment listings. Zero value lists everything.
type AppointmentFilter struct {
	CustomerID *uuid.UUID
	ActiveOnly bool       // only not completed
	StartFrom  *time.Time // start >= StartFrom
	StartTo    *time.Time // start < StartTo
}

// Overlaps is the single overlap predicate for half-open intervals:
// [aStart, aEnd) and [bStart, bEnd) intersect iff aStart < bEnd and aEnd > bStart.
// Touching intervals do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}
