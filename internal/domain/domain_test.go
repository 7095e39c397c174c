package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	at := func(h, m int) time.Time { return time.Date(2024, 6, 3, h, m, 0, 0, time.UTC) }

	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{"inside", at(10, 0), at(11, 0), at(10, 15), at(10, 45), true},
		{"partial left", at(10, 0), at(11, 0), at(9, 30), at(10, 30), true},
		{"touching end", at(10, 0), at(11, 0), at(11, 0), at(12, 0), false},
		{"touching start", at(10, 0), at(11, 0), at(9, 0), at(10, 0), false},
		{"disjoint", at(10, 0), at(11, 0), at(13, 0), at(14, 0), false},
		{"identical", at(10, 0), at(11, 0), at(10, 0), at(11, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestBusinessError_Is(t *testing.T) {
	err := fmt.Errorf("book: %w", NewBusinessError(CodeSlotTaken, "appointmentTime"))

	assert.True(t, errors.Is(err, ErrSlotTaken))
	assert.False(t, errors.Is(err, ErrTimeWindowInvalid))

	be, ok := AsBusinessError(err)
	assert.True(t, ok)
	assert.Equal(t, "appointmentTime", be.Field)
	assert.Equal(t, "SlotTaken (appointmentTime)", be.Error())
}

func TestBusinessHour_OverlapsWith(t *testing.T) {
	h := &BusinessHour{DayOfWeek: time.Monday, StartTime: "09:00", EndTime: "12:00", IsOpen: true}

	assert.True(t, h.OverlapsWith("11:00", "14:00"))
	assert.False(t, h.OverlapsWith("12:00", "14:00"))
	assert.False(t, h.OverlapsWith("07:00", "09:00"))
}

func TestCustomer_IsLinkedToOtherUser(t *testing.T) {
	guest := &Customer{}
	assert.False(t, guest.IsLinkedToOtherUser("alice"))

	name := "bob"
	linked := &Customer{Username: &name}
	assert.True(t, linked.IsLinkedToOtherUser("alice"))
	assert.False(t, linked.IsLinkedToOtherUser("bob"))
}

func TestConfirmationMail(t *testing.T) {
	details := &AppointmentDetails{
		Appointment:       Appointment{Start: time.Date(2024, 6, 3, 10, 30, 0, 0, time.UTC)},
		CustomerFirstName: "Ann",
		CustomerEmail:     "ann@example.com",
		ServiceName:       "Haircut",
	}

	created := ConfirmationMail(details, false)
	assert.Equal(t, "ann@example.com", created.To)
	assert.Equal(t, "Appointment Confirmation – Haircut", created.Subject)
	assert.Contains(t, created.Body, "Date: 2024-06-03\nTime: 10:30\nService: Haircut")

	updated := ConfirmationMail(details, true)
	assert.Equal(t, "Appointment Updated – Haircut", updated.Subject)

	reminder := ReminderMail(details)
	assert.Equal(t, "Reminder – Your Appointment is Today", reminder.Subject)
	assert.Contains(t, reminder.Body, "Time: 10:30")
}

func TestServicePage_TotalPages(t *testing.T) {
	assert.Equal(t, 3, (&ServicePage{Size: 6, TotalItems: 13}).TotalPages())
	assert.Equal(t, 0, (&ServicePage{Size: 0, TotalItems: 13}).TotalPages())
}
