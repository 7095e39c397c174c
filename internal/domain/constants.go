package domain

import "time"

// Booking window
const (
	BookingHorizonMonths = 1 // appointments can be booked at most one month ahead
)

// Lifecycle defaults
const (
	DefaultCompletionInterval = 60 * time.Second
	DefaultReminderHour       = 7
	DefaultReminderMinute     = 0
)

// Accounts
const (
	DefaultOwnerUsername = "owner" // seeded owner account, cannot be deleted
	MinUsernameLength    = 3
	MinPasswordLength    = 8
	MaxPasswordLength    = 30
)

// Pagination
const (
	DefaultPageSize = 6
	MaxPageSize     = 100
)

// Validation limits
const (
	MaxNameLength        = 100
	MaxServiceNameLength = 150
	MinServiceDuration   = 5
	MaxServiceDuration   = 480 // 8 hours
	MaxDescriptionLength = 2000
)

// Time format constants
const (
	TimeFormat     = "15:04"            // HH:MM
	DateFormat     = "2006-01-02"       // YYYY-MM-DD
	DateTimeFormat = "2006-01-02T15:04" // local date-time without zone
)

// Resource lock keys for check-then-write sections
const (
	LockKeyAppointments = "appointments"
	LockKeyServiceNames = "services:name"
	LockKeyUsernames    = "users:username"
)

// LockKeyBusinessHours returns the lock key for one weekday's ranges
func LockKeyBusinessHours(day time.Weekday) string {
	return "business_hours:" + day.String()
}
