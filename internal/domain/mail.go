package domain

import "fmt"

// Mail is an outgoing notification
type Mail struct {
	To      string
	Subject string
	Body    string
}

// ConfirmationMail is sent after a booking is created or rescheduled
func ConfirmationMail(a *AppointmentDetails, rescheduled bool) Mail {
	subject := "Appointment Confirmation – " + a.ServiceName
	if rescheduled {
		subject = "Appointment Updated – " + a.ServiceName
	}

	body := fmt.Sprintf(
		"Hello %s,\n\nYour appointment has been scheduled for:\nDate: %s\nTime: %s\nService: %s\n\nThank you for choosing our business!",
		a.CustomerFirstName,
		a.Start.Format(DateFormat),
		a.Start.Format(TimeFormat),
		a.ServiceName,
	)

	return Mail{To: a.CustomerEmail, Subject: subject, Body: body}
}

// ReminderMail is sent on the morning of the appointment day
func ReminderMail(a *AppointmentDetails) Mail {
	body := fmt.Sprintf(
		"Hello %s,\n\nThis is a friendly reminder that you have an appointment today:\nTime: %s\nService: %s\n\nWe look forward to seeing you!",
		a.CustomerFirstName,
		a.Start.Format(TimeFormat),
		a.ServiceName,
	)

	return Mail{To: a.CustomerEmail, Subject: "Reminder – Your Appointment is Today", Body: body}
}
