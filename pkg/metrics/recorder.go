package metrics

import "time"

// Методы ниже безопасно вызывать на nil *Metrics: при выключенных метриках ничего не делают.

// ObserveBooking учитывает созданную или перенесенную запись
func (m *Metrics) ObserveBooking(kind string) {
	if m == nil {
		return
	}
	m.AppointmentsBooked.WithLabelValues(kind).Inc()
}

// ObserveCompleted учитывает записи, отмеченные завершенными
func (m *Metrics) ObserveCompleted(count int) {
	if m == nil || count <= 0 {
		return
	}
	m.AppointmentsCompleted.WithLabelValues().Add(float64(count))
}

// ObserveReminder учитывает результат отправки напоминания
func (m *Metrics) ObserveReminder(err error) {
	if m == nil {
		return
	}
	result := "sent"
	if err != nil {
		result = "failed"
	}
	m.RemindersSent.WithLabelValues(result).Inc()
}

// ObserveJob учитывает запуск фоновой задачи
func (m *Metrics) ObserveJob(job string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "failure"
	}
	m.JobRuns.WithLabelValues(job, result).Inc()
	m.JobDuration.WithLabelValues(job).Observe(duration.Seconds())
}
