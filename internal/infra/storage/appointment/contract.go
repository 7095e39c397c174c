package appointment

import "github.com/m04kA/SMC-SchedulerService/pkg/dbmetrics"

// DBExecutor *sql.DB, *dbmetrics.DB или транзакция из контекста
type DBExecutor = dbmetrics.DBExecutor

const (
	tableAppointments = "appointments"
	tableCustomers    = "customers"
	tableServices     = "services"

	// Имя exclusion constraint из миграции 001_init
	constraintNoOverlap = "appointments_no_overlap"
)
