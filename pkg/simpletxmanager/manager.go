// Package simpletxmanager provides a transaction manager over a plain *sql.DB,
// used when metrics collection is disabled.
package simpletxmanager

import (
	"database/sql"

	"github.com/m04kA/SMC-SchedulerService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulerService/pkg/txmanager"
)

// NewTransactionManager создает менеджер транзакций без метрик
func NewTransactionManager(db *sql.DB) *txmanager.TransactionManager {
	return txmanager.NewTransactionManager(dbmetrics.SqlDB{DB: db})
}
