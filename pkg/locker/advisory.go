package locker

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SchedulerService/pkg/dbmetrics"
)

const advisoryLockQuery = "SELECT pg_advisory_xact_lock(hashtext($1))"

// Advisory транзакционные advisory-блокировки PostgreSQL.
// Блокировка снимается самим PostgreSQL на COMMIT/ROLLBACK.
type Advisory struct {
	tx TxRunner
	db dbmetrics.DBExecutor
}

func NewAdvisory(tx TxRunner, db dbmetrics.DBExecutor) *Advisory {
	return &Advisory{tx: tx, db: db}
}

func (a *Advisory) WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	return a.tx.DoSerializable(ctx, func(txCtx context.Context) error {
		executor := dbmetrics.GetExecutor(txCtx, a.db)
		if _, err := executor.ExecContext(txCtx, advisoryLockQuery, key); err != nil {
			return fmt.Errorf("%w: advisory lock %q: %w", ErrLock, key, err)
		}
		return fn(txCtx)
	})
}
