package businesshour

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SchedulerService/pkg/ptr"
	"github.com/m04kA/SMC-SchedulerService/pkg/types"
)

var errUnreachable = errors.New("database unreachable")

type capturingExecutor struct {
	query string
	args  []interface{}
}

func (e *capturingExecutor) ExecContext(_ context.Context, query string, args ...interface{}) (sql.Result, error) {
	e.query, e.args = query, args
	return nil, errUnreachable
}

func (e *capturingExecutor) QueryContext(_ context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	e.query, e.args = query, args
	return nil, errUnreachable
}

func (e *capturingExecutor) QueryRowContext(_ context.Context, query string, args ...interface{}) *sql.Row {
	e.query, e.args = query, args
	return nil
}

func TestExistsOverlapping_Query(t *testing.T) {
	start, end := types.MustTimeString("09:00"), types.MustTimeString("12:00")

	tests := []struct {
		name      string
		excludeID *int64
		wantQuery string
		wantArgs  []interface{}
	}{
		{
			name:      "new range",
			wantQuery: "SELECT 1 FROM business_hours WHERE day_of_week = $1 AND is_open = $2 AND start_time < $3 AND end_time > $4 LIMIT 1",
			wantArgs:  []interface{}{int(time.Monday), true, end, start},
		},
		{
			name:      "existing range excludes itself",
			excludeID: ptr.Ptr(int64(7)),
			wantQuery: "SELECT 1 FROM business_hours WHERE day_of_week = $1 AND is_open = $2 AND start_time < $3 AND end_time > $4 AND id <> $5 LIMIT 1",
			wantArgs:  []interface{}{int(time.Monday), true, end, start, int64(7)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := &capturingExecutor{}
			repo := NewRepository(db)

			_, err := repo.ExistsOverlapping(context.Background(), time.Monday, start, end, tt.excludeID)

			assert.ErrorIs(t, err, ErrExecQuery)
			assert.ErrorIs(t, err, errUnreachable)
			assert.Equal(t, tt.wantQuery, db.query)
			assert.Equal(t, tt.wantArgs, db.args)
		})
	}
}
