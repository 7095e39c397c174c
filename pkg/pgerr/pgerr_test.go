package pgerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	pqUnique := &pq.Error{Code: "23505", Constraint: "services_service_name_key"}
	pgxExclusion := &pgconn.PgError{Code: "23P01", ConstraintName: "appointments_no_overlap"}
	pgxSerialization := &pgconn.PgError{Code: "40001"}

	assert.True(t, IsUniqueViolation(pqUnique))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", pqUnique)))
	assert.Equal(t, "services_service_name_key", Constraint(pqUnique))

	assert.True(t, IsExclusionViolation(pgxExclusion))
	assert.Equal(t, "appointments_no_overlap", Constraint(pgxExclusion))

	assert.True(t, IsRetryable(pgxSerialization))
	assert.False(t, IsRetryable(pqUnique))

	plain := errors.New("connection refused")
	assert.Equal(t, "", Code(plain))
	assert.Equal(t, "", Constraint(plain))
}
