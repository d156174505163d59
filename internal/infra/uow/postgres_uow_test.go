//go:build unit

package uow

import (
	"errors"
	"testing"
	"time"

	"classroom-reservations/internal/usecase/shared"
	sharedmock "classroom-reservations/tests/mock/shared"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

// The generated mock and the Postgres implementation must expose the same surface.
var (
	_ shared.UnitOfWork = (*PostgresUoW)(nil)
	_ shared.UnitOfWork = (*sharedmock.MockUnitOfWork)(nil)
)

func TestIsRetryableError(t *testing.T) {
	assert.True(t, isRetryableError(&pgconn.PgError{Code: pgErrCodeSerializationFailure}))
	assert.True(t, isRetryableError(&pgconn.PgError{Code: pgErrCodeDeadlockDetected}))
	assert.False(t, isRetryableError(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isRetryableError(errors.New("plain")))
}

func TestShouldRetry(t *testing.T) {
	retryable := &pgconn.PgError{Code: pgErrCodeSerializationFailure}
	assert.True(t, shouldRetry(retryable, 0, 3))
	assert.False(t, shouldRetry(retryable, 3, 3))
	assert.False(t, shouldRetry(errors.New("plain"), 0, 3))
}

func TestCalculateBackoff(t *testing.T) {
	base := 100 * time.Millisecond
	for attempt := 0; attempt < 4; attempt++ {
		want := time.Duration(1<<attempt) * base
		got := calculateBackoff(attempt, base)
		assert.GreaterOrEqual(t, got, want)
		assert.Less(t, got, want+want/5+time.Nanosecond)
	}
}

func TestNewPostgresUoWOptions(t *testing.T) {
	u := NewPostgresUoW(nil, nil, WithMaxRetries(1), WithBaseBackoff(5*time.Millisecond)).(*PostgresUoW)
	assert.Equal(t, 1, u.maxRetries)
	assert.Equal(t, 5*time.Millisecond, u.baseBackoff)
}
