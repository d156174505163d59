//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"classroom-reservations/internal/infra"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		kind       []infra.RepositoryErrorKind
		expectKind infra.RepositoryErrorKind
	}{
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, expectKind: infra.KindDuplicateKey},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, expectKind: infra.KindForeignKeyViolated},
		{name: "check violation", err: &pgconn.PgError{Code: "23514"}, expectKind: infra.KindCheckViolated},
		{name: "other pg error", err: &pgconn.PgError{Code: "42P01"}, expectKind: infra.KindDBFailure},
		{name: "plain error", err: errors.New("boom"), expectKind: infra.KindDBFailure},
		{name: "explicit kind wins", err: errors.New("no rows"), kind: []infra.RepositoryErrorKind{infra.KindNotFound}, expectKind: infra.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := infra.WrapRepoErr("op failed", tt.err, tt.kind...)
			assert.True(t, infra.IsKind(err, tt.expectKind))
			assert.Contains(t, err.Error(), "op failed")
			assert.ErrorIs(t, err, tt.err)
		})
	}
}
