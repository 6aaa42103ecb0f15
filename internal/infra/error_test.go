//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"carseat-rental/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	cases := []struct {
		name string
		err  error
		kind []infra.RepositoryErrorKind
		want infra.RepositoryErrorKind
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: infra.KindNotFound},
		{name: "redis miss", err: redis.Nil, want: infra.KindNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: infra.KindDuplicateKey},
		{name: "fk violation", err: &pgconn.PgError{Code: "23503"}, want: infra.KindForeignKeyViolated},
		{name: "anything else", err: errors.New("boom"), want: infra.KindDBFailure},
		{name: "explicit kind wins", err: errors.New("boom"), kind: []infra.RepositoryErrorKind{infra.KindCacheFailure}, want: infra.KindCacheFailure},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := infra.WrapRepoErr("op failed", c.err, c.kind...)
			assert.True(t, infra.IsKind(err, c.want))
			assert.ErrorIs(t, err, c.err)
			assert.Contains(t, err.Error(), "op failed")
		})
	}
}
