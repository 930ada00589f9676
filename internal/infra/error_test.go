//go:build unit

package infra

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cases := []struct {
		name string
		err  error
		want RepositoryErrorKind
	}{
		{"no rows", pgx.ErrNoRows, KindNotFound},
		{"wrapped no rows", fmt.Errorf("scan: %w", pgx.ErrNoRows), KindNotFound},
		{"unique violation", &pgconn.PgError{Code: "23505"}, KindDuplicateKey},
		{"fk violation", &pgconn.PgError{Code: "23503"}, KindForeignKeyViolated},
		{"other pg error", &pgconn.PgError{Code: "42P01"}, KindDBFailure},
		{"plain error", errors.New("connection reset"), KindDBFailure},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := Classify(logger, "op failed", c.err)
			assert.True(t, IsKind(err, c.want), "got %v", err)
		})
	}

	assert.NoError(t, Classify(logger, "noop", nil))
	assert.True(t, IsKind(NotFound(logger, "missing"), KindNotFound))
}
