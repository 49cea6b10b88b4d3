//go:build unit

package repository

import (
	"context"
	"io"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// stubDB satisfies pgquery.DBTX; the mocked queries never touch it.
type stubDB struct{}

func (stubDB) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (stubDB) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, nil
}

func (stubDB) QueryRow(context.Context, string, ...any) pgx.Row {
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var (
	errUniqueViolation = &pgconn.PgError{Code: "23505"}
	errFKViolation     = &pgconn.PgError{Code: "23503"}
)
