// Package sqlc holds the typed query layer over pgx. The shapes follow sqlc's
// generated output so the layer can be swapped for generated code without
// touching callers.
package sqlc

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func New() *Queries {
	return &Queries{}
}

// Queries is stateless; every method takes the DBTX (pool or transaction) it
// should run against.
type Queries struct{}
