package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Querier subconjunto común de *pgxpool.Pool, *pgxpool.Conn y pgx.Tx que usan los repositorios.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
