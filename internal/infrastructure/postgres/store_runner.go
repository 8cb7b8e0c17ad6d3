package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/crmlite/internal/domain/repository"
)

var _ repository.StoreRunner = (*StoreRunner)(nil)

// StoreRunner adquiere una conexión del pool por cada secuencia de consultas.
type StoreRunner struct {
	pool *pgxpool.Pool
}

// NewStoreRunner construye el runner con el pool.
func NewStoreRunner(pool *pgxpool.Pool) *StoreRunner {
	return &StoreRunner{pool: pool}
}

// Run adquiere una conexión, ejecuta fn con los repositorios atados a ella y la devuelve al pool.
func (r *StoreRunner) Run(ctx context.Context, fn func(repository.Store) error) error {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return dataAccessErr("postgres.Acquire", err)
	}
	defer conn.Release()

	return fn(NewStore(conn))
}
