package postgres

import "github.com/jhoicas/crmlite/internal/domain/repository"

var _ repository.Store = (*Store)(nil)

// Store reúne los repositorios de lectura sobre un mismo Querier.
type Store struct {
	*ActivityRepo
	*ProductRepo
	*CounterpartyRepo
}

// NewStore construye los repositorios. Pasar pool, conexión o tx (Querier).
func NewStore(q Querier) *Store {
	return &Store{
		ActivityRepo:     NewActivityRepository(q),
		ProductRepo:      NewProductRepository(q),
		CounterpartyRepo: NewCounterpartyRepository(q),
	}
}
