package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/crmlite/internal/domain/entity"
	"github.com/jhoicas/crmlite/internal/domain/repository"
	"github.com/jhoicas/crmlite/internal/infrastructure/sqlquery"
)

var _ repository.CounterpartyRepository = (*CounterpartyRepo)(nil)

// CounterpartyRepo búsqueda de clientes y proveedores.
type CounterpartyRepo struct {
	q Querier
}

// NewCounterpartyRepository construye el adaptador. Pasar pool, conexión o tx (Querier).
func NewCounterpartyRepository(q Querier) *CounterpartyRepo {
	return &CounterpartyRepo{q: q}
}

// FindCustomer obtiene un cliente por identificación exacta; nil si no existe.
func (r *CounterpartyRepo) FindCustomer(ctx context.Context, id string) (*entity.Counterparty, error) {
	return r.find(ctx, "customers.Find", sqlquery.Customer, entity.KindCustomer, id)
}

// FindSupplier obtiene un proveedor por identificación exacta; nil si no existe.
func (r *CounterpartyRepo) FindSupplier(ctx context.Context, id string) (*entity.Counterparty, error) {
	return r.find(ctx, "suppliers.Find", sqlquery.Supplier, entity.KindSupplier, id)
}

func (r *CounterpartyRepo) find(ctx context.Context, op, query string, kind entity.CounterpartyKind, id string) (*entity.Counterparty, error) {
	c := entity.Counterparty{Kind: kind}
	err := r.q.QueryRow(ctx, sqlquery.Dollar(query), id).Scan(&c.ID, &c.Name, &c.Street, &c.City, &c.State)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, dataAccessErr(op, err)
	}
	return &c, nil
}
