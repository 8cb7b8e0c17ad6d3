package postgres

import (
	"context"

	"github.com/jhoicas/crmlite/internal/domain/entity"
	"github.com/jhoicas/crmlite/internal/domain/repository"
	"github.com/jhoicas/crmlite/internal/infrastructure/sqlquery"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo lectura del catálogo de productos.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool, conexión o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// ListProducts devuelve todos los productos ordenados por id.
func (r *ProductRepo) ListProducts(ctx context.Context) ([]entity.Product, error) {
	rows, err := r.q.Query(ctx, sqlquery.Products)
	if err != nil {
		return nil, dataAccessErr("products.List", err)
	}
	defer rows.Close()

	var list []entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.InitialStock, &p.MinimumStock, &p.Location); err != nil {
			return nil, dataAccessErr("products.List scan", err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, dataAccessErr("products.List", err)
	}
	return list, nil
}
