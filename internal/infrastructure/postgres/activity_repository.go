package postgres

import (
	"context"
	"time"

	"github.com/jhoicas/crmlite/internal/domain/entity"
	"github.com/jhoicas/crmlite/internal/domain/repository"
	"github.com/jhoicas/crmlite/internal/infrastructure/sqlquery"
)

var _ repository.ActivityRepository = (*ActivityRepo)(nil)

// ActivityRepo consultas de solo lectura sobre activity/products.
type ActivityRepo struct {
	q Querier
}

// NewActivityRepository construye el adaptador. Pasar pool, conexión o tx (Querier).
func NewActivityRepository(q Querier) *ActivityRepo {
	return &ActivityRepo{q: q}
}

// QueryActivity devuelve (producto, monto) por cada movimiento que cumple el filtro.
// Ante cualquier falla no se devuelven filas parciales.
func (r *ActivityRepo) QueryActivity(ctx context.Context, filter entity.ActivityFilter) ([]entity.ActivityRow, error) {
	query, args := sqlquery.Activity(filter)

	rows, err := r.q.Query(ctx, sqlquery.Dollar(query), args...)
	if err != nil {
		return nil, dataAccessErr("activity.Query", err)
	}
	defer rows.Close()

	var results []entity.ActivityRow
	for rows.Next() {
		var row entity.ActivityRow
		if err := rows.Scan(&row.ProductName, &row.Amount); err != nil {
			return nil, dataAccessErr("activity.Query scan", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, dataAccessErr("activity.Query", err)
	}
	return results, nil
}

// Period devuelve MIN(date) y MAX(date). Si no hay actividad el período queda vacío.
func (r *ActivityRepo) Period(ctx context.Context) (entity.Period, error) {
	var from, to *time.Time
	if err := r.q.QueryRow(ctx, sqlquery.Period).Scan(&from, &to); err != nil {
		return entity.Period{}, dataAccessErr("activity.Period", err)
	}

	var p entity.Period
	if from != nil {
		p.From = *from
	}
	if to != nil {
		p.To = *to
	}
	return p, nil
}
