// Package sqlquery textos SQL compartidos por los adaptadores de PostgreSQL y MySQL.
// Se escriben con marcadores "?" y cada adaptador los reescribe a su estilo con sqlx.Rebind.
// Los filtros siempre viajan como argumentos, nunca concatenados al texto.
package sqlquery

import (
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/jhoicas/crmlite/internal/domain/entity"
)

const activityBase = `
	SELECT p.name AS product_name, a.amount
	FROM activity a
	JOIN products p ON p.id = a.id_product`

// Period primera y última fecha de actividad. Ambas son NULL si la tabla está vacía.
const Period = `SELECT MIN(a.date) AS first_date, MAX(a.date) AS last_date FROM activity a`

// Products catálogo completo en el orden natural de la tabla.
const Products = `
	SELECT id, name, initial_stock, minimum_stock, location
	FROM products
	ORDER BY id`

// Customer y Supplier búsqueda exacta por identificación.
const (
	Customer = `SELECT id, name, street, city, state FROM customers WHERE id = ?`
	Supplier = `SELECT id, name, street, city, state FROM suppliers WHERE id = ?`
)

// Activity arma la consulta de movimientos con los filtros presentes en f.
func Activity(f entity.ActivityFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if f.Direction != "" {
		conds = append(conds, "a.direction = ?")
		args = append(args, string(f.Direction))
	}
	if f.Counterparty != "" {
		conds = append(conds, "a.id_supp_or_cust = ?")
		args = append(args, f.Counterparty)
	}

	q := activityBase
	if len(conds) > 0 {
		q += "\n\tWHERE " + strings.Join(conds, " AND ")
	}
	return q, args
}

// Dollar reescribe "?" a "$1, $2..." para PostgreSQL.
func Dollar(q string) string {
	return sqlx.Rebind(sqlx.DOLLAR, q)
}
