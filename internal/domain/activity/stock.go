package activity

import (
	"sort"

	"github.com/jhoicas/crmlite/internal/domain/entity"
)

// StockEvaluation resultado de combinar el movimiento neto con el catálogo.
type StockEvaluation struct {
	// Balance existencias iniciales más movimiento neto, solo para productos del catálogo.
	Balance AggregateResult
	// Alerts productos con saldo estrictamente menor al mínimo, en el orden del catálogo.
	Alerts []entity.StockAlert
	// Orphans productos con movimiento que no existen en el catálogo (ordenados).
	// No generan alerta ni aparecen en Balance.
	Orphans []string
}

// EvaluateStock suma el stock inicial de cada producto del catálogo a su movimiento neto
// (o lo siembra con el stock inicial si no tuvo actividad) y emite una alerta cuando
// el saldo queda por debajo del mínimo. net no se modifica.
func EvaluateStock(net AggregateResult, products []entity.Product) StockEvaluation {
	balance := make(AggregateResult, len(products))
	known := make(map[string]struct{}, len(products))

	for _, p := range products {
		known[p.Name] = struct{}{}
		if qty, ok := net[p.Name]; ok {
			balance[p.Name] = qty.Add(p.InitialStock)
			continue
		}
		balance[p.Name] = p.InitialStock
	}

	alerts := make([]entity.StockAlert, 0)
	for _, p := range products {
		current := balance[p.Name]
		if current.LessThan(p.MinimumStock) {
			alerts = append(alerts, entity.StockAlert{
				ProductName:    p.Name,
				Location:       p.Location,
				Minimum:        p.MinimumStock,
				CurrentBalance: current,
			})
		}
	}

	var orphans []string
	for name := range net {
		if _, ok := known[name]; !ok {
			orphans = append(orphans, name)
		}
	}
	sort.Strings(orphans)

	return StockEvaluation{Balance: balance, Alerts: alerts, Orphans: orphans}
}
