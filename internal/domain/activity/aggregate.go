package activity

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/crmlite/internal/domain/entity"
)

// AggregateResult total por nombre de producto (conteo de unidades o suma monetaria).
// Un producto sin filas coincidentes no aparece en el mapa; nunca se registra con cero.
type AggregateResult map[string]decimal.Decimal

// Labels devuelve las claves ordenadas alfabéticamente.
func (r AggregateResult) Labels() []string {
	labels := make([]string, 0, len(r))
	for k := range r {
		labels = append(labels, k)
	}
	sort.Strings(labels)
	return labels
}

// Clone copia superficial del mapa (decimal.Decimal es inmutable).
func (r AggregateResult) Clone() AggregateResult {
	out := make(AggregateResult, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

var one = decimal.NewFromInt(1)

// CountByProduct suma 1 por cada fila, ignorando el monto ("unidades vendidas" / "unidades suministradas").
func CountByProduct(rows []entity.ActivityRow) AggregateResult {
	return fold(rows, func(entity.ActivityRow) decimal.Decimal { return one })
}

// SumByProduct acumula el monto de cada fila por producto (ventas o compras en dinero).
func SumByProduct(rows []entity.ActivityRow) AggregateResult {
	return fold(rows, func(r entity.ActivityRow) decimal.Decimal { return r.Amount })
}

func fold(rows []entity.ActivityRow, weight func(entity.ActivityRow) decimal.Decimal) AggregateResult {
	out := make(AggregateResult)
	for _, row := range rows {
		w := weight(row)
		if acc, ok := out[row.ProductName]; ok {
			out[row.ProductName] = acc.Add(w)
			continue
		}
		out[row.ProductName] = w
	}
	return out
}

// NetMovement entradas menos salidas por producto. Un producto presente solo de un lado
// cuenta como cero del otro.
func NetMovement(inputs, outputs AggregateResult) AggregateResult {
	out := inputs.Clone()
	for product, qty := range outputs {
		if acc, ok := out[product]; ok {
			out[product] = acc.Sub(qty)
			continue
		}
		out[product] = qty.Neg()
	}
	return out
}

// Total suma todos los valores del resultado (p. ej. "ventas totales").
func Total(r AggregateResult) decimal.Decimal {
	total := decimal.Zero
	for _, v := range r {
		total = total.Add(v)
	}
	return total
}
