package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction sentido de un movimiento de inventario.
type Direction string

const (
	DirectionIn  Direction = "in"  // entrada (suministro de proveedor)
	DirectionOut Direction = "out" // salida (venta a cliente)
)

// Valid indica si d es un sentido conocido. El valor vacío no es válido aquí;
// en los filtros significa "sin restricción".
func (d Direction) Valid() bool {
	return d == DirectionIn || d == DirectionOut
}

// ActivityRecord hecho de movimiento. Solo se agrega en el almacén; este sistema nunca lo modifica.
type ActivityRecord struct {
	ProductID      string
	CounterpartyID string
	Direction      Direction
	Amount         decimal.Decimal // precio o costo del movimiento
	Date           time.Time
}

// ActivityRow proyección de la consulta de actividad: nombre del producto y monto.
type ActivityRow struct {
	ProductName string
	Amount      decimal.Decimal
}

// ActivityFilter filtros opcionales de la consulta. Un campo vacío no restringe esa dimensión.
type ActivityFilter struct {
	Counterparty string
	Direction    Direction
}

// Period primera y última fecha de actividad registradas en el almacén.
type Period struct {
	From time.Time
	To   time.Time
}

// IsZero es verdadero cuando el almacén no tiene actividad.
func (p Period) IsZero() bool {
	return p.From.IsZero() && p.To.IsZero()
}
