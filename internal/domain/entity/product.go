package entity

import "github.com/shopspring/decimal"

// Product producto del catálogo de referencia. Es inmutable durante la generación de un reporte;
// su ciclo de vida lo gestiona el almacén externo.
type Product struct {
	ID           string
	Name         string
	InitialStock decimal.Decimal // existencias al inicio del período
	MinimumStock decimal.Decimal // umbral mínimo; por debajo se genera alerta
	Location     string          // ubicación física en bodega
}
