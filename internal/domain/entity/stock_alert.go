package entity

import "github.com/shopspring/decimal"

// StockAlert producto cuyo saldo calculado quedó por debajo del mínimo.
type StockAlert struct {
	ProductName    string
	Location       string
	Minimum        decimal.Decimal
	CurrentBalance decimal.Decimal
}
