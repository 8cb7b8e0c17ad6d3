// Package numfmt formato de cifras y fechas para los paneles (convención colombiana:
// punto de miles y coma decimal).
package numfmt

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.MustParse("es-CO"))

// Money dos decimales con separador de miles.
func Money(d decimal.Decimal) string {
	return printer.Sprintf("%.2f", d.InexactFloat64())
}

// Quantity entero si no tiene parte decimal; si la tiene, dos decimales.
func Quantity(d decimal.Decimal) string {
	if d.Equal(d.Truncate(0)) {
		return printer.Sprintf("%d", d.IntPart())
	}
	return Money(d)
}

// Date fecha corta dd/mm/aaaa; cadena vacía para el valor cero.
func Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006")
}
