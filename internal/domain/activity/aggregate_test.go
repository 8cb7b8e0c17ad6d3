package activity_test

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/crmlite/internal/domain/entity"
	"github.com/jhoicas/crmlite/internal/domain/activity"
)

func row(name string, amount float64) entity.ActivityRow {
	return entity.ActivityRow{ProductName: name, Amount: decimal.NewFromFloat(amount)}
}

// assertResult compara valores decimales sin depender del exponente interno.
func assertResult(t *testing.T, want map[string]float64, got activity.AggregateResult) {
	t.Helper()
	assert.Len(t, got, len(want))
	for k, v := range want {
		g, ok := got[k]
		if assert.True(t, ok, "falta la clave %q", k) {
			assert.True(t, decimal.NewFromFloat(v).Equal(g), "%s: esperado %v, obtenido %s", k, v, g)
		}
	}
}

func TestAggregate_EscenarioVentas(t *testing.T) {
	rows := []entity.ActivityRow{row("Widget", 5.0), row("Widget", 3.0), row("Gadget", 2.0)}

	assertResult(t, map[string]float64{"Widget": 8, "Gadget": 2}, activity.SumByProduct(rows))
	assertResult(t, map[string]float64{"Widget": 2, "Gadget": 1}, activity.CountByProduct(rows))
}

func TestAggregate_IndependienteDelOrden(t *testing.T) {
	rows := []entity.ActivityRow{
		row("A", 1.10), row("B", 2.25), row("A", 3.05), row("C", 0.5),
		row("B", 7), row("A", 0.01), row("D", 12.5), row("C", 4.75),
	}
	baseSum := activity.SumByProduct(rows)
	baseCount := activity.CountByProduct(rows)

	rnd := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := append([]entity.ActivityRow(nil), rows...)
		rnd.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		sum := activity.SumByProduct(shuffled)
		count := activity.CountByProduct(shuffled)
		for k, v := range baseSum {
			assert.True(t, v.Equal(sum[k]), "suma de %s cambió con el orden", k)
		}
		for k, v := range baseCount {
			assert.True(t, v.Equal(count[k]), "conteo de %s cambió con el orden", k)
		}
	}
}

func TestAggregate_AusenteNoEsCero(t *testing.T) {
	rows := []entity.ActivityRow{row("Widget", 0)}

	sum := activity.SumByProduct(rows)
	_, hasGadget := sum["Gadget"]
	assert.False(t, hasGadget)

	// Una fila con monto cero sí registra el producto.
	assert.Contains(t, sum, "Widget")
	assert.Empty(t, activity.CountByProduct(nil))
}

func TestNetMovement(t *testing.T) {
	inputs := activity.AggregateResult{"Widget": decimal.NewFromInt(2), "Bolt": decimal.NewFromInt(4)}
	outputs := activity.AggregateResult{"Widget": decimal.NewFromInt(10), "Gadget": decimal.NewFromInt(3)}

	net := activity.NetMovement(inputs, outputs)

	assertResult(t, map[string]float64{"Widget": -8, "Bolt": 4, "Gadget": -3}, net)
	// Las entradas no se modifican.
	assert.True(t, inputs["Widget"].Equal(decimal.NewFromInt(2)))
}

func TestTotalYLabels(t *testing.T) {
	r := activity.AggregateResult{"b": decimal.NewFromFloat(1.5), "a": decimal.NewFromFloat(2.25)}

	assert.True(t, decimal.NewFromFloat(3.75).Equal(activity.Total(r)))
	assert.True(t, activity.Total(nil).IsZero())
	assert.Equal(t, []string{"a", "b"}, r.Labels())
}
