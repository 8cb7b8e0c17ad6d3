package report_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crmlite/internal/application/report"
	"github.com/jhoicas/crmlite/internal/application/session"
	"github.com/jhoicas/crmlite/internal/domain"
	"github.com/jhoicas/crmlite/internal/domain/entity"
	"github.com/jhoicas/crmlite/internal/infrastructure/memory"
)

// fakeCharts escribe un archivo vacío por gráfico y guarda las especificaciones recibidas.
type fakeCharts struct {
	specs map[string]report.ChartSpec
	err   error
}

func (f *fakeCharts) RenderHBar(spec report.ChartSpec, path string) error {
	if f.err != nil {
		return f.err
	}
	if f.specs == nil {
		f.specs = map[string]report.ChartSpec{}
	}
	f.specs[spec.Title] = spec
	return os.WriteFile(path, []byte("png"), 0o644)
}

func day(d int) time.Time { return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC) }

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func seed() *memory.Store {
	s := memory.NewStore().
		AddProduct(entity.Product{ID: "P1", Name: "Widget", InitialStock: dec(10), MinimumStock: dec(5), Location: "A-1"}).
		AddProduct(entity.Product{ID: "P2", Name: "Gadget", InitialStock: dec(10), MinimumStock: dec(5), Location: "B-2"}).
		AddCustomer(entity.Counterparty{ID: "C001", Name: "Ana", Street: "Calle 1", City: "Bogotá", State: "Cundinamarca"}).
		AddSupplier(entity.Counterparty{ID: "S001", Name: "Proveedora", Street: "Cra 2", City: "Cali", State: "Valle"})

	// Widget: 9 salidas y 1 entrada => neto -8 => balance 2 (< 5).
	for i := 0; i < 9; i++ {
		s.AddActivity(entity.ActivityRecord{ProductID: "P1", CounterpartyID: "C001", Direction: entity.DirectionOut, Amount: dec(1.5), Date: day(i + 1)})
	}
	s.AddActivity(entity.ActivityRecord{ProductID: "P1", CounterpartyID: "S001", Direction: entity.DirectionIn, Amount: dec(0.5), Date: day(20)})
	// Gadget: 2 salidas a otro cliente => balance 8.
	s.AddActivity(entity.ActivityRecord{ProductID: "P2", CounterpartyID: "C002", Direction: entity.DirectionOut, Amount: dec(2), Date: day(25)})
	s.AddActivity(entity.ActivityRecord{ProductID: "P2", CounterpartyID: "C002", Direction: entity.DirectionOut, Amount: dec(2), Date: day(26)})
	return s
}

func newUseCase(t *testing.T, store *memory.Store, charts report.ChartRenderer) *report.UseCase {
	t.Helper()
	return report.NewUseCase(session.NewRouter(store, "admin"), store, charts, t.TempDir(), zerolog.Nop())
}

func TestAssemble_Admin(t *testing.T) {
	store := seed()
	charts := &fakeCharts{}
	uc := newUseCase(t, store, charts)

	panel, err := uc.Assemble(context.Background(), "admin")
	require.NoError(t, err)
	defer panel.Close()

	assert.Equal(t, report.TitleAdmin, panel.Title)
	assert.Equal(t, entity.RoleAdmin, panel.Role)
	assert.Equal(t, day(1), panel.Period.From)
	assert.Equal(t, day(26), panel.Period.To)
	require.NotNil(t, panel.TotalSales)
	assert.True(t, dec(17.5).Equal(*panel.TotalSales), "9*1.5 + 2*2")

	require.Len(t, panel.Charts, 3)
	balance, ok := panel.Chart(report.ChartBalance)
	require.True(t, ok)
	assert.True(t, dec(-8).Equal(balance.Spec.Data["Widget"]))
	assert.True(t, dec(-2).Equal(balance.Spec.Data["Gadget"]))

	units, _ := panel.Chart(report.ChartUnitsSold)
	assert.True(t, dec(9).Equal(units.Spec.Data["Widget"]))

	require.Len(t, panel.Alerts, 1)
	assert.Equal(t, "Widget", panel.Alerts[0].ProductName)
	assert.True(t, dec(2).Equal(panel.Alerts[0].CurrentBalance))

	for _, c := range panel.Charts {
		assert.FileExists(t, c.Path)
	}
	assert.Zero(t, store.Open, "las conexiones se liberan al terminar")
}

func TestAssemble_Cliente(t *testing.T) {
	uc := newUseCase(t, seed(), &fakeCharts{})

	panel, err := uc.Assemble(context.Background(), "C001")
	require.NoError(t, err)
	defer panel.Close()

	assert.Equal(t, report.TitleCustomer, panel.Title)
	require.NotNil(t, panel.Counterparty)
	assert.Equal(t, "Bogotá", panel.Counterparty.City)
	require.Len(t, panel.Charts, 1)
	assert.Equal(t, report.ChartCustomerBuys, panel.Charts[0].Key)
	assert.True(t, dec(9).Equal(panel.Charts[0].Spec.Data["Widget"]))
	assert.NotContains(t, panel.Charts[0].Spec.Data, "Gadget")
	assert.Nil(t, panel.TotalSales)
}

func TestAssemble_Proveedor(t *testing.T) {
	uc := newUseCase(t, seed(), &fakeCharts{})

	panel, err := uc.Assemble(context.Background(), "S001")
	require.NoError(t, err)
	defer panel.Close()

	assert.Equal(t, report.TitleSupplier, panel.Title)
	supplies, ok := panel.Chart(report.ChartSupplies)
	require.True(t, ok)
	assert.Len(t, supplies.Spec.Data, 1)
	assert.True(t, dec(1).Equal(supplies.Spec.Data["Widget"]))
}

func TestAssemble_Desconocido(t *testing.T) {
	uc := newUseCase(t, seed(), &fakeCharts{})

	panel, err := uc.Assemble(context.Background(), "unknown123")
	require.NoError(t, err)
	defer panel.Close()

	assert.Equal(t, report.TitleError, panel.Title)
	assert.Equal(t, entity.RoleUnknown, panel.Role)
	assert.Contains(t, panel.Message, "unknown123")
	assert.Empty(t, panel.Charts)
}

func TestAssemble_ErrorDeAcceso(t *testing.T) {
	store := seed()
	store.Err = errors.New("conexión rechazada")
	uc := newUseCase(t, store, &fakeCharts{})

	panel, err := uc.Assemble(context.Background(), "admin")

	assert.Nil(t, panel)
	assert.ErrorIs(t, err, domain.ErrDataAccess)
	assert.Zero(t, store.Open)
}

func TestAssemble_FallaDeGraficoLimpiaDirectorio(t *testing.T) {
	workDir := t.TempDir()
	store := seed()
	uc := report.NewUseCase(session.NewRouter(store, "admin"), store, &fakeCharts{err: errors.New("sin fuentes")}, workDir, zerolog.Nop())

	panel, err := uc.Assemble(context.Background(), "admin")

	assert.Nil(t, panel)
	assert.ErrorIs(t, err, domain.ErrRender)
	entries, readErr := os.ReadDir(workDir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestPanel_CloseEliminaImagenes(t *testing.T) {
	uc := newUseCase(t, seed(), &fakeCharts{})

	panel, err := uc.Assemble(context.Background(), "C001")
	require.NoError(t, err)
	dir := panel.Dir()
	assert.DirExists(t, dir)

	require.NoError(t, panel.Close())
	assert.NoDirExists(t, dir)
	assert.NoError(t, panel.Close())
}

func TestAssemble_LecturasIdempotentes(t *testing.T) {
	uc := newUseCase(t, seed(), &fakeCharts{})
	ctx := context.Background()

	first, err := uc.Assemble(ctx, "admin")
	require.NoError(t, err)
	defer first.Close()
	second, err := uc.Assemble(ctx, "admin")
	require.NoError(t, err)
	defer second.Close()

	for i := range first.Charts {
		a, b := first.Charts[i].Spec.Data, second.Charts[i].Spec.Data
		require.Len(t, b, len(a))
		for k, v := range a {
			assert.True(t, v.Equal(b[k]))
		}
	}
	assert.Equal(t, first.Alerts, second.Alerts)
	assert.NotEqual(t, first.ID, second.ID)
}
