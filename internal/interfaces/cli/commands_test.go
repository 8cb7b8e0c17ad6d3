package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crmlite/internal/application/report"
	"github.com/jhoicas/crmlite/internal/application/session"
	"github.com/jhoicas/crmlite/internal/domain/entity"
	"github.com/jhoicas/crmlite/internal/infrastructure/memory"
	"github.com/jhoicas/crmlite/internal/interfaces/cli"
)

type stubCharts struct{}

func (stubCharts) RenderHBar(_ report.ChartSpec, path string) error {
	return os.WriteFile(path, []byte("png"), 0o644)
}

type stubGenerator struct{}

func (stubGenerator) Generate(context.Context, *report.Panel) ([]byte, error) {
	return []byte("%PDF-stub"), nil
}

func options(t *testing.T, out *bytes.Buffer) cli.Options {
	t.Helper()
	store := memory.NewStore().
		AddProduct(entity.Product{ID: "P1", Name: "Widget", InitialStock: decimal.NewFromInt(10), MinimumStock: decimal.NewFromInt(5), Location: "A-1"}).
		AddSupplier(entity.Counterparty{ID: "S001", Name: "Proveedora", Street: "Cra 2", City: "Cali", State: "Valle"})
	for i := 0; i < 8; i++ {
		store.AddActivity(entity.ActivityRecord{
			ProductID: "P1", CounterpartyID: "C9", Direction: entity.DirectionOut,
			Amount: decimal.NewFromInt(3), Date: time.Date(2024, 2, i+1, 0, 0, 0, 0, time.UTC),
		})
	}
	store.AddActivity(entity.ActivityRecord{
		ProductID: "P1", CounterpartyID: "S001", Direction: entity.DirectionIn,
		Amount: decimal.NewFromInt(1), Date: time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC),
	})

	uc := report.NewUseCase(session.NewRouter(store, "admin"), store, stubCharts{}, t.TempDir(), zerolog.Nop())
	return cli.Options{
		Output: out,
		Setup: func(context.Context) (cli.Assembler, report.PanelGenerator, func(), error) {
			return uc, stubGenerator{}, func() {}, nil
		},
	}
}

func TestRender_EscribePDF(t *testing.T) {
	var out bytes.Buffer
	target := filepath.Join(t.TempDir(), "admin.pdf")

	cmd := cli.NewRootCmd(options(t, &out))
	cmd.SetArgs([]string{"render", "--id", "admin", "--out", target})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-stub", string(data))
	assert.Contains(t, out.String(), target)
}

func TestRender_RequiereID(t *testing.T) {
	var out bytes.Buffer
	cmd := cli.NewRootCmd(options(t, &out))
	cmd.SetArgs([]string{"render"})

	assert.Error(t, cmd.Execute())
}

func TestShow_Admin(t *testing.T) {
	var out bytes.Buffer
	cmd := cli.NewRootCmd(options(t, &out))
	cmd.SetArgs([]string{"show", "--id", "admin"})
	require.NoError(t, cmd.Execute())

	text := out.String()
	assert.Contains(t, text, report.TitleAdmin)
	assert.Contains(t, text, "Productos bajo el stock mínimo")
	assert.Contains(t, text, "Widget")
	assert.Contains(t, text, "actual 3")
}

func TestShow_ProveedorYDesconocido(t *testing.T) {
	var out bytes.Buffer
	cmd := cli.NewRootCmd(options(t, &out))
	cmd.SetArgs([]string{"show", "--id", "S001"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Ciudad: Cali")

	out.Reset()
	cmd = cli.NewRootCmd(options(t, &out))
	cmd.SetArgs([]string{"show", "--id", "nadie"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Usuario desconocido nadie")
}
