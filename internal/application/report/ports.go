package report

import (
	"context"

	"github.com/jhoicas/crmlite/internal/domain/activity"
	"github.com/jhoicas/crmlite/internal/domain/entity"
)

// ChartSpec datos y rótulos de un gráfico de barras horizontales.
type ChartSpec struct {
	Title  string
	XLabel string
	YLabel string
	Data   activity.AggregateResult
}

// ChartRenderer dibuja un gráfico de barras horizontales en path, sobrescribiendo
// cualquier archivo existente.
type ChartRenderer interface {
	RenderHBar(spec ChartSpec, path string) error
}

// PanelGenerator serializa un panel ya armado (p. ej. a PDF).
type PanelGenerator interface {
	Generate(ctx context.Context, panel *Panel) ([]byte, error)
}

// Identifier resuelve la identificación cruda a un rol.
type Identifier interface {
	Identify(ctx context.Context, rawID string) (entity.Identity, error)
}
