// Package pdf genera el panel de reporte como documento PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del panel     │  Fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CONTRAPARTE: Nombre / Calle / Ciudad / Departamento         │
//	│  PERÍODO: desde - hasta                                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  GRÁFICOS: uno por fila (PNG del directorio del panel)      │
//	│  VENTAS TOTALES (solo administrador)                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Nombre | Ubicación | Mínimo | Actual                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/crmlite/internal/application/report"
	"github.com/jhoicas/crmlite/internal/domain/entity"
	"github.com/jhoicas/crmlite/pkg/numfmt"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ report.PanelGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa report.PanelGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	author string
	now    func() time.Time
}

// NewMarotoReportGenerator construye el generador. author se escribe en los metadatos del PDF.
func NewMarotoReportGenerator(author string) *MarotoReportGenerator {
	return &MarotoReportGenerator{author: author, now: time.Now}
}

// Generate arma el PDF del panel y devuelve sus bytes. Las imágenes se leen del directorio
// del panel, así que debe llamarse antes de panel.Close.
func (g *MarotoReportGenerator) Generate(_ context.Context, panel *report.Panel) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(panel.Title, true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(panel, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	if panel.Role == entity.RoleUnknown {
		m.AddRows(messageRow(panel.Message))
		return generate(m)
	}

	if panel.Counterparty != nil {
		m.AddRows(counterpartyRows(panel.Counterparty)...)
	}
	m.AddRows(periodRow(panel.Period))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	for i, c := range panel.Charts {
		m.AddRows(chartRows(c)...)
		// Ventas totales va justo debajo del gráfico de ventas.
		if i == 0 && panel.TotalSales != nil {
			m.AddRows(totalRow("Ventas totales:", "$"+numfmt.Money(*panel.TotalSales)))
		}
	}

	if panel.Role == entity.RoleAdmin {
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
		m.AddRows(alertRows(panel.Alerts)...)
		if len(panel.Orphans) > 0 {
			m.AddRows(noteRow("Movimientos sin producto en el catálogo (omitidos): " + strings.Join(panel.Orphans, ", ")))
		}
	}

	return generate(m)
}

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título del panel (izq) y fecha de generación (der).
func headerRow(panel *report.Panel, now time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(panel.Title, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+now.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
			text.New("Panel "+panel.ID.String()[:8], props.Text{
				Size: 7, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// counterpartyRows: Nombre / Calle / Ciudad / Departamento.
func counterpartyRows(c *entity.Counterparty) []core.Row {
	fields := []struct{ label, value string }{
		{"Nombre: ", c.Name},
		{"Calle: ", c.Street},
		{"Ciudad: ", c.City},
		{"Departamento: ", c.State},
	}
	rows := make([]core.Row, 0, len(fields))
	for _, f := range fields {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New(f.label+nonEmpty(f.value, "-"), props.Text{Size: 9, Top: 1}),
		)))
	}
	return rows
}

func periodRow(p entity.Period) core.Row {
	label := "Sin actividad registrada"
	if !p.IsZero() {
		label = fmt.Sprintf("Período del %s al %s", numfmt.Date(p.From), numfmt.Date(p.To))
	}
	return row.New(8).Add(col.New(12).Add(
		text.New(label, props.Text{Style: fontstyle.Bold, Size: 9, Top: 2}),
	))
}

func messageRow(msg string) core.Row {
	return row.New(14).Add(col.New(12).Add(
		text.New(msg, props.Text{Style: fontstyle.Bold, Size: 11, Color: colorAlert, Top: 4}),
	))
}

// chartRows: título del gráfico + la imagen escalada al ancho de la página.
func chartRows(c report.Chart) []core.Row {
	return []core.Row{
		row.New(7).Add(col.New(12).Add(
			text.New(c.Spec.Title, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2}),
		)),
		row.New(chartHeight(len(c.Spec.Data))).Add(col.New(12).Add(
			image.NewFromFile(c.Path, props.Rect{Center: true, Percent: 95}),
		)),
	}
}

// chartHeight alto de la fila del gráfico en mm, proporcional a la cantidad de barras.
func chartHeight(bars int) float64 {
	h := 60 + float64(bars)*6
	if h > 200 {
		return 200
	}
	return h
}

func totalRow(label, value string) core.Row {
	return row.New(9).Add(
		col.New(6),
		col.New(3).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Right: 2, Top: 2, Color: colorPrimary,
		})),
		col.New(3).Add(text.New(value, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Right: 1, Top: 2, Color: colorPrimary,
		})),
	)
}

// alertRows: tabla de productos bajo el stock mínimo, en el orden del catálogo.
func alertRows(alerts []entity.StockAlert) []core.Row {
	rows := []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New("Productos bajo el stock mínimo", props.Text{
				Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2,
			}),
		)),
	}

	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	rows = append(rows, row.New(6).Add(
		h("Nombre", 5, align.Left),
		h("Ubicación", 3, align.Left),
		h("Mínimo", 2, align.Right),
		h("Actual", 2, align.Right),
	))

	if len(alerts) == 0 {
		return append(rows, noteRow("Ningún producto está por debajo del mínimo."))
	}

	for _, a := range alerts {
		rows = append(rows, row.New(6).Add(
			col.New(5).Add(text.New(a.ProductName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(nonEmpty(a.Location, "-"), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(numfmt.Quantity(a.Minimum), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(numfmt.Quantity(a.CurrentBalance), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1, Color: colorAlert, Style: fontstyle.Bold,
			})),
		))
	}
	return rows
}

func noteRow(s string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(s, props.Text{Size: 7.5, Color: colorGray, Top: 2}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
