package chart

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/jhoicas/crmlite/internal/application/report"
)

var _ report.ChartRenderer = (*HBarRenderer)(nil)

var barColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}

// HBarRenderer dibuja gráficos de barras horizontales con gonum/plot.
type HBarRenderer struct {
	Width     vg.Length
	RowHeight vg.Length // alto por etiqueta; el lienzo crece con la cantidad de productos
	MinHeight vg.Length
}

// NewHBarRenderer valores por defecto pensados para un panel A4.
func NewHBarRenderer() *HBarRenderer {
	return &HBarRenderer{
		Width:     16 * vg.Centimeter,
		RowHeight: 0.9 * vg.Centimeter,
		MinHeight: 7 * vg.Centimeter,
	}
}

// RenderHBar guarda el gráfico en path; el formato sale de la extensión (png, svg, pdf...).
// Las etiquetas se ordenan alfabéticamente para que la salida sea determinista.
func (r *HBarRenderer) RenderHBar(spec report.ChartSpec, path string) error {
	p := plot.New()
	p.Title.Text = spec.Title
	p.X.Label.Text = spec.XLabel
	p.Y.Label.Text = spec.YLabel

	labels := spec.Data.Labels()
	if len(labels) > 0 {
		values := make(plotter.Values, len(labels))
		for i, l := range labels {
			values[i] = spec.Data[l].InexactFloat64()
		}

		bars, err := plotter.NewBarChart(values, r.barWidth())
		if err != nil {
			return fmt.Errorf("chart: %w", err)
		}
		bars.Horizontal = true
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = barColor

		p.Add(bars)
		p.NominalY(labels...)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("chart: %w", err)
	}
	if err := p.Save(r.Width, r.height(len(labels)), path); err != nil {
		return fmt.Errorf("chart: guardar %s: %w", filepath.Base(path), err)
	}
	return nil
}

func (r *HBarRenderer) barWidth() vg.Length {
	return r.RowHeight * 0.6
}

func (r *HBarRenderer) height(rows int) vg.Length {
	h := vg.Length(rows)*r.RowHeight + 3*vg.Centimeter
	if h < r.MinHeight {
		return r.MinHeight
	}
	return h
}
