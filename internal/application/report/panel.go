package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/crmlite/internal/domain/entity"
)

// Títulos de los paneles por rol.
const (
	TitleAdmin    = "Datos del administrador"
	TitleSupplier = "Datos del proveedor"
	TitleCustomer = "Datos del cliente"
	TitleError    = "Error"
)

// Chart gráfico ya dibujado; Path apunta a un PNG dentro del directorio del panel.
type Chart struct {
	Key  string
	Spec ChartSpec
	Path string
}

// Panel reporte armado para una identificación. Es dueño de las imágenes de sus gráficos:
// viven en un directorio privado que Close elimina. Un Panel no se comparte entre solicitudes.
type Panel struct {
	ID             uuid.UUID
	Title          string
	Role           entity.Role
	Identification string
	Counterparty   *entity.Counterparty
	Period         entity.Period
	TotalSales     *decimal.Decimal
	Charts         []Chart
	Alerts         []entity.StockAlert
	// Message texto principal del panel de error.
	Message string
	// Orphans productos con movimiento que no están en el catálogo.
	Orphans []string

	dir string
}

func newPanel(workDir, title string, id entity.Identity) (*Panel, error) {
	if err := os.MkdirAll(workDir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de trabajo: %w", err)
	}
	panelID := uuid.New()
	dir, err := os.MkdirTemp(workDir, "panel-"+panelID.String()+"-")
	if err != nil {
		return nil, fmt.Errorf("crear directorio del panel: %w", err)
	}
	return &Panel{
		ID:             panelID,
		Title:          title,
		Role:           id.Role,
		Identification: id.Identification,
		Counterparty:   id.Record,
		dir:            dir,
	}, nil
}

// Dir directorio privado del panel.
func (p *Panel) Dir() string { return p.dir }

// Chart devuelve el gráfico con la clave dada.
func (p *Panel) Chart(key string) (Chart, bool) {
	for _, c := range p.Charts {
		if c.Key == key {
			return c, true
		}
	}
	return Chart{}, false
}

// Close libera las imágenes del panel. Es seguro llamarlo más de una vez.
func (p *Panel) Close() error {
	if p == nil || p.dir == "" {
		return nil
	}
	dir := p.dir
	p.dir = ""
	return os.RemoveAll(dir)
}

func (p *Panel) addChart(r ChartRenderer, key string, spec ChartSpec) error {
	path := filepath.Join(p.dir, key+".png")
	if err := r.RenderHBar(spec, path); err != nil {
		return fmt.Errorf("gráfico %s: %w", key, err)
	}
	p.Charts = append(p.Charts, Chart{Key: key, Spec: spec, Path: path})
	return nil
}
