// Package cli comandos de línea para armar paneles sin pasar por HTTP.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhoicas/crmlite/internal/application/report"
	"github.com/jhoicas/crmlite/internal/domain/entity"
	"github.com/jhoicas/crmlite/pkg/numfmt"
)

// Assembler arma el panel de una identificación.
type Assembler interface {
	Assemble(ctx context.Context, rawID string) (*report.Panel, error)
}

// Options dependencias de los comandos. Setup se invoca de forma diferida, solo cuando un
// comando necesita el almacén, para que --help funcione sin base de datos.
type Options struct {
	Setup  func(ctx context.Context) (Assembler, report.PanelGenerator, func(), error)
	Output io.Writer
}

// NewRootCmd construye "crmlite-report" con los subcomandos render y show.
func NewRootCmd(opts Options) *cobra.Command {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cmd := &cobra.Command{
		Use:           "crmlite-report",
		Short:         "Genera paneles de reporte de ventas, compras y stock",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(opts.Output)

	cmd.AddCommand(newRenderCmd(opts))
	cmd.AddCommand(newShowCmd(opts))
	return cmd
}

func newRenderCmd(opts Options) *cobra.Command {
	var id, out string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Escribe el panel de la identificación en un archivo PDF",
		RunE: func(cmd *cobra.Command, _ []string) error {
			assembler, generator, cleanup, err := opts.Setup(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			panel, err := assembler.Assemble(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("armar panel: %w", err)
			}
			defer panel.Close()

			doc, err := generator.Generate(cmd.Context(), panel)
			if err != nil {
				return fmt.Errorf("generar PDF: %w", err)
			}
			if err := os.WriteFile(out, doc, 0o644); err != nil {
				return fmt.Errorf("escribir %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s) -> %s\n", panel.Title, panel.Role, out)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Identificación (admin, cliente o proveedor)")
	cmd.Flags().StringVarP(&out, "out", "o", "report.pdf", "Archivo PDF de salida")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func newShowCmd(opts Options) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Imprime el panel como texto (sin gráficos)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			assembler, _, cleanup, err := opts.Setup(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			panel, err := assembler.Assemble(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("armar panel: %w", err)
			}
			defer panel.Close()

			return WriteText(cmd.OutOrStdout(), panel)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Identificación (admin, cliente o proveedor)")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

// WriteText vuelca el panel en texto plano: encabezado, período, datos de cada gráfico y alertas.
func WriteText(w io.Writer, p *report.Panel) error {
	var b strings.Builder
	fmt.Fprintf(&b, "== %s ==\n", p.Title)

	if p.Role == entity.RoleUnknown {
		fmt.Fprintln(&b, p.Message)
		_, err := io.WriteString(w, b.String())
		return err
	}

	if c := p.Counterparty; c != nil {
		fmt.Fprintf(&b, "Nombre: %s\nCalle: %s\nCiudad: %s\nDepartamento: %s\n", c.Name, c.Street, c.City, c.State)
	}
	if p.Period.IsZero() {
		fmt.Fprintln(&b, "Sin actividad registrada")
	} else {
		fmt.Fprintf(&b, "Período del %s al %s\n", numfmt.Date(p.Period.From), numfmt.Date(p.Period.To))
	}

	for _, ch := range p.Charts {
		fmt.Fprintf(&b, "\n%s\n", ch.Spec.Title)
		for _, label := range ch.Spec.Data.Labels() {
			fmt.Fprintf(&b, "  %-24s %s\n", label, numfmt.Quantity(ch.Spec.Data[label]))
		}
	}
	if p.TotalSales != nil {
		fmt.Fprintf(&b, "\nVentas totales: $%s\n", numfmt.Money(*p.TotalSales))
	}

	if p.Role == entity.RoleAdmin {
		fmt.Fprintln(&b, "\nProductos bajo el stock mínimo")
		if len(p.Alerts) == 0 {
			fmt.Fprintln(&b, "  (ninguno)")
		}
		for _, a := range p.Alerts {
			fmt.Fprintf(&b, "  %-24s %-10s mín %s  actual %s\n",
				a.ProductName, a.Location, numfmt.Quantity(a.Minimum), numfmt.Quantity(a.CurrentBalance))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
