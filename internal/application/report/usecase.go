package report

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/crmlite/internal/domain"
	"github.com/jhoicas/crmlite/internal/domain/activity"
	"github.com/jhoicas/crmlite/internal/domain/entity"
	"github.com/jhoicas/crmlite/internal/domain/repository"
)

// Claves de los gráficos; también son el nombre del PNG dentro del directorio del panel.
const (
	ChartSales        = "ventas"
	ChartUnitsSold    = "unidades-vendidas"
	ChartBalance      = "balance"
	ChartSupplies     = "suministros"
	ChartCustomerBuys = "compras-cliente"
)

// UseCase arma el panel que corresponde al rol de una identificación.
type UseCase struct {
	identifier Identifier
	runner     repository.StoreRunner
	charts     ChartRenderer
	workDir    string
	log        zerolog.Logger
}

// NewUseCase construye el caso de uso inyectando todas sus dependencias.
func NewUseCase(
	identifier Identifier,
	runner repository.StoreRunner,
	charts ChartRenderer,
	workDir string,
	log zerolog.Logger,
) *UseCase {
	return &UseCase{
		identifier: identifier,
		runner:     runner,
		charts:     charts,
		workDir:    workDir,
		log:        log,
	}
}

// Assemble resuelve el rol y arma su panel. El llamador debe cerrar el panel devuelto.
//
// Retorna:
//   - panel de error (Role = RoleUnknown) si la identificación no coincide con nadie.
//   - domain.ErrDataAccess si el almacén falla; no se devuelve panel parcial.
//   - domain.ErrRender si no se pudo dibujar un gráfico.
func (uc *UseCase) Assemble(ctx context.Context, rawID string) (*Panel, error) {
	id, err := uc.identifier.Identify(ctx, rawID)
	if err != nil {
		return nil, fmt.Errorf("report.Assemble: %w", err)
	}
	uc.log.Debug().Str("identification", rawID).Stringer("role", id.Role).Msg("identificación resuelta")

	var panel *Panel
	switch id.Role {
	case entity.RoleAdmin:
		panel, err = uc.adminPanel(ctx, id)
	case entity.RoleSupplier:
		panel, err = uc.counterpartyPanel(ctx, id, TitleSupplier, entity.DirectionIn, ChartSpec{
			Title: "Suministros por producto", XLabel: "Suministros", YLabel: "Producto",
		}, ChartSupplies)
	case entity.RoleCustomer:
		panel, err = uc.counterpartyPanel(ctx, id, TitleCustomer, entity.DirectionOut, ChartSpec{
			Title: "Ventas por producto", XLabel: "Unidades", YLabel: "Producto",
		}, ChartCustomerBuys)
	default:
		panel, err = uc.errorPanel(id)
	}
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("panel_id", panel.ID.String()).
		Stringer("role", panel.Role).
		Int("charts", len(panel.Charts)).
		Int("alerts", len(panel.Alerts)).
		Msg("panel armado")
	return panel, nil
}

// ── Administrador ─────────────────────────────────────────────────────────────

func (uc *UseCase) adminPanel(ctx context.Context, id entity.Identity) (*Panel, error) {
	var (
		sales, unitsSold, net activity.AggregateResult
		eval                  activity.StockEvaluation
		period                entity.Period
	)

	err := uc.runner.Run(ctx, func(s repository.Store) error {
		outRows, err := s.QueryActivity(ctx, entity.ActivityFilter{Direction: entity.DirectionOut})
		if err != nil {
			return err
		}
		inRows, err := s.QueryActivity(ctx, entity.ActivityFilter{Direction: entity.DirectionIn})
		if err != nil {
			return err
		}
		if period, err = s.Period(ctx); err != nil {
			return err
		}
		products, err := s.ListProducts(ctx)
		if err != nil {
			return err
		}

		sales = activity.SumByProduct(outRows)
		unitsSold = activity.CountByProduct(outRows)
		net = activity.NetMovement(activity.CountByProduct(inRows), unitsSold)
		eval = activity.EvaluateStock(net, products)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("report.adminPanel: %w", err)
	}

	if len(eval.Orphans) > 0 {
		uc.log.Warn().Strs("products", eval.Orphans).Msg("movimientos de productos que no están en el catálogo; se omiten del balance")
	}

	panel, err := newPanel(uc.workDir, TitleAdmin, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrRender, err)
	}
	total := activity.Total(sales)
	panel.Period = period
	panel.TotalSales = &total
	panel.Alerts = eval.Alerts
	panel.Orphans = eval.Orphans

	charts := []struct {
		key  string
		spec ChartSpec
	}{
		{ChartSales, ChartSpec{Title: "Ventas por producto", XLabel: "Ventas", YLabel: "Producto", Data: sales}},
		{ChartUnitsSold, ChartSpec{Title: "Unidades vendidas", XLabel: "Unidades", YLabel: "Producto", Data: unitsSold}},
		{ChartBalance, ChartSpec{Title: "Balance de productos", XLabel: "Entradas menos salidas", YLabel: "Producto", Data: net}},
	}
	for _, c := range charts {
		if err := panel.addChart(uc.charts, c.key, c.spec); err != nil {
			return nil, uc.abort(panel, err)
		}
	}
	return panel, nil
}

// ── Cliente / proveedor ───────────────────────────────────────────────────────

func (uc *UseCase) counterpartyPanel(
	ctx context.Context,
	id entity.Identity,
	title string,
	dir entity.Direction,
	spec ChartSpec,
	key string,
) (*Panel, error) {
	var period entity.Period
	err := uc.runner.Run(ctx, func(s repository.Store) error {
		rows, err := s.QueryActivity(ctx, entity.ActivityFilter{Counterparty: id.Identification, Direction: dir})
		if err != nil {
			return err
		}
		spec.Data = activity.CountByProduct(rows)
		period, err = s.Period(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("report.counterpartyPanel: %w", err)
	}

	panel, err := newPanel(uc.workDir, title, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrRender, err)
	}
	panel.Period = period
	if err := panel.addChart(uc.charts, key, spec); err != nil {
		return nil, uc.abort(panel, err)
	}
	return panel, nil
}

// ── Desconocido ───────────────────────────────────────────────────────────────

func (uc *UseCase) errorPanel(id entity.Identity) (*Panel, error) {
	panel, err := newPanel(uc.workDir, TitleError, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrRender, err)
	}
	panel.Message = "Usuario desconocido " + id.Identification
	return panel, nil
}

// abort libera el panel a medio armar y envuelve err como falla de renderizado.
func (uc *UseCase) abort(panel *Panel, err error) error {
	if cerr := panel.Close(); cerr != nil {
		uc.log.Warn().Err(cerr).Str("panel_id", panel.ID.String()).Msg("no se pudo limpiar el directorio del panel")
	}
	if errors.Is(err, domain.ErrRender) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrRender, err)
}
