package http

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/jhoicas/crmlite/internal/application/dto"
	"github.com/jhoicas/crmlite/internal/application/report"
	"github.com/jhoicas/crmlite/pkg/numfmt"
)

const pngDataURIPrefix = "data:image/png;base64,"

// toPanelResponse copia el panel al DTO e incrusta cada PNG como data URI.
// Debe llamarse antes de cerrar el panel.
func toPanelResponse(p *report.Panel) (dto.PanelResponse, error) {
	resp := dto.PanelResponse{
		ID:             p.ID.String(),
		Title:          p.Title,
		Role:           p.Role.String(),
		Identification: p.Identification,
		Message:        p.Message,
		Charts:         make([]dto.ChartDTO, 0, len(p.Charts)),
		Orphans:        p.Orphans,
	}

	if c := p.Counterparty; c != nil {
		resp.Counterparty = &dto.CounterpartyDTO{
			ID: c.ID, Name: c.Name, Street: c.Street, City: c.City, State: c.State,
		}
	}
	if !p.Period.IsZero() {
		resp.Period = &dto.PeriodDTO{
			From: p.Period.From.Format("2006-01-02"),
			To:   p.Period.To.Format("2006-01-02"),
		}
	}
	if p.TotalSales != nil {
		resp.TotalSales = &dto.MoneyDTO{Value: *p.TotalSales, Formatted: "$" + numfmt.Money(*p.TotalSales)}
	}

	for _, ch := range p.Charts {
		img, err := os.ReadFile(ch.Path)
		if err != nil {
			return dto.PanelResponse{}, fmt.Errorf("leer gráfico %s: %w", ch.Key, err)
		}
		values := make([]dto.ChartValueDTO, 0, len(ch.Spec.Data))
		for _, label := range ch.Spec.Data.Labels() {
			values = append(values, dto.ChartValueDTO{Label: label, Value: ch.Spec.Data[label]})
		}
		resp.Charts = append(resp.Charts, dto.ChartDTO{
			Key:    ch.Key,
			Title:  ch.Spec.Title,
			XLabel: ch.Spec.XLabel,
			YLabel: ch.Spec.YLabel,
			Values: values,
			Image:  pngDataURIPrefix + base64.StdEncoding.EncodeToString(img),
		})
	}

	for _, a := range p.Alerts {
		resp.Alerts = append(resp.Alerts, dto.StockAlertDTO{
			Name: a.ProductName, Placement: a.Location, Minimum: a.Minimum, Current: a.CurrentBalance,
		})
	}
	return resp, nil
}
