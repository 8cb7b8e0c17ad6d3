package dto

import "github.com/shopspring/decimal"

// IdentifyRequest cuerpo de POST /api/session/identify.
type IdentifyRequest struct {
	Identification string `json:"identification" example:"C001"`
}

// PanelResponse panel de reporte listo para mostrar. Los gráficos viajan como data URI PNG.
type PanelResponse struct {
	ID             string           `json:"id"`
	Title          string           `json:"title"`
	Role           string           `json:"role" enums:"admin,customer,supplier,unknown"`
	Identification string           `json:"identification"`
	Message        string           `json:"message,omitempty"`
	Counterparty   *CounterpartyDTO `json:"counterparty,omitempty"`
	Period         *PeriodDTO       `json:"period,omitempty"`
	TotalSales     *MoneyDTO        `json:"total_sales,omitempty"`
	Charts         []ChartDTO       `json:"charts"`
	Alerts         []StockAlertDTO  `json:"alerts,omitempty"`
	Orphans        []string         `json:"orphan_products,omitempty"`
}

// CounterpartyDTO datos de dirección del cliente o proveedor.
type CounterpartyDTO struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
}

// PeriodDTO fechas en formato YYYY-MM-DD.
type PeriodDTO struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// MoneyDTO valor exacto y su versión formateada para mostrar.
type MoneyDTO struct {
	Value     decimal.Decimal `json:"value" swaggertype:"string"`
	Formatted string          `json:"formatted"`
}

// ChartDTO gráfico de barras horizontales con sus datos.
type ChartDTO struct {
	Key    string          `json:"key"`
	Title  string          `json:"title"`
	XLabel string          `json:"x_label"`
	YLabel string          `json:"y_label"`
	Values []ChartValueDTO `json:"values"`
	Image  string          `json:"image"` // data:image/png;base64,...
}

// ChartValueDTO una barra.
type ChartValueDTO struct {
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value" swaggertype:"string"`
}

// StockAlertDTO fila de la tabla "productos bajo el stock mínimo".
type StockAlertDTO struct {
	Name      string          `json:"name"`
	Placement string          `json:"placement"`
	Minimum   decimal.Decimal `json:"minimum" swaggertype:"string"`
	Current   decimal.Decimal `json:"current" swaggertype:"string"`
}
