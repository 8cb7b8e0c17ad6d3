package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/crmlite/internal/application/dto"
	"github.com/jhoicas/crmlite/internal/application/report"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName   string
	ReportUC  *report.UseCase
	Generator report.PanelGenerator
	Logger    *zerolog.Logger // opcional
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Logger != nil {
		app.Use(LoggerMiddleware(*deps.Logger))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", App: deps.AppName})
	})

	api := app.Group("/api")
	handler := NewReportHandler(deps.ReportUC, deps.Generator)

	// Sesión: identificación -> panel del rol (sin verificación de credenciales)
	api.Post("/session/identify", handler.Identify)

	// Reportes
	api.Get("/reports/pdf", handler.DownloadPDF)
}
