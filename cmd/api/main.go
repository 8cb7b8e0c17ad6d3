// @title        crmlite API
// @version      1.0
// @description  Reportes de ventas, compras y stock para administrador, clientes y proveedores.
// @BasePath     /
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/crmlite/docs"
	"github.com/jhoicas/crmlite/internal/application/report"
	"github.com/jhoicas/crmlite/internal/application/session"
	"github.com/jhoicas/crmlite/internal/domain/repository"
	"github.com/jhoicas/crmlite/internal/infrastructure/chart"
	infrapdf "github.com/jhoicas/crmlite/internal/infrastructure/pdf"
	"github.com/jhoicas/crmlite/internal/infrastructure/postgres"
	"github.com/jhoicas/crmlite/internal/infrastructure/sqlstore"
	httpRouter "github.com/jhoicas/crmlite/internal/interfaces/http"
	"github.com/jhoicas/crmlite/pkg/config"
	"github.com/jhoicas/crmlite/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Almacén de lectura: PostgreSQL (pgxpool) o MySQL (database/sql + sqlx).
	var runner repository.StoreRunner
	switch cfg.DB.Driver {
	case config.DriverMySQL:
		db, err := sqlstore.Open(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a MySQL")
		}
		defer db.Close()
		runner = sqlstore.NewRunner(db)
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		runner = postgres.NewStoreRunner(pool)
	}

	router := session.NewRouter(runner, cfg.Report.AdminToken)
	reportUC := report.NewUseCase(router, runner, chart.NewHBarRenderer(), cfg.Report.WorkDir, log.Zerolog())
	pdfGenerator := infrapdf.NewMarotoReportGenerator(cfg.App.Name)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "crmlite API",
	}))

	zl := log.Zerolog()
	httpRouter.Router(app, httpRouter.RouterDeps{
		AppName:   cfg.App.Name,
		ReportUC:  reportUC,
		Generator: pdfGenerator,
		Logger:    &zl,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
