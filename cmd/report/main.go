package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/crmlite/internal/application/report"
	"github.com/jhoicas/crmlite/internal/application/session"
	"github.com/jhoicas/crmlite/internal/domain/repository"
	"github.com/jhoicas/crmlite/internal/infrastructure/chart"
	infrapdf "github.com/jhoicas/crmlite/internal/infrastructure/pdf"
	"github.com/jhoicas/crmlite/internal/infrastructure/postgres"
	"github.com/jhoicas/crmlite/internal/infrastructure/sqlstore"
	"github.com/jhoicas/crmlite/internal/interfaces/cli"
	"github.com/jhoicas/crmlite/pkg/config"
	"github.com/jhoicas/crmlite/pkg/logger"
)

func main() {
	root := cli.NewRootCmd(cli.Options{Setup: setup})
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup carga la configuración y abre el almacén configurado.
func setup(ctx context.Context) (cli.Assembler, report.PanelGenerator, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("cargar configuración: %w", err)
	}

	// Los logs van a stderr para no mezclarse con la salida de "show".
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "crmlite-report", Out: os.Stderr})

	var (
		runner  repository.StoreRunner
		cleanup func()
	)
	switch cfg.DB.Driver {
	case config.DriverMySQL:
		db, err := sqlstore.Open(ctx, cfg.DB)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("conexión a MySQL: %w", err)
		}
		runner, cleanup = sqlstore.NewRunner(db), func() { _ = db.Close() }
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		runner, cleanup = postgres.NewStoreRunner(pool), pool.Close
	}

	uc := report.NewUseCase(
		session.NewRouter(runner, cfg.Report.AdminToken),
		runner,
		chart.NewHBarRenderer(),
		cfg.Report.WorkDir,
		log.Zerolog(),
	)
	return uc, infrapdf.NewMarotoReportGenerator(cfg.App.Name), cleanup, nil
}
