// Package sqlstore adaptador de lectura sobre database/sql (MySQL) usando sqlx.
package sqlstore

import (
	"context"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/jhoicas/crmlite/pkg/config"
)

// Open abre y verifica la conexión al almacén MySQL.
func Open(ctx context.Context, cfg config.DBConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("mysql", cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("abrir mysql: %w", err)
	}
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return db, nil
}
