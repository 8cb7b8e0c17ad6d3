package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crmlite/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("REPORT_ADMIN_TOKEN", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.DriverPostgres, cfg.DB.Driver)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, "admin", cfg.Report.AdminToken)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.NotEmpty(t, cfg.Report.WorkDir)
}

func TestLoad_MySQLCambiaPuertoPorDefecto(t *testing.T) {
	t.Setenv("DB_DRIVER", "MySQL")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.DriverMySQL, cfg.DB.Driver)
	assert.Equal(t, 3306, cfg.DB.Port)
}

func TestLoad_DriverDesconocido(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_DSN(t *testing.T) {
	pg := config.DBConfig{
		Driver: config.DriverPostgres, Host: "db", Port: 5432,
		User: "crm", Password: "p@ss:word", DBName: "crmlite", SSLMode: "disable",
	}
	assert.Equal(t, "postgres://crm:p%40ss%3Aword@db:5432/crmlite?sslmode=disable", pg.DSN())

	my := config.DBConfig{
		Driver: config.DriverMySQL, Host: "db", Port: 3306,
		User: "crm", Password: "secret", DBName: "crmlite",
	}
	dsn := my.DSN()
	assert.Contains(t, dsn, "crm:secret@tcp(db:3306)/crmlite")
	assert.Contains(t, dsn, "parseTime=true")

	withURL := config.DBConfig{Driver: config.DriverPostgres, DatabaseURL: "postgres://x@y/z"}
	assert.Equal(t, "postgres://x@y/z", withURL.ConnectionString())
}
