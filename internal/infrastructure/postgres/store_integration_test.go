package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crmlite/internal/domain/entity"
	"github.com/jhoicas/crmlite/internal/infrastructure/postgres"
)

// Requiere una base PostgreSQL real: CRMLITE_TEST_DATABASE_URL=postgres://...
// Las tablas se crean como TEMP en la sesión, así que no se toca el esquema existente.
func connect(t *testing.T) *pgx.Conn {
	t.Helper()
	url := os.Getenv("CRMLITE_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("CRMLITE_TEST_DATABASE_URL no definido")
	}
	ctx := context.Background()
	conn, err := pgx.Connect(ctx, url)
	require.NoError(t, err)
	pgxdecimal.Register(conn.TypeMap())
	t.Cleanup(func() { _ = conn.Close(ctx) })

	ddl := []string{
		`CREATE TEMP TABLE products (id TEXT PRIMARY KEY, name TEXT, initial_stock NUMERIC, minimum_stock NUMERIC, location TEXT)`,
		`CREATE TEMP TABLE customers (id TEXT PRIMARY KEY, name TEXT, street TEXT, city TEXT, state TEXT)`,
		`CREATE TEMP TABLE suppliers (id TEXT PRIMARY KEY, name TEXT, street TEXT, city TEXT, state TEXT)`,
		`CREATE TEMP TABLE activity (id_product TEXT, id_supp_or_cust TEXT, direction TEXT, amount NUMERIC(12,2), date DATE)`,
	}
	for _, stmt := range ddl {
		_, err := conn.Exec(ctx, stmt)
		require.NoError(t, err)
	}
	return conn
}

func TestStore_Postgres(t *testing.T) {
	conn := connect(t)
	ctx := context.Background()

	store := postgres.NewStore(conn)

	period, err := store.Period(ctx)
	require.NoError(t, err)
	assert.True(t, period.IsZero())

	seed := []string{
		`INSERT INTO products VALUES ('P1','Widget',10,5,'A-1'), ('P2','Gadget',10,5,'B-2')`,
		`INSERT INTO customers VALUES ('C001','Ana','Calle 1','Bogotá','Cundinamarca')`,
		`INSERT INTO suppliers VALUES ('S001','Proveedora','Cra 2','Cali','Valle')`,
		`INSERT INTO activity VALUES
			('P1','C001','out',5.00,'2024-01-03'),
			('P1','C001','out',3.00,'2024-02-10'),
			('P2','C002','out',2.00,'2024-03-28'),
			('P1','S001','in',1.50,'2024-01-15')`,
	}
	for _, stmt := range seed {
		_, err := conn.Exec(ctx, stmt)
		require.NoError(t, err)
	}

	rows, err := store.QueryActivity(ctx, entity.ActivityFilter{Direction: entity.DirectionOut})
	require.NoError(t, err)
	assert.Len(t, rows, 3)

	rows, err = store.QueryActivity(ctx, entity.ActivityFilter{Counterparty: "C001", Direction: entity.DirectionOut})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Widget", rows[0].ProductName)

	// Una comilla en el filtro es dato, no sintaxis.
	rows, err = store.QueryActivity(ctx, entity.ActivityFilter{Counterparty: `C001' OR '1'='1`})
	require.NoError(t, err)
	assert.Empty(t, rows)

	period, err = store.Period(ctx)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), period.From)
	assert.Equal(t, time.Date(2024, 3, 28, 0, 0, 0, 0, time.UTC), period.To)

	products, err := store.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.True(t, decimal.NewFromInt(10).Equal(products[0].InitialStock))

	c, err := store.FindCustomer(ctx, "C001")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "Ana", c.Name)

	s, err := store.FindSupplier(ctx, "C001")
	require.NoError(t, err)
	assert.Nil(t, s)
}
