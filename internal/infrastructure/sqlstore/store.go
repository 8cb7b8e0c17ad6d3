package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/crmlite/internal/domain"
	"github.com/jhoicas/crmlite/internal/domain/entity"
	"github.com/jhoicas/crmlite/internal/domain/repository"
	"github.com/jhoicas/crmlite/internal/infrastructure/sqlquery"
)

var (
	_ repository.Store       = (*Store)(nil)
	_ repository.StoreRunner = (*Runner)(nil)
)

// queryer lo cumplen *sqlx.DB y *sqlx.Conn.
type queryer interface {
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	Rebind(query string) string
}

// ── Filas ─────────────────────────────────────────────────────────────────────

type activityRow struct {
	ProductName string          `db:"product_name"`
	Amount      decimal.Decimal `db:"amount"`
}

type periodRow struct {
	FirstDate sql.NullTime `db:"first_date"`
	LastDate  sql.NullTime `db:"last_date"`
}

type productRow struct {
	ID           string          `db:"id"`
	Name         string          `db:"name"`
	InitialStock decimal.Decimal `db:"initial_stock"`
	MinimumStock decimal.Decimal `db:"minimum_stock"`
	Location     string          `db:"location"`
}

type counterpartyRow struct {
	ID     string `db:"id"`
	Name   string `db:"name"`
	Street string `db:"street"`
	City   string `db:"city"`
	State  string `db:"state"`
}

// ── Runner ────────────────────────────────────────────────────────────────────

// Runner toma una conexión dedicada del *sqlx.DB por cada secuencia de consultas.
type Runner struct {
	db *sqlx.DB
}

// NewRunner construye el runner.
func NewRunner(db *sqlx.DB) *Runner {
	return &Runner{db: db}
}

// Run obtiene una conexión, ejecuta fn y la cierra (devuelve al pool) en todos los caminos.
func (r *Runner) Run(ctx context.Context, fn func(repository.Store) error) error {
	conn, err := r.db.Connx(ctx)
	if err != nil {
		return dataAccessErr("mysql.Conn", err)
	}
	defer conn.Close()

	return fn(NewStore(conn))
}

// ── Store ─────────────────────────────────────────────────────────────────────

// Store implementa todos los puertos de lectura sobre un queryer.
type Store struct {
	q queryer
}

// NewStore construye el adaptador. Acepta *sqlx.DB o *sqlx.Conn.
func NewStore(q queryer) *Store {
	return &Store{q: q}
}

// QueryActivity devuelve (producto, monto) por cada movimiento que cumple el filtro.
func (s *Store) QueryActivity(ctx context.Context, filter entity.ActivityFilter) ([]entity.ActivityRow, error) {
	query, args := sqlquery.Activity(filter)

	var rows []activityRow
	if err := s.q.SelectContext(ctx, &rows, s.q.Rebind(query), args...); err != nil {
		return nil, dataAccessErr("activity.Query", err)
	}

	out := make([]entity.ActivityRow, len(rows))
	for i, r := range rows {
		out[i] = entity.ActivityRow{ProductName: r.ProductName, Amount: r.Amount}
	}
	return out, nil
}

// Period devuelve el rango de fechas con actividad; vacío si no hay filas.
func (s *Store) Period(ctx context.Context) (entity.Period, error) {
	var row periodRow
	if err := s.q.GetContext(ctx, &row, sqlquery.Period); err != nil {
		return entity.Period{}, dataAccessErr("activity.Period", err)
	}

	var p entity.Period
	if row.FirstDate.Valid {
		p.From = row.FirstDate.Time
	}
	if row.LastDate.Valid {
		p.To = row.LastDate.Time
	}
	return p, nil
}

// ListProducts devuelve el catálogo ordenado por id.
func (s *Store) ListProducts(ctx context.Context) ([]entity.Product, error) {
	var rows []productRow
	if err := s.q.SelectContext(ctx, &rows, sqlquery.Products); err != nil {
		return nil, dataAccessErr("products.List", err)
	}

	out := make([]entity.Product, len(rows))
	for i, r := range rows {
		out[i] = entity.Product{
			ID:           r.ID,
			Name:         r.Name,
			InitialStock: r.InitialStock,
			MinimumStock: r.MinimumStock,
			Location:     r.Location,
		}
	}
	return out, nil
}

// FindCustomer obtiene un cliente por identificación exacta; nil si no existe.
func (s *Store) FindCustomer(ctx context.Context, id string) (*entity.Counterparty, error) {
	return s.find(ctx, "customers.Find", sqlquery.Customer, entity.KindCustomer, id)
}

// FindSupplier obtiene un proveedor por identificación exacta; nil si no existe.
func (s *Store) FindSupplier(ctx context.Context, id string) (*entity.Counterparty, error) {
	return s.find(ctx, "suppliers.Find", sqlquery.Supplier, entity.KindSupplier, id)
}

func (s *Store) find(ctx context.Context, op, query string, kind entity.CounterpartyKind, id string) (*entity.Counterparty, error) {
	var row counterpartyRow
	if err := s.q.GetContext(ctx, &row, s.q.Rebind(query), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, dataAccessErr(op, err)
	}
	return &entity.Counterparty{
		ID:     row.ID,
		Kind:   kind,
		Name:   row.Name,
		Street: row.Street,
		City:   row.City,
		State:  row.State,
	}, nil
}

func dataAccessErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrDataAccess, err)
}
