package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/crmlite/internal/domain"
)

// Códigos SQLSTATE que indican que el esquema no coincide con lo esperado.
const (
	codeUndefinedTable  = "42P01"
	codeUndefinedColumn = "42703"
)

// dataAccessErr envuelve err con domain.ErrDataAccess y el nombre de la operación.
func dataAccessErr(op string, err error) error {
	if isSchemaMismatch(err) {
		return fmt.Errorf("%s: esquema inesperado: %w: %w", op, domain.ErrDataAccess, err)
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrDataAccess, err)
}

func isSchemaMismatch(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == codeUndefinedTable || pgErr.Code == codeUndefinedColumn
	}
	return false
}
