package repository

import (
	"context"

	"github.com/jhoicas/crmlite/internal/domain/entity"
)

// ActivityRepository consultas de lectura sobre la relación actividad/producto.
// Las implementaciones son read-only y envuelven toda falla del almacén con domain.ErrDataAccess.
type ActivityRepository interface {
	// QueryActivity devuelve una fila (producto, monto) por cada movimiento que cumple el filtro.
	// Las filas no tienen orden y un mismo producto puede aparecer varias veces.
	QueryActivity(ctx context.Context, filter entity.ActivityFilter) ([]entity.ActivityRow, error)

	// Period devuelve la primera y la última fecha de actividad. Vacío si no hay movimientos.
	Period(ctx context.Context) (entity.Period, error)
}

// ProductRepository catálogo de productos de referencia.
type ProductRepository interface {
	// ListProducts devuelve todos los productos en el orden natural de la tabla (por id).
	ListProducts(ctx context.Context) ([]entity.Product, error)
}

// CounterpartyRepository búsqueda exacta de clientes y proveedores por identificación.
// Devuelve (nil, nil) si no existe.
type CounterpartyRepository interface {
	FindCustomer(ctx context.Context, id string) (*entity.Counterparty, error)
	FindSupplier(ctx context.Context, id string) (*entity.Counterparty, error)
}

// Store agrupa los puertos de lectura que necesita el armado de reportes.
type Store interface {
	ActivityRepository
	ProductRepository
	CounterpartyRepository
}

// StoreRunner obtiene una conexión para una secuencia lógica de consultas, ejecuta fn con
// repositorios atados a ella y la libera al terminar, tanto en éxito como en error.
// Ninguna conexión se retiene entre solicitudes.
type StoreRunner interface {
	Run(ctx context.Context, fn func(Store) error) error
}
