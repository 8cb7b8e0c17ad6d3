// Package memory almacén en memoria para tests y demostraciones sin base de datos.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/crmlite/internal/domain"
	"github.com/jhoicas/crmlite/internal/domain/entity"
	"github.com/jhoicas/crmlite/internal/domain/repository"
)

var (
	_ repository.Store       = (*Store)(nil)
	_ repository.StoreRunner = (*Store)(nil)
)

// Store guarda catálogo, contrapartes y movimientos en slices.
// Err, si no es nil, hace fallar cada consulta con domain.ErrDataAccess.
type Store struct {
	mu        sync.Mutex
	products  []entity.Product
	customers map[string]entity.Counterparty
	suppliers map[string]entity.Counterparty
	activity  []entity.ActivityRecord

	Err      error
	Lookups  int // búsquedas de contrapartes realizadas
	Sessions int // veces que se ejecutó Run
	Open     int // sesiones abiertas en este momento
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		customers: map[string]entity.Counterparty{},
		suppliers: map[string]entity.Counterparty{},
	}
}

// AddProduct agrega un producto al final del catálogo.
func (s *Store) AddProduct(p entity.Product) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, p)
	return s
}

// AddCustomer registra un cliente.
func (s *Store) AddCustomer(c entity.Counterparty) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.Kind = entity.KindCustomer
	s.customers[c.ID] = c
	return s
}

// AddSupplier registra un proveedor.
func (s *Store) AddSupplier(c entity.Counterparty) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.Kind = entity.KindSupplier
	s.suppliers[c.ID] = c
	return s
}

// AddActivity registra un movimiento.
func (s *Store) AddActivity(r entity.ActivityRecord) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activity = append(s.activity, r)
	return s
}

// Run ejecuta fn contra el propio almacén y lleva la cuenta de sesiones abiertas.
func (s *Store) Run(ctx context.Context, fn func(repository.Store) error) error {
	s.mu.Lock()
	s.Sessions++
	s.Open++
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.Open--
		s.mu.Unlock()
	}()
	return fn(s)
}

// QueryActivity une movimientos con el catálogo por id de producto, igual que el JOIN en SQL:
// un movimiento cuyo producto no existe no produce fila.
func (s *Store) QueryActivity(ctx context.Context, filter entity.ActivityFilter) ([]entity.ActivityRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("activity.Query"); err != nil {
		return nil, err
	}

	names := make(map[string]string, len(s.products))
	for _, p := range s.products {
		names[p.ID] = p.Name
	}

	var rows []entity.ActivityRow
	for _, a := range s.activity {
		if filter.Direction != "" && a.Direction != filter.Direction {
			continue
		}
		if filter.Counterparty != "" && a.CounterpartyID != filter.Counterparty {
			continue
		}
		name, ok := names[a.ProductID]
		if !ok {
			continue
		}
		rows = append(rows, entity.ActivityRow{ProductName: name, Amount: a.Amount})
	}
	return rows, nil
}

// Period primera y última fecha de actividad.
func (s *Store) Period(ctx context.Context) (entity.Period, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("activity.Period"); err != nil {
		return entity.Period{}, err
	}

	var p entity.Period
	for i, a := range s.activity {
		if i == 0 || a.Date.Before(p.From) {
			p.From = a.Date
		}
		if i == 0 || a.Date.After(p.To) {
			p.To = a.Date
		}
	}
	return p, nil
}

// ListProducts devuelve una copia del catálogo en orden de inserción.
func (s *Store) ListProducts(ctx context.Context) ([]entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("products.List"); err != nil {
		return nil, err
	}
	return append([]entity.Product(nil), s.products...), nil
}

func (s *Store) FindCustomer(ctx context.Context, id string) (*entity.Counterparty, error) {
	return s.find("customers.Find", s.customers, id)
}

func (s *Store) FindSupplier(ctx context.Context, id string) (*entity.Counterparty, error) {
	return s.find("suppliers.Find", s.suppliers, id)
}

func (s *Store) find(op string, set map[string]entity.Counterparty, id string) (*entity.Counterparty, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Lookups++
	if err := s.fail(op); err != nil {
		return nil, err
	}
	c, ok := set[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (s *Store) fail(op string) error {
	if s.Err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrDataAccess, s.Err)
}
