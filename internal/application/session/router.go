package session

import (
	"context"
	"fmt"

	"github.com/jhoicas/crmlite/internal/domain/entity"
	"github.com/jhoicas/crmlite/internal/domain/repository"
)

// Router resuelve una identificación cruda a un rol. No guarda estado entre llamadas.
type Router struct {
	runner     repository.StoreRunner
	adminToken string
}

// NewRouter construye el router. adminToken es la identificación reservada del administrador.
func NewRouter(runner repository.StoreRunner, adminToken string) *Router {
	return &Router{runner: runner, adminToken: adminToken}
}

// Identify aplica el orden de resolución, gana la primera coincidencia:
//  1. token de administrador (sin consulta ni verificación de credenciales);
//  2. cliente con esa identificación exacta;
//  3. proveedor con esa identificación exacta;
//  4. desconocido.
//
// Una identificación vacía es desconocida sin consultar el almacén.
// Las fallas del almacén se propagan envueltas en domain.ErrDataAccess.
func (r *Router) Identify(ctx context.Context, rawID string) (entity.Identity, error) {
	id := entity.Identity{Role: entity.RoleUnknown, Identification: rawID}

	if rawID == "" {
		return id, nil
	}
	if rawID == r.adminToken {
		id.Role = entity.RoleAdmin
		return id, nil
	}

	err := r.runner.Run(ctx, func(s repository.Store) error {
		customer, err := s.FindCustomer(ctx, rawID)
		if err != nil {
			return err
		}
		if customer != nil {
			id.Role, id.Record = entity.RoleCustomer, customer
			return nil
		}

		supplier, err := s.FindSupplier(ctx, rawID)
		if err != nil {
			return err
		}
		if supplier != nil {
			id.Role, id.Record = entity.RoleSupplier, supplier
		}
		return nil
	})
	if err != nil {
		return entity.Identity{}, fmt.Errorf("session.Identify: %w", err)
	}
	return id, nil
}
