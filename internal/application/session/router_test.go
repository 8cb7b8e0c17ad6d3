package session_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crmlite/internal/application/session"
	"github.com/jhoicas/crmlite/internal/domain"
	"github.com/jhoicas/crmlite/internal/domain/entity"
	"github.com/jhoicas/crmlite/internal/infrastructure/memory"
)

func newStore() *memory.Store {
	return memory.NewStore().
		AddCustomer(entity.Counterparty{ID: "C001", Name: "Ana"}).
		AddSupplier(entity.Counterparty{ID: "S001", Name: "Proveedora"}).
		AddSupplier(entity.Counterparty{ID: "C001", Name: "Duplicado"})
}

func TestIdentify_AdminSinConsulta(t *testing.T) {
	store := newStore()
	// Un cliente con la misma identificación que el token no cambia el resultado.
	store.AddCustomer(entity.Counterparty{ID: "admin", Name: "Impostor"})
	r := session.NewRouter(store, "admin")

	id, err := r.Identify(context.Background(), "admin")

	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, id.Role)
	assert.Nil(t, id.Record)
	assert.Zero(t, store.Lookups)
}

func TestIdentify_ClienteAntesQueProveedor(t *testing.T) {
	r := session.NewRouter(newStore(), "admin")

	id, err := r.Identify(context.Background(), "C001")

	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, id.Role)
	require.NotNil(t, id.Record)
	assert.Equal(t, "Ana", id.Record.Name)
}

func TestIdentify_Proveedor(t *testing.T) {
	r := session.NewRouter(newStore(), "admin")

	id, err := r.Identify(context.Background(), "S001")

	require.NoError(t, err)
	assert.Equal(t, entity.RoleSupplier, id.Role)
	assert.Equal(t, entity.KindSupplier, id.Record.Kind)
}

func TestIdentify_Desconocido(t *testing.T) {
	store := newStore()
	r := session.NewRouter(store, "admin")

	id, err := r.Identify(context.Background(), "unknown123")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUnknown, id.Role)
	assert.Equal(t, "unknown123", id.Identification)
	assert.Nil(t, id.Record)

	lookups := store.Lookups
	empty, err := r.Identify(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUnknown, empty.Role)
	assert.Equal(t, lookups, store.Lookups, "la identificación vacía no consulta")
}

func TestIdentify_ErrorDeAcceso(t *testing.T) {
	store := newStore()
	store.Err = errors.New("sin conexión")
	r := session.NewRouter(store, "admin")

	_, err := r.Identify(context.Background(), "C001")

	assert.ErrorIs(t, err, domain.ErrDataAccess)
	assert.Zero(t, store.Open)
}
