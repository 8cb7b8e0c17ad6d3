package entity

// CounterpartyKind distingue clientes de proveedores.
type CounterpartyKind string

const (
	KindCustomer CounterpartyKind = "customer"
	KindSupplier CounterpartyKind = "supplier"
)

// Counterparty registro de un cliente o proveedor. Ambas tablas comparten la misma forma.
type Counterparty struct {
	ID     string
	Kind   CounterpartyKind
	Name   string
	Street string
	City   string
	State  string
}
