package entity

// Role resultado de resolver una identificación.
type Role int

const (
	RoleUnknown Role = iota
	RoleAdmin
	RoleCustomer
	RoleSupplier
)

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleCustomer:
		return "customer"
	case RoleSupplier:
		return "supplier"
	default:
		return "unknown"
	}
}

// Identity rol resuelto junto con la identificación cruda. Record solo está presente
// para RoleCustomer y RoleSupplier.
type Identity struct {
	Role           Role
	Identification string
	Record         *Counterparty
}
