package entity

import "time"

// Tipos de tercero (往来单位).
const (
	PartnerTypeCustomer = "CUSTOMER"
	PartnerTypeSupplier = "SUPPLIER"
)

// Partner tercero comercial: cliente o proveedor.
type Partner struct {
	ID              string
	Code            string
	LegalName       string
	Type            string
	ContactEmail    string
	ContactPhone    string
	ShippingAddress string
	CreatedAt       time.Time
}
