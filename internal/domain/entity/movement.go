package entity

import (
	"time"

	"github.com/tu-usuario/finanzas-erp/internal/domain/money"
)

// Tipos de movimiento de inventario.
const (
	MovementTypeIN  = "IN"  // entrada
	MovementTypeOUT = "OUT" // salida
)

// InventoryMovement registro de auditoría inmutable de una entrada o salida.
// UnitCost siempre va en moneda base: el valor del inventario se lleva en la
// moneda funcional sin importar la moneda de compra o venta.
type InventoryMovement struct {
	ID            string
	ItemID        string
	Type          string
	Quantity      int64
	UnitCost      money.Rational
	Date          time.Time
	TransactionID string // comprobante contable relacionado
	CreatedAt     time.Time
}
