package entity

import (
	"time"

	"github.com/tu-usuario/finanzas-erp/internal/domain/money"
)

// Métodos de costeo. Este núcleo solo implementa promedio ponderado móvil.
const CostingAverage = "AVERAGE"

// Item artículo de inventario (物料). QtyOnHand es un conteo entero de unidades
// y nunca baja de cero. AvgCost es el costo promedio ponderado en moneda base;
// solo tiene significado mientras QtyOnHand > 0 y solo se recalcula en entradas.
type Item struct {
	ID                 string
	Code               string
	Name               string
	UnitOfMeasure      string
	CostingMethod      string
	InventoryAccountID string // cuenta de existencias (debe estar configurada para entradas)
	COGSAccountID      string // cuenta de costo de ventas
	SalesAccountID     string // cuenta de ingresos
	QtyOnHand          int64
	AvgCost            money.Rational
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
