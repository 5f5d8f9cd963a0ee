package repository

import (
	"context"

	"github.com/tu-usuario/finanzas-erp/internal/domain/entity"
)

// MovementRepository log append-only de movimientos de inventario.
type MovementRepository interface {
	Create(ctx context.Context, mov *entity.InventoryMovement) error
	ListByItem(ctx context.Context, itemID string, limit int) ([]*entity.InventoryMovement, error)
}
