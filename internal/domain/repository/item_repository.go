package repository

import (
	"context"

	"github.com/tu-usuario/finanzas-erp/internal/domain/entity"
	"github.com/tu-usuario/finanzas-erp/internal/domain/money"
)

// ItemRepository acceso al maestro de artículos y a su snapshot de valuación.
type ItemRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Item, error)
	List(ctx context.Context) ([]*entity.Item, error)
	Create(ctx context.Context, item *entity.Item) error
	// GetForUpdate lee el artículo bloqueando su fila (SELECT ... FOR UPDATE).
	// El bloqueo se mantiene hasta que termina la unidad de trabajo que lo pidió,
	// serializando todo read-modify-write sobre el mismo artículo.
	// Retorna domain.ErrNotFound (envuelto) si el artículo no existe.
	GetForUpdate(ctx context.Context, id string) (*entity.Item, error)
	// UpdateValuation persiste el snapshot (qty_on_hand, avg_cost) del artículo.
	UpdateValuation(ctx context.Context, id string, qtyOnHand int64, avgCost money.Rational) error
}
