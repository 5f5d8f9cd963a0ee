package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/finanzas-erp/internal/domain/entity"
	"github.com/tu-usuario/finanzas-erp/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo log append-only de movimientos de inventario sobre PostgreSQL.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento. Asigna el ID si no viene puesto.
func (r *MovementRepo) Create(ctx context.Context, mov *entity.InventoryMovement) error {
	if mov.ID == "" {
		mov.ID = uuid.NewString()
	}
	if mov.CreatedAt.IsZero() {
		mov.CreatedAt = time.Now()
	}
	query := `
		INSERT INTO inv_movements (movement_id, item_ref, movement_type, quantity,
			unit_cost_num, unit_cost_denom, movement_date, txn_ref, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query, mov.ID, mov.ItemID, mov.Type, mov.Quantity,
		mov.UnitCost.Num, mov.UnitCost.Denom, mov.Date, nullable(mov.TransactionID), mov.CreatedAt)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// ListByItem devuelve los movimientos de un artículo, el más reciente primero.
func (r *MovementRepo) ListByItem(ctx context.Context, itemID string, limit int) ([]*entity.InventoryMovement, error) {
	if limit <= 0 {
		limit = 100
	}
	query := `
		SELECT movement_id, item_ref, movement_type, quantity,
			unit_cost_num, unit_cost_denom, movement_date, COALESCE(txn_ref, ''), created_at
		FROM inv_movements
		WHERE item_ref = $1
		ORDER BY created_at DESC
		LIMIT $2`
	rows, err := r.q.Query(ctx, query, itemID, limit)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var out []*entity.InventoryMovement
	for rows.Next() {
		var m entity.InventoryMovement
		if err := rows.Scan(&m.ID, &m.ItemID, &m.Type, &m.Quantity,
			&m.UnitCost.Num, &m.UnitCost.Denom, &m.Date, &m.TransactionID, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}
