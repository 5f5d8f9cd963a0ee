package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/finanzas-erp/internal/domain"
	"github.com/tu-usuario/finanzas-erp/internal/domain/entity"
	"github.com/tu-usuario/finanzas-erp/internal/domain/money"
	"github.com/tu-usuario/finanzas-erp/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación de ItemRepository sobre PostgreSQL (usable con pool o tx).
// El snapshot de valuación se guarda como par exacto (avg_cost_num, avg_cost_denom);
// nunca como flotante.
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

const itemColumns = `item_id, item_code, item_name, unit_of_measure, costing_method,
	inventory_account_ref, cogs_account_ref, sales_account_ref,
	qty_on_hand, avg_cost_num, avg_cost_denom, created_at, updated_at`

func scanItem(row pgx.Row) (*entity.Item, error) {
	var it entity.Item
	var invAcc, cogsAcc, salesAcc sql.NullString
	err := row.Scan(&it.ID, &it.Code, &it.Name, &it.UnitOfMeasure, &it.CostingMethod,
		&invAcc, &cogsAcc, &salesAcc,
		&it.QtyOnHand, &it.AvgCost.Num, &it.AvgCost.Denom, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return nil, err
	}
	it.InventoryAccountID = invAcc.String
	it.COGSAccountID = cogsAcc.String
	it.SalesAccountID = salesAcc.String
	return &it, nil
}

// GetByID obtiene un artículo por ID.
func (r *ItemRepo) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM inv_items WHERE item_id = $1`
	item, err := scanItem(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("artículo %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

// List lista el maestro de artículos ordenado por código.
func (r *ItemRepo) List(ctx context.Context) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM inv_items ORDER BY item_code`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var out []*entity.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

// Create persiste un artículo nuevo.
func (r *ItemRepo) Create(ctx context.Context, it *entity.Item) error {
	query := `
		INSERT INTO inv_items (item_id, item_code, item_name, unit_of_measure, costing_method,
			inventory_account_ref, cogs_account_ref, sales_account_ref,
			qty_on_hand, avg_cost_num, avg_cost_denom, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query, it.ID, it.Code, it.Name, it.UnitOfMeasure, it.CostingMethod,
		nullable(it.InventoryAccountID), nullable(it.COGSAccountID), nullable(it.SalesAccountID),
		it.QtyOnHand, it.AvgCost.Num, it.AvgCost.Denom, it.CreatedAt, it.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create item: %w", err)
	}
	return nil
}

// GetForUpdate lee el artículo bloqueando su fila (SELECT ... FOR UPDATE).
// El bloqueo vive hasta el fin de la transacción del Querier.
func (r *ItemRepo) GetForUpdate(ctx context.Context, id string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM inv_items WHERE item_id = $1 FOR UPDATE`
	item, err := scanItem(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("artículo %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get item for update: %w", err)
	}
	return item, nil
}

// UpdateValuation persiste el snapshot (qty_on_hand, avg_cost) del artículo.
func (r *ItemRepo) UpdateValuation(ctx context.Context, id string, qtyOnHand int64, avgCost money.Rational) error {
	query := `
		UPDATE inv_items
		SET qty_on_hand = $2, avg_cost_num = $3, avg_cost_denom = $4, updated_at = now()
		WHERE item_id = $1`
	tag, err := r.q.Exec(ctx, query, id, qtyOnHand, avgCost.Num, avgCost.Denom)
	if err != nil {
		return fmt.Errorf("update valuation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("artículo %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
