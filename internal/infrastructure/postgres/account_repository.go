package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/finanzas-erp/internal/domain"
	"github.com/tu-usuario/finanzas-erp/internal/domain/entity"
	"github.com/tu-usuario/finanzas-erp/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo implementación de AccountRepository sobre PostgreSQL (usable con pool o tx).
type AccountRepo struct {
	q Querier
}

// NewAccountRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAccountRepository(q Querier) *AccountRepo {
	return &AccountRepo{q: q}
}

const accountColumns = `account_id, account_code, title, category, account_description,
	commodity_ref, parent_account_id, is_placeholder, created_at`

func scanAccount(row pgx.Row) (*entity.Account, error) {
	var a entity.Account
	var code, description, commodityID, parentID sql.NullString
	err := row.Scan(&a.ID, &code, &a.Title, &a.Category, &description,
		&commodityID, &parentID, &a.IsPlaceholder, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	a.Code = code.String
	a.Description = description.String
	a.CommodityID = commodityID.String
	a.ParentID = parentID.String
	return &a, nil
}

// GetByID obtiene una cuenta por ID.
func (r *AccountRepo) GetByID(ctx context.Context, id string) (*entity.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM fin_accounts WHERE account_id = $1`
	account, err := scanAccount(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("cuenta %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	return account, nil
}

// GetByIDs resuelve varias cuentas de una vez. Las inexistentes no aparecen en el mapa.
func (r *AccountRepo) GetByIDs(ctx context.Context, ids []string) (map[string]*entity.Account, error) {
	out := make(map[string]*entity.Account, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	query := `SELECT ` + accountColumns + ` FROM fin_accounts WHERE account_id = ANY($1)`
	rows, err := r.q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("get accounts: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		out[account.ID] = account
	}
	return out, rows.Err()
}

// List devuelve el plan de cuentas completo ordenado por código.
func (r *AccountRepo) List(ctx context.Context) ([]*entity.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM fin_accounts ORDER BY account_code, title`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()
	var out []*entity.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		out = append(out, account)
	}
	return out, rows.Err()
}

// Create persiste una cuenta nueva.
func (r *AccountRepo) Create(ctx context.Context, a *entity.Account) error {
	query := `
		INSERT INTO fin_accounts (account_id, account_code, title, category,
			account_description, commodity_ref, parent_account_id, is_placeholder, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query, a.ID, nullable(a.Code), a.Title, a.Category,
		nullable(a.Description), nullable(a.CommodityID), nullable(a.ParentID),
		a.IsPlaceholder, a.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create account: %w", err)
	}
	return nil
}

// Delete elimina una cuenta. Los guards de hijas/asientos van en el caso de uso.
func (r *AccountRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM fin_accounts WHERE account_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("cuenta %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// CountChildren cuenta las cuentas hijas directas.
func (r *AccountRepo) CountChildren(ctx context.Context, id string) (int64, error) {
	var n int64
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM fin_accounts WHERE parent_account_id = $1`, id).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count children: %w", err)
	}
	return n, nil
}

// CountEntries cuenta los asientos registrados contra la cuenta.
func (r *AccountRepo) CountEntries(ctx context.Context, id string) (int64, error) {
	var n int64
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM fin_journal_entries WHERE account_ref = $1`, id).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count entries: %w", err)
	}
	return n, nil
}
