package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/finanzas-erp/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo lecturas agregadas sobre el libro mayor.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// TrialBalance agrupa los asientos por (cuenta, moneda del comprobante) y suma
// debe y haber por separado. La división a decimal se hace en SQL con el
// denominador exacto de cada asiento; los numeradores nunca se mezclan entre
// denominadores distintos.
func (r *ReportRepo) TrialBalance(ctx context.Context) ([]repository.TrialBalanceRow, error) {
	query := `
		SELECT e.account_ref,
			t.currency_ref,
			COALESCE(SUM(CASE WHEN e.val_num > 0 THEN e.val_num::numeric / e.val_denom ELSE 0 END), 0) AS total_debit,
			COALESCE(SUM(CASE WHEN e.val_num < 0 THEN -e.val_num::numeric / e.val_denom ELSE 0 END), 0) AS total_credit
		FROM fin_journal_entries e
		JOIN fin_transactions t ON t.txn_id = e.txn_ref
		GROUP BY e.account_ref, t.currency_ref
		ORDER BY e.account_ref, t.currency_ref`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("trial balance: %w", err)
	}
	defer rows.Close()
	var out []repository.TrialBalanceRow
	for rows.Next() {
		var row repository.TrialBalanceRow
		if err := rows.Scan(&row.AccountID, &row.CurrencyID, &row.TotalDebit, &row.TotalCredit); err != nil {
			return nil, fmt.Errorf("scan trial balance row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
