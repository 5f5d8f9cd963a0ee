package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// TrialBalanceRow totales de una cuenta en una moneda: agregación pura sobre
// asientos ya validados, no impone invariantes propios.
type TrialBalanceRow struct {
	AccountID   string
	CurrencyID  string
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}

// ReportRepository lecturas agregadas sobre el libro mayor.
type ReportRepository interface {
	// TrialBalance agrupa los asientos confirmados por (cuenta, moneda de la
	// transacción) y suma debe y haber por separado.
	TrialBalance(ctx context.Context) ([]TrialBalanceRow, error)
}
