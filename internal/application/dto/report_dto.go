package dto

import "github.com/shopspring/decimal"

// CurrencyBalance totales de una cuenta en una moneda.
type CurrencyBalance struct {
	CurrencyID string          `json:"currency_id"`
	Symbol     string          `json:"symbol"`
	Debit      decimal.Decimal `json:"debit"`
	Credit     decimal.Decimal `json:"credit"`
	Net        decimal.Decimal `json:"net"`
}

// TrialBalanceAccount cuenta del balance de comprobación: puede acumular
// saldos en varias monedas, una entrada por moneda operada.
type TrialBalanceAccount struct {
	AccountID string            `json:"account_id"`
	Code      string            `json:"account_code,omitempty"`
	Title     string            `json:"title"`
	Category  string            `json:"category"`
	ParentID  string            `json:"parent_account_id,omitempty"`
	Balances  []CurrencyBalance `json:"balances"`
}
