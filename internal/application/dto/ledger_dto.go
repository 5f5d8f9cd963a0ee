package dto

import "github.com/shopspring/decimal"

// VoucherLineRequest línea de un comprobante manual: cuenta, dirección y monto positivo.
type VoucherLineRequest struct {
	AccountID string          `json:"account_id"`
	Type      string          `json:"type"` // DEBIT | CREDIT
	Amount    decimal.Decimal `json:"amount"`
	Memo      string          `json:"memo,omitempty"`
}

// SubmitVoucherRequest body para POST /api/transactions.
type SubmitVoucherRequest struct {
	CurrencyID  string               `json:"currency_ref"`
	PostingDate string               `json:"posting_date"` // YYYY-MM-DD
	Summary     string               `json:"summary"`
	Entries     []VoucherLineRequest `json:"entries"`
}

// JournalEntryResponse asiento dentro de un comprobante listado.
type JournalEntryResponse struct {
	ID        string          `json:"id"`
	AccountID string          `json:"account_ref"`
	Memo      string          `json:"memo,omitempty"`
	Amount    decimal.Decimal `json:"amount"` // firmado: débito positivo, crédito negativo
	ValNum    int64           `json:"val_num"`
	ValDenom  int64           `json:"val_denom"`
}

// TransactionResponse comprobante con sus asientos.
type TransactionResponse struct {
	ID          string                 `json:"id"`
	CurrencyID  string                 `json:"currency_ref"`
	PostingDate string                 `json:"posting_date"`
	Summary     string                 `json:"summary"`
	DocNumber   string                 `json:"doc_number,omitempty"`
	TotalAmount decimal.Decimal        `json:"total_amount"` // suma del debe
	Entries     []JournalEntryResponse `json:"entries"`
}
