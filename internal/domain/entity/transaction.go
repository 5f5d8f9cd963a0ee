package entity

import (
	"time"

	"github.com/tu-usuario/finanzas-erp/internal/domain/money"
)

// Transaction cabecera de un comprobante contable (凭证). Append-only: una vez
// confirmada nunca se modifica ni se elimina; las correcciones requieren
// comprobantes de reversa, fuera del alcance de este núcleo.
type Transaction struct {
	ID          string
	CurrencyID  string // commodity de la moneda de transacción
	PostingDate time.Time
	Summary     string
	DocNumber   string
	EntryDate   time.Time
}

// JournalEntry asiento/partida de un comprobante. Débito positivo, crédito negativo.
// Value es el monto firmado; Qty la cantidad firmada cuando el asiento también
// representa unidades (cero en asientos puramente monetarios).
// Invariante del comprobante: la suma de los numeradores firmados de todos sus
// asientos, al denominador común, es exactamente cero.
type JournalEntry struct {
	ID            string
	TransactionID string
	AccountID     string
	Memo          string
	Value         money.Rational
	Qty           money.Rational
}
