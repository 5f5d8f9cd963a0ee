package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/finanzas-erp/internal/domain/entity"
	"github.com/tu-usuario/finanzas-erp/internal/domain/money"
)

// Direcciones de un asiento.
const (
	Debit  = "DEBIT"
	Credit = "CREDIT"
)

// Line línea candidata de un comprobante: cuenta, dirección y monto positivo.
// Qty es opcional; si el denominador es cero se persiste {0, 1} (asiento
// puramente monetario).
type Line struct {
	AccountID string
	Memo      string
	Type      string // DEBIT | CREDIT
	Amount    decimal.Decimal
	Qty       money.Rational
}

// Prepare valida un juego de líneas y construye el comprobante con sus asientos
// balanceados, listo para el escritor de transacciones. No persiste nada.
//
// Contrato (servicio de dominio puro, las cuentas llegan resueltas por el caller):
//   - menos de dos líneas, moneda ausente o monto <= 0  -> ValidationError
//   - monto que redondea a numerador 0 en la precisión  -> PrecisionUnderflowError
//   - cuenta inexistente                                -> UnknownAccountError
//   - cuenta placeholder                                -> NonPostableAccountError
//   - suma de numeradores firmados distinta de cero     -> ImbalanceError (con ambos totales)
//   - total del debe no estrictamente positivo          -> ValidationError
func Prepare(
	currencyID string,
	date time.Time,
	summary, docNumber string,
	precision int64,
	lines []Line,
	accounts map[string]*entity.Account,
) (*entity.Transaction, []entity.JournalEntry, error) {
	if len(lines) < 2 {
		return nil, nil, &ValidationError{Reason: "el comprobante necesita al menos dos asientos"}
	}
	if currencyID == "" {
		return nil, nil, &ValidationError{Reason: "falta la moneda del comprobante"}
	}
	if date.IsZero() {
		return nil, nil, &ValidationError{Reason: "falta la fecha de imputación"}
	}

	entries := make([]entity.JournalEntry, 0, len(lines))
	var sumNum, totalDebit, totalCredit int64

	for _, line := range lines {
		if line.AccountID == "" {
			return nil, nil, &ValidationError{Reason: "asiento sin cuenta"}
		}
		if line.Type != Debit && line.Type != Credit {
			return nil, nil, &ValidationError{Reason: "dirección de asiento incorrecta: " + line.Type}
		}
		if !line.Amount.IsPositive() {
			return nil, nil, &ValidationError{Reason: "el monto del asiento debe ser mayor que cero"}
		}

		account, ok := accounts[line.AccountID]
		if !ok || account == nil {
			return nil, nil, &UnknownAccountError{AccountID: line.AccountID}
		}
		if !account.Postable() {
			return nil, nil, &NonPostableAccountError{AccountID: line.AccountID}
		}

		signed := line.Amount
		if line.Type == Credit {
			signed = signed.Neg()
		}
		value, err := money.FromDecimal(signed, precision)
		if err != nil {
			return nil, nil, &ValidationError{Reason: err.Error()}
		}
		// Monto visible que desaparece al redondear a la precisión de registro
		if value.IsZero() {
			return nil, nil, &PrecisionUnderflowError{Amount: line.Amount, Precision: precision}
		}

		sumNum += value.Num
		if value.Num > 0 {
			totalDebit += value.Num
		} else {
			totalCredit += -value.Num
		}

		qty := line.Qty
		if qty.Denom == 0 {
			qty = money.Rational{Num: 0, Denom: 1}
		}
		entries = append(entries, entity.JournalEntry{
			AccountID: line.AccountID,
			Memo:      line.Memo,
			Value:     value,
			Qty:       qty,
		})
	}

	if totalDebit <= 0 {
		return nil, nil, &ValidationError{Reason: "el total del debe debe ser mayor que cero"}
	}
	if sumNum != 0 {
		denom := decimal.NewFromInt(precision)
		return nil, nil, &ImbalanceError{
			Debit:  decimal.NewFromInt(totalDebit).Div(denom),
			Credit: decimal.NewFromInt(totalCredit).Div(denom),
		}
	}

	txn := &entity.Transaction{
		CurrencyID:  currencyID,
		PostingDate: date,
		Summary:     summary,
		DocNumber:   docNumber,
	}
	return txn, entries, nil
}
