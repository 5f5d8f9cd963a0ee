package voucher

import (
	"context"
	"time"

	"github.com/tu-usuario/finanzas-erp/internal/application/dto"
	"github.com/tu-usuario/finanzas-erp/internal/domain/ledger"
	"github.com/tu-usuario/finanzas-erp/internal/domain/money"
	"github.com/tu-usuario/finanzas-erp/internal/domain/repository"
)

// UseCase registro y consulta de comprobantes manuales.
// El camino de escritura es validar (ledger.Prepare) y confirmar atómicamente;
// la validación ocurre dentro de la unidad de trabajo para que la resolución de
// cuentas y la escritura vean el mismo estado.
type UseCase struct {
	txRunner  TxRunner
	txnRepo   repository.TransactionRepository // lecturas fuera de transacción
	precision int64
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner TxRunner, txnRepo repository.TransactionRepository, precision int64) *UseCase {
	return &UseCase{txRunner: txRunner, txnRepo: txnRepo, precision: precision}
}

// Submit valida y confirma un comprobante manual. Devuelve el ID asignado.
// Cualquier error deja el libro mayor intacto: no hay confirmación parcial de asientos.
func (uc *UseCase) Submit(ctx context.Context, in dto.SubmitVoucherRequest) (string, error) {
	date, err := time.Parse("2006-01-02", in.PostingDate)
	if err != nil {
		return "", &ledger.ValidationError{Reason: "fecha de imputación inválida: " + in.PostingDate}
	}

	lines := make([]ledger.Line, 0, len(in.Entries))
	for _, e := range in.Entries {
		lines = append(lines, ledger.Line{
			AccountID: e.AccountID,
			Memo:      e.Memo,
			Type:      e.Type,
			Amount:    e.Amount,
		})
	}

	var txnID string
	err = uc.txRunner.Run(ctx, func(
		txnRepo repository.TransactionRepository,
		accountRepo repository.AccountRepository,
	) error {
		accounts, err := accountRepo.GetByIDs(ctx, accountIDs(lines))
		if err != nil {
			return err
		}
		txn, entries, err := ledger.Prepare(in.CurrencyID, date, in.Summary, "", uc.precision, lines, accounts)
		if err != nil {
			return err
		}
		// Comprobante manual en moneda única: la cantidad replica el monto
		for i := range entries {
			entries[i].Qty = entries[i].Value
		}
		if err := txnRepo.CreateWithEntries(ctx, txn, entries); err != nil {
			return err
		}
		txnID = txn.ID
		return nil
	})
	if err != nil {
		return "", err
	}
	return txnID, nil
}

// ListRecent devuelve los comprobantes más recientes con sus asientos y el
// total del debe de cada uno.
func (uc *UseCase) ListRecent(ctx context.Context, limit int) ([]dto.TransactionResponse, error) {
	if limit <= 0 {
		limit = 50
	}
	txns, err := uc.txnRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	if len(txns) == 0 {
		return []dto.TransactionResponse{}, nil
	}

	ids := make([]string, 0, len(txns))
	for _, t := range txns {
		ids = append(ids, t.ID)
	}
	entries, err := uc.txnRepo.ListEntries(ctx, ids)
	if err != nil {
		return nil, err
	}

	byTxn := make(map[string][]dto.JournalEntryResponse, len(txns))
	totals := make(map[string]int64, len(txns))
	for _, e := range entries {
		byTxn[e.TransactionID] = append(byTxn[e.TransactionID], dto.JournalEntryResponse{
			ID:        e.ID,
			AccountID: e.AccountID,
			Memo:      e.Memo,
			Amount:    e.Value.Decimal(),
			ValNum:    e.Value.Num,
			ValDenom:  e.Value.Denom,
		})
		if e.Value.Num > 0 {
			totals[e.TransactionID] += e.Value.Num
		}
	}

	out := make([]dto.TransactionResponse, 0, len(txns))
	for _, t := range txns {
		total := money.Rational{Num: totals[t.ID], Denom: uc.precision}.Decimal()
		out = append(out, dto.TransactionResponse{
			ID:          t.ID,
			CurrencyID:  t.CurrencyID,
			PostingDate: t.PostingDate.Format("2006-01-02"),
			Summary:     t.Summary,
			DocNumber:   t.DocNumber,
			TotalAmount: total,
			Entries:     byTxn[t.ID],
		})
	}
	return out, nil
}

func accountIDs(lines []ledger.Line) []string {
	seen := make(map[string]bool, len(lines))
	ids := make([]string, 0, len(lines))
	for _, l := range lines {
		if l.AccountID == "" || seen[l.AccountID] {
			continue
		}
		seen[l.AccountID] = true
		ids = append(ids, l.AccountID)
	}
	return ids
}
