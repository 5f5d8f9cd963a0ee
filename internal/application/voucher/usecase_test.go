package voucher_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/finanzas-erp/internal/application/dto"
	"github.com/tu-usuario/finanzas-erp/internal/application/voucher"
	"github.com/tu-usuario/finanzas-erp/internal/domain"
	"github.com/tu-usuario/finanzas-erp/internal/domain/entity"
	"github.com/tu-usuario/finanzas-erp/internal/domain/ledger"
	"github.com/tu-usuario/finanzas-erp/internal/domain/repository"
)

// Fakes en memoria del escritor de transacciones y el plan de cuentas.
// Run trabaja sobre un snapshot del log y solo lo publica si fn no falla.

type memLedger struct {
	txns     []entity.Transaction
	entries  []entity.JournalEntry
	accounts map[string]*entity.Account
}

type memTxRunner struct{ l *memLedger }

func (r *memTxRunner) Run(ctx context.Context, fn func(
	txnRepo repository.TransactionRepository,
	accountRepo repository.AccountRepository,
) error) error {
	stage := &memLedger{
		txns:     append([]entity.Transaction{}, r.l.txns...),
		entries:  append([]entity.JournalEntry{}, r.l.entries...),
		accounts: r.l.accounts,
	}
	if err := fn(&memTxnRepo{l: stage}, &memAccountRepo{l: stage}); err != nil {
		return err
	}
	r.l.txns = stage.txns
	r.l.entries = stage.entries
	return nil
}

type memTxnRepo struct{ l *memLedger }

func (r *memTxnRepo) CreateWithEntries(_ context.Context, txn *entity.Transaction, entries []entity.JournalEntry) error {
	txn.ID = uuid.NewString()
	r.l.txns = append(r.l.txns, *txn)
	for i := range entries {
		entries[i].ID = uuid.NewString()
		entries[i].TransactionID = txn.ID
		r.l.entries = append(r.l.entries, entries[i])
	}
	return nil
}

func (r *memTxnRepo) ListRecent(_ context.Context, limit int) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for i := len(r.l.txns) - 1; i >= 0 && len(out) < limit; i-- {
		cp := r.l.txns[i]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memTxnRepo) ListEntries(_ context.Context, txnIDs []string) ([]entity.JournalEntry, error) {
	ids := make(map[string]bool, len(txnIDs))
	for _, id := range txnIDs {
		ids[id] = true
	}
	var out []entity.JournalEntry
	for _, e := range r.l.entries {
		if ids[e.TransactionID] {
			out = append(out, e)
		}
	}
	return out, nil
}

type memAccountRepo struct{ l *memLedger }

func (r *memAccountRepo) GetByID(_ context.Context, id string) (*entity.Account, error) {
	acc, ok := r.l.accounts[id]
	if !ok {
		return nil, fmt.Errorf("cuenta %s: %w", id, domain.ErrNotFound)
	}
	return acc, nil
}

func (r *memAccountRepo) GetByIDs(_ context.Context, ids []string) (map[string]*entity.Account, error) {
	out := make(map[string]*entity.Account, len(ids))
	for _, id := range ids {
		if acc, ok := r.l.accounts[id]; ok {
			out[id] = acc
		}
	}
	return out, nil
}

func (r *memAccountRepo) List(_ context.Context) ([]*entity.Account, error) { return nil, nil }
func (r *memAccountRepo) Create(_ context.Context, _ *entity.Account) error { return nil }
func (r *memAccountRepo) Delete(_ context.Context, _ string) error          { return nil }
func (r *memAccountRepo) CountChildren(_ context.Context, _ string) (int64, error) { return 0, nil }
func (r *memAccountRepo) CountEntries(_ context.Context, _ string) (int64, error)  { return 0, nil }

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func nuevoEscenario() (*memLedger, *voucher.UseCase) {
	l := &memLedger{
		accounts: map[string]*entity.Account{
			"acc-caja":   {ID: "acc-caja", Code: "1001", Title: "Caja", Category: entity.CategoryAsset},
			"acc-banco":  {ID: "acc-banco", Code: "1002", Title: "Bancos", Category: entity.CategoryAsset},
			"acc-padre":  {ID: "acc-padre", Code: "1000", Title: "Activo", Category: entity.CategoryAsset, IsPlaceholder: true},
			"acc-gastos": {ID: "acc-gastos", Code: "6601", Title: "Gastos generales", Category: entity.CategoryExpense},
		},
	}
	runner := &memTxRunner{l: l}
	uc := voucher.NewUseCase(runner, &memTxnRepo{l: l}, 100)
	return l, uc
}

func TestSubmit_ComprobanteBalanceado(t *testing.T) {
	l, uc := nuevoEscenario()

	id, err := uc.Submit(context.Background(), dto.SubmitVoucherRequest{
		CurrencyID:  "cny",
		PostingDate: "2025-11-20",
		Summary:     "Pago de gastos",
		Entries: []dto.VoucherLineRequest{
			{AccountID: "acc-gastos", Memo: "Papelería", Type: ledger.Debit, Amount: dec("100.50")},
			{AccountID: "acc-caja", Memo: "Salida de caja", Type: ledger.Credit, Amount: dec("100.50")},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	require.Len(t, l.txns, 1)
	require.Len(t, l.entries, 2)

	var suma int64
	for _, e := range l.entries {
		assert.Equal(t, id, e.TransactionID)
		assert.Equal(t, int64(100), e.Value.Denom)
		assert.Equal(t, e.Value, e.Qty, "en comprobantes manuales la cantidad replica el monto")
		suma += e.Value.Num
	}
	assert.Zero(t, suma, "el comprobante cuadra a cero")
}

func TestSubmit_Descuadrado(t *testing.T) {
	l, uc := nuevoEscenario()

	_, err := uc.Submit(context.Background(), dto.SubmitVoucherRequest{
		CurrencyID:  "cny",
		PostingDate: "2025-11-20",
		Summary:     "Descuadre",
		Entries: []dto.VoucherLineRequest{
			{AccountID: "acc-gastos", Type: ledger.Debit, Amount: dec("100.00")},
			{AccountID: "acc-caja", Type: ledger.Credit, Amount: dec("99.99")},
		},
	})

	var imbalance *ledger.ImbalanceError
	require.ErrorAs(t, err, &imbalance)
	assert.True(t, imbalance.Debit.Equal(dec("100.00")))
	assert.True(t, imbalance.Credit.Equal(dec("99.99")))
	assert.Empty(t, l.txns, "nada debe persistirse")
	assert.Empty(t, l.entries)
}

func TestSubmit_FechaInvalida(t *testing.T) {
	_, uc := nuevoEscenario()

	_, err := uc.Submit(context.Background(), dto.SubmitVoucherRequest{
		CurrencyID:  "cny",
		PostingDate: "20-11-2025",
		Entries: []dto.VoucherLineRequest{
			{AccountID: "acc-gastos", Type: ledger.Debit, Amount: dec("10")},
			{AccountID: "acc-caja", Type: ledger.Credit, Amount: dec("10")},
		},
	})
	var validation *ledger.ValidationError
	assert.ErrorAs(t, err, &validation)
}

func TestSubmit_CuentaInexistente(t *testing.T) {
	l, uc := nuevoEscenario()

	_, err := uc.Submit(context.Background(), dto.SubmitVoucherRequest{
		CurrencyID:  "cny",
		PostingDate: "2025-11-20",
		Entries: []dto.VoucherLineRequest{
			{AccountID: "acc-fantasma", Type: ledger.Debit, Amount: dec("10")},
			{AccountID: "acc-caja", Type: ledger.Credit, Amount: dec("10")},
		},
	})
	var unknown *ledger.UnknownAccountError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "acc-fantasma", unknown.AccountID)
	assert.Empty(t, l.txns)
}

func TestSubmit_CuentaPlaceholder(t *testing.T) {
	_, uc := nuevoEscenario()

	_, err := uc.Submit(context.Background(), dto.SubmitVoucherRequest{
		CurrencyID:  "cny",
		PostingDate: "2025-11-20",
		Entries: []dto.VoucherLineRequest{
			{AccountID: "acc-padre", Type: ledger.Debit, Amount: dec("10")},
			{AccountID: "acc-caja", Type: ledger.Credit, Amount: dec("10")},
		},
	})
	var nonPostable *ledger.NonPostableAccountError
	require.ErrorAs(t, err, &nonPostable)
	assert.Equal(t, "acc-padre", nonPostable.AccountID)
}

func TestListRecent_ArmaTotalesYAsientos(t *testing.T) {
	_, uc := nuevoEscenario()

	id1, err := uc.Submit(context.Background(), dto.SubmitVoucherRequest{
		CurrencyID:  "cny",
		PostingDate: "2025-11-20",
		Summary:     "Primero",
		Entries: []dto.VoucherLineRequest{
			{AccountID: "acc-gastos", Type: ledger.Debit, Amount: dec("40.00")},
			{AccountID: "acc-caja", Type: ledger.Credit, Amount: dec("40.00")},
		},
	})
	require.NoError(t, err)
	id2, err := uc.Submit(context.Background(), dto.SubmitVoucherRequest{
		CurrencyID:  "cny",
		PostingDate: "2025-11-21",
		Summary:     "Segundo",
		Entries: []dto.VoucherLineRequest{
			{AccountID: "acc-banco", Type: ledger.Debit, Amount: dec("60.00")},
			{AccountID: "acc-caja", Type: ledger.Credit, Amount: dec("60.00")},
		},
	})
	require.NoError(t, err)

	out, err := uc.ListRecent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, out, 2)

	// Más reciente primero
	assert.Equal(t, id2, out[0].ID)
	assert.Equal(t, id1, out[1].ID)
	assert.True(t, out[0].TotalAmount.Equal(dec("60.00")), "el total es la suma del debe")
	assert.True(t, out[1].TotalAmount.Equal(dec("40.00")))
	assert.Len(t, out[0].Entries, 2)
	assert.Equal(t, "2025-11-21", out[0].PostingDate)
}
