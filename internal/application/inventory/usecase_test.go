package inventory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/finanzas-erp/internal/application/dto"
	"github.com/tu-usuario/finanzas-erp/internal/application/inventory"
	"github.com/tu-usuario/finanzas-erp/internal/domain"
	"github.com/tu-usuario/finanzas-erp/internal/domain/entity"
	"github.com/tu-usuario/finanzas-erp/internal/domain/ledger"
	"github.com/tu-usuario/finanzas-erp/internal/domain/money"
	"github.com/tu-usuario/finanzas-erp/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: emulan el contrato del TxRunner de PostgreSQL.
// Run toma un mutex global (equivalente a serializar con FOR UPDATE), trabaja
// sobre un snapshot y solo lo publica en Commit; un error descarta todo.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	mu        sync.Mutex
	items     map[string]*entity.Item
	movements []entity.InventoryMovement
	txns      []entity.Transaction
	entries   []entity.JournalEntry
	accounts  map[string]*entity.Account
}

func (s *memStore) snapshot() *memStore {
	c := &memStore{
		items:    make(map[string]*entity.Item, len(s.items)),
		accounts: s.accounts,
	}
	for id, it := range s.items {
		cp := *it
		c.items[id] = &cp
	}
	c.movements = append([]entity.InventoryMovement{}, s.movements...)
	c.txns = append([]entity.Transaction{}, s.txns...)
	c.entries = append([]entity.JournalEntry{}, s.entries...)
	return c
}

func (s *memStore) commit(c *memStore) {
	s.items = c.items
	s.movements = c.movements
	s.txns = c.txns
	s.entries = c.entries
}

type memTxRunner struct{ store *memStore }

func (r *memTxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.ItemRepository,
	movRepo repository.MovementRepository,
	txnRepo repository.TransactionRepository,
	accountRepo repository.AccountRepository,
) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stage := r.store.snapshot()
	err := fn(&memItemRepo{s: stage}, &memMovementRepo{s: stage}, &memTxnRepo{s: stage}, &memAccountRepo{s: stage})
	if err != nil {
		return err // rollback: el snapshot se descarta
	}
	r.store.commit(stage)
	return nil
}

type memItemRepo struct{ s *memStore }

func (r *memItemRepo) GetByID(_ context.Context, id string) (*entity.Item, error) {
	it, ok := r.s.items[id]
	if !ok {
		return nil, fmt.Errorf("artículo %s: %w", id, domain.ErrNotFound)
	}
	cp := *it
	return &cp, nil
}

func (r *memItemRepo) List(_ context.Context) ([]*entity.Item, error) {
	out := make([]*entity.Item, 0, len(r.s.items))
	for _, it := range r.s.items {
		cp := *it
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memItemRepo) Create(_ context.Context, item *entity.Item) error {
	cp := *item
	r.s.items[item.ID] = &cp
	return nil
}

func (r *memItemRepo) GetForUpdate(ctx context.Context, id string) (*entity.Item, error) {
	// El bloqueo de fila lo emula el mutex del runner
	return r.GetByID(ctx, id)
}

func (r *memItemRepo) UpdateValuation(_ context.Context, id string, qtyOnHand int64, avgCost money.Rational) error {
	it, ok := r.s.items[id]
	if !ok {
		return fmt.Errorf("artículo %s: %w", id, domain.ErrNotFound)
	}
	it.QtyOnHand = qtyOnHand
	it.AvgCost = avgCost
	return nil
}

type memMovementRepo struct{ s *memStore }

func (r *memMovementRepo) Create(_ context.Context, mov *entity.InventoryMovement) error {
	cp := *mov
	cp.ID = uuid.NewString()
	r.s.movements = append(r.s.movements, cp)
	return nil
}

func (r *memMovementRepo) ListByItem(_ context.Context, itemID string, limit int) ([]*entity.InventoryMovement, error) {
	var out []*entity.InventoryMovement
	for i := range r.s.movements {
		if r.s.movements[i].ItemID == itemID {
			cp := r.s.movements[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}

type memTxnRepo struct{ s *memStore }

func (r *memTxnRepo) CreateWithEntries(_ context.Context, txn *entity.Transaction, entries []entity.JournalEntry) error {
	txn.ID = uuid.NewString()
	r.s.txns = append(r.s.txns, *txn)
	for i := range entries {
		entries[i].ID = uuid.NewString()
		entries[i].TransactionID = txn.ID
		r.s.entries = append(r.s.entries, entries[i])
	}
	return nil
}

func (r *memTxnRepo) ListRecent(_ context.Context, limit int) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for i := len(r.s.txns) - 1; i >= 0 && len(out) < limit; i-- {
		cp := r.s.txns[i]
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
	for _, e := range r.s.entries {
		if ids[e.TransactionID] {
			out = append(out, e)
		}
	}
	return out, nil
}

type memAccountRepo struct{ s *memStore }

func (r *memAccountRepo) GetByID(_ context.Context, id string) (*entity.Account, error) {
	acc, ok := r.s.accounts[id]
	if !ok {
		return nil, fmt.Errorf("cuenta %s: %w", id, domain.ErrNotFound)
	}
	return acc, nil
}

func (r *memAccountRepo) GetByIDs(_ context.Context, ids []string) (map[string]*entity.Account, error) {
	out := make(map[string]*entity.Account, len(ids))
	for _, id := range ids {
		if acc, ok := r.s.accounts[id]; ok {
			out[id] = acc
		}
	}
	return out, nil
}

func (r *memAccountRepo) List(_ context.Context) ([]*entity.Account, error) {
	out := make([]*entity.Account, 0, len(r.s.accounts))
	for _, acc := range r.s.accounts {
		out = append(out, acc)
	}
	return out, nil
}

func (r *memAccountRepo) Create(_ context.Context, account *entity.Account) error {
	r.s.accounts[account.ID] = account
	return nil
}

func (r *memAccountRepo) Delete(_ context.Context, id string) error {
	delete(r.s.accounts, id)
	return nil
}

func (r *memAccountRepo) CountChildren(_ context.Context, id string) (int64, error) {
	var n int64
	for _, acc := range r.s.accounts {
		if acc.ParentID == id {
			n++
		}
	}
	return n, nil
}

func (r *memAccountRepo) CountEntries(_ context.Context, id string) (int64, error) {
	var n int64
	for _, e := range r.s.entries {
		if e.AccountID == id {
			n++
		}
	}
	return n, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Armado del escenario
// ──────────────────────────────────────────────────────────────────────────────

const (
	monedaBase = "cny"
	monedaUSD  = "usd"
	precision  = int64(100)
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func nuevoEscenario() (*memStore, *inventory.ValuationUseCase) {
	store := &memStore{
		items: map[string]*entity.Item{},
		accounts: map[string]*entity.Account{
			"acc-inv":    {ID: "acc-inv", Code: "1401", Title: "Existencias", Category: entity.CategoryAsset},
			"acc-pago":   {ID: "acc-pago", Code: "2201", Title: "Proveedores", Category: entity.CategoryLiability},
			"acc-ventas": {ID: "acc-ventas", Code: "6001", Title: "Ingresos por ventas", Category: entity.CategoryIncome},
			"acc-cogs":   {ID: "acc-cogs", Code: "6401", Title: "Costo de ventas", Category: entity.CategoryExpense},
			"acc-cobro":  {ID: "acc-cobro", Code: "1122", Title: "Clientes", Category: entity.CategoryAsset},
		},
	}
	uc := inventory.NewValuationUseCase(&memTxRunner{store: store}, inventory.Config{
		BaseCurrencyID: monedaBase,
		Precision:      precision,
	})
	return store, uc
}

func agregarItem(store *memStore, id, code string, qty int64, avgCost string) {
	avg, err := money.FromDecimal(dec(avgCost), precision)
	if err != nil {
		panic(err)
	}
	store.items[id] = &entity.Item{
		ID:                 id,
		Code:               code,
		Name:               "Artículo " + code,
		UnitOfMeasure:      "unidad",
		CostingMethod:      entity.CostingAverage,
		InventoryAccountID: "acc-inv",
		COGSAccountID:      "acc-cogs",
		SalesAccountID:     "acc-ventas",
		QtyOnHand:          qty,
		AvgCost:            avg,
	}
}

func sumaNumeradores(t *testing.T, store *memStore, txnID string) int64 {
	t.Helper()
	var suma int64
	var n int
	for _, e := range store.entries {
		if e.TransactionID == txnID {
			require.Equal(t, precision, e.Value.Denom, "denominador común dentro del comprobante")
			suma += e.Value.Num
			n++
		}
	}
	require.Greater(t, n, 1, "el comprobante debe tener al menos dos asientos")
	return suma
}

// ──────────────────────────────────────────────────────────────────────────────
// Entradas (inbound)
// ──────────────────────────────────────────────────────────────────────────────

// Escenario D: entrada de 10 unidades a 8.00 USD con tasa 7.0 sobre un artículo
// vacío -> avg_cost 56.00 en moneda base, qty_on_hand 10.
func TestInbound_MonedaExtranjera_ValuaEnBase(t *testing.T) {
	store, uc := nuevoEscenario()
	agregarItem(store, "item-a", "A-001", 0, "0")

	rate := dec("7.0")
	res, err := uc.Inbound(context.Background(), dto.InboundRequest{
		SupplierID:       "prov-1",
		Date:             "2025-11-20",
		PaymentAccountID: "acc-pago",
		CurrencyID:       monedaUSD,
		ExchangeRate:     &rate,
		Lines: []dto.InboundLineRequest{
			{ItemID: "item-a", Quantity: 10, UnitCost: dec("8.00")},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, res)

	item := store.items["item-a"]
	assert.Equal(t, int64(10), item.QtyOnHand)
	assert.True(t, item.AvgCost.Decimal().Equal(dec("56.00")),
		"promedio en base: 8.00 × 7.0 = 56.00, se obtuvo %s", item.AvgCost)

	// El comprobante queda en moneda de transacción (USD) y cuadra a cero
	assert.True(t, res.TotalCost.Equal(dec("80.00")), "costo total en USD")
	assert.Zero(t, sumaNumeradores(t, store, res.TransactionID))

	// El movimiento registra el costo unitario en moneda base
	require.Len(t, store.movements, 1)
	mov := store.movements[0]
	assert.Equal(t, entity.MovementTypeIN, mov.Type)
	assert.Equal(t, int64(10), mov.Quantity)
	assert.True(t, mov.UnitCost.Decimal().Equal(dec("56.00")))
	assert.Equal(t, res.TransactionID, mov.TransactionID)
}

// El promedio ponderado pondera existencia previa y entrada nueva.
func TestInbound_PromedioPonderadoMovil(t *testing.T) {
	store, uc := nuevoEscenario()
	agregarItem(store, "item-a", "A-001", 10, "5.00")

	_, err := uc.Inbound(context.Background(), dto.InboundRequest{
		SupplierID:       "prov-1",
		Date:             "2025-11-20",
		PaymentAccountID: "acc-pago",
		CurrencyID:       monedaBase,
		Lines: []dto.InboundLineRequest{
			{ItemID: "item-a", Quantity: 10, UnitCost: dec("7.00")},
		},
	})
	require.NoError(t, err)

	item := store.items["item-a"]
	assert.Equal(t, int64(20), item.QtyOnHand)
	// (10×5.00 + 10×7.00) / 20 = 6.00
	assert.True(t, item.AvgCost.Decimal().Equal(dec("6.00")), "se obtuvo %s", item.AvgCost)
}

// Cantidad cero o negativa se rechaza antes de abrir la unidad de trabajo.
func TestInbound_RechazaCantidadNoPositiva(t *testing.T) {
	store, uc := nuevoEscenario()
	agregarItem(store, "item-a", "A-001", 0, "0")

	for _, qty := range []int64{0, -5} {
		_, err := uc.Inbound(context.Background(), dto.InboundRequest{
			SupplierID:       "prov-1",
			Date:             "2025-11-20",
			PaymentAccountID: "acc-pago",
			CurrencyID:       monedaBase,
			Lines: []dto.InboundLineRequest{
				{ItemID: "item-a", Quantity: qty, UnitCost: dec("5.00")},
			},
		})
		var validation *ledger.ValidationError
		assert.ErrorAs(t, err, &validation, "cantidad %d debe rechazarse", qty)
	}
	assert.Empty(t, store.txns, "nada debe persistirse")
}

// Un artículo inexistente a mitad del lote aborta el lote entero: ni las líneas
// anteriores ni sus movimientos quedan confirmados.
func TestInbound_ArticuloInexistente_AbortaLoteCompleto(t *testing.T) {
	store, uc := nuevoEscenario()
	agregarItem(store, "item-a", "A-001", 5, "4.00")

	_, err := uc.Inbound(context.Background(), dto.InboundRequest{
		SupplierID:       "prov-1",
		Date:             "2025-11-20",
		PaymentAccountID: "acc-pago",
		CurrencyID:       monedaBase,
		Lines: []dto.InboundLineRequest{
			{ItemID: "item-a", Quantity: 10, UnitCost: dec("5.00")},
			{ItemID: "item-fantasma", Quantity: 3, UnitCost: dec("2.00")},
		},
	})
	require.ErrorIs(t, err, domain.ErrNotFound)

	item := store.items["item-a"]
	assert.Equal(t, int64(5), item.QtyOnHand, "la primera línea no debe quedar confirmada")
	assert.True(t, item.AvgCost.Decimal().Equal(dec("4.00")))
	assert.Empty(t, store.txns)
	assert.Empty(t, store.movements)
	assert.Empty(t, store.entries)
}

// Artículo sin cuenta de existencias configurada: aborta el lote.
func TestInbound_SinCuentaDeExistencias(t *testing.T) {
	store, uc := nuevoEscenario()
	agregarItem(store, "item-a", "A-001", 0, "0")
	store.items["item-a"].InventoryAccountID = ""

	_, err := uc.Inbound(context.Background(), dto.InboundRequest{
		SupplierID:       "prov-1",
		Date:             "2025-11-20",
		PaymentAccountID: "acc-pago",
		CurrencyID:       monedaBase,
		Lines: []dto.InboundLineRequest{
			{ItemID: "item-a", Quantity: 10, UnitCost: dec("5.00")},
		},
	})
	var missing *ledger.MissingConfigurationError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "inventory_account_ref", missing.Field)
	assert.Empty(t, store.txns)
}

// Moneda distinta de la base sin tasa explícita: rechazo.
func TestInbound_MonedaExtranjeraSinTasa(t *testing.T) {
	store, uc := nuevoEscenario()
	agregarItem(store, "item-a", "A-001", 0, "0")

	_, err := uc.Inbound(context.Background(), dto.InboundRequest{
		SupplierID:       "prov-1",
		Date:             "2025-11-20",
		PaymentAccountID: "acc-pago",
		CurrencyID:       monedaUSD,
		Lines: []dto.InboundLineRequest{
			{ItemID: "item-a", Quantity: 10, UnitCost: dec("8.00")},
		},
	})
	var validation *ledger.ValidationError
	assert.ErrorAs(t, err, &validation)
	assert.Empty(t, store.txns)
}

// Las líneas se procesan en orden canónico por ID de artículo aunque el caller
// las mande desordenadas (orden de adquisición de bloqueos).
func TestInbound_OrdenCanonicoDeProcesamiento(t *testing.T) {
	store, uc := nuevoEscenario()
	agregarItem(store, "item-b", "B-001", 0, "0")
	agregarItem(store, "item-a", "A-001", 0, "0")

	_, err := uc.Inbound(context.Background(), dto.InboundRequest{
		SupplierID:       "prov-1",
		Date:             "2025-11-20",
		PaymentAccountID: "acc-pago",
		CurrencyID:       monedaBase,
		Lines: []dto.InboundLineRequest{
			{ItemID: "item-b", Quantity: 1, UnitCost: dec("1.00")},
			{ItemID: "item-a", Quantity: 1, UnitCost: dec("1.00")},
		},
	})
	require.NoError(t, err)
	require.Len(t, store.movements, 2)
	assert.Equal(t, "item-a", store.movements[0].ItemID)
	assert.Equal(t, "item-b", store.movements[1].ItemID)
}

// Convergencia concurrente: dos entradas simultáneas sobre el mismo artículo
// terminan, sin importar el orden de ejecución, en
// qty = Q0+q1+q2 y avg = (Q0·C0 + q1·c1 + q2·c2)/(Q0+q1+q2).
func TestInbound_ConcurrenciaConverge(t *testing.T) {
	store, uc := nuevoEscenario()
	agregarItem(store, "item-a", "A-001", 0, "0")

	entrada := func(unitCost string) dto.InboundRequest {
		return dto.InboundRequest{
			SupplierID:       "prov-1",
			Date:             "2025-11-20",
			PaymentAccountID: "acc-pago",
			CurrencyID:       monedaBase,
			Lines: []dto.InboundLineRequest{
				{ItemID: "item-a", Quantity: 10, UnitCost: dec(unitCost)},
			},
		}
	}

	var wg sync.WaitGroup
	errs := make([]error, 2)
	wg.Add(2)
	go func() { defer wg.Done(); _, errs[0] = uc.Inbound(context.Background(), entrada("8.00")) }()
	go func() { defer wg.Done(); _, errs[1] = uc.Inbound(context.Background(), entrada("6.00")) }()
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])

	item := store.items["item-a"]
	assert.Equal(t, int64(20), item.QtyOnHand)
	// (10×8.00 + 10×6.00) / 20 = 7.00 con cualquier intercalado
	assert.True(t, item.AvgCost.Decimal().Equal(dec("7.00")), "se obtuvo %s", item.AvgCost)
}

// ──────────────────────────────────────────────────────────────────────────────
// Salidas (outbound)
// ──────────────────────────────────────────────────────────────────────────────

// Escenario C: existencia 10, salida de 15 -> InsufficientStockError con
// disponible y solicitado; el artículo queda intacto.
func TestOutbound_StockInsuficiente(t *testing.T) {
	store, uc := nuevoEscenario()
	agregarItem(store, "item-a", "A-001", 10, "5.00")

	_, err := uc.Outbound(context.Background(), dto.OutboundRequest{
		CustomerID:        "cli-1",
		Date:              "2025-11-21",
		ReceivedAccountID: "acc-cobro",
		CurrencyID:        monedaBase,
		Lines: []dto.OutboundLineRequest{
			{ItemID: "item-a", Quantity: 15, UnitPrice: dec("9.00")},
		},
	})

	var insufficient *ledger.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, int64(10), insufficient.Available)
	assert.Equal(t, int64(15), insufficient.Requested)

	item := store.items["item-a"]
	assert.Equal(t, int64(10), item.QtyOnHand, "la existencia no debe cambiar")
	assert.Empty(t, store.txns)
	assert.Empty(t, store.movements)
}

// Una salida nunca recalcula el promedio: solo baja la cantidad.
func TestOutbound_CostoPromedioEstable(t *testing.T) {
	store, uc := nuevoEscenario()
	agregarItem(store, "item-a", "A-001", 10, "5.00")

	res, err := uc.Outbound(context.Background(), dto.OutboundRequest{
		CustomerID:        "cli-1",
		Date:              "2025-11-21",
		ReceivedAccountID: "acc-cobro",
		CurrencyID:        monedaBase,
		Lines: []dto.OutboundLineRequest{
			{ItemID: "item-a", Quantity: 4, UnitPrice: dec("9.00")},
		},
	})
	require.NoError(t, err)

	item := store.items["item-a"]
	assert.Equal(t, int64(6), item.QtyOnHand)
	assert.True(t, item.AvgCost.Decimal().Equal(dec("5.00")), "el promedio no cambia en salidas")

	assert.True(t, res.TotalSales.Equal(dec("36.00")))
	assert.True(t, res.TotalCogs.Equal(dec("20.00")), "4 × 5.00 al promedio vigente")

	// El movimiento OUT sale al promedio vigente y referencia el comprobante de costo
	require.Len(t, store.movements, 1)
	mov := store.movements[0]
	assert.Equal(t, entity.MovementTypeOUT, mov.Type)
	assert.True(t, mov.UnitCost.Decimal().Equal(dec("5.00")))
	assert.Equal(t, res.CogsTransactionID, mov.TransactionID)
}

// La salida produce dos comprobantes independientes, cada uno cuadrado a cero:
// ingresos en la moneda de la venta y costo estrictamente en moneda base.
func TestOutbound_DosComprobantesIndependientes(t *testing.T) {
	store, uc := nuevoEscenario()
	agregarItem(store, "item-a", "A-001", 10, "5.00")

	res, err := uc.Outbound(context.Background(), dto.OutboundRequest{
		CustomerID:        "cli-1",
		Date:              "2025-11-21",
		ReceivedAccountID: "acc-cobro",
		CurrencyID:        monedaUSD,
		Lines: []dto.OutboundLineRequest{
			{ItemID: "item-a", Quantity: 4, UnitPrice: dec("9.00")},
		},
	})
	require.NoError(t, err)
	require.NotEqual(t, res.RevenueTransactionID, res.CogsTransactionID)

	assert.Zero(t, sumaNumeradores(t, store, res.RevenueTransactionID))
	assert.Zero(t, sumaNumeradores(t, store, res.CogsTransactionID))

	var revenueTxn, cogsTxn *entity.Transaction
	for i := range store.txns {
		switch store.txns[i].ID {
		case res.RevenueTransactionID:
			revenueTxn = &store.txns[i]
		case res.CogsTransactionID:
			cogsTxn = &store.txns[i]
		}
	}
	require.NotNil(t, revenueTxn)
	require.NotNil(t, cogsTxn)
	assert.Equal(t, monedaUSD, revenueTxn.CurrencyID, "los ingresos van en la moneda de la venta")
	assert.Equal(t, monedaBase, cogsTxn.CurrencyID, "el costo va siempre en moneda base")
}

// Un faltante en la segunda línea revierte también la primera.
func TestOutbound_FaltanteAbortaLoteCompleto(t *testing.T) {
	store, uc := nuevoEscenario()
	agregarItem(store, "item-a", "A-001", 10, "5.00")
	agregarItem(store, "item-b", "B-001", 1, "3.00")

	_, err := uc.Outbound(context.Background(), dto.OutboundRequest{
		CustomerID:        "cli-1",
		Date:              "2025-11-21",
		ReceivedAccountID: "acc-cobro",
		CurrencyID:        monedaBase,
		Lines: []dto.OutboundLineRequest{
			{ItemID: "item-a", Quantity: 5, UnitPrice: dec("9.00")},
			{ItemID: "item-b", Quantity: 2, UnitPrice: dec("4.00")},
		},
	})

	var insufficient *ledger.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, "item-b", insufficient.ItemID)

	assert.Equal(t, int64(10), store.items["item-a"].QtyOnHand, "la línea buena también se revierte")
	assert.Equal(t, int64(1), store.items["item-b"].QtyOnHand)
	assert.Empty(t, store.txns)
}

// Artículo sin cuenta de ingresos configurada: aborta el lote.
func TestOutbound_SinCuentaDeIngresos(t *testing.T) {
	store, uc := nuevoEscenario()
	agregarItem(store, "item-a", "A-001", 10, "5.00")
	store.items["item-a"].SalesAccountID = ""

	_, err := uc.Outbound(context.Background(), dto.OutboundRequest{
		CustomerID:        "cli-1",
		Date:              "2025-11-21",
		ReceivedAccountID: "acc-cobro",
		CurrencyID:        monedaBase,
		Lines: []dto.OutboundLineRequest{
			{ItemID: "item-a", Quantity: 2, UnitPrice: dec("9.00")},
		},
	})
	var missing *ledger.MissingConfigurationError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "sales_account_ref", missing.Field)
	assert.Equal(t, int64(10), store.items["item-a"].QtyOnHand)
}

// La no-negatividad se sostiene también en el borde exacto: sacar todo deja cero.
func TestOutbound_VaciarExistencias(t *testing.T) {
	store, uc := nuevoEscenario()
	agregarItem(store, "item-a", "A-001", 10, "5.00")

	_, err := uc.Outbound(context.Background(), dto.OutboundRequest{
		CustomerID:        "cli-1",
		Date:              "2025-11-21",
		ReceivedAccountID: "acc-cobro",
		CurrencyID:        monedaBase,
		Lines: []dto.OutboundLineRequest{
			{ItemID: "item-a", Quantity: 10, UnitPrice: dec("9.00")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), store.items["item-a"].QtyOnHand)
}
