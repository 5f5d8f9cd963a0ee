package inventory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/finanzas-erp/internal/application/dto"
	"github.com/tu-usuario/finanzas-erp/internal/domain/entity"
	"github.com/tu-usuario/finanzas-erp/internal/domain/ledger"
	"github.com/tu-usuario/finanzas-erp/internal/domain/money"
	"github.com/tu-usuario/finanzas-erp/internal/domain/repository"
)

// Config parámetros contables del motor: moneda base y precisión de registro.
type Config struct {
	BaseCurrencyID string
	Precision      int64
}

// ValuationUseCase motor de valuación de inventario: entradas y salidas por
// lote, costo promedio ponderado móvil bajo bloqueo de fila, y construcción de
// los comprobantes balanceados que confirma el escritor de transacciones.
//
// Cada lote corre dentro de una sola unidad de trabajo (TxRunner.Run). Antes de
// mutar un artículo se toma su fila con SELECT FOR UPDATE, y los bloqueos se
// adquieren en orden canónico por ID de artículo, de modo que dos lotes que
// comparten artículos no pueden abrazarse mutuamente.
type ValuationUseCase struct {
	txRunner TxRunner
	cfg      Config
}

// NewValuationUseCase construye el motor.
func NewValuationUseCase(txRunner TxRunner, cfg Config) *ValuationUseCase {
	return &ValuationUseCase{txRunner: txRunner, cfg: cfg}
}

// Inbound procesa un lote de entradas de compra. Por cada línea, bajo el
// bloqueo exclusivo del artículo:
//
//	costo_unitario_base = costo_unitario_txn × tasa
//	nuevo_promedio      = (Q0×C0 + qty×costo_unitario_base) / (Q0 + qty)
//
// y deja un asiento débito a la cuenta de existencias en moneda de transacción.
// Al final, un solo crédito por el total a la cuenta de pago, validación del
// comprobante y confirmación: mutaciones de artículos, movimientos y asientos
// se confirman o se abortan como una unidad (ninguna línea parcial).
func (uc *ValuationUseCase) Inbound(ctx context.Context, in dto.InboundRequest) (*dto.InboundResponse, error) {
	date, err := parseDate(in.Date)
	if err != nil {
		return nil, err
	}
	if in.SupplierID == "" || in.PaymentAccountID == "" || in.CurrencyID == "" {
		return nil, &ledger.ValidationError{Reason: "entrada de compra incompleta"}
	}
	if len(in.Lines) == 0 {
		return nil, &ledger.ValidationError{Reason: "la entrada no tiene líneas"}
	}
	for _, l := range in.Lines {
		if l.ItemID == "" {
			return nil, &ledger.ValidationError{Reason: "línea sin artículo"}
		}
		if l.Quantity <= 0 {
			return nil, &ledger.ValidationError{Reason: fmt.Sprintf("cantidad inválida %d para el artículo %s", l.Quantity, l.ItemID)}
		}
		if !l.UnitCost.IsPositive() {
			return nil, &ledger.ValidationError{Reason: "el costo unitario debe ser mayor que cero"}
		}
	}

	rate, err := money.ResolveRate(in.CurrencyID, uc.cfg.BaseCurrencyID, in.ExchangeRate)
	if err != nil {
		return nil, &ledger.ValidationError{Reason: err.Error()}
	}

	// Orden canónico de bloqueo por ID de artículo
	lines := sortedInbound(in.Lines)

	var result *dto.InboundResponse
	err = uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		movRepo repository.MovementRepository,
		txnRepo repository.TransactionRepository,
		accountRepo repository.AccountRepository,
	) error {
		totalCost := decimal.Zero
		postingLines := make([]ledger.Line, 0, len(lines)+1)
		movements := make([]entity.InventoryMovement, 0, len(lines))

		for _, line := range lines {
			item, err := itemRepo.GetForUpdate(ctx, line.ItemID)
			if err != nil {
				return err
			}
			if item.InventoryAccountID == "" {
				return &ledger.MissingConfigurationError{ItemID: item.ID, ItemCode: item.Code, Field: "inventory_account_ref"}
			}

			qty := decimal.NewFromInt(line.Quantity)
			costTotalTxn := qty.Mul(line.UnitCost)
			unitCostBase := money.ToBase(line.UnitCost, rate)
			costTotalBase := money.ToBase(costTotalTxn, rate)

			// Promedio ponderado móvil en moneda base
			newQty := item.QtyOnHand + line.Quantity
			var newAvg decimal.Decimal
			if newQty > 0 {
				oldValue := decimal.NewFromInt(item.QtyOnHand).Mul(item.AvgCost.Decimal())
				newAvg = oldValue.Add(costTotalBase).Div(decimal.NewFromInt(newQty))
			} else {
				newAvg = unitCostBase
			}
			newAvgRat, err := money.FromDecimal(newAvg, uc.cfg.Precision)
			if err != nil {
				return err
			}
			unitCostBaseRat, err := money.FromDecimal(unitCostBase, uc.cfg.Precision)
			if err != nil {
				return err
			}

			if err := itemRepo.UpdateValuation(ctx, item.ID, newQty, newAvgRat); err != nil {
				return err
			}
			movements = append(movements, entity.InventoryMovement{
				ItemID:   item.ID,
				Type:     entity.MovementTypeIN,
				Quantity: line.Quantity,
				UnitCost: unitCostBaseRat,
				Date:     date,
			})
			// Débito a existencias en moneda de transacción
			postingLines = append(postingLines, ledger.Line{
				AccountID: item.InventoryAccountID,
				Memo:      "Entrada: " + item.Name,
				Type:      ledger.Debit,
				Amount:    costTotalTxn,
			})
			totalCost = totalCost.Add(costTotalTxn)
		}

		// Crédito por el total a la cuenta de pago/pasivo
		postingLines = append(postingLines, ledger.Line{
			AccountID: in.PaymentAccountID,
			Memo:      "Liquidación de compra",
			Type:      ledger.Credit,
			Amount:    totalCost,
		})

		accounts, err := accountRepo.GetByIDs(ctx, postingAccountIDs(postingLines))
		if err != nil {
			return err
		}
		summary := fmt.Sprintf("Entrada de compra - proveedor %s", in.SupplierID)
		txn, entries, err := ledger.Prepare(in.CurrencyID, date, summary, "", uc.cfg.Precision, postingLines, accounts)
		if err != nil {
			return err
		}
		if err := txnRepo.CreateWithEntries(ctx, txn, entries); err != nil {
			return err
		}
		for i := range movements {
			movements[i].TransactionID = txn.ID
			if err := movRepo.Create(ctx, &movements[i]); err != nil {
				return err
			}
		}
		result = &dto.InboundResponse{TransactionID: txn.ID, TotalCost: totalCost}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Outbound procesa un lote de salidas de venta. Bajo el mismo bloqueo por
// artículo: verifica existencias (cualquier faltante aborta el lote completo),
// descuenta cantidad al costo promedio vigente —que una salida nunca
// recalcula— y construye dos comprobantes independientes confirmados juntos:
//
//	(a) ingresos, en la moneda de la venta: créditos por artículo más un
//	    débito agregado a la cuenta de cobro;
//	(b) costo de ventas, estrictamente en moneda base: débito a costo y
//	    crédito a existencias por el costo acumulado, porque el inventario
//	    se valora en moneda base y la moneda de la venta no debe distorsionarlo.
//
// Cada comprobante cuadra a cero por sí solo.
func (uc *ValuationUseCase) Outbound(ctx context.Context, in dto.OutboundRequest) (*dto.OutboundResponse, error) {
	date, err := parseDate(in.Date)
	if err != nil {
		return nil, err
	}
	if in.CustomerID == "" || in.ReceivedAccountID == "" || in.CurrencyID == "" {
		return nil, &ledger.ValidationError{Reason: "salida de venta incompleta"}
	}
	if len(in.Lines) == 0 {
		return nil, &ledger.ValidationError{Reason: "la salida no tiene líneas"}
	}
	if uc.cfg.BaseCurrencyID == "" {
		return nil, fmt.Errorf("moneda base no configurada (LEDGER_BASE_CURRENCY)")
	}
	for _, l := range in.Lines {
		if l.ItemID == "" {
			return nil, &ledger.ValidationError{Reason: "línea sin artículo"}
		}
		if l.Quantity <= 0 {
			return nil, &ledger.ValidationError{Reason: fmt.Sprintf("cantidad inválida %d para el artículo %s", l.Quantity, l.ItemID)}
		}
		if !l.UnitPrice.IsPositive() {
			return nil, &ledger.ValidationError{Reason: "el precio unitario debe ser mayor que cero"}
		}
	}

	lines := sortedOutbound(in.Lines)

	var result *dto.OutboundResponse
	err = uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		movRepo repository.MovementRepository,
		txnRepo repository.TransactionRepository,
		accountRepo repository.AccountRepository,
	) error {
		totalSales := decimal.Zero
		totalCogs := decimal.Zero
		revenueLines := make([]ledger.Line, 0, len(lines)+1)
		cogsLines := make([]ledger.Line, 0, 2*len(lines))
		movements := make([]entity.InventoryMovement, 0, len(lines))

		for _, line := range lines {
			item, err := itemRepo.GetForUpdate(ctx, line.ItemID)
			if err != nil {
				return err
			}
			if item.QtyOnHand < line.Quantity {
				return &ledger.InsufficientStockError{
					ItemID:    item.ID,
					ItemCode:  item.Code,
					Available: item.QtyOnHand,
					Requested: line.Quantity,
				}
			}
			if item.SalesAccountID == "" {
				return &ledger.MissingConfigurationError{ItemID: item.ID, ItemCode: item.Code, Field: "sales_account_ref"}
			}
			if item.COGSAccountID == "" {
				return &ledger.MissingConfigurationError{ItemID: item.ID, ItemCode: item.Code, Field: "cogs_account_ref"}
			}
			if item.InventoryAccountID == "" {
				return &ledger.MissingConfigurationError{ItemID: item.ID, ItemCode: item.Code, Field: "inventory_account_ref"}
			}

			qty := decimal.NewFromInt(line.Quantity)
			salesTotal := qty.Mul(line.UnitPrice)
			// El costo sale al promedio vigente; la salida no lo recalcula
			costBase := qty.Mul(item.AvgCost.Decimal())
			totalSales = totalSales.Add(salesTotal)
			totalCogs = totalCogs.Add(costBase)

			if err := itemRepo.UpdateValuation(ctx, item.ID, item.QtyOnHand-line.Quantity, item.AvgCost); err != nil {
				return err
			}
			movements = append(movements, entity.InventoryMovement{
				ItemID:   item.ID,
				Type:     entity.MovementTypeOUT,
				Quantity: line.Quantity,
				UnitCost: item.AvgCost,
				Date:     date,
			})

			revenueLines = append(revenueLines, ledger.Line{
				AccountID: item.SalesAccountID,
				Memo:      "Venta: " + item.Name,
				Type:      ledger.Credit,
				Amount:    salesTotal,
			})
			cogsLines = append(cogsLines,
				ledger.Line{
					AccountID: item.COGSAccountID,
					Memo:      "Costo de venta: " + item.Name,
					Type:      ledger.Debit,
					Amount:    costBase,
				},
				ledger.Line{
					AccountID: item.InventoryAccountID,
					Memo:      "Salida de existencias: " + item.Name,
					Type:      ledger.Credit,
					Amount:    costBase,
				},
			)
		}

		// Débito agregado a la cuenta de cobro (moneda de la venta)
		revenueLines = append(revenueLines, ledger.Line{
			AccountID: in.ReceivedAccountID,
			Memo:      "Cobro de venta",
			Type:      ledger.Debit,
			Amount:    totalSales,
		})

		accounts, err := accountRepo.GetByIDs(ctx, postingAccountIDs(append(append([]ledger.Line{}, revenueLines...), cogsLines...)))
		if err != nil {
			return err
		}

		revenueSummary := fmt.Sprintf("Venta - cliente %s", in.CustomerID)
		revenueTxn, revenueEntries, err := ledger.Prepare(in.CurrencyID, date, revenueSummary, "", uc.cfg.Precision, revenueLines, accounts)
		if err != nil {
			return err
		}
		// El comprobante de costo va en moneda base y cuadra por sí solo
		cogsTxn, cogsEntries, err := ledger.Prepare(uc.cfg.BaseCurrencyID, date, "Costo de ventas", "", uc.cfg.Precision, cogsLines, accounts)
		if err != nil {
			return err
		}

		if err := txnRepo.CreateWithEntries(ctx, revenueTxn, revenueEntries); err != nil {
			return err
		}
		if err := txnRepo.CreateWithEntries(ctx, cogsTxn, cogsEntries); err != nil {
			return err
		}
		for i := range movements {
			movements[i].TransactionID = cogsTxn.ID
			if err := movRepo.Create(ctx, &movements[i]); err != nil {
				return err
			}
		}
		result = &dto.OutboundResponse{
			RevenueTransactionID: revenueTxn.ID,
			CogsTransactionID:    cogsTxn.ID,
			TotalSales:           totalSales,
			TotalCogs:            totalCogs,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func parseDate(s string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, &ledger.ValidationError{Reason: "fecha inválida: " + s}
	}
	return date, nil
}

// sortedInbound copia y ordena las líneas por ID de artículo: el orden canónico
// de adquisición de bloqueos evita interbloqueos entre lotes concurrentes que
// referencian los mismos artículos en distinto orden.
func sortedInbound(lines []dto.InboundLineRequest) []dto.InboundLineRequest {
	out := make([]dto.InboundLineRequest, len(lines))
	copy(out, lines)
	sort.SliceStable(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out
}

func sortedOutbound(lines []dto.OutboundLineRequest) []dto.OutboundLineRequest {
	out := make([]dto.OutboundLineRequest, len(lines))
	copy(out, lines)
	sort.SliceStable(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out
}

func postingAccountIDs(lines []ledger.Line) []string {
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
