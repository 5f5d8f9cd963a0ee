package reports

import (
	"context"
	"sort"

	"github.com/tu-usuario/finanzas-erp/internal/application/dto"
	"github.com/tu-usuario/finanzas-erp/internal/domain/repository"
)

// TrialBalanceUseCase balance de comprobación: totales del debe y del haber por
// cuenta, separados por moneda de transacción. Como los comprobantes de costo
// van siempre en moneda base y los de venta en su propia moneda, una cuenta
// puede acumular saldos en varias monedas; se reportan por separado, nunca
// sumados entre sí.
type TrialBalanceUseCase struct {
	accountRepo   repository.AccountRepository
	reportRepo    repository.ReportRepository
	commodityRepo repository.CommodityRepository
}

func NewTrialBalanceUseCase(
	accountRepo repository.AccountRepository,
	reportRepo repository.ReportRepository,
	commodityRepo repository.CommodityRepository,
) *TrialBalanceUseCase {
	return &TrialBalanceUseCase{accountRepo: accountRepo, reportRepo: reportRepo, commodityRepo: commodityRepo}
}

// TrialBalance arma el reporte completo: todas las cuentas del plan, cada una
// con sus saldos por moneda (vacío si la cuenta no tiene asientos).
func (uc *TrialBalanceUseCase) TrialBalance(ctx context.Context) ([]dto.TrialBalanceAccount, error) {
	accounts, err := uc.accountRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := uc.reportRepo.TrialBalance(ctx)
	if err != nil {
		return nil, err
	}
	commodities, err := uc.commodityRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	symbols := make(map[string]string, len(commodities))
	for _, c := range commodities {
		symbols[c.ID] = c.Symbol
	}

	byAccount := make(map[string][]dto.CurrencyBalance, len(rows))
	for _, r := range rows {
		byAccount[r.AccountID] = append(byAccount[r.AccountID], dto.CurrencyBalance{
			CurrencyID: r.CurrencyID,
			Symbol:     symbols[r.CurrencyID],
			Debit:      r.TotalDebit,
			Credit:     r.TotalCredit,
			Net:        r.TotalDebit.Sub(r.TotalCredit),
		})
	}

	out := make([]dto.TrialBalanceAccount, 0, len(accounts))
	for _, acc := range accounts {
		balances := byAccount[acc.ID]
		sort.Slice(balances, func(i, j int) bool { return balances[i].CurrencyID < balances[j].CurrencyID })
		if balances == nil {
			balances = []dto.CurrencyBalance{}
		}
		out = append(out, dto.TrialBalanceAccount{
			AccountID: acc.ID,
			Code:      acc.Code,
			Title:     acc.Title,
			Category:  acc.Category,
			ParentID:  acc.ParentID,
			Balances:  balances,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}
