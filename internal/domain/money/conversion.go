package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ToBase convierte un monto en moneda de transacción a moneda base:
// 1 unidad de moneda de transacción = rate unidades de moneda base.
// Este componente solo multiplica; el almacenamiento de tasas es un colaborador externo.
func ToBase(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate)
}

// ResolveRate resuelve la tasa de cambio efectiva para una transacción.
// Si la moneda de la transacción es la moneda base, la tasa omitida vale 1 y una
// tasa explícita distinta de 1 es un error de entrada. Si la moneda difiere de la
// base, la tasa es obligatoria y debe ser positiva.
func ResolveRate(currencyID, baseCurrencyID string, rate *decimal.Decimal) (decimal.Decimal, error) {
	if currencyID == baseCurrencyID {
		if rate != nil && !rate.Equal(decimal.NewFromInt(1)) {
			return decimal.Zero, fmt.Errorf("money: tasa %s no aplica en moneda base", rate)
		}
		return decimal.NewFromInt(1), nil
	}
	if rate == nil {
		return decimal.Zero, fmt.Errorf("money: falta tasa de cambio para la moneda %s", currencyID)
	}
	if !rate.IsPositive() {
		return decimal.Zero, fmt.Errorf("money: tasa de cambio inválida %s", rate)
	}
	return *rate, nil
}
