package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate tasa de cambio entre dos commodities: 1 unidad de From = Rate
// unidades de To. Solo lectura para el núcleo: la gestión del histórico de
// tasas es un colaborador externo, el motor consume la tasa que le pasan.
type ExchangeRate struct {
	ID             string
	FromCurrencyID string
	ToCurrencyID   string
	Rate           decimal.Decimal
	RateDate       time.Time
}
