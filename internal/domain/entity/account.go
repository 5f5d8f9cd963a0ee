package entity

import "time"

// Categorías contables de un plan de cuentas.
const (
	CategoryAsset     = "ASSET"
	CategoryLiability = "LIABILITY"
	CategoryEquity    = "EQUITY"
	CategoryIncome    = "INCOME"
	CategoryExpense   = "EXPENSE"
)

// Account cuenta contable (科目). Forma un árbol vía ParentID.
// Una cuenta placeholder es solo estructural: agrupa hijas y no admite asientos.
// No puede eliminarse una cuenta con hijas o con asientos registrados.
type Account struct {
	ID            string
	Code          string
	Title         string
	Category      string
	Description   string
	CommodityID   string // restricción opcional a una moneda/commodity
	ParentID      string
	IsPlaceholder bool
	CreatedAt     time.Time
}

// Postable indica si la cuenta admite asientos directos.
func (a *Account) Postable() bool {
	return !a.IsPlaceholder
}
