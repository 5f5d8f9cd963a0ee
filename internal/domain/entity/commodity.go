package entity

// Tipos de commodity.
const (
	CommodityTypeCurrency = "CURRENCY"
)

// Commodity moneda u otro bien valuable. Las transacciones referencian su
// moneda mediante el ID del commodity; Fraction es la subdivisión mínima
// (100 = centavos).
type Commodity struct {
	ID       string
	Symbol   string
	FullName string
	Type     string
	Fraction int
}
