package dto

import "github.com/shopspring/decimal"

// InboundLineRequest línea de entrada: artículo, unidades y costo unitario
// en la moneda de la transacción.
type InboundLineRequest struct {
	ItemID   string          `json:"item_id"`
	Quantity int64           `json:"quantity"`
	UnitCost decimal.Decimal `json:"unit_cost"`
}

// InboundRequest body para POST /api/inventory/inbound.
// ExchangeRate: 1 unidad de moneda de transacción = rate unidades de moneda base;
// omitir solo cuando la moneda de la transacción es la base.
type InboundRequest struct {
	SupplierID       string               `json:"supplier_id"`
	Date             string               `json:"inbound_date"` // YYYY-MM-DD
	PaymentAccountID string               `json:"payment_account_id"`
	CurrencyID       string               `json:"currency_ref"`
	ExchangeRate     *decimal.Decimal     `json:"exchange_rate,omitempty"`
	Lines            []InboundLineRequest `json:"line_items"`
}

// InboundResponse resultado de la entrada: comprobante y costo total en moneda
// de transacción.
type InboundResponse struct {
	TransactionID string          `json:"txn_id"`
	TotalCost     decimal.Decimal `json:"total_cost"`
}

// OutboundLineRequest línea de salida: artículo, unidades y precio unitario de
// venta en la moneda de la transacción.
type OutboundLineRequest struct {
	ItemID    string          `json:"item_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// OutboundRequest body para POST /api/inventory/outbound.
type OutboundRequest struct {
	CustomerID        string                `json:"customer_id"`
	Date              string                `json:"outbound_date"` // YYYY-MM-DD
	ReceivedAccountID string                `json:"received_account_id"`
	CurrencyID        string                `json:"currency_ref"`
	Lines             []OutboundLineRequest `json:"line_items"`
}

// OutboundResponse resultado de la salida: comprobante de ingresos (moneda de
// la venta), comprobante de costo (moneda base) y totales agregados.
type OutboundResponse struct {
	RevenueTransactionID string          `json:"revenue_txn_id"`
	CogsTransactionID    string          `json:"cogs_txn_id"`
	TotalSales           decimal.Decimal `json:"total_sales"`
	TotalCogs            decimal.Decimal `json:"total_cogs"` // en moneda base
}

// CreateItemRequest body para POST /api/items.
type CreateItemRequest struct {
	Code               string `json:"item_code"`
	Name               string `json:"item_name"`
	UnitOfMeasure      string `json:"unit_of_measure"`
	CostingMethod      string `json:"costing_method,omitempty"` // por defecto AVERAGE
	InventoryAccountID string `json:"inventory_account_ref,omitempty"`
	COGSAccountID      string `json:"cogs_account_ref,omitempty"`
	SalesAccountID     string `json:"sales_account_ref,omitempty"`
}

// ItemResponse artículo con su snapshot de valuación.
type ItemResponse struct {
	ID                 string          `json:"item_id"`
	Code               string          `json:"item_code"`
	Name               string          `json:"item_name"`
	UnitOfMeasure      string          `json:"unit_of_measure"`
	CostingMethod      string          `json:"costing_method"`
	InventoryAccountID string          `json:"inventory_account_ref,omitempty"`
	COGSAccountID      string          `json:"cogs_account_ref,omitempty"`
	SalesAccountID     string          `json:"sales_account_ref,omitempty"`
	QtyOnHand          int64           `json:"qty_on_hand"`
	AvgCost            decimal.Decimal `json:"avg_cost"` // moneda base
}
