package dto

// PartnerRequest body para crear o actualizar un tercero.
type PartnerRequest struct {
	Code            string `json:"partner_code"`
	LegalName       string `json:"legal_name"`
	Type            string `json:"partner_type"` // CUSTOMER | SUPPLIER
	ContactEmail    string `json:"contact_email,omitempty"`
	ContactPhone    string `json:"contact_phone,omitempty"`
	ShippingAddress string `json:"shipping_address,omitempty"`
}

// PartnerResponse tercero comercial.
type PartnerResponse struct {
	ID              string `json:"partner_id"`
	Code            string `json:"partner_code"`
	LegalName       string `json:"legal_name"`
	Type            string `json:"partner_type"`
	ContactEmail    string `json:"contact_email,omitempty"`
	ContactPhone    string `json:"contact_phone,omitempty"`
	ShippingAddress string `json:"shipping_address,omitempty"`
}

// CreateCommodityRequest body para POST /api/commodities.
type CreateCommodityRequest struct {
	Symbol   string `json:"symbol"`
	FullName string `json:"full_name"`
	Type     string `json:"commodity_type,omitempty"` // por defecto CURRENCY
	Fraction int    `json:"fraction,omitempty"`
}

// CommodityResponse moneda u otro commodity.
type CommodityResponse struct {
	ID       string `json:"commodity_id"`
	Symbol   string `json:"symbol"`
	FullName string `json:"full_name"`
	Type     string `json:"commodity_type"`
	Fraction int    `json:"fraction"`
}

// ExchangeRateResponse tasa histórica: 1 unidad de from = rate unidades de to.
type ExchangeRateResponse struct {
	ID             string `json:"rate_id"`
	FromCurrencyID string `json:"from_commodity_ref"`
	ToCurrencyID   string `json:"to_commodity_ref"`
	Rate           string `json:"rate"`
	RateDate       string `json:"rate_date"`
}
