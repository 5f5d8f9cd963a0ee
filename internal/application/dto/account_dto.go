package dto

// CreateAccountRequest body para POST /api/accounts.
type CreateAccountRequest struct {
	Code          string `json:"account_code,omitempty"`
	Title         string `json:"title"`
	Category      string `json:"category"`
	Description   string `json:"account_description,omitempty"`
	CommodityID   string `json:"commodity_ref,omitempty"`
	ParentID      string `json:"parent_account_id,omitempty"`
	IsPlaceholder bool   `json:"is_placeholder,omitempty"`
}

// AccountResponse cuenta del plan contable.
type AccountResponse struct {
	ID            string `json:"account_id"`
	Code          string `json:"account_code,omitempty"`
	Title         string `json:"title"`
	Category      string `json:"category"`
	Description   string `json:"account_description,omitempty"`
	CommodityID   string `json:"commodity_ref,omitempty"`
	ParentID      string `json:"parent_account_id,omitempty"`
	IsPlaceholder bool   `json:"is_placeholder"`
}
