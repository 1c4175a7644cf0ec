package request

import "github.com/shopspring/decimal"

// ReceiptItemRequest is one line item as submitted by the client.
type ReceiptItemRequest struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Value       decimal.Decimal `json:"value"`
}

// ReceiptDraftRequest carries the full editable state of a receipt.
// Previews, totals and finalization all take the same shape.
type ReceiptDraftRequest struct {
	Date       string               `json:"date"` // YYYY-MM-DD; empty means today
	City       string               `json:"city"`
	PayerIndex int                  `json:"payer_index"`
	Items      []ReceiptItemRequest `json:"items"`
	Discount   decimal.Decimal      `json:"discount"`
	TaxRate    decimal.Decimal      `json:"tax_rate"`
}

// EnhanceRequest asks for an improved wording of a service description.
type EnhanceRequest struct {
	Text string `json:"text" binding:"required"`
}
