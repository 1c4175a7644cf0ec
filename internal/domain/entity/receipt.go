package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReceiptType identifies what a receipt acknowledges payment for.
type ReceiptType string

// ServiceReceipt is the only type currently issued.
const ServiceReceipt ReceiptType = "PRESTAÇÃO DE SERVIÇO"

// LineItem is a single charge on a receipt.
type LineItem struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Value       decimal.Decimal `json:"value"`
}

// DefaultCity is used when a draft does not set one.
const DefaultCity = "Rio de Janeiro"

// Draft is a mutable, session-scoped receipt being edited. Totals are
// derived on demand via ComputeTotals, never stored on the draft.
type Draft struct {
	Date       time.Time       `json:"date"` // fixed at draft creation
	City       string          `json:"city"`
	PayerIndex int             `json:"payer_index"`
	Provider   Provider        `json:"provider"`
	Items      []LineItem      `json:"items"`
	Discount   decimal.Decimal `json:"discount"`
	TaxRate    decimal.Decimal `json:"tax_rate"` // percentage
}

// NewDraft creates an empty draft dated now with a single blank item.
func NewDraft(now time.Time) Draft {
	return Draft{
		Date:     now,
		City:     DefaultCity,
		Items:    []LineItem{{ID: "1"}},
		Discount: decimal.Zero,
		TaxRate:  decimal.Zero,
	}
}

// Receipt is a finalized, immutable record. Provider, payer and items
// are deep-copied at finalization so later draft edits cannot reach it.
type Receipt struct {
	Number   string          `json:"number"` // zero-padded, e.g. "0001"
	Date     time.Time       `json:"date"`
	Type     ReceiptType     `json:"type"`
	City     string          `json:"city"`
	Payer    Payer           `json:"payer"`
	Provider Provider        `json:"provider"`
	Items    []LineItem      `json:"items"`
	Discount decimal.Decimal `json:"discount"`
	TaxRate  decimal.Decimal `json:"tax_rate"`
	Totals   Totals          `json:"totals"`
}

// Finalize snapshots the draft into an immutable receipt with the given
// number. Items are copied so the record is decoupled from the draft.
func (d Draft) Finalize(number string, payer Payer, totals Totals) Receipt {
	items := make([]LineItem, len(d.Items))
	copy(items, d.Items)
	return Receipt{
		Number:   number,
		Date:     d.Date,
		Type:     ServiceReceipt,
		City:     d.City,
		Payer:    payer,
		Provider: d.Provider,
		Items:    items,
		Discount: d.Discount,
		TaxRate:  d.TaxRate,
		Totals:   totals,
	}
}
