package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func items(values ...float64) []LineItem {
	out := make([]LineItem, len(values))
	for i, v := range values {
		out[i] = LineItem{ID: "i", Description: "serviço", Value: decimal.NewFromFloat(v)}
	}
	return out
}

func TestComputeTotals(t *testing.T) {
	totals := ComputeTotals(items(600, 400), decimal.NewFromInt(200), decimal.NewFromInt(10))

	assert.True(t, totals.Gross.Equal(decimal.NewFromInt(1000)), "gross = %s", totals.Gross)
	assert.True(t, totals.TaxValue.Equal(decimal.NewFromInt(100)), "tax = %s", totals.TaxValue)
	assert.True(t, totals.Net.Equal(decimal.NewFromInt(700)), "net = %s", totals.Net)
}

func TestComputeTotalsClampsNetAtZero(t *testing.T) {
	totals := ComputeTotals(items(100), decimal.NewFromInt(150), decimal.Zero)
	assert.True(t, totals.Net.IsZero(), "net = %s", totals.Net)

	totals = ComputeTotals(items(100), decimal.Zero, decimal.NewFromInt(200))
	assert.True(t, totals.Net.IsZero(), "net = %s", totals.Net)
}

func TestComputeTotalsEmptyItems(t *testing.T) {
	totals := ComputeTotals(nil, decimal.Zero, decimal.NewFromInt(10))
	assert.True(t, totals.Gross.IsZero())
	assert.True(t, totals.TaxValue.IsZero())
	assert.True(t, totals.Net.IsZero())
}

func TestComputeTotalsKeepsPrecision(t *testing.T) {
	// 3 * 33.333 at 7.77% should not lose cents to intermediate rounding.
	totals := ComputeTotals(items(33.333, 33.333, 33.333), decimal.Zero, decimal.NewFromFloat(7.77))

	expectedGross := decimal.NewFromFloat(99.999)
	expectedTax := expectedGross.Mul(decimal.NewFromFloat(7.77)).Div(decimal.NewFromInt(100))
	assert.True(t, totals.Gross.Equal(expectedGross))
	assert.True(t, totals.TaxValue.Equal(expectedTax))
	assert.True(t, totals.Net.Equal(expectedGross.Sub(expectedTax)))
}

func TestFinalizeSnapshotsDraft(t *testing.T) {
	draft := NewDraft(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC))
	draft.Provider = Provider{Name: "Maria da Silva", Document: "123.456.789-01"}
	draft.Items = items(500)

	payer, ok := PayerByIndex(0)
	assert.True(t, ok)

	totals := ComputeTotals(draft.Items, draft.Discount, draft.TaxRate)
	receipt := draft.Finalize("0001", payer, totals)

	// Later edits to the draft must not leak into the finalized record.
	draft.Items[0].Description = "changed"
	draft.Provider.Name = "changed"

	assert.Equal(t, "0001", receipt.Number)
	assert.Equal(t, ServiceReceipt, receipt.Type)
	assert.Equal(t, "serviço", receipt.Items[0].Description)
	assert.Equal(t, "Maria da Silva", receipt.Provider.Name)
	assert.Equal(t, payer.Name, receipt.Payer.Name)
}

func TestPayerCatalog(t *testing.T) {
	catalog := PayerCatalog()
	assert.Len(t, catalog, 5)

	_, ok := PayerByIndex(len(catalog))
	assert.False(t, ok)
	_, ok = PayerByIndex(-1)
	assert.False(t, ok)

	// Catalog copies are isolated from the fixed reference data.
	catalog[0].Name = "changed"
	fresh := PayerCatalog()
	assert.NotEqual(t, "changed", fresh[0].Name)
}
