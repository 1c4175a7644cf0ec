package entity

import "github.com/shopspring/decimal"

// Totals holds the computed financial summary of a receipt.
type Totals struct {
	Gross    decimal.Decimal `json:"gross"`
	TaxValue decimal.Decimal `json:"tax_value"`
	Net      decimal.Decimal `json:"net"`
}

var oneHundred = decimal.NewFromInt(100)

// ComputeTotals derives gross, tax and net from the line items and
// deduction inputs:
//
//	gross = Σ item.value
//	taxValue = gross * taxRatePercent / 100
//	net = max(0, gross - discount - taxValue)
//
// Net is clamped at zero when deductions exceed gross; the excess is
// absorbed silently rather than reported. Values are kept at full
// precision here and rounded to 2 places only when formatted.
func ComputeTotals(items []LineItem, discount, taxRatePercent decimal.Decimal) Totals {
	gross := decimal.Zero
	for _, item := range items {
		gross = gross.Add(item.Value)
	}

	taxValue := gross.Mul(taxRatePercent).Div(oneHundred)

	net := gross.Sub(discount).Sub(taxValue)
	if net.IsNegative() {
		net = decimal.Zero
	}

	return Totals{Gross: gross, TaxValue: taxValue, Net: net}
}
