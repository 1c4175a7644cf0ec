package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// digitsOnly strips everything but decimal digits from s, truncated to max.
func digitsOnly(s string, max int) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			if b.Len() == max {
				break
			}
		}
	}
	return b.String()
}

// maskGroups re-assembles digits into groups joined by the given
// separators. Separators are inserted as soon as the preceding group is
// complete, so the mask builds up while the user types.
func maskGroups(digits string, groups []int, seps []string) string {
	var b strings.Builder
	pos := 0
	for i, size := range groups {
		if pos >= len(digits) {
			break
		}
		end := pos + size
		if end > len(digits) {
			end = len(digits)
		}
		if i > 0 {
			b.WriteString(seps[i-1])
		}
		b.WriteString(digits[pos:end])
		pos = end
	}
	return b.String()
}

// FormatTaxID masks a CPF or CNPJ as the user types. Any punctuation
// already present is stripped before re-masking; input is truncated at
// 14 digits. Up to 11 digits the CPF pattern XXX.XXX.XXX-XX applies,
// beyond that the CNPJ pattern XX.XXX.XXX/XXXX-XX.
func FormatTaxID(raw string) string {
	digits := digitsOnly(raw, 14)
	if len(digits) <= 11 {
		return maskGroups(digits, []int{3, 3, 3, 2}, []string{".", ".", "-"})
	}
	return maskGroups(digits, []int{2, 3, 3, 4, 2}, []string{".", ".", "/", "-"})
}

// FormatPhone masks a Brazilian phone number as the user types,
// truncated at 11 digits. Up to 10 digits the landline pattern
// (XX) XXXX-XXXX applies; 11 digits select the mobile pattern
// (XX) XXXXX-XXXX.
func FormatPhone(raw string) string {
	digits := digitsOnly(raw, 11)
	if digits == "" {
		return ""
	}
	if len(digits) <= 10 {
		return "(" + maskGroups(digits, []int{2, 4, 4}, []string{") ", "-"})
	}
	return "(" + maskGroups(digits, []int{2, 5, 4}, []string{") ", "-"})
}

// FormatBRL renders a monetary amount in Brazilian currency notation,
// e.g. "R$ 1.234,56". Rounding to 2 places happens here, at the edge.
func FormatBRL(v decimal.Decimal) string {
	return "R$ " + FormatAmountBR(v)
}

// FormatAmountBR renders a number with pt-BR separators and exactly two
// decimal places, e.g. "1.234,56".
func FormatAmountBR(v decimal.Decimal) string {
	s := v.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart := s[:len(s)-3]
	fracPart := s[len(s)-2:]

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	b.WriteByte(',')
	b.WriteString(fracPart)
	return b.String()
}
