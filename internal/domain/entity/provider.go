package entity

import "strings"

// Provider is the issuer/signer of a receipt. The profile is long-lived:
// it persists across receipts until the user edits or clears it.
type Provider struct {
	Name      string `json:"name"`
	Document  string `json:"document"` // CPF or CNPJ, stored masked
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Email     string `json:"email,omitempty"`
	BankInfo  string `json:"bank_info"`
	Signature string `json:"signature,omitempty"` // base64 PNG
}

// FirstNameToken returns the first whitespace-separated token of the
// provider name, used in exported file names.
func (p Provider) FirstNameToken() string {
	fields := strings.Fields(p.Name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
