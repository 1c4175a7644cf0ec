package entity

// Payer is the legal entity on whose behalf a payment is acknowledged.
// Payers are fixed reference data: they are selected by catalog index,
// never edited.
type Payer struct {
	Name         string `json:"name"`
	CNPJ         string `json:"cnpj"`
	Address      string `json:"address"`
	Neighborhood string `json:"neighborhood"`
	CEP          string `json:"cep"`
}

// payerCatalog holds the group companies a receipt can be issued against.
var payerCatalog = []Payer{
	{
		Name:         "RODAMOINHO PRODUTORA DE EVENTOS LTDA",
		CNPJ:         "22.649.661/0001-85",
		Address:      "AV DAS AMERICAS, 12300 - LOJAS 151 E 152",
		Neighborhood: "BARRA DA TIJUCA / RIO DE JANEIRO - RJ",
		CEP:          "22790-702",
	},
	{
		Name:         "RODAMOINHO PARTICIPACOES LTDA",
		CNPJ:         "54.935.839/0001-40",
		Address:      "AV DAS AMERICAS, 12300 - LOJAS 151 E 152",
		Neighborhood: "BARRA DA TIJUCA / RIO DE JANEIRO - RJ",
		CEP:          "22790-702",
	},
	{
		Name:         "COLABS RECORDS LTDA",
		CNPJ:         "63.692.645/0001-52",
		Address:      "AV DAS AMERICAS, 12300 - LOJAS 151 E 152",
		Neighborhood: "BARRA DA TIJUCA / RIO DE JANEIRO - RJ",
		CEP:          "22790-702",
	},
	{
		Name:         "RODAMOINHO RECORDS LTDA",
		CNPJ:         "40.376.932/0001-58",
		Address:      "AV DAS AMERICAS, 12300 - LOJAS 151 E 152",
		Neighborhood: "BARRA DA TIJUCA / RIO DE JANEIRO - RJ",
		CEP:          "22790-702",
	},
	{
		Name:         "RODAMOINHO FILMES LTDA",
		CNPJ:         "31.291.787/0001-11",
		Address:      "AV DAS AMERICAS, 12300 - LOJAS 151 E 152",
		Neighborhood: "BARRA DA TIJUCA / RIO DE JANEIRO - RJ",
		CEP:          "22790-702",
	},
}

// PayerCatalog returns a copy of the fixed payer list.
func PayerCatalog() []Payer {
	out := make([]Payer, len(payerCatalog))
	copy(out, payerCatalog)
	return out
}

// PayerByIndex returns the payer at the given catalog position.
// The second return value is false when the index is out of range.
func PayerByIndex(idx int) (Payer, bool) {
	if idx < 0 || idx >= len(payerCatalog) {
		return Payer{}, false
	}
	return payerCatalog[idx], true
}
