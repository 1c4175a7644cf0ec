package document

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rodamoinho/recibos-api/internal/domain/entity"
)

func finalizedReceipt(t *testing.T) entity.Receipt {
	t.Helper()
	payer, ok := entity.PayerByIndex(0)
	require.True(t, ok)

	items := []entity.LineItem{
		{ID: "1", Description: "PRODUÇÃO DE EVENTO CORPORATIVO", Value: decimal.NewFromInt(1000)},
		{ID: "2", Description: "CAPTAÇÃO DE IMAGEM", Value: decimal.NewFromFloat(350.5)},
	}
	discount := decimal.NewFromInt(200)
	rate := decimal.NewFromInt(10)
	totals := entity.ComputeTotals(items, discount, rate)

	return entity.Receipt{
		Number: "0042",
		Date:   time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Type:   entity.ServiceReceipt,
		City:   entity.DefaultCity,
		Payer:  payer,
		Provider: entity.Provider{
			Name:     "Maria da Silva",
			Document: "123.456.789-01",
			Phone:    "(21) 98765-4321",
			Email:    "maria@email.com",
			BankInfo: "PIX: maria@email.com",
		},
		Items:    items,
		Discount: discount,
		TaxRate:  rate,
		Totals:   totals,
	}
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "Receipt_0042_Maria.pdf", FileName("0042", "Maria"))
}

func TestExportProducesSinglePagePDF(t *testing.T) {
	renderer, err := NewRenderer()
	require.NoError(t, err)

	artifact, err := NewExporter(renderer).Export(finalizedReceipt(t), nil)
	require.NoError(t, err)

	assert.Equal(t, "Receipt_0042_Maria.pdf", artifact.FileName)
	assert.True(t, bytes.HasPrefix(artifact.PDF, []byte("%PDF")), "artifact is not a PDF")
	assert.Equal(t, "RECEIPT 0042 - Maria da Silva", artifact.Subject)
	assert.Contains(t, artifact.Body, "Maria da Silva")
	assert.Contains(t, artifact.Body, "RODAMOINHO PRODUTORA DE EVENTOS LTDA")
	assert.Contains(t, artifact.Body, "R$ 700,00")
}

func TestExportEmbedsSignature(t *testing.T) {
	renderer, err := NewRenderer()
	require.NoError(t, err)

	// A tiny valid PNG as the stored signature.
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 8))))

	receipt := finalizedReceipt(t)
	receipt.Provider.Signature = base64.StdEncoding.EncodeToString(buf.Bytes())

	artifact, err := NewExporter(renderer).Export(receipt, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, artifact.PDF)
}

func TestExportRejectsCorruptSignature(t *testing.T) {
	renderer, err := NewRenderer()
	require.NoError(t, err)

	receipt := finalizedReceipt(t)
	receipt.Provider.Signature = "not-base64!"

	_, err = NewExporter(renderer).Export(receipt, nil)
	assert.Error(t, err)
}

func TestHeaderDateLine(t *testing.T) {
	receipt := finalizedReceipt(t)
	assert.Equal(t, "RIO DE JANEIRO, 14 DE MARÇO DE 2026", headerDateLine(receipt))
}
