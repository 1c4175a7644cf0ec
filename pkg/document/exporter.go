package document

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	"github.com/jung-kurt/gofpdf"

	"github.com/rodamoinho/recibos-api/internal/domain/entity"
)

// Artifact is the exported document plus the delivery metadata used by
// the share channel and the mail fallback.
type Artifact struct {
	FileName string
	PDF      []byte
	Subject  string
	Body     string
}

// Exporter turns a finalized receipt into a single-page A4 PDF: the
// rendered layout is rasterized and embedded so the page fills exactly.
type Exporter struct {
	renderer *Renderer
}

// NewExporter creates an exporter around the given renderer.
func NewExporter(renderer *Renderer) *Exporter {
	return &Exporter{renderer: renderer}
}

// FileName builds the deterministic export name for a receipt.
func FileName(number, providerFirstName string) string {
	return fmt.Sprintf("Receipt_%s_%s.pdf", number, providerFirstName)
}

// Export renders the receipt and assembles the document container.
func (e *Exporter) Export(receipt entity.Receipt, logo image.Image) (*Artifact, error) {
	img, err := e.renderer.Render(receipt, logo)
	if err != nil {
		return nil, fmt.Errorf("render layout: %w", err)
	}

	var jpg bytes.Buffer
	if err := jpeg.Encode(&jpg, img, &jpeg.Options{Quality: 95}); err != nil {
		return nil, fmt.Errorf("encode raster: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "JPG"}
	pdf.RegisterImageOptionsReader("receipt", opts, &jpg)
	pdf.ImageOptions("receipt", 0, 0, PageWidthMM, PageHeightMM, false, opts, 0, "")

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, fmt.Errorf("assemble pdf: %w", err)
	}

	return &Artifact{
		FileName: FileName(receipt.Number, receipt.Provider.FirstNameToken()),
		PDF:      out.Bytes(),
		Subject:  fmt.Sprintf("RECEIPT %s - %s", receipt.Number, receipt.Provider.Name),
		Body:     bodyText(receipt),
	}, nil
}

// bodyText summarizes amount and parties for the share channel and the
// mail fallback (which cannot carry the attachment).
func bodyText(receipt entity.Receipt) string {
	return fmt.Sprintf(
		"Recibo nº %s emitido por %s para %s em %s.\nValor líquido: %s.",
		receipt.Number,
		receipt.Provider.Name,
		receipt.Payer.Name,
		receipt.Date.Format("02/01/2006"),
		entity.FormatBRL(receipt.Totals.Net),
	)
}
