package document

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/rodamoinho/recibos-api/internal/domain/entity"
)

// A4 portrait dimensions in millimeters.
const (
	PageWidthMM  = 210.0
	PageHeightMM = 297.0
)

// pxPerMM sets the rasterization scale. Roughly 300dpi, enough to keep
// the small typography crisp in print.
const pxPerMM = 11.8

// px converts millimeters to whole pixels at the rasterization scale.
func px(mm float64) int {
	return int(mm * pxPerMM)
}

var monthsPT = []string{
	"JANEIRO", "FEVEREIRO", "MARÇO", "ABRIL", "MAIO", "JUNHO",
	"JULHO", "AGOSTO", "SETEMBRO", "OUTUBRO", "NOVEMBRO", "DEZEMBRO",
}

// Renderer lays a finalized receipt out on a fixed-proportion A4
// template and rasterizes it.
type Renderer struct {
	regular *opentype.Font
	bold    *opentype.Font
}

// NewRenderer parses the embedded typefaces once.
func NewRenderer() (*Renderer, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}
	return &Renderer{regular: regular, bold: bold}, nil
}

func (r *Renderer) face(f *opentype.Font, sizeMM float64) (font.Face, error) {
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    sizeMM * pxPerMM,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// page palette
var (
	colInk    = color.RGBA{R: 0x1a, G: 0x1f, B: 0x2c, A: 0xff}
	colAccent = color.RGBA{R: 0xea, G: 0x58, B: 0x0c, A: 0xff}
	colMuted  = color.RGBA{R: 0x94, G: 0xa3, B: 0xb8, A: 0xff}
	colRed    = color.RGBA{R: 0xf4, G: 0x3f, B: 0x5e, A: 0xff}
	colPanel  = color.RGBA{R: 0xf8, G: 0xfa, B: 0xfc, A: 0xff}
)

// renderCtx wraps a gg context with mm-based helpers.
type renderCtx struct {
	dc *gg.Context
	r  *Renderer
}

func (c *renderCtx) setFont(f *opentype.Font, sizeMM float64) error {
	face, err := c.r.face(f, sizeMM)
	if err != nil {
		return err
	}
	c.dc.SetFontFace(face)
	return nil
}

func (c *renderCtx) text(s string, xMM, yMM float64, clr color.Color) {
	c.dc.SetColor(clr)
	c.dc.DrawString(s, xMM*pxPerMM, yMM*pxPerMM)
}

func (c *renderCtx) textAnchored(s string, xMM, yMM, ax float64, clr color.Color) {
	c.dc.SetColor(clr)
	c.dc.DrawStringAnchored(s, xMM*pxPerMM, yMM*pxPerMM, ax, 0)
}

func (c *renderCtx) rect(xMM, yMM, wMM, hMM float64, clr color.Color) {
	c.dc.SetColor(clr)
	c.dc.DrawRectangle(xMM*pxPerMM, yMM*pxPerMM, wMM*pxPerMM, hMM*pxPerMM)
	c.dc.Fill()
}

func (c *renderCtx) line(x0, y0, x1, y1, widthMM float64, clr color.Color) {
	c.dc.SetColor(clr)
	c.dc.SetLineWidth(widthMM * pxPerMM)
	c.dc.DrawLine(x0*pxPerMM, y0*pxPerMM, x1*pxPerMM, y1*pxPerMM)
	c.dc.Stroke()
}

// Render draws the receipt into an A4 portrait bitmap. The signature
// raster (when present on the provider) and the optional logo are
// embedded into the layout.
func (r *Renderer) Render(receipt entity.Receipt, logo image.Image) (image.Image, error) {
	w := px(PageWidthMM)
	h := px(PageHeightMM)
	dc := gg.NewContext(w, h)
	dc.SetColor(color.White)
	dc.Clear()

	c := &renderCtx{dc: dc, r: r}

	const (
		left  = 20.0
		right = PageWidthMM - 20.0
		top   = 15.0
	)

	// Header: group name left, document number and city/date right.
	y := top + 10
	if logo != nil {
		fitted := imaging.Fit(logo, px(22), px(10), imaging.Lanczos)
		dc.DrawImage(fitted, px(left), px(top-2))
		y += 2
	}
	if err := c.setFont(r.bold, 9); err != nil {
		return nil, err
	}
	c.text("GRUPO RODAMOINHO", left, y, colInk)
	if err := c.setFont(r.bold, 3.2); err != nil {
		return nil, err
	}
	c.text("RECIBO SIMPLES", left, y+6, colAccent)

	if err := c.setFont(r.bold, 3.2); err != nil {
		return nil, err
	}
	c.textAnchored("NÚMERO DO DOCUMENTO: "+receipt.Number, right, y-2, 1, colInk)
	if err := c.setFont(r.bold, 2.8); err != nil {
		return nil, err
	}
	c.textAnchored(headerDateLine(receipt), right, y+4, 1, colMuted)

	c.line(left, y+12, right, y+12, 0.5, colPanel)

	// Centered title.
	y += 24
	if err := c.setFont(r.bold, 5.5); err != nil {
		return nil, err
	}
	c.textAnchored("RECIBO DE PAGAMENTO", PageWidthMM/2, y, 0.5, colInk)

	// Party blocks on the left, gross + banking on the right.
	y += 12
	blockW := (right - left - 10) / 2

	if err := r.partyBlock(c, left, y, blockW, "PAGADOR (TOMADOR)", []string{
		receipt.Payer.Name,
		"CNPJ: " + receipt.Payer.CNPJ,
		receipt.Payer.Address,
		receipt.Payer.Neighborhood + " - CEP: " + receipt.Payer.CEP,
	}); err != nil {
		return nil, err
	}

	providerLines := []string{
		receipt.Provider.Name,
		"DOC: " + receipt.Provider.Document,
	}
	if receipt.Provider.Address != "" {
		providerLines = append(providerLines, receipt.Provider.Address)
	}
	if receipt.Provider.Phone != "" {
		providerLines = append(providerLines, receipt.Provider.Phone)
	}
	if receipt.Provider.Email != "" {
		providerLines = append(providerLines, receipt.Provider.Email)
	}
	if err := r.partyBlock(c, left, y+34, blockW, "RECEBEDOR (PRESTADOR)", providerLines); err != nil {
		return nil, err
	}

	// Gross highlight box.
	boxX := left + blockW + 10
	c.rect(boxX, y, blockW, 30, colInk)
	if err := c.setFont(r.bold, 2.8); err != nil {
		return nil, err
	}
	c.textAnchored("VALOR TOTAL BRUTO", boxX+blockW/2, y+10, 0.5, colAccent)
	if err := c.setFont(r.bold, 7); err != nil {
		return nil, err
	}
	c.textAnchored(entity.FormatBRL(receipt.Totals.Gross), boxX+blockW/2, y+21, 0.5, color.White)

	// Banking box.
	bank := receipt.Provider.BankInfo
	if bank == "" {
		bank = "A COMBINAR"
	}
	c.rect(boxX, y+36, blockW, 22, colPanel)
	if err := c.setFont(r.bold, 2.6); err != nil {
		return nil, err
	}
	c.textAnchored("FORMA DE CRÉDITO:", boxX+blockW/2, y+44, 0.5, colAccent)
	if err := c.setFont(r.bold, 3.2); err != nil {
		return nil, err
	}
	c.textAnchored(bank, boxX+blockW/2, y+52, 0.5, colInk)

	// Items table.
	y += 74
	c.rect(left, y-6, right-left, 9, colPanel)
	if err := c.setFont(r.bold, 3); err != nil {
		return nil, err
	}
	c.text("ITEM E DESCRIÇÃO", left+4, y, colMuted)
	c.textAnchored("VALOR BRUTO (R$)", right-4, y, 1, colMuted)
	y += 10

	for i, item := range receipt.Items {
		if err := c.setFont(r.bold, 3.4); err != nil {
			return nil, err
		}
		c.text(fmt.Sprintf("%02d  %s", i+1, item.Description), left+4, y, colInk)
		c.textAnchored(entity.FormatAmountBR(item.Value), right-4, y, 1, colInk)
		c.line(left, y+3.5, right, y+3.5, 0.2, colPanel)
		y += 9
	}

	// Financial summary, right-aligned.
	y += 6
	sumX := right - 85
	if err := c.setFont(r.bold, 3); err != nil {
		return nil, err
	}
	c.text("SUBTOTAL BRUTO", sumX, y, colMuted)
	c.textAnchored(entity.FormatBRL(receipt.Totals.Gross), right-4, y, 1, colInk)
	y += 8

	if receipt.Discount.IsPositive() {
		c.text("(-) DESCONTOS", sumX, y, colRed)
		c.textAnchored(entity.FormatBRL(receipt.Discount), right-4, y, 1, colRed)
		y += 8
	}
	if receipt.TaxRate.IsPositive() {
		c.text(fmt.Sprintf("(-) IMPOSTOS (%s%%)", receipt.TaxRate.String()), sumX, y, colRed)
		c.textAnchored(entity.FormatBRL(receipt.Totals.TaxValue), right-4, y, 1, colRed)
		y += 8
	}

	c.rect(sumX, y-2, right-sumX, 18, colInk)
	if err := c.setFont(r.bold, 2.8); err != nil {
		return nil, err
	}
	c.text("VALOR LÍQUIDO", sumX+6, y+5, colAccent)
	if err := c.setFont(r.bold, 5.5); err != nil {
		return nil, err
	}
	c.textAnchored(entity.FormatBRL(receipt.Totals.Net), right-8, y+9, 1, color.White)

	// Signature footer pinned near the bottom of the page.
	footY := PageHeightMM - 60
	c.line(left, footY, right, footY, 1.2, color.Black)

	sigCenter := left + 55.0
	if receipt.Provider.Signature != "" {
		sig, err := decodeSignature(receipt.Provider.Signature)
		if err != nil {
			return nil, fmt.Errorf("decode signature: %w", err)
		}
		fitted := imaging.Fit(sig, px(80), px(22), imaging.Lanczos)
		b := fitted.Bounds()
		dc.DrawImage(fitted, int(sigCenter*pxPerMM)-b.Dx()/2, int((footY+8)*pxPerMM))
	}
	sigLineY := footY + 32
	c.line(sigCenter-40, sigLineY, sigCenter+40, sigLineY, 0.6, color.Black)
	if err := c.setFont(r.bold, 3.4); err != nil {
		return nil, err
	}
	name := receipt.Provider.Name
	if name == "" {
		name = "ASSINATURA DO EMISSOR"
	}
	c.textAnchored(name, sigCenter, sigLineY+6, 0.5, colInk)
	if err := c.setFont(r.bold, 2.4); err != nil {
		return nil, err
	}
	c.textAnchored("VALOR RECEBIDO E QUITADO INTEGRALMENTE", sigCenter, sigLineY+11, 0.5, colMuted)

	// Net highlight on the right of the footer.
	netW := 60.0
	c.rect(right-netW, footY+10, netW, 26, colAccent)
	if err := c.setFont(r.bold, 2.8); err != nil {
		return nil, err
	}
	c.textAnchored("LÍQUIDO A PAGAR", right-netW/2, footY+19, 0.5, color.White)
	if err := c.setFont(r.bold, 6); err != nil {
		return nil, err
	}
	c.textAnchored(entity.FormatBRL(receipt.Totals.Net), right-netW/2, footY+29, 0.5, color.White)

	return dc.Image(), nil
}

func (r *Renderer) partyBlock(c *renderCtx, xMM, yMM, wMM float64, title string, lines []string) error {
	if err := c.setFont(r.bold, 2.8); err != nil {
		return err
	}
	c.text(title, xMM, yMM, colAccent)

	c.rect(xMM, yMM+2, wMM, 28, colPanel)

	y := yMM + 8
	if err := c.setFont(r.bold, 3); err != nil {
		return err
	}
	c.text(lines[0], xMM+4, y, colInk)
	if err := c.setFont(r.regular, 2.8); err != nil {
		return err
	}
	for _, line := range lines[1:] {
		y += 5
		c.text(line, xMM+4, y, colMuted)
	}
	return nil
}

// headerDateLine formats "<CITY>, <DD> DE <MONTH> DE <YYYY>".
func headerDateLine(receipt entity.Receipt) string {
	return fmt.Sprintf("%s, %02d DE %s DE %d",
		strings.ToUpper(receipt.City),
		receipt.Date.Day(),
		monthsPT[receipt.Date.Month()-1],
		receipt.Date.Year(),
	)
}

func decodeSignature(b64 string) (image.Image, error) {
	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, err
	}
	return png.Decode(bytes.NewReader(raw))
}
