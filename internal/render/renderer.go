package render

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/folhita/catalogo/internal/domain"
)

// ErrRenderFailed indicates the PDF could not be produced.
var ErrRenderFailed = errors.New("erro ao gerar pdf")

// A4 portrait in millimeters.
const (
	pageW  = 210.0
	pageH  = 297.0
	margin = 21.0
	bodyW  = pageW - 2*margin
)

// Page background and accent colors, matching the original artwork.
var (
	colorDark   = rgb{15, 24, 32}
	colorGreen  = rgb{0, 255, 65}
	colorCyan   = rgb{0, 255, 255}
	colorAccent = rgb{0, 136, 170}
	colorInk    = rgb{51, 51, 51}
	colorMuted  = rgb{102, 102, 102}
	colorFaint  = rgb{153, 153, 153}
	colorRowBrd = rgb{224, 224, 224}
	colorHdrBg  = rgb{232, 244, 248}
	colorWhite  = rgb{255, 255, 255}
)

type rgb struct{ r, g, b int }

// Renderer turns a finalized submission into the five-page proposal PDF.
// The current year is fixed at construction so rendering is deterministic
// for a given submission.
type Renderer struct {
	year    int
	created time.Time
}

// NewRenderer creates a Renderer using year for the cover badge, the
// validity date, and the copyright line.
func NewRenderer(year int) *Renderer {
	return &Renderer{year: year, created: time.Now()}
}

// Render produces the PDF bytes for sub. It performs no I/O; the caller
// decides where the document goes.
func (r *Renderer) Render(sub *domain.Submission) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(r.created)
	pdf.SetModificationDate(r.created)
	pdf.SetTitle("Proposta Comercial - Folhita", true)
	pdf.SetAutoPageBreak(false, 0)

	p := &painter{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}

	p.coverPage(r.year)
	p.aboutPage()
	p.advantagesPage()
	p.proposalPage(sub, r.year)
	p.thanksPage(r.year)

	if pdf.Err() {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, pdf.Error())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	return buf.Bytes(), nil
}

// painter wraps the pdf handle with the cp1252 translator for pt-BR text.
type painter struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

func (p *painter) fill(c rgb) { p.pdf.SetFillColor(c.r, c.g, c.b) }
func (p *painter) draw(c rgb) { p.pdf.SetDrawColor(c.r, c.g, c.b) }
func (p *painter) text(c rgb) { p.pdf.SetTextColor(c.r, c.g, c.b) }
func (p *painter) font(style string, size float64) {
	p.pdf.SetFont("Helvetica", style, size)
}

// darkPage starts a new page with the dark brand background.
func (p *painter) darkPage() {
	p.pdf.AddPage()
	p.fill(colorDark)
	p.pdf.Rect(0, 0, pageW, pageH, "F")
}

func (p *painter) coverPage(year int) {
	p.darkPage()

	// Green band over the left 60% of the page.
	p.fill(colorGreen)
	p.pdf.Rect(0, 0, pageW*0.6, pageH, "F")

	// Year badge, top right.
	p.draw(colorGreen)
	p.pdf.SetLineWidth(0.7)
	p.pdf.Circle(pageW-24.5, 24.5, 10.5, "D")
	p.text(colorWhite)
	p.font("B", 18)
	p.pdf.SetXY(pageW-35, 21)
	p.pdf.CellFormat(21, 7, fmt.Sprintf("%d", year), "", 0, "C", false, 0, "")

	// Title block, right aligned.
	p.font("B", 64)
	p.pdf.SetXY(margin, 100)
	p.pdf.MultiCell(bodyW, 24, p.tr(coverTitle), "", "R", false)

	// Subtitle pill.
	p.draw(colorCyan)
	p.pdf.SetLineWidth(0.7)
	p.pdf.RoundedRect(pageW-margin-120, 226, 120, 14, 7, "1234", "D")
	p.font("B", 15)
	p.pdf.SetXY(pageW-margin-120, 229.5)
	p.pdf.CellFormat(120, 7, p.tr(coverSubtitle), "", 0, "C", false, 0, "")

	// Tagline and brand footer.
	p.font("B", 12)
	p.pdf.SetXY(margin, 248)
	p.pdf.CellFormat(bodyW, 6, p.tr(coverTagline), "", 0, "R", false, 0, "")

	p.text(colorGreen)
	p.font("B", 14)
	p.pdf.SetXY(margin, 272)
	p.pdf.CellFormat(bodyW, 8, p.tr(coverBrand), "", 0, "R", false, 0, "")
}

func (p *painter) aboutPage() {
	p.darkPage()

	p.text(colorGreen)
	p.font("B", 56)
	p.pdf.SetXY(margin, 40)
	p.pdf.CellFormat(bodyW, 22, p.tr(aboutTitle), "", 0, "L", false, 0, "")

	p.text(colorWhite)
	p.font("", 13)
	p.pdf.SetXY(margin, 75)
	p.pdf.MultiCell(bodyW*0.7, 8.2, p.tr(aboutBody), "", "L", false)

	p.font("B", 16)
	p.pdf.SetXY(margin, p.pdf.GetY()+14)
	p.pdf.CellFormat(bodyW, 8, p.tr(aboutTagline), "", 0, "L", false, 0, "")
}

func (p *painter) advantagesPage() {
	p.darkPage()

	p.text(colorWhite)
	p.font("B", 32)
	p.pdf.SetXY(margin, 35)
	p.pdf.MultiCell(bodyW*0.6, 14, p.tr(advantagesTitle), "", "L", false)

	p.draw(colorCyan)
	p.pdf.SetLineWidth(0.7)
	p.font("", 13)

	y := p.pdf.GetY() + 14
	for _, item := range advantageItems {
		p.pdf.RoundedRect(margin, y, bodyW*0.6, 14, 7, "1234", "D")
		p.pdf.SetXY(margin+6, y+3.5)
		p.pdf.CellFormat(bodyW*0.6-12, 7, p.tr(item), "", 0, "L", false, 0, "")
		y += 19.5
	}
}

// Table column widths as fractions of the body width.
var colFractions = []float64{0.15, 0.40, 0.20, 0.25}

func (p *painter) proposalPage(sub *domain.Submission, year int) {
	p.pdf.AddPage()

	p.text(colorAccent)
	p.font("B", 32)
	p.pdf.SetXY(margin, 25)
	p.pdf.CellFormat(bodyW, 13, p.tr(proposalTitle), "", 0, "L", false, 0, "")

	// Left: directed-to line.
	p.text(colorInk)
	p.font("", 14)
	p.pdf.SetXY(margin, 48)
	p.pdf.CellFormat(p.pdf.GetStringWidth(p.tr(proposalDirectedLabel))+1, 8, p.tr(proposalDirectedLabel), "", 0, "L", false, 0, "")
	p.font("B", 18)
	p.pdf.CellFormat(0, 8, p.tr(sub.Location), "", 0, "L", false, 0, "")

	// Right: validity date and proposal number.
	p.text(colorFaint)
	p.font("", 11)
	p.pdf.SetXY(pageW-margin-70, 44)
	p.pdf.CellFormat(70, 5, p.tr(proposalValidityLabel), "", 0, "R", false, 0, "")
	p.text(colorInk)
	p.font("B", 16)
	p.pdf.SetXY(pageW-margin-90, 50)
	p.pdf.CellFormat(90, 7, p.tr(ValidityDate(sub.ValidUntil, year)), "", 0, "R", false, 0, "")
	p.font("B", 10)
	p.pdf.SetXY(pageW-margin-70, 60)
	p.pdf.CellFormat(70, 5, p.tr(proposalNumberLabel), "", 0, "R", false, 0, "")
	p.pdf.SetXY(pageW-margin-70, 65)
	p.pdf.CellFormat(70, 5, sub.ProposalCode, "", 0, "R", false, 0, "")

	// Optional client block from a successful registry lookup.
	y := 76.0
	if sub.Client != nil {
		p.text(colorInk)
		p.font("", 11)
		p.pdf.SetXY(margin, y)
		client := proposalClientLabel + sub.Client.DisplayName()
		if sub.Client.CNPJ != "" {
			client += "  |  CNPJ " + sub.Client.CNPJ
		}
		p.pdf.CellFormat(bodyW, 6, p.tr(client), "", 0, "L", false, 0, "")
		y += 10
	}

	p.font("B", 16)
	p.pdf.SetXY(margin, y)
	p.pdf.CellFormat(bodyW, 8, p.tr(proposalValidityTitle), "", 0, "L", false, 0, "")
	y += 14

	y = p.planTable(sub.Plans, y)

	p.text(colorMuted)
	p.font("", 12)
	p.pdf.SetXY(margin, y+8)
	p.pdf.CellFormat(bodyW, 6, p.tr(paymentMethods), "", 0, "C", false, 0, "")
}

// planTable renders the pricing rows starting at y and returns the y
// position just below the table.
func (p *painter) planTable(plans []domain.PlanLineItem, y float64) float64 {
	widths := make([]float64, len(colFractions))
	for i, f := range colFractions {
		widths[i] = bodyW * f
	}

	// Header row.
	p.fill(colorHdrBg)
	p.draw(colorAccent)
	p.text(colorAccent)
	p.pdf.SetLineWidth(0.6)
	p.font("B", 10)
	p.pdf.SetXY(margin, y)
	for i, h := range tableHeaders {
		align := "L"
		if i == len(tableHeaders)-1 {
			align = "R"
		}
		p.pdf.CellFormat(widths[i], 11, p.tr(h), "B", 0, align, true, 0, "")
	}
	y += 14

	p.draw(colorRowBrd)
	p.pdf.SetLineWidth(0.3)
	for _, plan := range plans {
		cells := []struct {
			text  string
			bold  bool
			align string
		}{
			{plan.Duration, true, "L"},
			{plan.Location, false, "L"},
			{plan.ContractTime, false, "L"},
			{FormatCurrency(plan.Value), true, "R"},
		}

		p.pdf.SetXY(margin, y)
		for i, cell := range cells {
			if cell.bold {
				p.text(colorAccent)
				p.font("B", 13)
			} else {
				p.text(colorInk)
				p.font("", 11)
			}
			border := "TB"
			if i == 0 {
				border = "LTB"
			} else if i == len(cells)-1 {
				border = "RTB"
			}
			p.pdf.CellFormat(widths[i], 12, p.tr(cell.text), border, 0, cell.align, false, 0, "")
		}
		y += 15.5
	}
	return y
}

func (p *painter) thanksPage(year int) {
	p.darkPage()

	p.text(colorGreen)
	p.font("B", 64)
	p.pdf.SetXY(margin, 70)
	p.pdf.CellFormat(bodyW, 26, p.tr(thanksTitle), "", 0, "C", false, 0, "")

	p.text(colorWhite)
	p.font("", 13)
	p.pdf.SetXY(margin+bodyW*0.1, 110)
	p.pdf.MultiCell(bodyW*0.8, 8.2, p.tr(thanksBody), "", "C", false)

	// Contact box.
	p.draw(colorGreen)
	p.pdf.SetLineWidth(0.7)
	boxW := 90.0
	boxX := (pageW - boxW) / 2
	boxY := p.pdf.GetY() + 16
	p.pdf.RoundedRect(boxX, boxY, boxW, 18, 9, "1234", "D")
	p.font("B", 22)
	p.pdf.SetXY(boxX, boxY+5.5)
	p.pdf.CellFormat(boxW, 8, contactNumber, "", 0, "C", false, 0, "")

	p.text(colorFaint)
	p.font("", 10)
	p.pdf.SetXY(margin, boxY+32)
	footer := fmt.Sprintf("Copyright © %d @folhita_cv, all rights reserved.", year)
	p.pdf.CellFormat(bodyW, 5, p.tr(footer), "", 0, "C", false, 0, "")
}
