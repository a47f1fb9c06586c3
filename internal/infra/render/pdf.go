package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"github.com/go-pdf/fpdf"
)

const (
	pdfUnicodeFamily = "SlipSans"
	pdfCoreFamily    = "Helvetica"
)

type rgb struct{ r, g, b int }

var (
	colorBlack       = rgb{0, 0, 0}
	colorRed         = rgb{255, 0, 0}
	colorYellow      = rgb{255, 255, 0}
	colorLightYellow = rgb{255, 255, 204}
	colorOrange      = rgb{255, 192, 0}
	colorLightBlue   = rgb{218, 238, 243}
	colorLightGreen  = rgb{226, 239, 218}
)

// DejaVu Sans covers the Vietnamese range; see fonts/LICENSE.
var (
	//go:embed fonts/DejaVuSans.ttf
	dejaVuSans []byte
	//go:embed fonts/DejaVuSans-Bold.ttf
	dejaVuSansBold []byte
)

// PDFRenderer lays out an A4 slip. With a TrueType font the text keeps its
// diacritics; NewPDFRenderer(nil, nil) falls back to Helvetica and ASCII text.
type PDFRenderer struct {
	regular []byte
	bold    []byte
}

func NewPDFRenderer(regular, bold []byte) *PDFRenderer {
	return &PDFRenderer{regular: regular, bold: bold}
}

// DefaultPDFRenderer uses the bundled DejaVu Sans faces.
func DefaultPDFRenderer() *PDFRenderer {
	return NewPDFRenderer(dejaVuSans, dejaVuSansBold)
}

// LoadPDFRenderer reads font files that override the bundled font; an empty
// regular path keeps DejaVu Sans.
func LoadPDFRenderer(regularPath, boldPath string) (*PDFRenderer, error) {
	if regularPath == "" {
		return DefaultPDFRenderer(), nil
	}
	regular, err := os.ReadFile(regularPath)
	if err != nil {
		return nil, fmt.Errorf("read pdf font: %w", err)
	}
	var bold []byte
	if boldPath != "" {
		if bold, err = os.ReadFile(boldPath); err != nil {
			return nil, fmt.Errorf("read pdf bold font: %w", err)
		}
	}
	return NewPDFRenderer(regular, bold), nil
}

func (r *PDFRenderer) Unicode() bool { return len(r.regular) > 0 }

type pdfDoc struct {
	*fpdf.Fpdf
	family  string
	hasBold bool
	text    func(string) string
}

func (d *pdfDoc) font(style string, size float64) {
	if style == "B" && !d.hasBold {
		style = ""
	}
	d.SetFont(d.family, style, size)
}

func (d *pdfDoc) fill(c rgb) { d.SetFillColor(c.r, c.g, c.b) }

func (d *pdfDoc) color(c rgb) { d.SetTextColor(c.r, c.g, c.b) }

func (d *pdfDoc) cell(w, h float64, txt, align string, bg *rgb) {
	filled := bg != nil
	if filled {
		d.fill(*bg)
	}
	d.CellFormat(w, h, d.text(txt), "1", 0, align+"M", filled, 0, "")
}

func (r *PDFRenderer) newDoc(s *Slip) *pdfDoc {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(true, 10)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(s.Period.Start())
	pdf.SetModificationDate(s.Period.Start())

	d := &pdfDoc{Fpdf: pdf}
	if r.Unicode() {
		pdf.AddUTF8FontFromBytes(pdfUnicodeFamily, "", r.regular)
		if len(r.bold) > 0 {
			pdf.AddUTF8FontFromBytes(pdfUnicodeFamily, "B", r.bold)
			d.hasBold = true
		}
		d.family = pdfUnicodeFamily
		d.text = func(s string) string { return s }
		pdf.SetTitle(s.Title(), true)
	} else {
		tr := pdf.UnicodeTranslatorFromDescriptor("")
		d.family = pdfCoreFamily
		d.hasBold = true
		d.text = func(s string) string { return tr(ASCII(s)) }
		pdf.SetTitle(ASCII(s.Title()), false)
	}
	return d
}

func (r *PDFRenderer) Render(s *Slip) ([]byte, error) {
	d := r.newDoc(s)
	d.AddPage()
	d.SetDrawColor(colorBlack.r, colorBlack.g, colorBlack.b)
	d.SetLineWidth(0.2)

	d.font("B", 16)
	d.color(colorRed)
	d.CellFormat(0, 10, d.text(s.Title()), "", 1, "C", false, 0, "")
	d.Ln(6)

	d.color(colorBlack)
	d.font("", 9)
	for _, row := range s.infoRows() {
		d.cell(35, 7, row.LeftLabel, "L", &colorYellow)
		d.cell(50, 7, row.LeftValue, "L", nil)
		d.cell(40, 7, row.RightLabel, "L", &colorYellow)
		d.cell(50, 7, row.RightValue, "L", nil)
		d.Ln(-1)
	}
	d.Ln(6)

	d.font("B", 10)
	d.cell(15, 8, labelNo, "C", &colorOrange)
	d.cell(80, 8, labelIncome, "C", &colorOrange)
	d.cell(80, 8, labelDeductions, "C", &colorOrange)
	d.Ln(-1)

	d.font("", 9)
	for _, row := range s.itemRows() {
		d.cell(15, 7, row.No, "C", &colorLightBlue)
		d.cell(45, 7, row.Income, "L", &colorLightBlue)
		d.cell(35, 7, row.IncomeAmount, "R", &colorLightGreen)
		d.cell(45, 7, row.Deduction, "L", &colorLightBlue)
		d.cell(35, 7, row.DeductionAmount, "R", &colorLightGreen)
		d.Ln(-1)
	}

	d.font("B", 9)
	d.cell(15, 7, "", "C", nil)
	d.cell(45, 7, labelTotalIncome, "L", &colorYellow)
	d.cell(35, 7, FormatAmount(s.TotalIncome), "R", &colorLightYellow)
	d.cell(45, 7, labelTotalDeduct, "L", &colorYellow)
	d.cell(35, 7, FormatAmount(s.TotalDeductions), "R", &colorLightYellow)
	d.Ln(-1)
	d.Ln(2)

	d.font("B", 11)
	d.color(colorRed)
	d.cell(140, 9, labelNetPay, "C", &colorYellow)
	d.cell(35, 9, FormatAmount(s.NetPay), "R", &colorLightYellow)
	d.Ln(-1)
	d.Ln(8)

	d.color(colorBlack)
	d.font("", 8)
	for _, line := range footerLines {
		d.MultiCell(0, 4, d.text(line), "", "L", false)
	}

	if err := d.Error(); err != nil {
		return nil, fmt.Errorf("build pdf: %w", err)
	}
	var buf bytes.Buffer
	if err := d.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}
