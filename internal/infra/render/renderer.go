package render

import (
	"fmt"

	"github.com/xavierca1/salary-slips/internal/entity"
)

// SlipRenderer picks the layout engine for a format.
type SlipRenderer struct {
	pdf   *PDFRenderer
	excel *ExcelRenderer
}

func NewSlipRenderer(pdf *PDFRenderer, excel *ExcelRenderer) *SlipRenderer {
	if pdf == nil {
		pdf = DefaultPDFRenderer()
	}
	if excel == nil {
		excel = NewExcelRenderer()
	}
	return &SlipRenderer{pdf: pdf, excel: excel}
}

func (r *SlipRenderer) Render(rec entity.EmployeeRecord, format entity.Format, period entity.Period) (entity.Document, error) {
	slip, err := Extract(rec, period)
	if err != nil {
		return entity.Document{}, err
	}

	var content []byte
	switch format {
	case entity.FormatPDF:
		content, err = r.pdf.Render(slip)
	case entity.FormatExcel:
		content, err = r.excel.Render(slip)
	default:
		return entity.Document{}, fmt.Errorf("%w: %q", entity.ErrUnknownFormat, format)
	}
	if err != nil {
		return entity.Document{}, err
	}

	return entity.Document{
		FileName:    FileName(rec.Name, period, format),
		ContentType: format.ContentType(),
		Content:     content,
	}, nil
}
