package render

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const ExcelSheetName = "Phiếu Lương"

type ExcelRenderer struct{}

func NewExcelRenderer() *ExcelRenderer {
	return &ExcelRenderer{}
}

type excelStyles struct {
	title, label, value, header, itemBlue, itemGreen, totalLabel, totalValue, netLabel, netValue, note int
}

var thinBorder = []excelize.Border{
	{Type: "left", Color: "000000", Style: 1},
	{Type: "right", Color: "000000", Style: 1},
	{Type: "top", Color: "000000", Style: 1},
	{Type: "bottom", Color: "000000", Style: 1},
}

func solid(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1}
}

func newExcelStyles(f *excelize.File) (*excelStyles, error) {
	defs := []struct {
		dst   *int
		style *excelize.Style
	}{}
	st := &excelStyles{}
	add := func(dst *int, style *excelize.Style) {
		defs = append(defs, struct {
			dst   *int
			style *excelize.Style
		}{dst, style})
	}

	center := &excelize.Alignment{Horizontal: "center", Vertical: "center"}
	right := &excelize.Alignment{Horizontal: "right"}

	add(&st.title, &excelize.Style{Font: &excelize.Font{Bold: true, Size: 16, Color: "FF0000"}, Alignment: center})
	add(&st.label, &excelize.Style{Font: &excelize.Font{Bold: true, Size: 11}, Fill: solid("FFFF00"), Border: thinBorder})
	add(&st.value, &excelize.Style{Font: &excelize.Font{Size: 10}, Border: thinBorder})
	add(&st.header, &excelize.Style{Font: &excelize.Font{Bold: true, Size: 11}, Fill: solid("FFC000"), Border: thinBorder, Alignment: center})
	add(&st.itemBlue, &excelize.Style{Font: &excelize.Font{Size: 10}, Fill: solid("DAEEF3"), Border: thinBorder})
	add(&st.itemGreen, &excelize.Style{Font: &excelize.Font{Size: 10}, Fill: solid("E2EFDA"), Border: thinBorder, Alignment: right})
	add(&st.totalLabel, &excelize.Style{Font: &excelize.Font{Bold: true, Size: 11}, Fill: solid("FFFF00"), Border: thinBorder})
	add(&st.totalValue, &excelize.Style{Font: &excelize.Font{Size: 10}, Fill: solid("FFFFCC"), Border: thinBorder, Alignment: right})
	add(&st.netLabel, &excelize.Style{Font: &excelize.Font{Bold: true, Size: 12, Color: "FF0000"}, Fill: solid("FFFF00"), Border: thinBorder, Alignment: center})
	add(&st.netValue, &excelize.Style{Font: &excelize.Font{Bold: true, Size: 12, Color: "FF0000"}, Fill: solid("FFFFCC"), Border: thinBorder, Alignment: right})
	add(&st.note, &excelize.Style{Font: &excelize.Font{Size: 9, Italic: true}})

	for _, d := range defs {
		id, err := f.NewStyle(d.style)
		if err != nil {
			return nil, err
		}
		*d.dst = id
	}
	return st, nil
}

// sheetWriter records the first error so the layout code stays linear.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	err   error
}

func (w *sheetWriter) set(cell string, value any, style int) {
	if w.err != nil {
		return
	}
	if w.err = w.f.SetCellValue(w.sheet, cell, value); w.err != nil {
		return
	}
	w.err = w.f.SetCellStyle(w.sheet, cell, cell, style)
}

func (w *sheetWriter) style(from, to string, style int) {
	if w.err != nil {
		return
	}
	w.err = w.f.SetCellStyle(w.sheet, from, to, style)
}

func (w *sheetWriter) merge(from, to string) {
	if w.err != nil {
		return
	}
	w.err = w.f.MergeCell(w.sheet, from, to)
}

func (w *sheetWriter) width(col string, width float64) {
	if w.err != nil {
		return
	}
	w.err = w.f.SetColWidth(w.sheet, col, col, width)
}

func at(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

// Render writes a single-sheet workbook with the slip layout.
func (r *ExcelRenderer) Render(s *Slip) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", ExcelSheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	stamp := s.Period.Start().Format("2006-01-02T15:04:05Z")
	if err := f.SetDocProps(&excelize.DocProperties{
		Title:    s.Title(),
		Creator:  "salary-slips",
		Created:  stamp,
		Modified: stamp,
	}); err != nil {
		return nil, fmt.Errorf("set doc props: %w", err)
	}

	st, err := newExcelStyles(f)
	if err != nil {
		return nil, fmt.Errorf("create styles: %w", err)
	}

	w := &sheetWriter{f: f, sheet: ExcelSheetName}
	w.width("A", 8)
	w.width("B", 20)
	w.width("C", 25)
	w.width("D", 25)
	w.width("E", 25)

	w.merge("A1", "E1")
	w.set("A1", s.Title(), st.title)

	row := 3
	for _, info := range s.infoRows() {
		w.set(at("A", row), info.LeftLabel, st.label)
		w.set(at("B", row), info.LeftValue, st.value)
		w.set(at("C", row), info.RightLabel, st.label)
		w.merge(at("D", row), at("E", row))
		w.set(at("D", row), info.RightValue, st.value)
		w.style(at("E", row), at("E", row), st.value)
		row++
	}

	row++
	w.set(at("A", row), labelNo, st.header)
	w.merge(at("B", row), at("C", row))
	w.set(at("B", row), labelIncome, st.header)
	w.style(at("C", row), at("C", row), st.header)
	w.merge(at("D", row), at("E", row))
	w.set(at("D", row), labelDeductions, st.header)
	w.style(at("E", row), at("E", row), st.header)

	row++
	for _, item := range s.itemRows() {
		w.set(at("A", row), item.No, st.itemBlue)
		w.set(at("B", row), item.Income, st.itemBlue)
		w.set(at("C", row), item.IncomeAmount, st.itemGreen)
		w.set(at("D", row), item.Deduction, st.itemBlue)
		w.set(at("E", row), item.DeductionAmount, st.itemGreen)
		row++
	}

	w.set(at("A", row), "", st.value)
	w.set(at("B", row), labelTotalIncome, st.totalLabel)
	w.set(at("C", row), FormatAmount(s.TotalIncome), st.totalValue)
	w.set(at("D", row), labelTotalDeduct, st.totalLabel)
	w.set(at("E", row), FormatAmount(s.TotalDeductions), st.totalValue)

	row++
	w.merge(at("A", row), at("D", row))
	w.set(at("A", row), labelNetPay, st.netLabel)
	w.style(at("B", row), at("D", row), st.netLabel)
	w.set(at("E", row), FormatAmount(s.NetPay), st.netValue)

	row += 2
	for _, line := range footerLines {
		w.merge(at("A", row), at("E", row))
		w.set(at("A", row), line, st.note)
		row++
	}

	if w.err != nil {
		return nil, fmt.Errorf("write slip sheet: %w", w.err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
