package spreadsheet

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// workbook is the read-only view the importer needs from either file format.
type workbook interface {
	SheetNames() []string
	Rows(sheet string) ([][]string, error)
	Close() error
}

func openWorkbook(fileName string, data []byte) (workbook, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".xlsx", ".xlsm":
		f, err := excelize.OpenReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		return &xlsxBook{file: f}, nil
	case ".xls":
		wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
		if err != nil {
			return nil, err
		}
		return newXLSBook(wb), nil
	default:
		return nil, &ParseError{
			Code:    CodeUnsupportedFile,
			Message: "Chỉ hỗ trợ file Excel (.xlsx, .xls)",
		}
	}
}

type xlsxBook struct {
	file *excelize.File
}

func (b *xlsxBook) SheetNames() []string {
	return b.file.GetSheetList()
}

func (b *xlsxBook) Rows(sheet string) ([][]string, error) {
	// raw values keep numbers unformatted ("5000000" rather than "5,000,000")
	rows, err := b.file.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

func (b *xlsxBook) Close() error {
	return b.file.Close()
}

type xlsBook struct {
	wb    *xls.WorkBook
	index map[string]int
	names []string
}

// maxXLSCols is the BIFF8 column limit.
const maxXLSCols = 256

func newXLSBook(wb *xls.WorkBook) *xlsBook {
	// With user-defined number formats present, xls renders every numeric
	// cell using them as an RFC3339 timestamp. Without them it yields the raw number.
	wb.Formats = map[uint16]*xls.Format{}

	b := &xlsBook{wb: wb, index: make(map[string]int)}
	for i := 0; i < wb.NumSheets(); i++ {
		s := wb.GetSheet(i)
		if s == nil {
			continue
		}
		b.index[s.Name] = i
		b.names = append(b.names, s.Name)
	}
	return b
}

func (b *xlsBook) SheetNames() []string {
	return b.names
}

func (b *xlsBook) Rows(sheet string) ([][]string, error) {
	i, ok := b.index[sheet]
	if !ok {
		return nil, fmt.Errorf("sheet %q not found", sheet)
	}
	s := b.wb.GetSheet(i)
	if s == nil {
		return nil, fmt.Errorf("sheet %q unreadable", sheet)
	}

	rows := make([][]string, 0, int(s.MaxRow)+1)
	for r := 0; r <= int(s.MaxRow); r++ {
		row := sheetRow(s, r)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		rows = append(rows, rowCells(row))
	}
	return rows, nil
}

// sheetRow returns nil for a row index with no ROW or cell record, where
// WorkSheet.Row dereferences a missing map entry.
func sheetRow(s *xls.WorkSheet, r int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return s.Row(r)
}

// rowCells scans every column: rows built from cell records alone report
// LastCol 0.
func rowCells(row *xls.Row) []string {
	cells := make([]string, maxXLSCols)
	n := 0
	for c := 0; c < maxXLSCols; c++ {
		if v := row.Col(c); v != "" {
			cells[c] = v
			n = c + 1
		}
	}
	return cells[:n]
}

func (b *xlsBook) Close() error { return nil }
