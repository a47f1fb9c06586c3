package spreadsheet

import (
	"errors"
	"fmt"
	"time"

	"github.com/xavierca1/salary-slips/internal/entity"
)

const (
	CodeUnsupportedFile = "UNSUPPORTED_FILE"
	CodeUnreadableFile  = "UNREADABLE_FILE"
	CodeMissingSheet    = "MISSING_SHEET"
	CodeHeadersNotFound = "HEADERS_NOT_FOUND"
)

type ParseError struct {
	Code    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ParseError) Unwrap() error { return e.Err }

type sheetKind int

const (
	sheetOther sheetKind = iota
	sheetInfo
	sheetSalary
)

func classifySheet(name string) sheetKind {
	n := lower(name)
	switch {
	case containsAny(n, "thông tin", "thong tin", "info"):
		return sheetInfo
	case containsAny(n, "lương", "luong", "salary"):
		return sheetSalary
	default:
		return sheetOther
	}
}

// Importer turns an uploaded workbook into a Dataset. It never touches the
// store: callers swap the result in only when Import succeeds.
type Importer struct {
	now func() time.Time
}

func NewImporter() *Importer {
	return &Importer{now: time.Now}
}

func (im *Importer) Import(fileName string, data []byte) (*entity.Dataset, error) {
	wb, err := openWorkbook(fileName, data)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			return nil, pe
		}
		return nil, &ParseError{Code: CodeUnreadableFile, Message: "Không đọc được file Excel", Err: err}
	}
	defer func() { _ = wb.Close() }()

	infoSheet, salarySheet := "", ""
	for _, name := range wb.SheetNames() {
		switch classifySheet(name) {
		case sheetInfo:
			if infoSheet == "" {
				infoSheet = name
			}
		case sheetSalary:
			if salarySheet == "" {
				salarySheet = name
			}
		}
	}
	if infoSheet == "" {
		return nil, &ParseError{Code: CodeMissingSheet, Message: "Không tìm thấy sheet thông tin nhân viên"}
	}
	if salarySheet == "" {
		return nil, &ParseError{Code: CodeMissingSheet, Message: "Không tìm thấy sheet lương"}
	}

	info, infoName, err := im.loadSheet(wb, infoSheet)
	if err != nil {
		return nil, err
	}
	salary, salaryName, err := im.loadSheet(wb, salarySheet)
	if err != nil {
		return nil, err
	}

	// later rows win when two salary rows carry the same name
	salaryByKey := make(map[string][]string, len(salary.rows))
	for _, row := range salary.rows {
		key := entity.NameKey(row[salaryName])
		if key == "" {
			continue
		}
		salaryByKey[key] = row
	}

	ds := &entity.Dataset{
		FileName:      fileName,
		InfoColumns:   validColumns(info.columns),
		SalaryColumns: validColumns(salary.columns),
		LoadedAt:      im.now(),
	}

	for _, row := range info.rows {
		name := row[infoName]
		key := entity.NameKey(name)
		if key == "" {
			continue
		}
		salaryRow, ok := salaryByKey[key]
		var salaryFields entity.Fields
		if ok {
			salaryFields = toFields(salary.columns, salaryRow)
		}
		rec := entity.NewEmployeeRecord(len(ds.Records), name, toFields(info.columns, row), salaryFields, ok)
		ds.Records = append(ds.Records, rec)
	}

	return ds, nil
}

func (im *Importer) loadSheet(wb workbook, sheet string) (*table, int, error) {
	rows, err := wb.Rows(sheet)
	if err != nil {
		return nil, 0, &ParseError{Code: CodeUnreadableFile, Message: "Không đọc được sheet " + sheet, Err: err}
	}
	t, err := cleanSheet(rows)
	if err != nil {
		return nil, 0, &ParseError{Code: CodeHeadersNotFound, Message: "Không tìm thấy dòng tiêu đề trong sheet " + sheet, Err: err}
	}
	nameCol := t.nameColumn()
	if nameCol < 0 {
		return nil, 0, &ParseError{Code: CodeHeadersNotFound, Message: "Không tìm thấy cột họ tên trong sheet " + sheet}
	}
	return t, nameCol, nil
}

func toFields(columns, row []string) entity.Fields {
	fields := make(entity.Fields, 0, len(columns))
	for i, col := range columns {
		if !isValidColumn(col) || i >= len(row) || row[i] == "" {
			continue
		}
		fields = append(fields, entity.Field{Name: col, Value: entity.ParseValue(row[i])})
	}
	return fields
}

func validColumns(columns []string) []string {
	out := make([]string, 0, len(columns))
	for _, c := range columns {
		if isValidColumn(c) {
			out = append(out, c)
		}
	}
	return out
}
