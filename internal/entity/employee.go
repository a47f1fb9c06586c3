package entity

import (
	"strconv"
	"strings"
	"time"
)

type Field struct {
	Name  string `json:"name"`
	Value Value  `json:"value"`
}

// Fields keeps the sheet column order.
type Fields []Field

func (f Fields) Get(name string) (Value, bool) {
	for _, field := range f {
		if field.Name == name {
			return field.Value, true
		}
	}
	return Value{}, false
}

// Find returns the first field whose lowercased name satisfies match.
func (f Fields) Find(match func(lowerName string) bool) (Field, bool) {
	for _, field := range f {
		if match(strings.ToLower(field.Name)) {
			return field, true
		}
	}
	return Field{}, false
}

func (f Fields) Map() map[string]string {
	out := make(map[string]string, len(f))
	for _, field := range f {
		out[field.Name] = field.Value.Raw
	}
	return out
}

// EmployeeRecord is one info-sheet row merged with its salary-sheet row.
type EmployeeRecord struct {
	ID        int
	Name      string
	Key       string
	Info      Fields
	Salary    Fields
	HasSalary bool
}

func NewEmployeeRecord(id int, name string, info, salary Fields, hasSalary bool) EmployeeRecord {
	return EmployeeRecord{
		ID:        id,
		Name:      strings.TrimSpace(name),
		Key:       NameKey(name),
		Info:      info,
		Salary:    salary,
		HasSalary: hasSalary,
	}
}

// NameKey normalizes an employee name for matching rows across sheets.
func NameKey(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

func (e EmployeeRecord) Identifier() string {
	return strconv.Itoa(e.ID)
}

// Fields returns info fields followed by salary fields.
func (e EmployeeRecord) Fields() Fields {
	out := make(Fields, 0, len(e.Info)+len(e.Salary))
	out = append(out, e.Info...)
	return append(out, e.Salary...)
}

// Dataset is everything derived from one uploaded workbook.
type Dataset struct {
	FileName      string
	InfoColumns   []string
	SalaryColumns []string
	Records       []EmployeeRecord
	LoadedAt      time.Time
}

func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Records)
}

func (d *Dataset) Find(id int) (EmployeeRecord, bool) {
	if d == nil || id < 0 || id >= len(d.Records) {
		return EmployeeRecord{}, false
	}
	rec := d.Records[id]
	return rec, rec.ID == id
}

type EmployeeRepository interface {
	Replace(ds *Dataset)
	Current() (*Dataset, bool)
}
