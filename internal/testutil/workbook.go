// Package testutil builds payroll workbooks in memory for tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const (
	InfoSheet   = "Thông tin nhân viên"
	SalarySheet = "Bảng lương"
)

type Sheet struct {
	Name string
	Rows [][]any
}

type Employee struct {
	Name      string
	Email     string
	Account   string
	Bank      string
	Base      float64
	Income    float64
	Taxable   float64
	PIT       float64
	Insurance float64
	UnionFee  float64
	NoSalary  bool
}

func DefaultEmployees() []Employee {
	return []Employee{
		{
			Name: "Nguyễn Văn An", Email: "an@congty.vn", Account: "0071000123456", Bank: "Vietcombank - CN HCM",
			Base: 5000000, Income: 20000000, Taxable: 15000000, PIT: 500000, Insurance: 1050000, UnionFee: 50000,
		},
		{
			Name: "Trần Thị Bình", Email: "binh@congty.vn", Account: "190333444555", Bank: "Techcombank",
			Base: 6000000, Income: 25000000, Taxable: 19000000, PIT: 900000, Insurance: 1260000, UnionFee: 60000,
		},
	}
}

// BuildWorkbook writes sheets in order into an xlsx file.
func BuildWorkbook(t testing.TB, sheets ...Sheet) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", s.Name))
		} else {
			_, err := f.NewSheet(s.Name)
			require.NoError(t, err)
		}
		for r, row := range s.Rows {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			require.NoError(t, err)
			values := row
			require.NoError(t, f.SetSheetRow(s.Name, cell, &values))
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func InfoRows(employees []Employee) [][]any {
	rows := [][]any{
		{"DANH SÁCH NHÂN VIÊN"},
		{"STT", "Họ tên", "Email", "Số tài khoản ngân hàng", "Tại ngân hàng - Chi nhánh"},
	}
	for i, e := range employees {
		rows = append(rows, []any{i + 1, e.Name, e.Email, e.Account, e.Bank})
	}
	return rows
}

// SalaryRows uses the two-line header layout with a column numbering row.
func SalaryRows(employees []Employee) [][]any {
	rows := [][]any{
		{"BẢNG LƯƠNG THÁNG"},
		{"STT", "Họ tên", "Lương cơ bản", "Thuế TNCN", nil, nil, "Các khoản Người Lao Động phải nộp cho CQNN", "Kinh phí Công Đoàn"},
		{nil, nil, nil, "Tổng Thu Nhập", "Thu nhập chịu thuế", "Thuế TNCN phải nộp", "Tổng cộng", "Phí đoàn viên"},
		{1, 2, 3, 4, 5, 6, 7, 8},
	}
	n := 0
	for _, e := range employees {
		if e.NoSalary {
			continue
		}
		n++
		rows = append(rows, []any{n, e.Name, e.Base, e.Income, e.Taxable, e.PIT, e.Insurance, e.UnionFee})
	}
	return rows
}

func PayrollWorkbook(t testing.TB, employees []Employee) []byte {
	t.Helper()
	return BuildWorkbook(t,
		Sheet{Name: InfoSheet, Rows: InfoRows(employees)},
		Sheet{Name: SalarySheet, Rows: SalaryRows(employees)},
	)
}
