// Package render builds salary slips from employee records and lays them
// out as PDF or Excel documents.
package render

import (
	"fmt"
	"strings"

	"github.com/xavierca1/salary-slips/internal/entity"
)

const (
	FieldName      = "họ tên"
	FieldSalaryRow = "dòng lương"
)

// MissingFieldError means the record lacks data every slip needs.
type MissingFieldError struct {
	EmployeeID int
	Field      string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("employee %d: missing %s", e.EmployeeID, e.Field)
}

// Slip holds the figures printed on one salary slip.
type Slip struct {
	Period entity.Period

	Name          string
	AccountNumber string
	BankName      string

	AgreedSalary       float64
	ContributionSalary float64
	ActualSalary       float64
	SocialInsurance    float64
	UnionFee           float64
	PersonalIncomeTax  float64

	TotalIncome     float64
	TotalDeductions float64
	NetPay          float64
}

func has(s string, subs ...string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}

func hasNone(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return false
		}
	}
	return true
}

// Extract maps the loosely named workbook columns onto slip figures.
func Extract(rec entity.EmployeeRecord, period entity.Period) (*Slip, error) {
	if strings.TrimSpace(rec.Name) == "" {
		return nil, &MissingFieldError{EmployeeID: rec.ID, Field: FieldName}
	}
	if !rec.HasSalary {
		return nil, &MissingFieldError{EmployeeID: rec.ID, Field: FieldSalaryRow}
	}

	s := &Slip{Period: period, Name: rec.Name}

	for _, f := range rec.Info {
		col := strings.ToLower(f.Name)
		val := f.Value.Raw

		switch {
		case has(col, "số tài khoản", "ngân hàng"):
			s.AccountNumber = val
		case has(col, "số tài khoản") && s.AccountNumber == "":
			s.AccountNumber = val
		}

		switch {
		case has(col, "tại ngân hàng") || has(col, "ngân hàng", "chi nhánh"):
			s.BankName = val
		case has(col, "ngân hàng") && !strings.Contains(col, "số") && s.BankName == "":
			s.BankName = val
		}
	}

	for _, f := range rec.Salary {
		col := strings.ToLower(f.Name)
		num, _ := f.Value.Float()

		if has(col, "thuế tncn", "tổng thu nhập") && hasNone(col, "chưa", "chịu", "tính", "bao gồm") {
			s.AgreedSalary = num
			s.ActualSalary = num
		}
		if has(col, "lương cơ bản") {
			s.ContributionSalary = num
		}
		if has(col, "người lao động phải nộp", "tổng cộng") || has(col, "nld phải nộp", "tổng cộng") {
			s.SocialInsurance = num
		}
		switch {
		case has(col, "kinh phí công đoàn", "phí đoàn viên"):
			s.UnionFee = num
		case has(col, "phí đoàn viên") && s.UnionFee == 0:
			s.UnionFee = num
		}
		if has(col, "thuế tncn phải nộp") && hasNone(col, "tr", "%") {
			s.PersonalIncomeTax = num
		}
	}

	s.TotalDeductions = s.SocialInsurance + s.UnionFee + s.PersonalIncomeTax
	s.TotalIncome = s.ActualSalary
	s.NetPay = s.TotalIncome - s.TotalDeductions
	return s, nil
}
