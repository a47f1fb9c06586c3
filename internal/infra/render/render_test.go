package render

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/xavierca1/salary-slips/internal/entity"
)

var may2024 = entity.Period{Month: 5, Year: 2024}

func num(v string) entity.Value { return entity.ParseValue(v) }

func anRecord() entity.EmployeeRecord {
	info := entity.Fields{
		{Name: "STT", Value: num("1")},
		{Name: "Họ tên", Value: num("Nguyễn Văn An")},
		{Name: "Email", Value: num("an@congty.vn")},
		{Name: "Số tài khoản ngân hàng", Value: num("0071000123456")},
		{Name: "Tại ngân hàng - Chi nhánh", Value: num("Vietcombank - CN HCM")},
	}
	salary := entity.Fields{
		{Name: "STT", Value: num("1")},
		{Name: "Họ tên", Value: num("Nguyễn Văn An")},
		{Name: "Lương cơ bản", Value: num("5000000")},
		{Name: "Thuế TNCN - Tổng Thu Nhập", Value: num("20000000")},
		{Name: "Thuế TNCN - Thu nhập chịu thuế", Value: num("15000000")},
		{Name: "Thuế TNCN - Thuế TNCN phải nộp", Value: num("500000")},
		{Name: "Các khoản Người Lao Động phải nộp cho CQNN - Tổng cộng", Value: num("1050000")},
		{Name: "Kinh phí Công Đoàn - Phí đoàn viên", Value: num("50000")},
	}
	return entity.NewEmployeeRecord(0, "Nguyễn Văn An", info, salary, true)
}

func TestExtract(t *testing.T) {
	s, err := Extract(anRecord(), may2024)
	require.NoError(t, err)

	assert.Equal(t, "Nguyễn Văn An", s.Name)
	assert.Equal(t, "0071000123456", s.AccountNumber)
	assert.Equal(t, "Vietcombank - CN HCM", s.BankName)
	assert.Equal(t, 20000000.0, s.AgreedSalary)
	assert.Equal(t, 20000000.0, s.ActualSalary)
	assert.Equal(t, 5000000.0, s.ContributionSalary)
	assert.Equal(t, 1050000.0, s.SocialInsurance)
	assert.Equal(t, 50000.0, s.UnionFee)
	assert.Equal(t, 500000.0, s.PersonalIncomeTax)
	assert.Equal(t, 20000000.0, s.TotalIncome)
	assert.Equal(t, 1600000.0, s.TotalDeductions)
	assert.Equal(t, 18400000.0, s.NetPay)
	assert.Equal(t, "PHIẾU LƯƠNG THÁNG 5 NĂM 2024", s.Title())
}

func TestExtractIgnoresTaxableIncomeColumns(t *testing.T) {
	rec := entity.NewEmployeeRecord(3, "Bình", nil, entity.Fields{
		{Name: "Tổng thu nhập chịu thuế TNCN", Value: num("999")},
		{Name: "Thuế TNCN - Tổng thu nhập", Value: num("100")},
		{Name: "Thuế TNCN phải nộp (tr)", Value: num("7")},
	}, true)

	s, err := Extract(rec, may2024)
	require.NoError(t, err)
	assert.Equal(t, 100.0, s.ActualSalary)
	assert.Zero(t, s.PersonalIncomeTax)
}

func TestExtractTextAmountsCountAsZero(t *testing.T) {
	rec := entity.NewEmployeeRecord(0, "An", nil, entity.Fields{
		{Name: "Thuế TNCN - Tổng Thu Nhập", Value: num("không có")},
	}, true)

	s, err := Extract(rec, may2024)
	require.NoError(t, err)
	assert.Zero(t, s.NetPay)
}

func TestExtractMissingFields(t *testing.T) {
	tests := []struct {
		name  string
		rec   entity.EmployeeRecord
		field string
	}{
		{"blank name", entity.NewEmployeeRecord(4, "  ", nil, nil, true), "họ tên"},
		{"no salary row", entity.NewEmployeeRecord(5, "Dung", nil, nil, false), "dòng lương"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract(tt.rec, may2024)

			var mf *MissingFieldError
			require.True(t, errors.As(err, &mf))
			assert.Equal(t, tt.rec.ID, mf.EmployeeID)
			assert.Equal(t, tt.field, mf.Field)
		})
	}
}

func TestFormatAmount(t *testing.T) {
	tests := map[float64]string{
		0:           "",
		5:           "5",
		999:         "999",
		1000:        "1.000",
		18400000:    "18.400.000",
		1234567.5:   "1.234.568",
		2.5:         "2",
		-1500000:    "-1.500.000",
		0.4:         "0",
		10000000000: "10.000.000.000",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatAmount(in), "FormatAmount(%v)", in)
	}
}

func TestASCII(t *testing.T) {
	assert.Equal(t, "PHIEU LUONG THANG 5 NAM 2024", ASCII("PHIẾU LƯƠNG THÁNG 5 NĂM 2024"))
	assert.Equal(t, "Tran Thi Binh", ASCII("Trần Thị Bình"))
	assert.Equal(t, "Dong Da", ASCII("Đống Đa"))
	assert.Equal(t, "doan phi", ASCII("đoàn phí"))
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "PhieuLuong_Nguyễn Văn An_Thang5_2024.pdf", FileName("Nguyễn Văn An", may2024, entity.FormatPDF))
	assert.Equal(t, "PhieuLuong_OBrien_Thang5_2024.xlsx", FileName("O'Brien/", may2024, entity.FormatExcel))
	assert.Equal(t, "PhieuLuong_NhanVien_Thang5_2024.pdf", FileName("../", may2024, entity.FormatPDF))
}

func TestPDFRenderIsDeterministic(t *testing.T) {
	s, err := Extract(anRecord(), may2024)
	require.NoError(t, err)

	tests := []struct {
		name    string
		r       *PDFRenderer
		marker  string
		unicode bool
	}{
		{name: "bundled unicode font", r: DefaultPDFRenderer(), marker: "/Encoding /Identity-H", unicode: true},
		{name: "core font", r: NewPDFRenderer(nil, nil), marker: "/BaseFont /Helvetica", unicode: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.unicode, tt.r.Unicode())

			first, err := tt.r.Render(s)
			require.NoError(t, err)
			second, err := tt.r.Render(s)
			require.NoError(t, err)

			assert.True(t, bytes.HasPrefix(first, []byte("%PDF-")))
			assert.True(t, bytes.Contains(first, []byte(tt.marker)))
			assert.True(t, bytes.Equal(first, second), "two renders differ")
		})
	}
}

func TestLoadPDFRenderer(t *testing.T) {
	r, err := LoadPDFRenderer("", "")
	require.NoError(t, err)
	assert.True(t, r.Unicode())
	assert.Equal(t, dejaVuSansBold, r.bold)

	r, err = LoadPDFRenderer("fonts/DejaVuSans.ttf", "")
	require.NoError(t, err)
	assert.True(t, r.Unicode())
	assert.Empty(t, r.bold)

	_, err = LoadPDFRenderer("/nonexistent/font.ttf", "")
	assert.Error(t, err)
}

func TestExcelRenderContent(t *testing.T) {
	s, err := Extract(anRecord(), may2024)
	require.NoError(t, err)

	data, err := NewExcelRenderer().Render(s)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{ExcelSheetName}, f.GetSheetList())

	title, err := f.GetCellValue(ExcelSheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, "PHIẾU LƯƠNG THÁNG 5 NĂM 2024", title)

	rows, err := f.GetRows(ExcelSheetName)
	require.NoError(t, err)

	var netPay, account string
	for _, row := range rows {
		if len(row) >= 5 && row[0] == labelNetPay {
			netPay = row[4]
		}
		if len(row) >= 2 && row[0] == "Số tài khoản:" {
			account = row[1]
		}
	}
	assert.Equal(t, "18.400.000", netPay)
	assert.Equal(t, "0071000123456", account)
}

func TestExcelRenderIsDeterministic(t *testing.T) {
	s, err := Extract(anRecord(), may2024)
	require.NoError(t, err)

	r := NewExcelRenderer()
	a, err := r.Render(s)
	require.NoError(t, err)
	b, err := r.Render(s)
	require.NoError(t, err)

	assert.True(t, bytes.Equal(a, b), "two renders differ")
}

func TestSlipRenderer(t *testing.T) {
	r := NewSlipRenderer(nil, nil)

	doc, err := r.Render(anRecord(), entity.FormatExcel, may2024)
	require.NoError(t, err)
	assert.Equal(t, "PhieuLuong_Nguyễn Văn An_Thang5_2024.xlsx", doc.FileName)
	assert.Equal(t, entity.FormatExcel.ContentType(), doc.ContentType)
	assert.NotEmpty(t, doc.Content)

	doc, err = r.Render(anRecord(), entity.FormatPDF, may2024)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", doc.ContentType)

	_, err = r.Render(anRecord(), entity.Format("docx"), may2024)
	assert.ErrorIs(t, err, entity.ErrUnknownFormat)

	_, err = r.Render(entity.NewEmployeeRecord(9, "X", nil, nil, false), entity.FormatPDF, may2024)
	var mf *MissingFieldError
	assert.True(t, errors.As(err, &mf))
}
