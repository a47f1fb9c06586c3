package spreadsheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombineHeaders(t *testing.T) {
	main := []string{"STT", "Họ tên", "Thuế TNCN", "", "", ""}
	sub := []string{"", "", "Tổng Thu Nhập", "Thuế TNCN phải nộp", "", ""}

	got := combineHeaders(main, sub)

	assert.Equal(t, []string{
		"STT",
		"Họ tên",
		"Thuế TNCN - Tổng Thu Nhập",
		"Thuế TNCN - Thuế TNCN phải nộp",
		"_Col_4",
		"_Col_5",
	}, got)
}

func TestCleanSheetDropsGeneratedColumns(t *testing.T) {
	raw := [][]string{
		{"STT", "Họ tên", "", "Ghi chú"},
		{"1", "An", "x", "ok"},
	}

	tbl, err := cleanSheet(raw)
	require.NoError(t, err)

	assert.Equal(t, []string{"STT", "Họ tên", "Ghi chú"}, tbl.columns)
	require.Len(t, tbl.rows, 1)
	assert.Equal(t, []string{"1", "An", "ok"}, tbl.rows[0])
}

func TestCleanSheetHeaderAfterTitleRows(t *testing.T) {
	raw := [][]string{
		{"CÔNG TY TNHH ABC"},
		{"BẢNG LƯƠNG NHÂN VIÊN THÁNG 5/2024"},
		{},
		{"STT", "Họ và tên", "Lương cơ bản"},
		{"1", "An", "5000000"},
	}

	tbl, err := cleanSheet(raw)
	require.NoError(t, err)
	assert.Equal(t, 1, tbl.nameColumn())
	assert.Len(t, tbl.rows, 1)
}

func TestCleanSheetHeaderBeyondScanWindow(t *testing.T) {
	raw := [][]string{{"a"}, {"b"}, {"c"}, {"d"}, {"e"}, {"STT", "Họ tên"}}

	_, err := cleanSheet(raw)
	assert.Error(t, err)
}

func TestIsNumberingRow(t *testing.T) {
	assert.True(t, isNumberingRow([]string{"1", "2", "3", "4"}))
	assert.True(t, isNumberingRow([]string{"", "1.0", "2"}))
	assert.False(t, isNumberingRow([]string{"1", "Nguyễn Văn An", "5000000"}))
	assert.False(t, isNumberingRow([]string{"", "", ""}))
}

func TestIsValidColumn(t *testing.T) {
	assert.True(t, isValidColumn("Họ tên"))
	assert.False(t, isValidColumn("_Col_3"))
	assert.False(t, isValidColumn("Unnamed: 4"))
	assert.False(t, isValidColumn("Col_2"))
	assert.False(t, isValidColumn("nan"))
	assert.False(t, isValidColumn("2024"))
	assert.False(t, isValidColumn("  "))
}

func TestClassifySheet(t *testing.T) {
	assert.Equal(t, sheetInfo, classifySheet("Thông tin NV"))
	assert.Equal(t, sheetInfo, classifySheet("THONG TIN"))
	assert.Equal(t, sheetSalary, classifySheet("Bảng Lương T5"))
	assert.Equal(t, sheetSalary, classifySheet("salary"))
	assert.Equal(t, sheetOther, classifySheet("Sheet3"))
}
