package spreadsheet

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

const headerScanRows = 5

var nameMarkers = []string{"họ tên", "họ và tên", "ho ten", "ho va ten", "tên nhân viên", "nhân viên", "name"}

// nameColumnMarkers is narrower than nameMarkers: "nhân viên" alone also
// matches columns such as "BHXH nhân viên đóng".
var nameColumnMarkers = []string{"họ tên", "họ và tên", "ho ten", "ho va ten", "tên nhân viên"}

// table is a cleaned sheet: combined headers and the data rows under them.
type table struct {
	columns []string
	rows    [][]string
	sttCol  int
}

func normalize(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}

func lower(s string) string {
	return strings.ToLower(normalize(s))
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func isNumber(s string) bool {
	if s == "" {
		return false
	}
	_, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil
}

func isHeaderRow(row []string) bool {
	filled := 0
	marker := false
	for _, cell := range row {
		c := lower(cell)
		if c == "" {
			continue
		}
		filled++
		if strings.ToUpper(c) == "STT" || containsAny(c, nameMarkers...) {
			marker = true
		}
	}
	// title rows are usually a single merged cell
	return marker && filled >= 2
}

func pad(row []string, width int) []string {
	out := make([]string, width)
	for i := 0; i < width && i < len(row); i++ {
		out[i] = normalize(row[i])
	}
	return out
}

func headerText(s string) string {
	if s == "" || isNumber(s) || strings.HasPrefix(s, "Unnamed") {
		return ""
	}
	return s
}

// cleanSheet locates the header row within the first rows, merges a
// sub-header row into "Main - Sub" names, skips a column numbering row and
// drops empty rows and rows without a valid STT.
func cleanSheet(raw [][]string) (*table, error) {
	width := 0
	for _, r := range raw {
		if len(r) > width {
			width = len(r)
		}
	}

	header := -1
	for i := 0; i < headerScanRows && i < len(raw); i++ {
		if isHeaderRow(raw[i]) {
			header = i
			break
		}
	}
	if header < 0 {
		return nil, fmt.Errorf("no header row in the first %d rows", headerScanRows)
	}

	main := pad(raw[header], width)
	for i := range main {
		main[i] = headerText(main[i])
	}

	sttCol := -1
	for i, h := range main {
		if strings.Contains(strings.ToUpper(h), "STT") {
			sttCol = i
			break
		}
	}

	dataStart := header + 1
	sub := make([]string, width)
	if dataStart < len(raw) {
		next := pad(raw[dataStart], width)
		if isSubHeaderRow(main, next, sttCol) {
			for i := range next {
				sub[i] = headerText(next[i])
			}
			dataStart++
		}
	}

	columns := combineHeaders(main, sub)

	if dataStart < len(raw) && isNumberingRow(pad(raw[dataStart], width)) {
		dataStart++
	}

	keep := make([]int, 0, len(columns))
	for i, c := range columns {
		if !strings.HasPrefix(c, "_") {
			keep = append(keep, i)
		}
	}

	t := &table{columns: make([]string, 0, len(keep)), sttCol: -1}
	for _, i := range keep {
		if i == sttCol {
			t.sttCol = len(t.columns)
		}
		t.columns = append(t.columns, columns[i])
	}

	for _, r := range raw[min(dataStart, len(raw)):] {
		full := pad(r, width)
		row := make([]string, len(keep))
		empty := true
		for j, i := range keep {
			row[j] = full[i]
			if row[j] != "" {
				empty = false
			}
		}
		if empty {
			continue
		}
		if t.sttCol >= 0 && !validSTT(row[t.sttCol]) {
			continue
		}
		t.rows = append(t.rows, row)
	}

	return t, nil
}

// isSubHeaderRow tells a second header line apart from the first data row.
func isSubHeaderRow(main, next []string, sttCol int) bool {
	if sttCol >= 0 {
		return !validSTT(next[sttCol])
	}
	for i := range main {
		if main[i] == "" && headerText(next[i]) != "" {
			return true
		}
	}
	return false
}

func combineHeaders(main, sub []string) []string {
	out := make([]string, len(main))
	lastMain := ""
	for i := range main {
		m, s := main[i], sub[i]
		if m != "" {
			lastMain = m
		}
		switch {
		case m != "" && s != "":
			out[i] = m + " - " + s
		case s != "" && lastMain != "":
			out[i] = lastMain + " - " + s
		case s != "":
			out[i] = s
		case m != "":
			out[i] = m
		default:
			out[i] = fmt.Sprintf("_Col_%d", i)
		}
	}
	return out
}

// isNumberingRow matches the "1 2 3 ..." row some templates put under the headers.
func isNumberingRow(row []string) bool {
	vals := make([]string, 0, 3)
	for _, c := range row[:min(3, len(row))] {
		if c != "" {
			vals = append(vals, c)
		}
	}
	if len(vals) == 0 {
		return false
	}
	for _, v := range vals {
		digits := strings.ReplaceAll(v, ".", "")
		if digits == "" {
			return false
		}
		for _, r := range digits {
			if r < '0' || r > '9' {
				return false
			}
		}
	}
	return true
}

func validSTT(s string) bool {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil && n >= 1
}

// nameColumn returns the employee name column, preferring Vietnamese headers.
func (t *table) nameColumn() int {
	for i, c := range t.columns {
		if containsAny(lower(c), nameColumnMarkers...) {
			return i
		}
	}
	for i, c := range t.columns {
		if strings.Contains(lower(c), "name") {
			return i
		}
	}
	return -1
}

// isValidColumn filters out generated and numeric column names.
func isValidColumn(name string) bool {
	c := strings.TrimSpace(name)
	if c == "" || strings.HasPrefix(c, "Unnamed") || strings.HasPrefix(c, "Col_") || strings.HasPrefix(c, "_") {
		return false
	}
	if strings.EqualFold(c, "nan") {
		return false
	}
	return !isNumber(c)
}
