package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/xavierca1/salary-slips/internal/entity"
)

// FormatAmount prints whole VND with '.' as thousands separator; zero prints empty.
func FormatAmount(v float64) string {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	n := int64(math.RoundToEven(v))
	if n == 0 {
		return "0"
	}

	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	digits := strconv.FormatInt(n, 10)

	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	return sign + b.String()
}

// SafeName keeps letters, digits, spaces and underscores.
func SafeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '_' {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

func FileName(name string, period entity.Period, format entity.Format) string {
	safe := SafeName(name)
	if safe == "" {
		safe = "NhanVien"
	}
	return fmt.Sprintf("PhieuLuong_%s_Thang%d_%d.%s", safe, period.Month, period.Year, format.Extension())
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// ASCII drops Vietnamese diacritics for fonts without the glyphs.
func ASCII(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		out = s
	}
	return strings.NewReplacer("đ", "d", "Đ", "D").Replace(out)
}
