package entity

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
)

type ValueKind int

const (
	KindString ValueKind = iota
	KindNumber
)

// Value is a single cell as read from the workbook. Raw keeps the original
// text so account numbers and codes are shown exactly as typed.
type Value struct {
	Kind ValueKind
	Raw  string
	Num  float64
}

var numericCell = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// ParseValue classifies raw cell text. Text with a leading zero followed by
// another digit ("0071000123") is kept as a string.
func ParseValue(raw string) Value {
	text := strings.TrimSpace(raw)
	if !numericCell.MatchString(text) || hasLeadingZero(text) {
		return Value{Kind: KindString, Raw: text}
	}

	n, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return Value{Kind: KindString, Raw: text}
	}
	return Value{Kind: KindNumber, Raw: text, Num: n}
}

func NumberValue(n float64) Value {
	return Value{Kind: KindNumber, Raw: strconv.FormatFloat(n, 'f', -1, 64), Num: n}
}

func StringValue(s string) Value {
	return Value{Kind: KindString, Raw: strings.TrimSpace(s)}
}

func hasLeadingZero(text string) bool {
	t := strings.TrimLeft(text, "+-")
	return len(t) > 1 && t[0] == '0' && t[1] >= '0' && t[1] <= '9'
}

func (v Value) IsNumber() bool { return v.Kind == KindNumber }

func (v Value) IsEmpty() bool { return v.Raw == "" }

func (v Value) String() string { return v.Raw }

// Float returns the numeric value, or 0 and false for text cells.
func (v Value) Float() (float64, bool) {
	if v.Kind != KindNumber {
		return 0, false
	}
	return v.Num, true
}

func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Raw)
}
