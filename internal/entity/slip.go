package entity

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type Format string

const (
	FormatPDF   Format = "pdf"
	FormatExcel Format = "excel"
)

var ErrUnknownFormat = errors.New("unknown slip format")

// ParseFormat accepts "pdf", "excel" and "xlsx"; empty defaults to PDF.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "pdf":
		return FormatPDF, nil
	case "excel", "xlsx":
		return FormatExcel, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

func (f Format) Extension() string {
	if f == FormatExcel {
		return "xlsx"
	}
	return "pdf"
}

func (f Format) ContentType() string {
	if f == FormatExcel {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "application/pdf"
}

// Period is the payroll month printed on a slip.
type Period struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

var ErrInvalidPeriod = errors.New("invalid payroll period")

// NewPeriod fills zero month/year from now.
func NewPeriod(month, year int, now time.Time) (Period, error) {
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}
	if month < 1 || month > 12 {
		return Period{}, fmt.Errorf("%w: month %d", ErrInvalidPeriod, month)
	}
	if year < 1900 || year > 9999 {
		return Period{}, fmt.Errorf("%w: year %d", ErrInvalidPeriod, year)
	}
	return Period{Month: month, Year: year}, nil
}

// Start is the first instant of the period in UTC.
func (p Period) Start() time.Time {
	return time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
}

// Document is a rendered slip or archive held in memory.
type Document struct {
	FileName    string
	ContentType string
	Content     []byte
}
