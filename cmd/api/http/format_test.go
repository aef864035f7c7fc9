package http

import (
	"testing"
	"time"

	"github.com/matryer/is"
	"github.com/shopspring/decimal"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"25.5", "$25.50"},
		{"999.99", "$999.99"},
		{"1234.5", "$1,234.50"},
		{"1000000", "$1,000,000.00"},
		{"12.345", "$12.35"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			is := is.New(t)
			is.Equal(formatMoney(decimal.RequireFromString(tt.in)), tt.want)
		})
	}
}

func TestFormatDateTime(t *testing.T) {
	is := is.New(t)
	is.Equal(formatDateTime(time.Date(2024, time.October, 25, 9, 5, 0, 0, time.UTC)), "Oct 25, 2024 9:05 AM")
	is.Equal(formatDateTime(time.Date(2024, time.October, 1, 18, 30, 0, 0, time.UTC)), "Oct 1, 2024 6:30 PM")
}

func TestPlural(t *testing.T) {
	is := is.New(t)
	is.Equal(plural(0), "s")
	is.Equal(plural(1), "")
	is.Equal(plural(2), "s")
}
