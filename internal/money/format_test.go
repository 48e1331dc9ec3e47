package money

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{name: "zero", amount: "0", want: "R0.00"},
		{name: "cents only", amount: "0.5", want: "R0.50"},
		{name: "three digits", amount: "999.99", want: "R999.99"},
		{name: "grouping boundary", amount: "1000", want: "R1,000.00"},
		{name: "thousands", amount: "1234.56", want: "R1,234.56"},
		{name: "millions", amount: "1234567.8", want: "R1,234,567.80"},
		{name: "negative", amount: "-42", want: "-R42.00"},
		{name: "rounded to two digits", amount: "10.005", want: "R10.01"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Format(d(tc.amount)))
		})
	}
}

func TestFormatterCustomLocale(t *testing.T) {
	f := Formatter{Symbol: "€", Thousands: ".", Decimal: ","}
	assert.Equal(t, "€1.234,56", f.Format(d("1234.56")))
}

func TestNewFormatterSymbol(t *testing.T) {
	f := NewFormatter("$")
	assert.Equal(t, "$9,000.00", f.Format(d("9000")))
}

func TestTimestamp(t *testing.T) {
	ts := time.Date(2026, time.January, 2, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "2026-01-02 15:04:05", Timestamp(ts))
}
