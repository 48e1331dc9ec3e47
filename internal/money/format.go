// Package money renders amounts and instants for display. It is used only
// by the view; core balances stay decimal.Decimal throughout.
package money

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const timestampLayout = "2006-01-02 15:04:05"

// Formatter renders an amount with a currency symbol, thousands grouping and
// two fractional digits, e.g. R1,234.56.
type Formatter struct {
	Symbol    string
	Thousands string
	Decimal   string
}

// NewFormatter builds a Formatter for symbol with the default separators.
func NewFormatter(symbol string) Formatter {
	return Formatter{Symbol: symbol, Thousands: ",", Decimal: "."}
}

var defaultFormatter = NewFormatter("R")

// Format renders amount in the default locale style.
func Format(amount decimal.Decimal) string {
	return defaultFormatter.Format(amount)
}

func (f Formatter) Format(amount decimal.Decimal) string {
	fixed := amount.Abs().StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if amount.Sign() < 0 {
		b.WriteByte('-')
	}
	b.WriteString(f.Symbol)
	for i := 0; i < len(whole); i++ {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteString(f.Thousands)
		}
		b.WriteByte(whole[i])
	}
	b.WriteString(f.Decimal)
	b.WriteString(frac)
	return b.String()
}

// Timestamp renders t as YYYY-MM-DD HH:MM:SS.
func Timestamp(t time.Time) string {
	return t.Format(timestampLayout)
}
