// Package money formats and parses currency amounts for display.
// Amounts are stored as float64; rounding to cents happens only here.
package money

import (
	"strings"

	"shoplist/internal/model"

	"github.com/shopspring/decimal"
)

// Supported display currencies. No conversion is performed between them.
const (
	CAD = "CAD"
	USD = "USD"
)

// IsSupported reports whether code is a known display currency.
func IsSupported(code string) bool {
	return code == CAD || code == USD
}

// Format renders amount as "$12.34", followed by the currency code when one is given.
func Format(amount float64, currency string) string {
	d := decimal.NewFromFloat(amount).Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	out := sign + "$" + d.StringFixed(2)
	if currency != "" {
		out += " " + currency
	}
	return out
}

// Percent renders a fraction such as 0.425 as "42.5%".
func Percent(share float64) string {
	return decimal.NewFromFloat(share).Mul(decimal.NewFromInt(100)).Round(1).StringFixed(1) + "%"
}

// ParsePrice parses user input such as "3.50", "3,50" or "$3.50".
// It does not check the sign; the list service does that.
func ParsePrice(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", ".")
	if s == "" {
		return 0, model.ErrInvalidPrice
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, model.ErrInvalidPrice
	}
	return d.InexactFloat64(), nil
}
