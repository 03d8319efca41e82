// Package core holds the SmartSpend domain types and the money and date
// helpers shared by every other package.
package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a decimal string to an exact amount.
//
// Surrounding whitespace is ignored. Negative values and anything that is
// not a plain decimal number are rejected.
//
// Examples:
//
//	ParseAmount("250")     -> 250, nil
//	ParseAmount(" 12.50 ") -> 12.5, nil
//	ParseAmount("-3")      -> 0, ErrNegativeAmount
//	ParseAmount("abc")     -> 0, ErrInvalidAmount
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if d.IsNegative() {
		return decimal.Zero, ErrNegativeAmount
	}
	return d, nil
}

// FormatRupees renders an amount with the rupee sign, comma thousands
// grouping and at most two fraction digits, e.g. 1234.5 -> "₹1,234.5".
func FormatRupees(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	s := d.Round(2).String()
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	return sign + "₹" + groupThousands(intPart) + frac
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
