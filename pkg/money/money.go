// Package money renders decimal amount strings from the commerce backend the
// way the storefront displays them: euro glyph, "." grouping, "," decimals.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	Symbol = "€"

	groupSep   = "."
	decimalSep = ","
)

// Format renders amount with exactly two fraction digits, e.g. "1234.5" as
// "€1.234,50". Rounding is half away from zero.
func Format(amount string) (string, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return "", fmt.Errorf("money: invalid amount %q: %w", amount, err)
	}
	return FormatDecimal(d), nil
}

// MustFormat is Format for display paths; an unparsable amount renders as zero.
func MustFormat(amount string) string {
	s, err := Format(amount)
	if err != nil {
		return FormatDecimal(decimal.Zero)
	}
	return s
}

// FormatDecimal puts the glyph first and the sign after it, so -5.25 renders
// as "€-5,25" and a negative amount that rounds to zero as "€-0,00".
func FormatDecimal(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	fixed := d.Abs().StringFixed(2)

	intPart, frac, _ := strings.Cut(fixed, ".")
	return Symbol + sign + group(intPart) + decimalSep + frac
}

func group(digits string) string {
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
			b.WriteString(groupSep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
