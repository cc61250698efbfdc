// Package money formats and parses two-decimal currency amounts.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Format renders d with thousands separators and exactly two decimals: 1234.5 -> "1,234.50".
func Format(d decimal.Decimal) string {
	s := d.StringFixed(2)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	intPart, frac, _ := strings.Cut(s, ".")

	var sb strings.Builder

	lead := len(intPart) % 3
	if lead > 0 {
		sb.WriteString(intPart[:lead])
	}

	for i := lead; i < len(intPart); i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}

		sb.WriteString(intPart[i : i+3])
	}

	return sign + sb.String() + "." + frac
}

// Parse reads an amount that may carry a currency symbol, thousands commas or
// surrounding whitespace. Empty input is zero.
func Parse(s string) (decimal.Decimal, error) {
	clean := strings.TrimSpace(s)
	clean = strings.TrimPrefix(clean, "$")
	clean = strings.ReplaceAll(clean, ",", "")
	clean = strings.TrimSpace(clean)

	if clean == "" {
		return decimal.Zero, nil
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing amount %q: %w", s, err)
	}

	return d.Round(2), nil
}
