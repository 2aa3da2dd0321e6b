// Package money rounds and formats dollar amounts for messages and reports.
//
// Engine arithmetic stays in float64; decimal is only used at the edges where a value is
// rounded for display, so that 2.675 renders as $2.68 rather than the binary-float $2.67.
package money

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// NotAvailable is rendered in place of values that are not finite.
const NotAvailable = "n/a"

// Round2 rounds v half away from zero to cents. Non-finite values are returned unchanged.
func Round2(v float64) float64 {
	if !finite(v) {
		return v
	}
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// Format renders v as US dollars with thousands separators, e.g. "$37,595.00".
func Format(v float64) string {
	if !finite(v) {
		return NotAvailable
	}
	return "$" + group(decimal.NewFromFloat(v).Round(2).StringFixed(2))
}

// FormatWhole renders v as whole US dollars, e.g. "$4,800".
func FormatWhole(v float64) string {
	if !finite(v) {
		return NotAvailable
	}
	return "$" + group(decimal.NewFromFloat(v).Round(0).StringFixed(0))
}

// Percent renders v (already in percent) with the given number of decimals, e.g. "7.5%".
func Percent(v float64, places int32) string {
	if !finite(v) {
		return NotAvailable
	}
	return decimal.NewFromFloat(v).Round(places).StringFixed(places) + "%"
}

// Number renders v with thousands separators and the given number of decimals, e.g. "48,000".
func Number(v float64, places int32) string {
	if !finite(v) {
		return NotAvailable
	}
	return group(decimal.NewFromFloat(v).Round(places).StringFixed(places))
}

// Fixed renders v with the given number of decimals and no unit.
func Fixed(v float64, places int32) string {
	if !finite(v) {
		return NotAvailable
	}
	return decimal.NewFromFloat(v).Round(places).StringFixed(places)
}

// decimal.NewFromFloat panics on NaN and infinities.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// group inserts thousands separators into a plain decimal string.
func group(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteString(frac)
	return b.String()
}
