package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatUSD renders x as en-US currency, e.g. -1234.5 -> "-$1,234.50".
func FormatUSD(x float64) string {
	d := decimal.NewFromFloat(finite(x)).Round(2)
	neg := d.IsNegative()
	s := d.Abs().StringFixed(2)

	intPart, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	b.WriteString(groupThousands(intPart))
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}

// FormatPercent renders x with two decimals and a percent sign.
func FormatPercent(x float64) string {
	return decimal.NewFromFloat(finite(x)).StringFixed(2) + "%"
}

// FormatMonths renders a holding period, dropping the fraction when whole.
func FormatMonths(x float64) string {
	d := decimal.NewFromFloat(finite(x))
	if d.Equal(d.Truncate(0)) {
		return d.Truncate(0).String() + " months"
	}
	return d.StringFixed(1) + " months"
}

// Round2 rounds to cents.
func Round2(x float64) float64 {
	f, _ := decimal.NewFromFloat(finite(x)).Round(2).Float64()
	return f
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
