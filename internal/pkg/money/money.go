// Package money holds the decimal helpers shared by pricing code. Amounts
// are Turkish lira with kuruş precision.
package money

import "github.com/shopspring/decimal"

const (
	Scale = 2

	// NUMERIC(12,2): ten integer digits.
	maxIntegerDigits = 12 - Scale
	// Client floats such as 1249.9000000000001 still pass; they round to kuruş.
	maxFractionDigits = 20
)

var (
	Zero    = decimal.Zero
	Hundred = decimal.NewFromInt(100)
	// MaxAmount is the largest value a NUMERIC(12,2) column holds.
	MaxAmount = decimal.New(999999999999, -Scale)
)

// InRange reports whether |d| fits NUMERIC(12,2) once rounded to kuruş.
// The exponent and digit count are checked before any arithmetic, so an
// input like 1e20000000 is refused without expanding it.
func InRange(d decimal.Decimal) bool {
	exp := int(d.Exponent())
	if exp < -maxFractionDigits || exp > maxIntegerDigits {
		return false
	}
	// 2^110 > 10^33 covers every in-range coefficient.
	if d.Coefficient().BitLen() > 110 || d.NumDigits()+exp > maxIntegerDigits {
		return false
	}
	return Round(d.Abs()).LessThanOrEqual(MaxAmount)
}

// Round rounds half away from zero to kuruş.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Scale)
}

// Clamp bounds d into [lo, hi].
func Clamp(d, lo, hi decimal.Decimal) decimal.Decimal {
	if d.LessThan(lo) {
		return lo
	}
	if d.GreaterThan(hi) {
		return hi
	}
	return d
}

func IsNegative(d decimal.Decimal) bool {
	return d.Sign() < 0
}

// Fixed renders with exactly two fraction digits, e.g. "150.00".
func Fixed(d decimal.Decimal) string {
	return d.StringFixed(Scale)
}
