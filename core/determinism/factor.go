// Package determinism - Arbitrary-precision conversion factors.
// NEVER use float64 for conversion math; rounding compounds through the
// transitive closure.
package determinism

import (
	"github.com/shopspring/decimal"

	"unitcalc/internal/errors"
)

// FactorScale is the number of decimal places carried through division.
// It keeps at least 50 significant digits for every factor magnitude in the
// catalog (the smallest prefixed factors are around 1e-24).
const FactorScale = 80

// RelativeTolerance is the tolerance for factor comparisons (1e-20).
var RelativeTolerance = decimal.New(1, -20)

var one = decimal.NewFromInt(1)

// ParseFactor parses a decimal string into a factor.
// Catalog factors are authored as decimal strings, never binary floats.
func ParseFactor(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, errors.MalformedCatalog("bad decimal factor '"+s+"'", err)
	}
	return d, nil
}

// MustFactor parses a decimal string and panics on failure.
// Reserved for compiled-in catalog tables, which are validated by tests.
func MustFactor(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic("bad compiled-in factor '" + s + "': " + err.Error())
	}
	return d
}

// Inv returns 1/d at full factor precision
func Inv(d decimal.Decimal) decimal.Decimal {
	return one.DivRound(d, FactorScale)
}

// Div returns a/b at full factor precision
func Div(a, b decimal.Decimal) decimal.Decimal {
	return a.DivRound(b, FactorScale)
}

// PowInt raises d to an integer power by binary exponentiation.
// Negative exponents take the reciprocal at full factor precision.
func PowInt(d decimal.Decimal, n int) decimal.Decimal {
	if n < 0 {
		return Inv(PowInt(d, -n))
	}

	result := one
	base := d
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		n >>= 1
	}
	return result
}

// PowOfTen returns 10^exp exactly
func PowOfTen(exp int) decimal.Decimal {
	return decimal.New(1, int32(exp))
}

// PowOfTwo returns 2^exp exactly for exp >= 0, and its exact reciprocal otherwise
func PowOfTwo(exp int) decimal.Decimal {
	return PowInt(decimal.NewFromInt(2), exp)
}

// ApproxEqual reports whether a and b agree within the given relative tolerance
func ApproxEqual(a, b decimal.Decimal, tolerance decimal.Decimal) bool {
	if b.IsZero() {
		return a.IsZero()
	}
	rel := a.Sub(b).Abs().DivRound(b.Abs(), FactorScale)
	return rel.Cmp(tolerance) <= 0
}
