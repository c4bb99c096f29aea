// Package units implements the runtime measurement algebra over a loaded
// catalog bundle: compound units, arithmetic, and conversion.
package units

import (
	"sort"
	"strconv"
	"strings"

	"unitcalc/internal/errors"
)

// Compound maps canonical unit names to nonzero integer exponents,
// representing a product of unit powers. The zero-length map is the
// dimensionless unit.
type Compound map[string]int

// Clone returns an independent copy
func (c Compound) Clone() Compound {
	result := make(Compound, len(c))
	for unit, exp := range c {
		result[unit] = exp
	}
	return result
}

// Invert negates every exponent
func (c Compound) Invert() Compound {
	result := make(Compound, len(c))
	for unit, exp := range c {
		result[unit] = -exp
	}
	return result
}

// Merge returns the exponent union of two compounds, dropping entries
// that cancel to zero
func (c Compound) Merge(other Compound) Compound {
	result := c.Clone()
	for unit, exp := range other {
		result[unit] += exp
		if result[unit] == 0 {
			delete(result, unit)
		}
	}
	return result
}

// Normalize drops zero exponents
func (c Compound) Normalize() Compound {
	result := make(Compound, len(c))
	for unit, exp := range c {
		if exp != 0 {
			result[unit] = exp
		}
	}
	return result
}

// IsEmpty reports whether the compound is dimensionless
func (c Compound) IsEmpty() bool {
	for _, exp := range c {
		if exp != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether two compounds carry identical exponents
func (c Compound) Equal(other Compound) bool {
	a, b := c.Normalize(), other.Normalize()
	if len(a) != len(b) {
		return false
	}
	for unit, exp := range a {
		if b[unit] != exp {
			return false
		}
	}
	return true
}

// Single returns the unit name when the compound is exactly one unit to
// the first power
func (c Compound) Single() (string, bool) {
	n := c.Normalize()
	if len(n) != 1 {
		return "", false
	}
	for unit, exp := range n {
		if exp == 1 {
			return unit, true
		}
	}
	return "", false
}

// Units returns the constituent unit names, sorted
func (c Compound) Units() []string {
	names := make([]string, 0, len(c))
	for unit, exp := range c {
		if exp != 0 {
			names = append(names, unit)
		}
	}
	sort.Strings(names)
	return names
}

// String renders the compound in single-slash form: sorted positive
// powers joined by '*', then '/' and the sorted negative powers with
// their exponents shown positive. The dimensionless compound renders
// as the empty string.
func (c Compound) String() string {
	var num, den []string
	for _, unit := range c.Units() {
		exp := c[unit]
		switch {
		case exp > 0:
			num = append(num, powerString(unit, exp))
		case exp < 0:
			den = append(den, powerString(unit, -exp))
		}
	}

	switch {
	case len(num) == 0 && len(den) == 0:
		return ""
	case len(den) == 0:
		return strings.Join(num, "*")
	case len(num) == 0:
		return "1/" + strings.Join(den, "*")
	default:
		return strings.Join(num, "*") + "/" + strings.Join(den, "*")
	}
}

func powerString(unit string, exp int) string {
	if exp == 1 {
		return unit
	}
	return unit + "^" + strconv.Itoa(exp)
}

// parseExpression splits a compound unit expression into (token, exponent)
// pairs without resolving the tokens. The grammar is a numerator and an
// optional denominator separated by a single '/', each a '*'-joined list
// of tokens with an optional ^N suffix. Tokens keep their suffix; the
// resolver decides whether foot^2 is the alias of an area unit or foot
// squared.
type exprTerm struct {
	token string
	exp   int
}

func parseExpression(expr string) ([]exprTerm, error) {
	trimmed := strings.TrimSpace(expr)
	if trimmed == "" {
		return nil, nil
	}

	// names like bit/second themselves contain a slash, so only a second
	// slash inside a side is ambiguous
	parts := strings.Split(trimmed, "/")
	if len(parts) > 2 {
		return nil, errors.Newf(errors.TypeUndefinedUnit,
			"unit expression %q has more than one '/'", expr)
	}

	var terms []exprTerm
	for side, part := range parts {
		sign := 1
		if side == 1 {
			sign = -1
		}
		for _, token := range strings.Split(part, "*") {
			token = strings.TrimSpace(token)
			if token == "" {
				return nil, errors.Newf(errors.TypeUndefinedUnit,
					"unit expression %q has an empty term", expr)
			}
			if token == "1" && side == 0 {
				// 1/second style inverse
				continue
			}
			terms = append(terms, exprTerm{token: token, exp: sign})
		}
	}
	return terms, nil
}

// splitExponent strips a trailing ^N from a token
func splitExponent(token string) (string, int, bool) {
	i := strings.LastIndex(token, "^")
	if i <= 0 || i == len(token)-1 {
		return token, 1, false
	}
	n, err := strconv.Atoi(token[i+1:])
	if err != nil || n == 0 {
		return token, 1, false
	}
	return token[:i], n, true
}
