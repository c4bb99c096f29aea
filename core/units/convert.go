package units

import (
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"unitcalc/core/determinism"
	"unitcalc/internal/errors"
)

// ConvertTo converts the measurement into the units of the given
// expression
func (m Measurement) ConvertTo(expr string) (Measurement, error) {
	target, err := m.rt.ParseCompound(expr)
	if err != nil {
		return Measurement{}, err
	}
	return m.ConvertToCompound(target)
}

// ConvertToCompound converts the measurement into a target compound unit.
// Resolution runs in tiers: identical units convert for free; then the
// whole unit strings are tried against the special registry and the
// conversion table; then constituents are matched pairwise by type; then
// whole strings are rewritten through the alias map (foot^3 is
// cubic_foot); finally both sides reduce to base units. A measurement
// that survives every tier is dimensionally incompatible.
func (m Measurement) ConvertToCompound(target Compound) (Measurement, error) {
	src := m.units.Normalize()
	tgt := target.Normalize()

	value, err := m.rt.convert(m.value, src, tgt, true)
	if err != nil {
		return Measurement{}, err
	}
	return Measurement{value: value, units: tgt, rt: m.rt}, nil
}

func (rt *Runtime) convert(value decimal.Decimal, src, tgt Compound, allowRewrite bool) (decimal.Decimal, error) {
	if src.Equal(tgt) {
		return value, nil
	}

	srcStr, tgtStr := src.String(), tgt.String()

	if fn, ok := rt.special.Lookup(srcStr, tgtStr); ok {
		return fn(value), nil
	}
	if f, ok := rt.factor(srcStr, tgtStr); ok {
		return value.Mul(f), nil
	}
	if converted, ok := rt.perConstituent(value, src, tgt); ok {
		return converted, nil
	}

	if allowRewrite {
		src2, changedSrc := rt.aliasRewrite(src)
		tgt2, changedTgt := rt.aliasRewrite(tgt)
		if changedSrc || changedTgt {
			if !changedSrc {
				src2 = src
			}
			if !changedTgt {
				tgt2 = tgt
			}
			if converted, err := rt.convert(value, src2, tgt2, false); err == nil {
				return converted, nil
			}
		}
	}

	if converted, ok := rt.viaBaseUnits(value, src, tgt); ok {
		rt.logger.Debug("converted via base-unit reduction",
			zap.String("from", srcStr), zap.String("to", tgtStr))
		return converted, nil
	}

	rt.logger.Debug("no conversion path",
		zap.String("from", srcStr), zap.String("to", tgtStr))
	return decimal.Decimal{}, errors.IncompatibleUnits(displayString(srcStr), displayString(tgtStr))
}

// perConstituent matches every source unit to a distinct target unit of
// the same type and exponent, folding each pair's factor into the value
func (rt *Runtime) perConstituent(value decimal.Decimal, src, tgt Compound) (decimal.Decimal, bool) {
	if len(src) != len(tgt) || len(src) == 0 {
		return decimal.Decimal{}, false
	}

	used := make(map[string]bool, len(tgt))
	for _, from := range src.Units() {
		exp := src[from]
		matched := false
		for _, to := range tgt.Units() {
			if used[to] || tgt[to] != exp {
				continue
			}
			if rt.typeOf(to) != rt.typeOf(from) || rt.typeOf(from) == "" {
				continue
			}
			if from == to {
				used[to] = true
				matched = true
				break
			}
			f, ok := rt.factor(from, to)
			if !ok {
				continue
			}
			value = value.Mul(determinism.PowInt(f, exp))
			used[to] = true
			matched = true
			break
		}
		if !matched {
			return decimal.Decimal{}, false
		}
	}
	return value, true
}

// aliasRewrite re-resolves a compound's rendered string through the alias
// map: {foot: 3} renders foot^3, which is the alias of cubic_foot
func (rt *Runtime) aliasRewrite(c Compound) (Compound, bool) {
	s := c.String()
	if s == "" {
		return nil, false
	}
	canonical, ok := rt.bundle.Resolve(s)
	if !ok {
		return nil, false
	}
	rewritten := make(Compound)
	rt.addCanonical(rewritten, canonical, 1)
	rewritten = rewritten.Normalize()
	if rewritten.Equal(c) {
		return nil, false
	}
	return rewritten, true
}

// viaBaseUnits reduces both compounds to base-unit form and converts
// when the reduced forms agree
func (rt *Runtime) viaBaseUnits(value decimal.Decimal, src, tgt Compound) (decimal.Decimal, bool) {
	srcReduced, srcFactor, ok := rt.reduce(src)
	if !ok {
		return decimal.Decimal{}, false
	}
	tgtReduced, tgtFactor, ok := rt.reduce(tgt)
	if !ok {
		return decimal.Decimal{}, false
	}
	if !srcReduced.Equal(tgtReduced) {
		return decimal.Decimal{}, false
	}
	return value.Mul(srcFactor).DivRound(tgtFactor, determinism.FactorScale), true
}

// reduce rewrites a compound in terms of each constituent type's base
// unit and returns the accumulated factor. Base units with structure
// (square_meter, meter/second) expand into their length and time parts
// so that equivalent dimensions compare equal.
func (rt *Runtime) reduce(c Compound) (Compound, decimal.Decimal, bool) {
	factor := decimal.NewFromInt(1)
	reduced := make(Compound)

	for _, unit := range c.Units() {
		exp := c[unit]
		t, ok := rt.bundle.Type(rt.typeOf(unit))
		if !ok {
			return nil, decimal.Decimal{}, false
		}
		if unit != t.BaseUnit {
			f, ok := rt.factor(unit, t.BaseUnit)
			if !ok {
				return nil, decimal.Decimal{}, false
			}
			factor = factor.Mul(determinism.PowInt(f, exp))
		}
		expandStructural(reduced, t.BaseUnit, exp)
	}
	return reduced.Normalize(), factor, true
}

// expandStructural decomposes a structured base-unit name into its parts
func expandStructural(into Compound, name string, exp int) {
	if num, den, ok := splitSlash(name); ok {
		expandStructural(into, num, exp)
		expandStructural(into, den, -exp)
		return
	}
	if root, found := strings.CutPrefix(name, "square_"); found {
		expandStructural(into, root, 2*exp)
		return
	}
	if root, found := strings.CutPrefix(name, "cubic_"); found {
		expandStructural(into, root, 3*exp)
		return
	}
	into[name] += exp
}

// displayString renders the empty compound readably in error messages
func displayString(s string) string {
	if s == "" {
		return "(dimensionless)"
	}
	return s
}

// ConvertToSeries breaks the measurement down across the target units in
// order: each unit but the last takes the integer floor and passes the
// fractional remainder on; the final unit receives the exact remainder.
func (m Measurement) ConvertToSeries(exprs []string) ([]Measurement, error) {
	if len(exprs) == 0 {
		return nil, errors.New(errors.TypeIncompatibleUnits, "breakdown requires at least one target unit")
	}

	results := make([]Measurement, 0, len(exprs))
	remainder := m
	for i, expr := range exprs {
		converted, err := remainder.ConvertTo(expr)
		if err != nil {
			return nil, err
		}
		if i == len(exprs)-1 {
			results = append(results, converted)
			break
		}
		whole := converted.value.Floor()
		results = append(results, Measurement{value: whole, units: converted.units.Clone(), rt: m.rt})
		remainder = Measurement{value: converted.value.Sub(whole), units: converted.units.Clone(), rt: m.rt}
	}
	return results, nil
}
