package units

import (
	"github.com/shopspring/decimal"

	"unitcalc/core/determinism"
)

// ConvertFunc maps a value between two specific units
type ConvertFunc func(decimal.Decimal) decimal.Decimal

type specialKey struct {
	from string
	to   string
}

// SpecialRegistry holds conversions that are not a single multiplicative
// factor, such as additive-offset temperature scales. Entries are opaque
// to the closure: they are never chained, only consulted directly.
type SpecialRegistry struct {
	fns map[specialKey]ConvertFunc
}

// NewSpecialRegistry creates an empty registry
func NewSpecialRegistry() *SpecialRegistry {
	return &SpecialRegistry{fns: make(map[specialKey]ConvertFunc)}
}

// RegisterPair registers both directions of a conversion and panics
// unless they invert each other at a handful of probe values. The
// registry is compiled-in, so a bad pair is a programming error.
func (r *SpecialRegistry) RegisterPair(from, to string, forward, backward ConvertFunc) {
	for _, probe := range []string{"1", "-40", "273.15", "1000"} {
		v := determinism.MustFactor(probe)
		if !determinism.ApproxEqual(backward(forward(v)), v, determinism.RelativeTolerance) {
			panic("special conversion " + from + " <-> " + to + " is not invertible at " + probe)
		}
	}
	r.fns[specialKey{from: from, to: to}] = forward
	r.fns[specialKey{from: to, to: from}] = backward
}

// Lookup returns the conversion function for a directed pair
func (r *SpecialRegistry) Lookup(from, to string) (ConvertFunc, bool) {
	fn, ok := r.fns[specialKey{from: from, to: to}]
	return fn, ok
}

// Len returns the number of registered directed pairs
func (r *SpecialRegistry) Len() int {
	return len(r.fns)
}

var (
	kelvinOffset  = determinism.MustFactor("273.15")
	ratioFC       = determinism.MustFactor("1.8") // fahrenheit degrees per celsius degree
	ratioRC       = determinism.MustFactor("0.8") // reaumur degrees per celsius degree
	offsetF       = determinism.MustFactor("32")
	rankineOffset = determinism.MustFactor("491.67") // rankine at 0 celsius
)

// temperature scales expressed against celsius
var temperatureScales = []struct {
	name        string
	toCelsius   ConvertFunc
	fromCelsius ConvertFunc
}{
	{
		name:        "kelvin",
		toCelsius:   func(v decimal.Decimal) decimal.Decimal { return v.Sub(kelvinOffset) },
		fromCelsius: func(v decimal.Decimal) decimal.Decimal { return v.Add(kelvinOffset) },
	},
	{
		name:        "fahrenheit",
		toCelsius:   func(v decimal.Decimal) decimal.Decimal { return determinism.Div(v.Sub(offsetF), ratioFC) },
		fromCelsius: func(v decimal.Decimal) decimal.Decimal { return v.Mul(ratioFC).Add(offsetF) },
	},
	{
		name:        "rankine",
		toCelsius:   func(v decimal.Decimal) decimal.Decimal { return determinism.Div(v.Sub(rankineOffset), ratioFC) },
		fromCelsius: func(v decimal.Decimal) decimal.Decimal { return v.Mul(ratioFC).Add(rankineOffset) },
	},
	{
		name:        "reaumur",
		toCelsius:   func(v decimal.Decimal) decimal.Decimal { return determinism.Div(v, ratioRC) },
		fromCelsius: func(v decimal.Decimal) decimal.Decimal { return v.Mul(ratioRC) },
	},
}

// TemperatureRegistry builds the registry of every ordered pair of
// temperature scales, composed through celsius
func TemperatureRegistry() *SpecialRegistry {
	r := NewSpecialRegistry()

	for _, scale := range temperatureScales {
		r.RegisterPair("celsius", scale.name, scale.fromCelsius, scale.toCelsius)
	}
	for i, a := range temperatureScales {
		for _, b := range temperatureScales[i+1:] {
			toC, fromC := a.toCelsius, b.fromCelsius
			backToC, backFromC := b.toCelsius, a.fromCelsius
			r.RegisterPair(a.name, b.name,
				func(v decimal.Decimal) decimal.Decimal { return fromC(toC(v)) },
				func(v decimal.Decimal) decimal.Decimal { return backFromC(backToC(v)) })
		}
	}
	return r
}
