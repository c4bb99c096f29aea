package units

import (
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"unitcalc/core/bundle"
	"unitcalc/internal/errors"
	"unitcalc/internal/logging"
)

// Runtime is the read-only measurement facade over a loaded bundle.
// The bundle and special registry are immutable after construction, so a
// single Runtime is safe for concurrent use.
type Runtime struct {
	bundle  *bundle.CatalogBundle
	special *SpecialRegistry
	logger  *zap.Logger
}

// NewRuntime wraps a sealed bundle with the built-in special conversions
func NewRuntime(b *bundle.CatalogBundle) *Runtime {
	return &Runtime{
		bundle:  b,
		special: TemperatureRegistry(),
		logger:  logging.Logger.With(zap.String("component", "unit_runtime")),
	}
}

// Bundle returns the underlying bundle
func (rt *Runtime) Bundle() *bundle.CatalogBundle {
	return rt.bundle
}

// ResolveUnitName maps a token (canonical name, plural, abbreviation, or
// alias) to its canonical unit name
func (rt *Runtime) ResolveUnitName(token string) (string, error) {
	canonical, ok := rt.bundle.Resolve(strings.TrimSpace(token))
	if !ok {
		return "", errors.UndefinedUnit(token)
	}
	return canonical, nil
}

// ParseCompound parses and resolves a compound unit expression.
// Each token resolves as written first, so foot^2 finds the square_foot
// alias before being read as foot to the second power; slashed canonical
// names expand into their constituents so mph and meter/second share one
// representation.
func (rt *Runtime) ParseCompound(expr string) (Compound, error) {
	result := make(Compound)
	if err := rt.accumulate(result, expr, 1); err != nil {
		return nil, err
	}
	return result.Normalize(), nil
}

func (rt *Runtime) accumulate(into Compound, expr string, scale int) error {
	terms, err := parseExpression(expr)
	if err != nil {
		return err
	}
	for _, term := range terms {
		if err := rt.resolveTerm(into, term.token, term.exp*scale); err != nil {
			return err
		}
	}
	return nil
}

func (rt *Runtime) resolveTerm(into Compound, token string, exp int) error {
	if canonical, ok := rt.bundle.Resolve(token); ok {
		rt.addCanonical(into, canonical, exp)
		return nil
	}
	if root, n, ok := splitExponent(token); ok {
		if canonical, found := rt.bundle.Resolve(root); found {
			rt.addCanonical(into, canonical, exp*n)
			return nil
		}
	}
	return errors.UndefinedUnit(token)
}

// addCanonical records a canonical unit, expanding slashed names like
// mile/hour into their constituents
func (rt *Runtime) addCanonical(into Compound, canonical string, exp int) {
	num, den, ok := splitSlash(canonical)
	if !ok {
		into[canonical] += exp
		return
	}
	into[num] += exp
	into[den] -= exp
}

// splitSlash splits a canonical X/Y name
func splitSlash(name string) (string, string, bool) {
	i := strings.Index(name, "/")
	if i <= 0 || i == len(name)-1 {
		return "", "", false
	}
	return name[:i], name[i+1:], true
}

// NewMeasurement builds a measurement from a value and a compound unit
// expression. An empty expression yields a dimensionless measurement.
func (rt *Runtime) NewMeasurement(value decimal.Decimal, expr string) (Measurement, error) {
	units, err := rt.ParseCompound(expr)
	if err != nil {
		return Measurement{}, err
	}
	return Measurement{value: value, units: units, rt: rt}, nil
}

// MustMeasurement is NewMeasurement for compiled-in values; panics on a
// bad expression
func (rt *Runtime) MustMeasurement(value string, expr string) Measurement {
	m, err := rt.NewMeasurement(decimal.RequireFromString(value), expr)
	if err != nil {
		panic(err)
	}
	return m
}

// Description is the unit metadata surfaced to callers
type Description struct {
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	BaseUnit string   `json:"base_unit"`
	Plural   string   `json:"plural,omitempty"`
	Abbrev   string   `json:"abbrev,omitempty"`
	Aliases  []string `json:"aliases,omitempty"`
	HelpText string   `json:"help_text,omitempty"`
	Derived  bool     `json:"derived,omitempty"`
}

// Describe returns the metadata for a unit name or alias
func (rt *Runtime) Describe(token string) (Description, error) {
	canonical, err := rt.ResolveUnitName(token)
	if err != nil {
		return Description{}, err
	}
	info, _ := rt.bundle.Unit(canonical)

	d := Description{
		Name:     canonical,
		Type:     info.Type,
		Plural:   info.Plural,
		Abbrev:   info.Abbrev,
		Aliases:  rt.bundle.AliasesOf(canonical),
		HelpText: info.HelpText,
		Derived:  info.Derived,
	}
	if t, ok := rt.bundle.Type(info.Type); ok {
		d.BaseUnit = t.BaseUnit
	}
	return d, nil
}

// typeOf returns the unit type of a canonical unit, or "" when unknown
func (rt *Runtime) typeOf(unit string) string {
	info, ok := rt.bundle.Unit(unit)
	if !ok {
		return ""
	}
	return info.Type
}

// factor returns the bundle's conversion factor for a directed pair
func (rt *Runtime) factor(from, to string) (decimal.Decimal, bool) {
	return rt.bundle.Factor(from, to)
}
