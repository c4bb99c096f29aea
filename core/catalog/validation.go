// Package catalog - Structural validation
// Catalog-authoring mistakes are fatal at build time; this is checked before
// the builder runs. Numeric consistency is the validator package's job.
package catalog

import (
	"strings"

	"unitcalc/core/determinism"
	"unitcalc/internal/errors"
)

// Validate checks the catalog for structural authoring errors.
// Returns the first problem found as a MALFORMED_CATALOG error.
func (c *Catalog) Validate() error {
	// every unit references a known type
	for _, name := range determinism.SortedKeys(c.units) {
		u := c.units[name]
		if _, ok := c.types[u.Type]; !ok {
			return errors.Newf(errors.TypeMalformedCatalog,
				"unit '%s' references unknown type '%s'", name, u.Type)
		}
		for _, alias := range u.Aliases {
			if other, ok := c.units[alias]; ok && other.Name != name {
				return errors.Newf(errors.TypeMalformedCatalog,
					"alias '%s' of unit '%s' collides with canonical unit '%s'", alias, name, other.Name)
			}
		}
	}

	// every type's base unit must exist or be derivable
	for _, name := range determinism.SortedKeys(c.types) {
		t := c.types[name]
		if !c.resolvable(t.BaseUnit) {
			return errors.Newf(errors.TypeMalformedCatalog,
				"type '%s' names unknown base unit '%s'", name, t.BaseUnit)
		}
	}

	// conversions must parse and reference resolvable units
	seen := make(map[[2]string]string)
	for _, conv := range c.conversions {
		if _, err := determinism.ParseFactor(conv.Factor); err != nil {
			return errors.Wrapf(errors.TypeMalformedCatalog, err,
				"conversion %s -> %s has a malformed factor", conv.From, conv.To)
		}
		if !c.resolvable(conv.From) {
			return errors.Newf(errors.TypeMalformedCatalog,
				"conversion references unknown unit '%s'", conv.From)
		}
		if !c.resolvable(conv.To) {
			return errors.Newf(errors.TypeMalformedCatalog,
				"conversion references unknown unit '%s'", conv.To)
		}

		key := [2]string{conv.From, conv.To}
		if prev, ok := seen[key]; ok && prev != conv.Factor {
			return errors.Newf(errors.TypeMalformedCatalog,
				"conflicting conversions for %s -> %s: %s vs %s", conv.From, conv.To, prev, conv.Factor)
		}
		seen[key] = conv.Factor
	}

	// metric and data prefix entries must name registered units
	for _, e := range c.metricUnits {
		if !c.Has(e.Name) {
			return errors.Newf(errors.TypeMalformedCatalog,
				"metric prefix entry names unknown unit '%s'", e.Name)
		}
	}
	for _, e := range c.dataUnits {
		if !c.Has(e.Name) {
			return errors.Newf(errors.TypeMalformedCatalog,
				"data prefix entry names unknown unit '%s'", e.Name)
		}
	}

	return nil
}

// resolvable reports whether a name is a registered unit or a unit the
// builder will synthesize (square_/cubic_ forms of length units, including
// metric-prefixed lengths).
func (c *Catalog) resolvable(name string) bool {
	if c.Has(name) {
		return true
	}

	base := name
	switch {
	case strings.HasPrefix(name, "square_"):
		base = strings.TrimPrefix(name, "square_")
	case strings.HasPrefix(name, "cubic_"):
		base = strings.TrimPrefix(name, "cubic_")
	default:
		return false
	}

	if u, ok := c.units[base]; ok {
		return u.Type == "length"
	}

	// a prefixed metric length, e.g. square_kilometer
	for _, e := range c.metricUnits {
		u, ok := c.units[e.Name]
		if !ok || u.Type != "length" {
			continue
		}
		for _, p := range MetricPrefixes {
			if MakePrefixedName(p.Name, e.Name) == base {
				return true
			}
		}
	}

	return false
}
