// Package catalog - Magnitude prefix families
package catalog

import "strings"

// MetricPrefixes is the SI decimal prefix family (powers of ten)
var MetricPrefixes = []Prefix{
	{Name: "yotta", Abbrev: "Y", Exponent: 24},
	{Name: "zetta", Abbrev: "Z", Exponent: 21},
	{Name: "exa", Abbrev: "E", Exponent: 18},
	{Name: "peta", Abbrev: "P", Exponent: 15},
	{Name: "tera", Abbrev: "T", Exponent: 12},
	{Name: "giga", Abbrev: "G", Exponent: 9},
	{Name: "mega", Abbrev: "M", Exponent: 6},
	{Name: "kilo", Abbrev: "k", Exponent: 3},
	{Name: "hecto", Abbrev: "h", Exponent: 2},
	{Name: "deca", Abbrev: "da", Exponent: 1},
	{Name: "deci", Abbrev: "d", Exponent: -1},
	{Name: "centi", Abbrev: "c", Exponent: -2},
	{Name: "milli", Abbrev: "m", Exponent: -3},
	{Name: "micro", Abbrev: "u", Exponent: -6},
	{Name: "nano", Abbrev: "n", Exponent: -9},
	{Name: "pico", Abbrev: "p", Exponent: -12},
	{Name: "femto", Abbrev: "f", Exponent: -15},
	{Name: "atto", Abbrev: "a", Exponent: -18},
	{Name: "zepto", Abbrev: "z", Exponent: -21},
	{Name: "yocto", Abbrev: "y", Exponent: -24},
}

// BinaryPrefixes is the IEC binary prefix family (powers of two)
var BinaryPrefixes = []Prefix{
	{Name: "yobi", Abbrev: "Yi", Exponent: 80},
	{Name: "zebi", Abbrev: "Zi", Exponent: 70},
	{Name: "exbi", Abbrev: "Ei", Exponent: 60},
	{Name: "pebi", Abbrev: "Pi", Exponent: 50},
	{Name: "tebi", Abbrev: "Ti", Exponent: 40},
	{Name: "gibi", Abbrev: "Gi", Exponent: 30},
	{Name: "mebi", Abbrev: "Mi", Exponent: 20},
	{Name: "kibi", Abbrev: "Ki", Exponent: 10},
}

var subUnityMetricPrefixes = []string{
	"hecto", "deca", "deci", "centi", "milli", "micro",
	"nano", "pico", "femto", "atto", "zepto", "yocto",
}

// PrefixExclusions names (unit -> prefixes) pairs the builder must not
// generate. The integral data units never take prefixes below kilo; a
// millibit is not a thing. This is deliberate policy, not an emergent
// property of the tables.
var PrefixExclusions = map[string][]string{
	"bit":         subUnityMetricPrefixes,
	"byte":        subUnityMetricPrefixes,
	"bit/second":  subUnityMetricPrefixes,
	"byte/second": subUnityMetricPrefixes,
}

// PrefixExcluded reports whether the (prefix, unit) combination is suppressed
func PrefixExcluded(prefix Prefix, unit string) bool {
	for _, name := range PrefixExclusions[unit] {
		if name == prefix.Name {
			return true
		}
	}
	return false
}

// MakePrefixedName joins a prefix and a unit name, eliding the prefix's final
// vowel where straight concatenation would double up: "deca"+"are" is
// "decare", "kilo"+"ohm" would be "kilohm".
func MakePrefixedName(prefix, unit string) string {
	if strings.HasPrefix(unit, "o") && (strings.HasSuffix(prefix, "o") || strings.HasSuffix(prefix, "a")) {
		return prefix[:len(prefix)-1] + unit
	}
	if strings.HasPrefix(unit, "a") && (strings.HasSuffix(prefix, "a") || strings.HasSuffix(prefix, "cto")) {
		return prefix[:len(prefix)-1] + unit
	}
	return prefix + unit
}

// registerPrefixEntries marks which units take which prefix families
func registerPrefixEntries(c *Catalog) {
	// metric family
	c.RegisterMetric(MetricEntry{Name: "meter", Plural: "meters", Abbrev: "m",
		AltNames: []string{"metre"}, AltPlurals: []string{"metres"}})
	c.RegisterMetric(MetricEntry{Name: "gram", Plural: "grams", Abbrev: "g",
		AltNames: []string{"gramme"}, AltPlurals: []string{"grammes"}})
	c.RegisterMetric(MetricEntry{Name: "second", Plural: "seconds", Abbrev: "s"})
	c.RegisterMetric(MetricEntry{Name: "liter", Plural: "liters", Abbrev: "L",
		AltNames: []string{"litre"}, AltPlurals: []string{"litres"}})
	c.RegisterMetric(MetricEntry{Name: "are", Plural: "ares", Abbrev: "a"})

	// data units take the positive metric prefixes (exclusions above) and
	// the binary family
	c.RegisterData(DataEntry{Name: "bit", Plural: "bits", Abbrev: "b"})
	c.RegisterData(DataEntry{Name: "byte", Plural: "bytes", Abbrev: "B"})
	c.RegisterData(DataEntry{Name: "bit/second", Plural: "bits/second", Abbrev: "bps"})
	c.RegisterData(DataEntry{Name: "byte/second", Plural: "bytes/second", Abbrev: "Bps"})
}
