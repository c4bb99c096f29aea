// Package catalog - Authoritative unit catalog
// Defines the canonical tables of unit types, unit operators, magnitude
// prefixes and primitive conversions. This is the source of truth the
// conversion-graph builder works from; everything else is derived.
package catalog

import (
	"unitcalc/internal/errors"
)

// UnitType is a dimensional category with one designated base unit.
// Every unit of the type must be reducible to the base unit.
type UnitType struct {
	Name     string
	BaseUnit string
}

// UnitInfo describes a single unit operator.
// Created once at catalog-build time; immutable thereafter.
type UnitInfo struct {
	// Name is the canonical unit name, e.g. "square_meter"
	Name string

	// Type is the unit type name, e.g. "area"
	Type string

	// Representation is the algebraic form, e.g. "meter^2"
	Representation string

	Plural     string
	Abbrev     string
	Aliases    []string
	Categories []string
	HelpText   string

	// Derived marks units synthesized by the builder rather than authored
	Derived bool
}

// Conversion is a directed primitive conversion fact.
// The factor is authored as a decimal string, never a binary float.
type Conversion struct {
	From   string
	To     string
	Factor string
}

// Prefix is a single magnitude prefix within a family
type Prefix struct {
	Name     string
	Abbrev   string
	Exponent int
}

// MetricEntry names a unit that takes the full metric prefix family.
// Alt spellings are expanded for every prefixed variant.
type MetricEntry struct {
	Name       string
	Plural     string
	Abbrev     string
	AltNames   []string
	AltPlurals []string
}

// DataEntry names an integral unit that takes the positive metric prefixes
// and the binary prefix family.
type DataEntry struct {
	Name   string
	Plural string
	Abbrev string
}

// TimeEntry is a time unit used for expanding per-second rate units.
type TimeEntry struct {
	Name         string
	Plural       string
	AbbrevSuffix string
	Seconds      string
}

// Catalog is the authored unit catalog
type Catalog struct {
	types       map[string]UnitType
	units       map[string]UnitInfo
	conversions []Conversion

	metricUnits []MetricEntry
	dataUnits   []DataEntry
	timeUnits   []TimeEntry
}

// New creates an empty catalog
func New() *Catalog {
	return &Catalog{
		types: make(map[string]UnitType),
		units: make(map[string]UnitInfo),
	}
}

// Default returns the built-in catalog
func Default() *Catalog {
	c := New()
	registerTypes(c)
	registerLengthUnits(c)
	registerMassUnits(c)
	registerTimeUnits(c)
	registerVolumeUnits(c)
	registerAreaUnits(c)
	registerTemperatureUnits(c)
	registerDataUnits(c)
	registerVelocityUnits(c)
	registerPrefixEntries(c)
	registerConversions(c)
	return c
}

// RegisterType adds a unit type
func (c *Catalog) RegisterType(t UnitType) {
	c.types[t.Name] = t
}

// Register adds a unit operator. The last registration wins; callers that
// care about collisions check Has first.
func (c *Catalog) Register(u UnitInfo) {
	if u.Representation == "" {
		u.Representation = u.Name
	}
	if u.Plural == "" {
		u.Plural = u.Name
	}
	c.units[u.Name] = u
}

// RegisterConversion adds a primitive conversion fact
func (c *Catalog) RegisterConversion(from, to, factor string) {
	c.conversions = append(c.conversions, Conversion{From: from, To: to, Factor: factor})
}

// RegisterMetric marks a unit as taking the metric prefix family
func (c *Catalog) RegisterMetric(e MetricEntry) {
	c.metricUnits = append(c.metricUnits, e)
}

// RegisterData marks a unit as taking data and binary prefixes
func (c *Catalog) RegisterData(e DataEntry) {
	c.dataUnits = append(c.dataUnits, e)
}

// RegisterTime adds a rate-expansion time unit
func (c *Catalog) RegisterTime(e TimeEntry) {
	c.timeUnits = append(c.timeUnits, e)
}

// Has reports whether a canonical unit name is registered
func (c *Catalog) Has(name string) bool {
	_, ok := c.units[name]
	return ok
}

// Unit returns a unit by canonical name
func (c *Catalog) Unit(name string) (UnitInfo, bool) {
	u, ok := c.units[name]
	return u, ok
}

// Type returns a unit type by name
func (c *Catalog) Type(name string) (UnitType, bool) {
	t, ok := c.types[name]
	return t, ok
}

// Types returns a copy of the type table
func (c *Catalog) Types() map[string]UnitType {
	result := make(map[string]UnitType, len(c.types))
	for k, v := range c.types {
		result[k] = v
	}
	return result
}

// Units returns a copy of the unit table
func (c *Catalog) Units() map[string]UnitInfo {
	result := make(map[string]UnitInfo, len(c.units))
	for k, v := range c.units {
		result[k] = v
	}
	return result
}

// Conversions returns the primitive conversion facts
func (c *Catalog) Conversions() []Conversion {
	result := make([]Conversion, len(c.conversions))
	copy(result, c.conversions)
	return result
}

// MetricUnits returns the metric prefix entries
func (c *Catalog) MetricUnits() []MetricEntry {
	return c.metricUnits
}

// DataUnits returns the data prefix entries
func (c *Catalog) DataUnits() []DataEntry {
	return c.dataUnits
}

// TimeUnits returns the rate-expansion time units
func (c *Catalog) TimeUnits() []TimeEntry {
	return c.timeUnits
}

// TypeOf returns the unit type name for a canonical unit
func (c *Catalog) TypeOf(name string) (string, error) {
	u, ok := c.units[name]
	if !ok {
		return "", errors.UndefinedUnit(name)
	}
	return u.Type, nil
}
