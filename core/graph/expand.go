package graph

import (
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"unitcalc/core/catalog"
	"unitcalc/core/determinism"
)

// expandPrefixedUnits synthesizes the metric- and binary-prefixed
// variants of the catalog's prefixable units, with a direct edge to the
// root unit in each direction. An authored unit that already holds a
// prefixed name wins: no synthetic unit or edge is created for it.
func (b *Builder) expandPrefixedUnits() {
	before := len(b.units)

	for _, entry := range b.cat.MetricUnits() {
		root, ok := b.units[entry.Name]
		if !ok {
			b.warn(Warning{
				Code:    WarnDanglingEdge,
				Message: "metric prefix entry names unknown unit " + entry.Name,
				From:    entry.Name,
			})
			continue
		}
		for _, prefix := range catalog.MetricPrefixes {
			if catalog.PrefixExcluded(prefix, entry.Name) {
				continue
			}
			b.addPrefixedUnit(root, entry, prefix, determinism.PowOfTen(prefix.Exponent))
		}
	}

	for _, data := range b.cat.DataUnits() {
		root, ok := b.units[data.Name]
		if !ok {
			b.warn(Warning{
				Code:    WarnDanglingEdge,
				Message: "data prefix entry names unknown unit " + data.Name,
				From:    data.Name,
			})
			continue
		}
		entry := catalog.MetricEntry{Name: data.Name, Plural: data.Plural, Abbrev: data.Abbrev}
		for _, prefix := range catalog.MetricPrefixes {
			if catalog.PrefixExcluded(prefix, data.Name) {
				continue
			}
			b.addPrefixedUnit(root, entry, prefix, determinism.PowOfTen(prefix.Exponent))
		}
		for _, prefix := range catalog.BinaryPrefixes {
			b.addPrefixedUnit(root, entry, prefix, determinism.PowOfTwo(prefix.Exponent))
		}
	}

	b.logger.Debug("prefixed units expanded", zap.Int("added", len(b.units)-before))
}

// addPrefixedUnit registers one prefixed variant and its edges to the root.
// factor is the count of prefixed units per root unit's worth of ten or
// two raised to the prefix exponent: 1 kilometer = 10^3 meters, so the
// kilometer -> meter edge carries 10^3.
func (b *Builder) addPrefixedUnit(root catalog.UnitInfo, entry catalog.MetricEntry, prefix catalog.Prefix, factor decimal.Decimal) {
	name := catalog.MakePrefixedName(prefix.Name, entry.Name)
	info := catalog.UnitInfo{
		Name:       name,
		Type:       root.Type,
		Plural:     catalog.MakePrefixedName(prefix.Name, entry.Plural),
		Abbrev:     prefix.Abbrev + entry.Abbrev,
		Categories: []string{"SI"},
		Derived:    true,
	}
	for _, alt := range entry.AltNames {
		info.Aliases = append(info.Aliases, catalog.MakePrefixedName(prefix.Name, alt))
	}
	for _, alt := range entry.AltPlurals {
		info.Aliases = append(info.Aliases, catalog.MakePrefixedName(prefix.Name, alt))
	}
	if !b.addUnit(info) {
		return
	}
	b.table.Set(name, entry.Name, factor)
	b.table.Set(entry.Name, name, determinism.Inv(factor))
}

// expandRateUnits derives per-minute, per-hour, per-day and per-year
// variants of every unit expressed per second, including the prefixed
// rate units created by the prefix pass.
func (b *Builder) expandRateUnits() {
	before := len(b.units)

	var rateNames []string
	for name := range b.units {
		if strings.HasSuffix(name, "/second") {
			rateNames = append(rateNames, name)
		}
	}
	determinism.SortStrings(rateNames)

	for _, name := range rateNames {
		root := b.units[name]
		stem := strings.TrimSuffix(name, "/second")
		pluralStem := strings.TrimSuffix(root.Plural, "/second")
		for _, period := range b.cat.TimeUnits() {
			newName := stem + "/" + period.Name
			info := catalog.UnitInfo{
				Name:       newName,
				Type:       root.Type,
				Plural:     pluralStem + "/" + period.Plural,
				Abbrev:     rateAbbrev(root.Abbrev, period.AbbrevSuffix),
				Categories: root.Categories,
				Derived:    true,
			}
			if !b.addUnit(info) {
				continue
			}
			factor, err := determinism.ParseFactor(period.Seconds)
			if err != nil {
				b.warn(Warning{
					Code:    WarnDanglingEdge,
					Message: "time entry " + period.Name + " has unparseable seconds value",
					From:    period.Name,
				})
				continue
			}
			// 1 unit/second = <seconds in period> unit/period
			b.table.Set(name, newName, factor)
			b.table.Set(newName, name, determinism.Inv(factor))
		}
	}

	b.logger.Debug("rate units expanded", zap.Int("added", len(b.units)-before))
}

// rateAbbrev swaps the per-second suffix of an abbreviation for the
// period's suffix: mps becomes mph for hours
func rateAbbrev(abbrev, suffix string) string {
	if abbrev == "" || suffix == "" {
		return ""
	}
	if strings.HasSuffix(abbrev, "s") {
		return abbrev[:len(abbrev)-1] + suffix
	}
	return abbrev + suffix
}
