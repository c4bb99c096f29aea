package graph

import (
	"go.uber.org/zap"

	"unitcalc/core/catalog"
	"unitcalc/core/determinism"
)

// deriveAreaVolumeUnits synthesizes square_ and cubic_ variants of every
// length unit, prefixed lengths included. Each direct length edge with
// factor f yields an area edge f^2 and a volume edge f^3 between the
// corresponding derived units. Authored units keep their name: a catalog
// that defines square_meter itself suppresses the synthetic one.
func (b *Builder) deriveAreaVolumeUnits() {
	before := len(b.units)

	lengths := b.unitsOfType("length")
	lengthSet := make(map[string]bool, len(lengths))
	for _, name := range lengths {
		lengthSet[name] = true
	}

	for _, name := range lengths {
		root := b.units[name]
		b.addUnit(squareUnit(root))
		b.addUnit(cubicUnit(root))
	}

	// Edges derive from the direct length edges present at this point:
	// primitives, their reversals, and the prefix edges.
	for _, p := range b.table.Pairs() {
		if !lengthSet[p.From] || !lengthSet[p.To] {
			continue
		}
		factor, _ := b.table.Get(p.From, p.To)
		sqFrom, sqTo := "square_"+p.From, "square_"+p.To
		if !b.table.Has(sqFrom, sqTo) {
			b.table.Set(sqFrom, sqTo, factor.Mul(factor))
		}
		cuFrom, cuTo := "cubic_"+p.From, "cubic_"+p.To
		if !b.table.Has(cuFrom, cuTo) {
			b.table.Set(cuFrom, cuTo, factor.Mul(factor).Mul(factor))
		}
	}

	b.logger.Debug("area and volume units derived", zap.Int("added", len(b.units)-before))
}

// squareUnit builds the area unit derived from a length unit
func squareUnit(root catalog.UnitInfo) catalog.UnitInfo {
	name := "square_" + root.Name
	info := catalog.UnitInfo{
		Name:           name,
		Type:           "area",
		Representation: root.Name + "^2",
		Plural:         "square_" + root.Plural,
		Categories:     root.Categories,
		Derived:        true,
		Aliases: []string{
			"sq_" + root.Name,
			root.Name + "^2",
			"square_" + root.Plural,
			"sq_" + root.Plural,
			root.Plural + "^2",
		},
	}
	if root.Abbrev != "" {
		info.Abbrev = "sq" + root.Abbrev
		info.Aliases = append(info.Aliases, "sq_"+root.Abbrev, root.Abbrev+"^2")
	}
	info.Aliases = dedupe(info.Aliases, name)
	determinism.SortStrings(info.Aliases)
	return info
}

// cubicUnit builds the volume unit derived from a length unit
func cubicUnit(root catalog.UnitInfo) catalog.UnitInfo {
	name := "cubic_" + root.Name
	info := catalog.UnitInfo{
		Name:           name,
		Type:           "volume",
		Representation: root.Name + "^3",
		Plural:         "cubic_" + root.Plural,
		Categories:     root.Categories,
		Derived:        true,
		Aliases: []string{
			"cu_" + root.Name,
			root.Name + "^3",
			"cubic_" + root.Plural,
			"cu_" + root.Plural,
			root.Plural + "^3",
		},
	}
	if root.Abbrev != "" {
		info.Abbrev = "cu" + root.Abbrev
		info.Aliases = append(info.Aliases, "cu_"+root.Abbrev, root.Abbrev+"^3")
	}
	info.Aliases = dedupe(info.Aliases, name)
	determinism.SortStrings(info.Aliases)
	return info
}

// dedupe drops duplicate alias entries and any alias equal to the
// canonical name itself
func dedupe(aliases []string, canonical string) []string {
	seen := map[string]bool{canonical: true}
	var result []string
	for _, a := range aliases {
		if seen[a] {
			continue
		}
		seen[a] = true
		result = append(result, a)
	}
	return result
}
