// Package catalog - Mass units
package catalog

// registerMassUnits populates the mass table
func registerMassUnits(c *Catalog) {
	c.Register(UnitInfo{Name: "gram", Type: "mass", Plural: "grams", Abbrev: "g",
		Aliases: []string{"gramme", "grammes"}, Categories: []string{"SI"},
		HelpText: "The metric unit of mass; the catalog's mass base unit."})
	c.Register(UnitInfo{Name: "ounce", Type: "mass", Plural: "ounces", Abbrev: "oz",
		Categories: []string{"imperial"}})
	c.Register(UnitInfo{Name: "pound", Type: "mass", Plural: "pounds", Abbrev: "lb",
		Aliases: []string{"lbs"}, Categories: []string{"imperial"},
		HelpText: "The avoirdupois pound of 16 ounces."})
	c.Register(UnitInfo{Name: "stone", Type: "mass", Plural: "stone",
		Categories: []string{"imperial"}})
	c.Register(UnitInfo{Name: "ton", Type: "mass", Plural: "tons",
		Aliases: []string{"short_ton"}, Categories: []string{"US"}})
	c.Register(UnitInfo{Name: "tonne", Type: "mass", Plural: "tonnes",
		Aliases: []string{"metric_ton", "metric_tons"}, Categories: []string{"SI"}})
	c.Register(UnitInfo{Name: "grain", Type: "mass", Plural: "grains", Abbrev: "gr",
		Categories: []string{"traditional"}})
	c.Register(UnitInfo{Name: "carat", Type: "mass", Plural: "carats", Abbrev: "ct",
		Aliases: []string{"karat"}, Categories: []string{"traditional"}})
}
