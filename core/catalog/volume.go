// Package catalog - Volume units
// US customary kitchen and liquid measures plus the liter.
package catalog

// registerVolumeUnits populates the volume table
func registerVolumeUnits(c *Catalog) {
	c.Register(UnitInfo{Name: "liter", Type: "volume", Plural: "liters", Abbrev: "L",
		Aliases: []string{"litre", "litres"}, Categories: []string{"SI"},
		HelpText: "The metric unit of volume; one cubic decimeter."})
	c.Register(UnitInfo{Name: "dram", Type: "volume", Plural: "drams",
		Aliases: []string{"fluid_dram"}, Categories: []string{"US"}})
	c.Register(UnitInfo{Name: "teaspoon", Type: "volume", Plural: "teaspoons", Abbrev: "tsp",
		Categories: []string{"US", "cooking"}})
	c.Register(UnitInfo{Name: "tablespoon", Type: "volume", Plural: "tablespoons", Abbrev: "tbsp",
		Categories: []string{"US", "cooking"}})
	c.Register(UnitInfo{Name: "fluid_ounce", Type: "volume", Plural: "fluid_ounces",
		Aliases: []string{"floz", "fl_oz"}, Categories: []string{"US"}})
	c.Register(UnitInfo{Name: "gill", Type: "volume", Plural: "gills",
		Aliases: []string{"noggin"}, Categories: []string{"US"}})
	c.Register(UnitInfo{Name: "cup", Type: "volume", Plural: "cups",
		Categories: []string{"US", "cooking"},
		HelpText:   "The US customary cup of 8 fluid ounces."})
	c.Register(UnitInfo{Name: "pint", Type: "volume", Plural: "pints", Abbrev: "pt",
		Categories: []string{"US"}})
	c.Register(UnitInfo{Name: "quart", Type: "volume", Plural: "quarts", Abbrev: "qt",
		Categories: []string{"US"}})
	c.Register(UnitInfo{Name: "gallon", Type: "volume", Plural: "gallons", Abbrev: "gal",
		Categories: []string{"US"},
		HelpText:   "The US liquid gallon of 4 quarts."})
	c.Register(UnitInfo{Name: "fifth", Type: "volume", Plural: "fifths",
		Categories: []string{"US", "informal"}})
}
