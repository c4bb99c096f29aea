// Package catalog - Length units
package catalog

// registerLengthUnits populates the length table
func registerLengthUnits(c *Catalog) {
	c.Register(UnitInfo{Name: "meter", Type: "length", Plural: "meters", Abbrev: "m",
		Aliases: []string{"metre", "metres"}, Categories: []string{"SI"},
		HelpText: "The base unit of length in the International System of Units."})
	c.Register(UnitInfo{Name: "angstrom", Type: "length", Plural: "angstroms", Abbrev: "A",
		Aliases: []string{"angstroem", "angstroems"}, Categories: []string{"science"},
		HelpText: "One ten-billionth of a meter, used for atomic-scale distances."})
	c.Register(UnitInfo{Name: "micron", Type: "length", Plural: "microns",
		Categories: []string{"science"}})
	c.Register(UnitInfo{Name: "inch", Type: "length", Plural: "inches", Abbrev: "in",
		Categories: []string{"imperial"},
		HelpText:   "1/12 of a foot, defined as exactly 2.54 centimeters."})
	c.Register(UnitInfo{Name: "foot", Type: "length", Plural: "feet", Abbrev: "ft",
		Categories: []string{"imperial"}})
	c.Register(UnitInfo{Name: "yard", Type: "length", Plural: "yards", Abbrev: "yd",
		Categories: []string{"imperial"}})
	c.Register(UnitInfo{Name: "mile", Type: "length", Plural: "miles", Abbrev: "mi",
		Aliases: []string{"statute_mile"}, Categories: []string{"imperial"},
		HelpText: "The statute mile of 5280 feet."})
	c.Register(UnitInfo{Name: "furlong", Type: "length", Plural: "furlongs",
		Categories: []string{"imperial"}})
	c.Register(UnitInfo{Name: "chain", Type: "length", Plural: "chains",
		Categories: []string{"imperial"}})
	c.Register(UnitInfo{Name: "fathom", Type: "length", Plural: "fathoms", Abbrev: "fath",
		Categories: []string{"imperial", "nautical"}})
	c.Register(UnitInfo{Name: "rod", Type: "length", Plural: "rods",
		Aliases: []string{"pole", "poles", "perch"}, Categories: []string{"imperial"}})
	c.Register(UnitInfo{Name: "hand", Type: "length", Plural: "hands",
		Categories: []string{"traditional"}})
	c.Register(UnitInfo{Name: "cubit", Type: "length", Plural: "cubits",
		Categories: []string{"traditional"}})
	c.Register(UnitInfo{Name: "nautical_mile", Type: "length", Plural: "nautical_miles",
		Aliases: []string{"naut_mile"}, Categories: []string{"nautical"},
		HelpText: "Exactly 1852 meters, used in marine and air navigation."})
	c.Register(UnitInfo{Name: "league", Type: "length", Plural: "leagues",
		Categories: []string{"traditional"}})
	c.Register(UnitInfo{Name: "point", Type: "length", Plural: "points",
		Categories: []string{"typography"}})
	c.Register(UnitInfo{Name: "pica", Type: "length", Plural: "picas",
		Categories: []string{"typography"}})
	c.Register(UnitInfo{Name: "mil", Type: "length", Plural: "mils",
		Aliases: []string{"thou"}, Categories: []string{"engineering"}})
}
