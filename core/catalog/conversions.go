// Package catalog - Primitive conversion table
// Hand-authored facts only; everything else is derived by the builder.
// Factors are decimal strings so they survive round-trips exactly.
package catalog

// registerConversions populates the primitive conversion table.
// A handful of entries reference derived units (square_yard, cubic_meter);
// the builder resolves those after the derive pass.
func registerConversions(c *Catalog) {
	// length
	c.RegisterConversion("meter", "angstrom", "1.0e10")
	c.RegisterConversion("meter", "micron", "1.0e6")
	c.RegisterConversion("inch", "meter", "0.0254")
	c.RegisterConversion("foot", "inch", "12")
	c.RegisterConversion("yard", "foot", "3")
	c.RegisterConversion("mile", "foot", "5280")
	c.RegisterConversion("furlong", "yard", "220")
	c.RegisterConversion("chain", "yard", "22")
	c.RegisterConversion("fathom", "foot", "6")
	c.RegisterConversion("rod", "foot", "16.5")
	c.RegisterConversion("hand", "inch", "4")
	c.RegisterConversion("cubit", "inch", "18")
	c.RegisterConversion("nautical_mile", "meter", "1852")
	c.RegisterConversion("league", "mile", "3")
	c.RegisterConversion("inch", "point", "72")
	c.RegisterConversion("inch", "pica", "6")
	c.RegisterConversion("inch", "mil", "1000")

	// mass
	c.RegisterConversion("pound", "ounce", "16")
	c.RegisterConversion("pound", "grain", "7000")
	c.RegisterConversion("ounce", "gram", "28.349523125")
	c.RegisterConversion("stone", "pound", "14")
	c.RegisterConversion("ton", "pound", "2000")
	c.RegisterConversion("tonne", "gram", "1.0e6")
	c.RegisterConversion("carat", "gram", "0.2")

	// time
	c.RegisterConversion("minute", "second", "60")
	c.RegisterConversion("hour", "minute", "60")
	c.RegisterConversion("day", "hour", "24")
	c.RegisterConversion("week", "day", "7")
	c.RegisterConversion("fortnight", "day", "14")
	c.RegisterConversion("year", "day", "365.25")

	// volume
	c.RegisterConversion("cup", "dram", "64")
	c.RegisterConversion("cup", "fluid_ounce", "8")
	c.RegisterConversion("cup", "gill", "2")
	c.RegisterConversion("fluid_ounce", "tablespoon", "2")
	c.RegisterConversion("tablespoon", "teaspoon", "3")
	c.RegisterConversion("quart", "cup", "4")
	c.RegisterConversion("quart", "pint", "2")
	c.RegisterConversion("quart", "liter", "0.946352946")
	c.RegisterConversion("gallon", "quart", "4")
	c.RegisterConversion("gallon", "fifth", "5")
	c.RegisterConversion("cubic_meter", "liter", "1000")

	// area
	c.RegisterConversion("acre", "square_yard", "4840")
	c.RegisterConversion("are", "square_meter", "100")
	c.RegisterConversion("barn", "square_meter", "1.0e-28")
	c.RegisterConversion("homestead", "acre", "160")

	// temperature (the offset scales have no multiplicative edges)
	c.RegisterConversion("kelvin", "rankine", "1.8")

	// data
	c.RegisterConversion("byte", "bit", "8")
	c.RegisterConversion("nibble", "bit", "4")
	c.RegisterConversion("byte/second", "bit/second", "8")

	// velocity
	c.RegisterConversion("mile/hour", "meter/second", "0.44704")
	c.RegisterConversion("mile/hour", "kilometer/hour", "1.609344")
	c.RegisterConversion("foot/second", "meter/second", "0.3048")
	c.RegisterConversion("meter/second", "knot", "1.943844492")
	c.RegisterConversion("mach", "meter/second", "340.2868")
}
