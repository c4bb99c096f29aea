// Package catalog - Temperature units
// Only kelvin<->rankine is a plain multiplicative conversion. The
// offset scales (celsius, fahrenheit, reaumur) have no multiplicative edges
// at all; they are converted through the special registry at runtime.
package catalog

// registerTemperatureUnits populates the temperature table
func registerTemperatureUnits(c *Catalog) {
	c.Register(UnitInfo{Name: "kelvin", Type: "temperature", Plural: "kelvins", Abbrev: "K",
		Categories: []string{"SI"},
		HelpText:   "The absolute thermodynamic temperature scale."})
	c.Register(UnitInfo{Name: "celsius", Type: "temperature", Plural: "degrees_celsius",
		Aliases: []string{"centigrade", "degC", "degrees_C"}, Categories: []string{"SI"}})
	c.Register(UnitInfo{Name: "fahrenheit", Type: "temperature", Plural: "degrees_fahrenheit",
		Aliases: []string{"degF", "degrees_F"}, Categories: []string{"US"}})
	c.Register(UnitInfo{Name: "rankine", Type: "temperature", Plural: "degrees_rankine",
		Aliases: []string{"degR", "degrees_R"}, Categories: []string{"science"}})
	c.Register(UnitInfo{Name: "reaumur", Type: "temperature", Plural: "degrees_reaumur",
		Aliases: []string{"degRe"}, Categories: []string{"traditional"}})
}
