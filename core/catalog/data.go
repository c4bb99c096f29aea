// Package catalog - Data units
package catalog

// registerDataUnits populates the data table.
// The rate units are authored per second; the builder expands them across the
// other time units.
func registerDataUnits(c *Catalog) {
	c.Register(UnitInfo{Name: "bit", Type: "data", Plural: "bits", Abbrev: "b",
		Categories: []string{"computing"},
		HelpText:   "A single binary digit; the catalog's data base unit."})
	c.Register(UnitInfo{Name: "byte", Type: "data", Plural: "bytes", Abbrev: "B",
		Aliases: []string{"octet", "octets"}, Categories: []string{"computing"}})
	c.Register(UnitInfo{Name: "nibble", Type: "data", Plural: "nibbles",
		Aliases: []string{"nybble"}, Categories: []string{"computing", "informal"}})

	c.Register(UnitInfo{Name: "bit/second", Type: "data_rate", Plural: "bits/second", Abbrev: "bps",
		Categories: []string{"computing"}})
	c.Register(UnitInfo{Name: "byte/second", Type: "data_rate", Plural: "bytes/second", Abbrev: "Bps",
		Categories: []string{"computing"}})
}
