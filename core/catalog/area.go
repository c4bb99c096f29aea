// Package catalog - Area units
// Only the named area units live here; the square_* units are derived from
// the length table by the builder.
package catalog

// registerAreaUnits populates the area table
func registerAreaUnits(c *Catalog) {
	c.Register(UnitInfo{Name: "acre", Type: "area", Plural: "acres", Abbrev: "ac",
		Categories: []string{"imperial"},
		HelpText:   "4840 square yards; the traditional unit of land area."})
	c.Register(UnitInfo{Name: "are", Type: "area", Plural: "ares", Abbrev: "a",
		Categories: []string{"SI"}})
	c.Register(UnitInfo{Name: "barn", Type: "area", Plural: "barns",
		Categories: []string{"science"},
		HelpText:   "1e-28 square meters, used for nuclear cross-sections."})
	c.Register(UnitInfo{Name: "homestead", Type: "area", Plural: "homesteads",
		Categories: []string{"US", "traditional"}})
}
