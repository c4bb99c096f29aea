// Package catalog - Velocity units
// These are named compound units; the closure treats each as its own node,
// while the runtime can also convert them constituent-by-constituent.
package catalog

// registerVelocityUnits populates the velocity table
func registerVelocityUnits(c *Catalog) {
	c.Register(UnitInfo{Name: "meter/second", Type: "velocity", Plural: "meters/second", Abbrev: "mps",
		Categories: []string{"SI"},
		HelpText:   "The SI unit of speed; the catalog's velocity base unit."})
	c.Register(UnitInfo{Name: "mile/hour", Type: "velocity", Plural: "miles/hour", Abbrev: "mph",
		Categories: []string{"imperial"}})
	c.Register(UnitInfo{Name: "kilometer/hour", Type: "velocity", Plural: "kilometers/hour", Abbrev: "kph",
		Aliases: []string{"kilometre/hour"}, Categories: []string{"SI"}})
	c.Register(UnitInfo{Name: "foot/second", Type: "velocity", Plural: "feet/second", Abbrev: "fps",
		Categories: []string{"imperial"}})
	c.Register(UnitInfo{Name: "knot", Type: "velocity", Plural: "knots", Abbrev: "kt",
		Categories: []string{"nautical"},
		HelpText:   "One nautical mile per hour."})
	c.Register(UnitInfo{Name: "mach", Type: "velocity", Plural: "mach",
		Categories: []string{"science", "informal"}})
}
