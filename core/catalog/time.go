// Package catalog - Time units
package catalog

// registerTimeUnits populates the time table and the rate-expansion entries.
// The year is the Julian year of exactly 365.25 days.
func registerTimeUnits(c *Catalog) {
	c.Register(UnitInfo{Name: "second", Type: "time", Plural: "seconds", Abbrev: "s",
		Aliases: []string{"sec", "secs"}, Categories: []string{"SI"},
		HelpText: "The base unit of time in the International System of Units."})
	c.Register(UnitInfo{Name: "minute", Type: "time", Plural: "minutes", Abbrev: "min",
		Aliases: []string{"mins"}, Categories: []string{"traditional"}})
	c.Register(UnitInfo{Name: "hour", Type: "time", Plural: "hours", Abbrev: "hr",
		Aliases: []string{"hrs"}, Categories: []string{"traditional"}})
	c.Register(UnitInfo{Name: "day", Type: "time", Plural: "days",
		Categories: []string{"traditional"}})
	c.Register(UnitInfo{Name: "week", Type: "time", Plural: "weeks", Abbrev: "wk",
		Categories: []string{"traditional"}})
	c.Register(UnitInfo{Name: "fortnight", Type: "time", Plural: "fortnights",
		Categories: []string{"traditional"}})
	c.Register(UnitInfo{Name: "year", Type: "time", Plural: "years", Abbrev: "yr",
		Aliases: []string{"julian_year", "annum"}, Categories: []string{"traditional"},
		HelpText: "The Julian year of exactly 365.25 days."})

	// time units the builder expands X/second rate units across
	c.RegisterTime(TimeEntry{Name: "minute", Plural: "minutes", AbbrevSuffix: "m", Seconds: "60"})
	c.RegisterTime(TimeEntry{Name: "hour", Plural: "hours", AbbrevSuffix: "h", Seconds: "3600"})
	c.RegisterTime(TimeEntry{Name: "day", Plural: "days", AbbrevSuffix: "d", Seconds: "86400"})
	c.RegisterTime(TimeEntry{Name: "year", Plural: "years", AbbrevSuffix: "y", Seconds: "31557600"})
}
