// Package catalog - Unit type table
// One designated base unit per dimensional category.
package catalog

// registerTypes populates the unit type table.
// The area and volume base units reference derived square/cubic units that the
// builder synthesizes from the length table.
func registerTypes(c *Catalog) {
	c.RegisterType(UnitType{Name: "length", BaseUnit: "meter"})
	c.RegisterType(UnitType{Name: "mass", BaseUnit: "gram"})
	c.RegisterType(UnitType{Name: "time", BaseUnit: "second"})
	c.RegisterType(UnitType{Name: "area", BaseUnit: "square_meter"})
	c.RegisterType(UnitType{Name: "volume", BaseUnit: "liter"})
	c.RegisterType(UnitType{Name: "temperature", BaseUnit: "kelvin"})
	c.RegisterType(UnitType{Name: "data", BaseUnit: "bit"})
	c.RegisterType(UnitType{Name: "data_rate", BaseUnit: "bit/second"})
	c.RegisterType(UnitType{Name: "velocity", BaseUnit: "meter/second"})
}
