package catalog

import (
	"testing"

	"unitcalc/internal/errors"
)

func TestDefaultCatalogValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestDefaultCatalogBaseUnits(t *testing.T) {
	tests := []struct {
		typeName string
		baseUnit string
	}{
		{"length", "meter"},
		{"mass", "gram"},
		{"time", "second"},
		{"area", "square_meter"},
		{"volume", "liter"},
		{"temperature", "kelvin"},
		{"data", "bit"},
		{"data_rate", "bit/second"},
		{"velocity", "meter/second"},
	}

	c := Default()
	for _, tt := range tests {
		ut, ok := c.Type(tt.typeName)
		if !ok {
			t.Errorf("type %q not registered", tt.typeName)
			continue
		}
		if ut.BaseUnit != tt.baseUnit {
			t.Errorf("type %q base unit = %q, want %q", tt.typeName, ut.BaseUnit, tt.baseUnit)
		}
	}
}

func TestTypeOf(t *testing.T) {
	c := Default()

	typeName, err := c.TypeOf("furlong")
	if err != nil {
		t.Fatalf("TypeOf(furlong): %v", err)
	}
	if typeName != "length" {
		t.Errorf("TypeOf(furlong) = %q, want length", typeName)
	}

	_, err = c.TypeOf("wibble")
	if !errors.IsType(err, errors.TypeUndefinedUnit) {
		t.Errorf("TypeOf(wibble) err = %v, want undefined unit", err)
	}
}

func TestRegisterLastWins(t *testing.T) {
	c := New()
	c.Register(UnitInfo{Name: "smoot", Type: "length"})
	c.Register(UnitInfo{Name: "smoot", Type: "length", Abbrev: "sm"})

	u, ok := c.Unit("smoot")
	if !ok || u.Abbrev != "sm" {
		t.Errorf("Unit(smoot) = %+v, want second registration", u)
	}
	if u.Plural != "smoot" {
		t.Errorf("default plural = %q, want name", u.Plural)
	}
}

func TestMakePrefixedName(t *testing.T) {
	tests := []struct {
		prefix string
		unit   string
		want   string
	}{
		{"kilo", "meter", "kilometer"},
		{"mega", "are", "megare"},
		{"hecto", "are", "hectare"},
		{"yocto", "are", "yoctare"},
		{"kilo", "are", "kiloare"},
		{"kilo", "ohm", "kilohm"},
		{"kibi", "byte", "kibibyte"},
	}

	for _, tt := range tests {
		if got := MakePrefixedName(tt.prefix, tt.unit); got != tt.want {
			t.Errorf("MakePrefixedName(%q, %q) = %q, want %q", tt.prefix, tt.unit, got, tt.want)
		}
	}
}

func TestPrefixExcluded(t *testing.T) {
	milli := Prefix{Name: "milli", Exponent: -3}
	kilo := Prefix{Name: "kilo", Exponent: 3}

	if !PrefixExcluded(milli, "bit") {
		t.Error("millibit should be excluded")
	}
	if PrefixExcluded(kilo, "bit") {
		t.Error("kilobit should be allowed")
	}
	if PrefixExcluded(milli, "meter") {
		t.Error("millimeter should be allowed")
	}
	if !PrefixExcluded(milli, "byte/second") {
		t.Error("millibyte/second should be excluded")
	}
}

func TestConversionEndpointsResolvable(t *testing.T) {
	c := Default()
	for _, conv := range c.Conversions() {
		if !c.resolvable(conv.From) {
			t.Errorf("conversion %s -> %s: from endpoint unresolvable", conv.From, conv.To)
		}
		if !c.resolvable(conv.To) {
			t.Errorf("conversion %s -> %s: to endpoint unresolvable", conv.From, conv.To)
		}
	}
}
