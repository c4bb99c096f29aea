package graph

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"unitcalc/core/catalog"
	"unitcalc/core/determinism"
)

func buildDefault(t *testing.T) *Result {
	t.Helper()
	result, err := NewBuilder(catalog.Default(), 4).Build(context.Background())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return result
}

func factorOf(t *testing.T, r *Result, from, to string) decimal.Decimal {
	t.Helper()
	f, ok := r.Table.Get(from, to)
	if !ok {
		t.Fatalf("no conversion %s -> %s", from, to)
	}
	return f
}

func TestBuildCarriesAuthoredUnits(t *testing.T) {
	result := buildDefault(t)

	for name, want := range catalog.Default().Units() {
		got, ok := result.Units[name]
		if !ok {
			t.Errorf("authored unit %q missing from result", name)
			continue
		}
		if got.Type != want.Type || got.Abbrev != want.Abbrev || got.HelpText != want.HelpText {
			t.Errorf("unit %q = %+v, want authored metadata %+v", name, got, want)
		}
	}
}

func TestBuildClosureFactors(t *testing.T) {
	result := buildDefault(t)

	tests := []struct {
		from string
		to   string
		want string
	}{
		// direct primitives and their reversals
		{"gallon", "quart", "4"},
		{"quart", "gallon", "0.25"},
		{"foot", "inch", "12"},
		// transitive within a type
		{"gallon", "cup", "16"},
		{"gallon", "fluid_ounce", "128"},
		{"mile", "foot", "5280"},
		{"hour", "second", "3600"},
		{"day", "minute", "1440"},
		// prefix expansion
		{"kilometer", "meter", "1000"},
		{"meter", "millimeter", "1000"},
		{"kilogram", "gram", "1000"},
		// closure across prefixed and imperial units
		{"kilometer", "millimeter", "1000000"},
		{"foot", "centimeter", "30.48"},
		// derived area and volume
		{"square_kilometer", "square_meter", "1000000"},
		{"cubic_meter", "cubic_centimeter", "1000000"},
		{"acre", "square_yard", "4840"},
		{"cubic_meter", "liter", "1000"},
		// binary data prefixes
		{"kibibyte", "byte", "1024"},
		{"byte", "bit", "8"},
		{"kibibyte", "bit", "8192"},
		// rate expansion
		{"meter/second", "meter/hour", "3600"},
		{"foot/second", "foot/minute", "60"},
	}

	for _, tt := range tests {
		t.Run(tt.from+"_to_"+tt.to, func(t *testing.T) {
			got := factorOf(t, result, tt.from, tt.to)
			want := determinism.MustFactor(tt.want)
			if !determinism.ApproxEqual(got, want, determinism.RelativeTolerance) {
				t.Errorf("factor(%s, %s) = %s, want %s", tt.from, tt.to, got, want)
			}
		})
	}
}

func TestBuildRoundTripIdentity(t *testing.T) {
	result := buildDefault(t)
	one := decimal.NewFromInt(1)

	pairs := [][2]string{
		{"mile", "millimeter"},
		{"gallon", "teaspoon"},
		{"year", "second"},
		{"square_mile", "square_centimeter"},
		{"knot", "meter/second"},
		{"yobibyte", "bit"},
	}
	for _, p := range pairs {
		forward := factorOf(t, result, p[0], p[1])
		backward := factorOf(t, result, p[1], p[0])
		if !determinism.ApproxEqual(forward.Mul(backward), one, determinism.RelativeTolerance) {
			t.Errorf("factor(%s,%s) * factor(%s,%s) = %s, want 1",
				p[0], p[1], p[1], p[0], forward.Mul(backward))
		}
	}
}

func TestBuildPrefixElision(t *testing.T) {
	result := buildDefault(t)

	// prefix vowels collapse against the unit's leading vowel when the
	// prefix ends in 'a' or 'cto': mega+are is megare, hecto+are is
	// hectare, but kilo+are keeps both vowels.
	for _, name := range []string{"megare", "hectare", "yoctare", "kiloare"} {
		if _, ok := result.Units[name]; !ok {
			t.Errorf("expected prefixed unit %s", name)
		}
	}
	for _, name := range []string{"megaare", "hectoare", "kilare"} {
		if _, ok := result.Units[name]; ok {
			t.Errorf("unexpected prefixed unit %s", name)
		}
	}
}

func TestBuildPrefixExclusions(t *testing.T) {
	result := buildDefault(t)

	// data units take only magnifying metric prefixes
	if _, ok := result.Units["kilobit"]; !ok {
		t.Error("expected kilobit")
	}
	for _, name := range []string{"millibit", "centibyte", "microbit/second"} {
		if _, ok := result.Units[name]; ok {
			t.Errorf("unexpected sub-unity data unit %s", name)
		}
	}
}

func TestBuildPrimitiveWins(t *testing.T) {
	cat := catalog.New()
	cat.RegisterType(catalog.UnitType{Name: "length", BaseUnit: "meter"})
	cat.Register(catalog.UnitInfo{Name: "meter", Type: "length", Plural: "meters", Abbrev: "m"})
	// authored kilometer with a deliberately non-metric factor
	cat.Register(catalog.UnitInfo{Name: "kilometer", Type: "length", Plural: "kilometers"})
	cat.RegisterConversion("kilometer", "meter", "999")
	cat.RegisterMetric(catalog.MetricEntry{Name: "meter", Plural: "meters", Abbrev: "m"})

	result, err := NewBuilder(cat, 1).Build(context.Background())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	got := factorOf(t, result, "kilometer", "meter")
	if !got.Equal(decimal.NewFromInt(999)) {
		t.Errorf("authored kilometer factor = %s, want 999", got)
	}
}

func TestBuildUnreachableWarnings(t *testing.T) {
	result := buildDefault(t)

	// offset temperature scales have no multiplicative path to kelvin
	found := false
	for _, w := range result.Warnings {
		if w.Code == WarnUnreachablePair && w.From == "celsius" && w.To == "kelvin" {
			found = true
		}
	}
	if !found {
		t.Error("expected unreachable-pair warning for celsius/kelvin")
	}
	if result.Table.Has("celsius", "kelvin") {
		t.Error("celsius -> kelvin must not get a multiplicative edge")
	}
	if !result.Table.Has("kelvin", "rankine") {
		t.Error("kelvin -> rankine is purely multiplicative and should exist")
	}
}

func TestBuildAliases(t *testing.T) {
	result := buildDefault(t)

	tests := []struct {
		alias string
		want  string
	}{
		{"meters", "meter"},
		{"ft", "foot"},
		{"angstrom^2", "square_angstrom"},
		{"sq_mile", "square_mile"},
		{"cu_foot", "cubic_foot"},
		{"kilometres", "kilometer"},
		{"mph", "mile/hour"},
		{"kB", "kilobyte"},
	}
	for _, tt := range tests {
		got, ok := result.Aliases[tt.alias]
		if !ok {
			t.Errorf("alias %q not bound", tt.alias)
			continue
		}
		if got != tt.want {
			t.Errorf("alias %q = %q, want %q", tt.alias, got, tt.want)
		}
	}

	for alias := range result.Aliases {
		if _, clash := result.Units[alias]; clash {
			t.Errorf("alias %q shadows a canonical unit", alias)
		}
	}
}

func TestBuildMalformedFactor(t *testing.T) {
	cat := catalog.New()
	cat.RegisterType(catalog.UnitType{Name: "length", BaseUnit: "meter"})
	cat.Register(catalog.UnitInfo{Name: "meter", Type: "length", Plural: "meters"})
	cat.Register(catalog.UnitInfo{Name: "foot", Type: "length", Plural: "feet"})
	cat.RegisterConversion("foot", "meter", "not-a-number")

	if _, err := NewBuilder(cat, 1).Build(context.Background()); err == nil {
		t.Fatal("expected malformed catalog error")
	}
}

func TestBuildDeterministic(t *testing.T) {
	a := buildDefault(t)
	b := buildDefault(t)

	if a.Stats != b.Stats {
		t.Fatalf("stats differ between builds: %+v vs %+v", a.Stats, b.Stats)
	}
	pa, pb := a.Table.Pairs(), b.Table.Pairs()
	for i := range pa {
		if pa[i] != pb[i] {
			t.Fatalf("pair order differs at %d: %v vs %v", i, pa[i], pb[i])
		}
		fa, _ := a.Table.Get(pa[i].From, pa[i].To)
		fb, _ := b.Table.Get(pb[i].From, pb[i].To)
		if !fa.Equal(fb) {
			t.Fatalf("factor differs for %v: %s vs %s", pa[i], fa, fb)
		}
	}
}
