package units

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	"unitcalc/core/bundle"
	"unitcalc/core/catalog"
	"unitcalc/core/determinism"
	"unitcalc/core/graph"
	"unitcalc/internal/errors"
)

var (
	runtimeOnce sync.Once
	sharedRT    *Runtime
)

func testRuntime(t *testing.T) *Runtime {
	t.Helper()
	runtimeOnce.Do(func() {
		result, err := graph.NewBuilder(catalog.Default(), 4).Build(context.Background())
		if err != nil {
			panic(err)
		}
		sharedRT = NewRuntime(bundle.Seal(result))
	})
	return sharedRT
}

func mustMeasure(t *testing.T, rt *Runtime, value, expr string) Measurement {
	t.Helper()
	m, err := rt.NewMeasurement(decimal.RequireFromString(value), expr)
	if err != nil {
		t.Fatalf("NewMeasurement(%s, %q): %v", value, expr, err)
	}
	return m
}

func wantValue(t *testing.T, m Measurement, want string) {
	t.Helper()
	w := decimal.RequireFromString(want)
	if !determinism.ApproxEqual(m.Value(), w, determinism.RelativeTolerance) {
		t.Errorf("value = %s, want %s", m.Value(), w)
	}
}

func TestAddAcrossVolumeUnits(t *testing.T) {
	rt := testRuntime(t)

	cups := mustMeasure(t, rt, "4", "cup")
	teaspoons := mustMeasure(t, rt, "13", "teaspoon")

	sum, err := cups.Add(teaspoons)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	// 48 teaspoons per cup
	wantValue(t, sum, "4.270833333333333333333333333333333333333333333333333333333333333333333333333333")

	back, err := sum.ConvertTo("teaspoon")
	if err != nil {
		t.Fatalf("ConvertTo: %v", err)
	}
	wantValue(t, back, "205") // 4*48 + 13
}

func TestConvertChainedVolume(t *testing.T) {
	rt := testRuntime(t)

	m := mustMeasure(t, rt, "128", "fluid_ounce")
	got, err := m.ConvertTo("gallon")
	if err != nil {
		t.Fatalf("ConvertTo: %v", err)
	}
	wantValue(t, got, "1")
}

func TestAddCompoundVelocities(t *testing.T) {
	rt := testRuntime(t)

	mph := mustMeasure(t, rt, "55", "mile/hour")
	mps := mustMeasure(t, rt, "10", "meter/second")

	sum, err := mph.Add(mps)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	// 10 m/s = 22.369... mph
	want := decimal.RequireFromString("55").Add(
		determinism.Div(decimal.RequireFromString("10"), determinism.MustFactor("0.44704")))
	if !determinism.ApproxEqual(sum.Value(), want, determinism.RelativeTolerance) {
		t.Errorf("sum = %s, want %s", sum.Value(), want)
	}
	if sum.Units().String() != "mile/hour" {
		t.Errorf("units = %q, want mile/hour", sum.Units().String())
	}
}

func TestMultiplySameUnit(t *testing.T) {
	rt := testRuntime(t)

	a := mustMeasure(t, rt, "2", "cup")
	b := mustMeasure(t, rt, "3", "cup")

	product := a.Multiply(b)
	wantValue(t, product, "6")
	if got := product.Units(); got["cup"] != 2 || len(got) != 1 {
		t.Errorf("units = %v, want {cup: 2}", got)
	}
}

func TestMultiplyFoldsLikeTypes(t *testing.T) {
	rt := testRuntime(t)

	cups := mustMeasure(t, rt, "2", "cup")
	pints := mustMeasure(t, rt, "3", "pint")

	product := cups.Multiply(pints)
	// 3 pints are 6 cups, so 2 cup * 3 pint = 12 cup^2
	wantValue(t, product, "12")
	if got := product.Units(); got["cup"] != 2 || len(got) != 1 {
		t.Errorf("units = %v, want {cup: 2}", got)
	}
}

func TestAddIncompatibleUnits(t *testing.T) {
	rt := testRuntime(t)

	foot := mustMeasure(t, rt, "1", "foot")
	gallon := mustMeasure(t, rt, "1", "gallon")

	if _, err := foot.Add(gallon); !errors.IsType(err, errors.TypeIncompatibleUnits) {
		t.Fatalf("err = %v, want incompatible units", err)
	}
}

func TestAcreToSquareAngstrom(t *testing.T) {
	rt := testRuntime(t)

	acre := mustMeasure(t, rt, "1", "acre")
	got, err := acre.ConvertTo("angstrom^2")
	if err != nil {
		t.Fatalf("ConvertTo: %v", err)
	}
	// 1 acre = 4046.8564224 m^2, 1 m = 1e10 angstrom
	wantValue(t, got, "4.0468564224E+23")
}

func TestDimensionalClosure(t *testing.T) {
	rt := testRuntime(t)

	a := mustMeasure(t, rt, "6", "foot")
	b := mustMeasure(t, rt, "2", "1/yard")

	product := a.Multiply(b)
	if !product.Dimensionless() {
		t.Fatalf("units = %v, want dimensionless", product.Units())
	}
	// 2 per yard is 2/3 per foot
	wantValue(t, product, "4")
}

func TestDivideCancelsUnits(t *testing.T) {
	rt := testRuntime(t)

	a := mustMeasure(t, rt, "10", "meter")
	b := mustMeasure(t, rt, "2", "meter")

	quotient, err := a.Divide(b)
	if err != nil {
		t.Fatalf("Divide: %v", err)
	}
	if !quotient.Dimensionless() {
		t.Fatalf("units = %v, want dimensionless", quotient.Units())
	}
	wantValue(t, quotient, "5")
}

func TestDivideByZero(t *testing.T) {
	rt := testRuntime(t)

	a := mustMeasure(t, rt, "10", "meter")
	zero := mustMeasure(t, rt, "0", "second")

	if _, err := a.Divide(zero); !errors.IsType(err, errors.TypeDivisionByZero) {
		t.Fatalf("Divide err = %v, want division by zero", err)
	}

	if _, err := Quantity(a).Divide(Scalar(decimal.Zero)); !errors.IsType(err, errors.TypeDivisionByZero) {
		t.Fatalf("Operand Divide by scalar zero err = %v, want division by zero", err)
	}
	if _, err := Scalar(decimal.NewFromInt(5)).Divide(Quantity(zero)); !errors.IsType(err, errors.TypeDivisionByZero) {
		t.Fatalf("Operand Divide by zero quantity err = %v, want division by zero", err)
	}
}

func TestExponentiate(t *testing.T) {
	rt := testRuntime(t)

	m := mustMeasure(t, rt, "3", "meter")

	squared, err := m.Exponentiate(decimal.RequireFromString("2"))
	if err != nil {
		t.Fatalf("Exponentiate: %v", err)
	}
	wantValue(t, squared, "9")
	if got := squared.Units(); got["meter"] != 2 {
		t.Errorf("units = %v, want {meter: 2}", got)
	}

	if _, err := m.Exponentiate(decimal.RequireFromString("2.5")); !errors.IsType(err, errors.TypeNonIntegralExponent) {
		t.Fatalf("err = %v, want non-integral exponent", err)
	}
}

func TestExponentiatedCompoundConverts(t *testing.T) {
	rt := testRuntime(t)

	m := mustMeasure(t, rt, "3", "foot")
	squared, err := m.Exponentiate(decimal.RequireFromString("2"))
	if err != nil {
		t.Fatalf("Exponentiate: %v", err)
	}

	// {foot: 2} renders foot^2, the alias of square_foot
	got, err := squared.ConvertTo("square_yard")
	if err != nil {
		t.Fatalf("ConvertTo: %v", err)
	}
	wantValue(t, got, "1")
}

func TestTemperatureConversions(t *testing.T) {
	rt := testRuntime(t)

	tests := []struct {
		value string
		from  string
		to    string
		want  string
	}{
		{"100", "celsius", "fahrenheit", "212"},
		{"32", "fahrenheit", "celsius", "0"},
		{"0", "celsius", "kelvin", "273.15"},
		{"-40", "fahrenheit", "celsius", "-40"},
		{"0", "celsius", "rankine", "491.67"},
		{"80", "reaumur", "celsius", "100"},
		{"300", "kelvin", "rankine", "540"},
	}
	for _, tt := range tests {
		t.Run(tt.from+"_to_"+tt.to, func(t *testing.T) {
			m := mustMeasure(t, rt, tt.value, tt.from)
			got, err := m.ConvertTo(tt.to)
			if err != nil {
				t.Fatalf("ConvertTo: %v", err)
			}
			wantValue(t, got, tt.want)
		})
	}
}

func TestBreakdownSeries(t *testing.T) {
	rt := testRuntime(t)

	// 100000 seconds = 1 day, 3 hours, 46 minutes, 40 seconds
	m := mustMeasure(t, rt, "100000", "second")
	series, err := m.ConvertToSeries([]string{"day", "hour", "minute", "second"})
	if err != nil {
		t.Fatalf("ConvertToSeries: %v", err)
	}
	if len(series) != 4 {
		t.Fatalf("len(series) = %d, want 4", len(series))
	}
	for i, want := range []string{"1", "3", "46", "40"} {
		wantValue(t, series[i], want)
	}
}

func TestResolveUnitName(t *testing.T) {
	rt := testRuntime(t)

	tests := []struct {
		token string
		want  string
	}{
		{"feet", "foot"},
		{"ft", "foot"},
		{"metres", "meter"},
		{"kilometers", "kilometer"},
		{"sq_mile", "square_mile"},
		{"octet", "byte"},
	}
	for _, tt := range tests {
		got, err := rt.ResolveUnitName(tt.token)
		if err != nil {
			t.Errorf("ResolveUnitName(%q): %v", tt.token, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ResolveUnitName(%q) = %q, want %q", tt.token, got, tt.want)
		}
		// resolution is pure: a second call agrees
		again, _ := rt.ResolveUnitName(tt.token)
		if again != got {
			t.Errorf("ResolveUnitName(%q) changed between calls", tt.token)
		}
	}

	if _, err := rt.ResolveUnitName("florp"); !errors.IsType(err, errors.TypeUndefinedUnit) {
		t.Fatalf("err = %v, want undefined unit", err)
	}
}

func TestDescribe(t *testing.T) {
	rt := testRuntime(t)

	d, err := rt.Describe("feet")
	if err != nil {
		t.Fatalf("Describe: %v", err)
	}
	if d.Name != "foot" || d.Type != "length" || d.BaseUnit != "meter" || d.Plural != "feet" {
		t.Errorf("Describe(feet) = %+v", d)
	}
}

func TestOperandDispatch(t *testing.T) {
	rt := testRuntime(t)

	five := Scalar(decimal.RequireFromString("5"))
	twoMeters := Quantity(mustMeasure(t, rt, "2", "meter"))

	scaled, err := twoMeters.Multiply(five)
	if err != nil {
		t.Fatalf("Multiply: %v", err)
	}
	wantValue(t, scaled.Measurement(), "10")
	if scaled.Measurement().Units().String() != "meter" {
		t.Errorf("units = %q, want meter", scaled.Measurement().Units().String())
	}

	inverted, err := five.Divide(twoMeters)
	if err != nil {
		t.Fatalf("Divide: %v", err)
	}
	if got := inverted.Measurement().Units(); got["meter"] != -1 {
		t.Errorf("units = %v, want {meter: -1}", got)
	}

	shifted, err := twoMeters.Add(five)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	wantValue(t, shifted.Measurement(), "7")

	if _, err := twoMeters.Exponentiate(Quantity(mustMeasure(t, rt, "2", "meter"))); err == nil {
		t.Fatal("expected error for dimensioned exponent")
	}
}

func TestDezeroingIdempotence(t *testing.T) {
	c := Compound{"meter": 2, "second": 0, "foot": -2}
	n := c.Normalize()
	if len(n) != 2 {
		t.Fatalf("Normalize dropped wrong entries: %v", n)
	}
	if !n.Equal(n.Normalize()) {
		t.Error("Normalize is not idempotent")
	}

	cancelled := Compound{"meter": 1}.Merge(Compound{"meter": -1})
	if !cancelled.IsEmpty() {
		t.Errorf("Merge left %v, want empty", cancelled)
	}
}

func TestCompoundString(t *testing.T) {
	tests := []struct {
		c    Compound
		want string
	}{
		{Compound{}, ""},
		{Compound{"meter": 1}, "meter"},
		{Compound{"meter": 2}, "meter^2"},
		{Compound{"mile": 1, "hour": -1}, "mile/hour"},
		{Compound{"second": -1}, "1/second"},
		{Compound{"foot": 1, "pound": 1, "second": -2}, "foot*pound/second^2"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("String(%v) = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestConcurrentConversions(t *testing.T) {
	rt := testRuntime(t)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m := mustMeasureNoT(rt, "128", "fluid_ounce")
			got, err := m.ConvertTo("gallon")
			if err != nil || !got.Value().Equal(decimal.RequireFromString("1")) {
				panic("concurrent conversion diverged")
			}
		}()
	}
	wg.Wait()
}

func mustMeasureNoT(rt *Runtime, value, expr string) Measurement {
	m, err := rt.NewMeasurement(decimal.RequireFromString(value), expr)
	if err != nil {
		panic(err)
	}
	return m
}
