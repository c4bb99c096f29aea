package validate

import (
	"context"
	"testing"

	"unitcalc/core/catalog"
	"unitcalc/core/determinism"
	"unitcalc/core/graph"
)

func TestDefaultCatalogIsConsistent(t *testing.T) {
	result, err := graph.NewBuilder(catalog.Default(), 4).Build(context.Background())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	report := New().Check(result)
	for _, f := range report.Findings {
		t.Errorf("%s: %s", f.Check, f.Message)
	}
	if report.PairsChecked == 0 || report.TriplesChecked == 0 {
		t.Fatalf("validator checked nothing: %+v", report)
	}
}

func TestInconsistentEdgeIsReported(t *testing.T) {
	cat := catalog.New()
	cat.RegisterType(catalog.UnitType{Name: "length", BaseUnit: "meter"})
	cat.Register(catalog.UnitInfo{Name: "meter", Type: "length", Plural: "meters"})
	cat.Register(catalog.UnitInfo{Name: "foot", Type: "length", Plural: "feet"})
	cat.Register(catalog.UnitInfo{Name: "yard", Type: "length", Plural: "yards"})
	cat.RegisterConversion("yard", "foot", "3")
	cat.RegisterConversion("foot", "meter", "0.3048")

	result, err := graph.NewBuilder(cat, 1).Build(context.Background())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	// corrupt the closure's derived edge
	result.Table.Set("yard", "meter", determinism.MustFactor("0.9"))

	report := New().Check(result)
	if report.Clean() {
		t.Fatal("expected transitivity finding")
	}
	found := false
	for _, f := range report.Findings {
		if f.Check == CheckTransitivity {
			found = true
		}
	}
	if !found {
		t.Errorf("no transitivity finding in %+v", report.Findings)
	}
}

func TestDisconnectedPairIsReported(t *testing.T) {
	cat := catalog.New()
	cat.RegisterType(catalog.UnitType{Name: "length", BaseUnit: "meter"})
	cat.Register(catalog.UnitInfo{Name: "meter", Type: "length", Plural: "meters"})
	cat.Register(catalog.UnitInfo{Name: "foot", Type: "length", Plural: "feet"})
	cat.Register(catalog.UnitInfo{Name: "league", Type: "length", Plural: "leagues"})
	cat.RegisterConversion("foot", "meter", "0.3048")

	result, err := graph.NewBuilder(cat, 1).Build(context.Background())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	// the builder already warns for the league pairs; the validator must
	// not duplicate those, so strip the warnings to see its own findings
	result.Warnings = nil

	report := New().Check(result)
	count := 0
	for _, f := range report.Findings {
		if f.Check == CheckCompleteness {
			count++
		}
	}
	if count != 2 {
		t.Errorf("completeness findings = %d, want 2 (league vs meter, league vs foot)", count)
	}
}
