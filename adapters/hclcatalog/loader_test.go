package hclcatalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"unitcalc/core/catalog"
	"unitcalc/core/graph"
	"unitcalc/internal/errors"
)

func writeOverlay(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "overlay.units.hcl")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOverlay(t *testing.T) {
	path := writeOverlay(t, `
unit "smoot" {
  type    = "length"
  plural  = "smoots"
  aliases = ["oliver"]
  help    = "The height of Oliver Smoot, used to measure the Harvard Bridge."
}

conversion "smoot" "meter" {
  factor = "1.7018"
}
`)

	cat := catalog.Default()
	if err := NewLoader().LoadFiles([]string{path}, cat); err != nil {
		t.Fatalf("LoadFiles: %v", err)
	}

	info, ok := cat.Unit("smoot")
	if !ok || info.Type != "length" || info.Plural != "smoots" {
		t.Fatalf("smoot not registered: %+v, %v", info, ok)
	}

	result, err := graph.NewBuilder(cat, 4).Build(context.Background())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if _, ok := result.Table.Get("smoot", "foot"); !ok {
		t.Error("expected closure to connect smoot to foot")
	}
	if got := result.Aliases["oliver"]; got != "smoot" {
		t.Errorf("alias oliver = %q, want smoot", got)
	}
}

func TestLoadOverlayRejectsBadFactorType(t *testing.T) {
	path := writeOverlay(t, `
conversion "foo" "bar" {
  factor = 12
}
`)
	err := NewLoader().LoadFiles([]string{path}, catalog.New())
	if !errors.IsType(err, errors.TypeMalformedCatalog) {
		t.Fatalf("err = %v, want malformed catalog", err)
	}
}

func TestLoadOverlayRejectsMissingType(t *testing.T) {
	path := writeOverlay(t, `
unit "smoot" {
  plural = "smoots"
}
`)
	err := NewLoader().LoadFiles([]string{path}, catalog.New())
	if !errors.IsType(err, errors.TypeMalformedCatalog) {
		t.Fatalf("err = %v, want malformed catalog", err)
	}
}

func TestLoadOverlayRejectsBadSyntax(t *testing.T) {
	path := writeOverlay(t, `unit "smoot" {`)
	err := NewLoader().LoadFiles([]string{path}, catalog.New())
	if !errors.IsType(err, errors.TypeMalformedCatalog) {
		t.Fatalf("err = %v, want malformed catalog", err)
	}
}
