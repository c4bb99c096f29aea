package bundle

import (
	"context"
	"testing"

	"unitcalc/core/catalog"
	"unitcalc/core/graph"
)

func sealDefault(t *testing.T) *CatalogBundle {
	t.Helper()
	result, err := graph.NewBuilder(catalog.Default(), 4).Build(context.Background())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return Seal(result)
}

func TestSealProducesStableHash(t *testing.T) {
	a := sealDefault(t)
	b := sealDefault(t)

	if a.ContentHash != b.ContentHash {
		t.Errorf("content hash differs across identical builds: %s vs %s",
			a.ContentHash.Hex(), b.ContentHash.Hex())
	}
	if a.ID == b.ID {
		t.Error("bundle IDs must be unique per build")
	}
	if !a.Verify() {
		t.Error("freshly sealed bundle fails verification")
	}
}

func TestBundleLookups(t *testing.T) {
	b := sealDefault(t)

	if _, ok := b.Factor("gallon", "cup"); !ok {
		t.Error("expected gallon -> cup factor")
	}
	if canonical, ok := b.Resolve("feet"); !ok || canonical != "foot" {
		t.Errorf("Resolve(feet) = %q, %v", canonical, ok)
	}
	if canonical, ok := b.Resolve("meter"); !ok || canonical != "meter" {
		t.Errorf("Resolve(meter) = %q, %v; canonical names resolve to themselves", canonical, ok)
	}
	if _, ok := b.Resolve("florp"); ok {
		t.Error("unknown name must not resolve")
	}
	if info, ok := b.Unit("square_meter"); !ok || info.Type != "area" {
		t.Errorf("Unit(square_meter) = %+v, %v", info, ok)
	}
}

func TestGraphResultRoundTrip(t *testing.T) {
	b := sealDefault(t)
	result := b.GraphResult()

	if result.Table.Len() != len(b.Conversions()) {
		t.Errorf("reconstructed table has %d edges, bundle has %d records",
			result.Table.Len(), len(b.Conversions()))
	}
	want, _ := b.Factor("gallon", "quart")
	got, ok := result.Table.Get("gallon", "quart")
	if !ok || !got.Equal(want) {
		t.Errorf("reconstructed factor(gallon, quart) = %s, want %s", got, want)
	}
	if Seal(result).ContentHash != b.ContentHash {
		t.Error("resealing the reconstructed result changed the content hash")
	}
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	b := sealDefault(t)
	if err := store.Put(ctx, b); err != nil {
		t.Fatalf("Put: %v", err)
	}

	loaded, err := store.Get(ctx, b.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if loaded.ContentHash != b.ContentHash {
		t.Errorf("loaded hash %s != sealed hash %s", loaded.ContentHash.Hex(), b.ContentHash.Hex())
	}

	want, _ := b.Factor("mile", "foot")
	got, ok := loaded.Factor("mile", "foot")
	if !ok || !got.Equal(want) {
		t.Errorf("loaded factor(mile, foot) = %s, want %s", got, want)
	}

	latest, err := store.Latest(ctx)
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if latest.ID != b.ID {
		t.Errorf("Latest = %s, want %s", latest.ID, b.ID)
	}
}

func TestStoreRejectsUnsealedBundle(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	unsealed := &CatalogBundle{ID: BundleID("hand-built"), Schema: SchemaVersion}
	if err := store.Put(context.Background(), unsealed); err == nil {
		t.Fatal("Put of an unsealed bundle must fail")
	}
}

func TestStoreIsWriteOnce(t *testing.T) {
	ctx := context.Background()
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	b := sealDefault(t)
	if err := store.Put(ctx, b); err != nil {
		t.Fatalf("first Put: %v", err)
	}
	if err := store.Put(ctx, b); err == nil {
		t.Fatal("second Put of the same bundle must fail")
	}
}

func TestStoreReopensIndex(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	b := sealDefault(t)
	if err := store.Put(ctx, b); err != nil {
		t.Fatalf("Put: %v", err)
	}

	reopened, err := NewStore(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if _, err := reopened.Get(ctx, b.ID); err != nil {
		t.Errorf("Get after reopen: %v", err)
	}
	if corrupted := reopened.VerifyIntegrity(ctx); len(corrupted) != 0 {
		t.Errorf("integrity check flagged %v", corrupted)
	}
}
