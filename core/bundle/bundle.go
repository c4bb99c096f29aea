// Package bundle provides immutable, content-hashed catalog bundles.
// A bundle is the sealed output of a conversion-graph build: the runtime
// loads bundles, never raw catalogs.
package bundle

import (
	"crypto/sha256"
	"encoding/json"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"unitcalc/core/catalog"
	"unitcalc/core/determinism"
	"unitcalc/core/graph"
)

// SchemaVersion is bumped whenever the serialized bundle layout changes.
// A store refuses to load bundles with a different schema.
const SchemaVersion = 1

// BundleID uniquely identifies a bundle. It is a UUID assigned at build
// time; the content hash identifies the data independently of it.
type BundleID string

// ConversionRecord is one directed edge in serialized form
type ConversionRecord struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Factor string `json:"factor"`
}

// AliasRecord is one alias binding in serialized form
type AliasRecord struct {
	Alias string `json:"alias"`
	Unit  string `json:"unit"`
}

// CatalogBundle is IMMUTABLE after creation.
// It is a point-in-time capture of a completed conversion graph.
type CatalogBundle struct {
	ID          BundleID
	Schema      int
	ContentHash determinism.ContentHash
	CreatedAt   time.Time

	units       map[string]catalog.UnitInfo
	types       map[string]catalog.UnitType
	factors     map[graph.Pair]decimal.Decimal
	conversions []ConversionRecord
	aliases     map[string]string
	warnings    []graph.Warning
	stats       graph.Stats

	sealed bool
}

// Seal builds an immutable bundle from a completed graph.
// Conversion and alias records are sorted so the content hash is a pure
// function of the graph's data.
func Seal(result *graph.Result) *CatalogBundle {
	b := &CatalogBundle{
		ID:        BundleID(uuid.NewString()),
		Schema:    SchemaVersion,
		CreatedAt: time.Now().UTC(),
		units:     make(map[string]catalog.UnitInfo, len(result.Units)),
		types:     make(map[string]catalog.UnitType, len(result.Types)),
		factors:   make(map[graph.Pair]decimal.Decimal),
		aliases:   make(map[string]string, len(result.Aliases)),
		warnings:  append([]graph.Warning(nil), result.Warnings...),
		stats:     result.Stats,
	}
	for name, info := range result.Units {
		b.units[name] = info
	}
	for name, t := range result.Types {
		b.types[name] = t
	}
	for alias, unit := range result.Aliases {
		b.aliases[alias] = unit
	}

	for _, p := range result.Table.Pairs() {
		f, _ := result.Table.Get(p.From, p.To)
		b.factors[p] = f
		b.conversions = append(b.conversions, ConversionRecord{
			From:   p.From,
			To:     p.To,
			Factor: f.String(),
		})
	}

	b.ContentHash = b.computeHash()
	b.sealed = true
	return b
}

// computeHash folds every sorted record into a SHA-256 digest
func (b *CatalogBundle) computeHash() determinism.ContentHash {
	h := sha256.New()

	for _, name := range determinism.SortedKeys(b.types) {
		t := b.types[name]
		h.Write([]byte("type:" + t.Name + ":" + t.BaseUnit + "\n"))
	}
	for _, name := range determinism.SortedKeys(b.units) {
		info := b.units[name]
		data, _ := json.Marshal(info)
		h.Write([]byte("unit:"))
		h.Write(data)
		h.Write([]byte("\n"))
	}
	for _, rec := range b.conversions {
		h.Write([]byte("conv:" + rec.From + ":" + rec.To + ":" + rec.Factor + "\n"))
	}
	for _, alias := range determinism.SortedKeys(b.aliases) {
		h.Write([]byte("alias:" + alias + ":" + b.aliases[alias] + "\n"))
	}

	var hash determinism.ContentHash
	copy(hash[:], h.Sum(nil))
	return hash
}

// Verify recomputes the content hash against the stored one
func (b *CatalogBundle) Verify() bool {
	return b.computeHash() == b.ContentHash
}

// Factor returns the conversion factor for a directed unit pair
func (b *CatalogBundle) Factor(from, to string) (decimal.Decimal, bool) {
	f, ok := b.factors[graph.Pair{From: from, To: to}]
	return f, ok
}

// Unit returns a unit by canonical name
func (b *CatalogBundle) Unit(name string) (catalog.UnitInfo, bool) {
	info, ok := b.units[name]
	return info, ok
}

// Resolve maps a name or alias to a canonical unit name
func (b *CatalogBundle) Resolve(name string) (string, bool) {
	if _, ok := b.units[name]; ok {
		return name, true
	}
	if canonical, ok := b.aliases[name]; ok {
		return canonical, true
	}
	return "", false
}

// Type returns a unit type by name
func (b *CatalogBundle) Type(name string) (catalog.UnitType, bool) {
	t, ok := b.types[name]
	return t, ok
}

// UnitNames returns every canonical unit name, sorted
func (b *CatalogBundle) UnitNames() []string {
	return determinism.SortedKeys(b.units)
}

// TypeNames returns every unit type name, sorted
func (b *CatalogBundle) TypeNames() []string {
	return determinism.SortedKeys(b.types)
}

// AliasesOf returns every alias bound to a canonical unit, sorted
func (b *CatalogBundle) AliasesOf(name string) []string {
	var result []string
	for alias, unit := range b.aliases {
		if unit == name {
			result = append(result, alias)
		}
	}
	determinism.SortStrings(result)
	return result
}

// Conversions returns the sorted conversion records
func (b *CatalogBundle) Conversions() []ConversionRecord {
	result := make([]ConversionRecord, len(b.conversions))
	copy(result, b.conversions)
	return result
}

// Warnings returns the build warnings carried by the bundle
func (b *CatalogBundle) Warnings() []graph.Warning {
	result := make([]graph.Warning, len(b.warnings))
	copy(result, b.warnings)
	return result
}

// Stats returns the build statistics
func (b *CatalogBundle) Stats() graph.Stats {
	return b.stats
}

// GraphResult reconstructs the build result captured by the bundle, so a
// persisted bundle can be re-checked by the consistency validator.
func (b *CatalogBundle) GraphResult() *graph.Result {
	result := &graph.Result{
		Units:    make(map[string]catalog.UnitInfo, len(b.units)),
		Types:    make(map[string]catalog.UnitType, len(b.types)),
		Table:    graph.NewConversionTable(),
		Aliases:  make(map[string]string, len(b.aliases)),
		Warnings: append([]graph.Warning(nil), b.warnings...),
		Stats:    b.stats,
	}
	for name, info := range b.units {
		result.Units[name] = info
	}
	for name, t := range b.types {
		result.Types[name] = t
	}
	for alias, unit := range b.aliases {
		result.Aliases[alias] = unit
	}
	for pair, f := range b.factors {
		result.Table.Set(pair.From, pair.To, f)
	}
	return result
}

// sortRecords orders conversion records for deterministic serialization
func sortRecords(records []ConversionRecord) {
	sort.Slice(records, func(i, j int) bool {
		if records[i].From != records[j].From {
			return records[i].From < records[j].From
		}
		return records[i].To < records[j].To
	})
}
