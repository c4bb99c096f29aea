// Package graph - Conversion-graph builder
// Derives the complete pairwise conversion table from the catalog's
// primitive facts: reversal, prefix expansion, derived area/volume units,
// rate expansion, and per-type transitive closure.
package graph

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Pair is a directed conversion edge key
type Pair struct {
	From string
	To   string
}

// ConversionTable holds the directed conversion factors.
// value_in_to = value_in_from * factor.
type ConversionTable struct {
	entries map[Pair]decimal.Decimal
}

// NewConversionTable creates an empty table
func NewConversionTable() *ConversionTable {
	return &ConversionTable{entries: make(map[Pair]decimal.Decimal)}
}

// Set stores a factor for a directed pair
func (t *ConversionTable) Set(from, to string, factor decimal.Decimal) {
	t.entries[Pair{From: from, To: to}] = factor
}

// Get returns the factor for a directed pair
func (t *ConversionTable) Get(from, to string) (decimal.Decimal, bool) {
	f, ok := t.entries[Pair{From: from, To: to}]
	return f, ok
}

// Has reports whether a directed pair has a factor
func (t *ConversionTable) Has(from, to string) bool {
	_, ok := t.entries[Pair{From: from, To: to}]
	return ok
}

// Len returns the number of directed edges
func (t *ConversionTable) Len() int {
	return len(t.entries)
}

// Pairs returns all directed pairs in deterministic order
func (t *ConversionTable) Pairs() []Pair {
	pairs := make([]Pair, 0, len(t.entries))
	for p := range t.entries {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].From != pairs[j].From {
			return pairs[i].From < pairs[j].From
		}
		return pairs[i].To < pairs[j].To
	})
	return pairs
}

// Entries returns a copy of the underlying map
func (t *ConversionTable) Entries() map[Pair]decimal.Decimal {
	result := make(map[Pair]decimal.Decimal, len(t.entries))
	for k, v := range t.entries {
		result[k] = v
	}
	return result
}

// Merge copies every entry of other into t
func (t *ConversionTable) Merge(other *ConversionTable) {
	for k, v := range other.entries {
		t.entries[k] = v
	}
}
