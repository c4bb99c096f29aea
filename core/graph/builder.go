package graph

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"unitcalc/core/catalog"
	"unitcalc/core/determinism"
	"unitcalc/internal/errors"
	"unitcalc/internal/logging"
)

// Warning records a non-fatal data-quality finding from the build
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	From    string `json:"from,omitempty"`
	To      string `json:"to,omitempty"`
}

const (
	WarnUnreachablePair = "UNREACHABLE_PAIR"
	WarnAliasCollision  = "ALIAS_COLLISION"
	WarnDanglingEdge    = "DANGLING_EDGE"
)

// Stats summarizes the build output sizes
type Stats struct {
	Units       int `json:"units"`
	Types       int `json:"types"`
	Conversions int `json:"conversions"`
	Aliases     int `json:"aliases"`
	Warnings    int `json:"warnings"`
}

// Result is the completed conversion graph
type Result struct {
	Units    map[string]catalog.UnitInfo
	Types    map[string]catalog.UnitType
	Table    *ConversionTable
	Aliases  map[string]string
	Warnings []Warning
	Stats    Stats
}

// Builder derives the full conversion graph from a catalog.
// A Builder is single-use: construct, Build once, discard.
type Builder struct {
	cat      *catalog.Catalog
	units    map[string]catalog.UnitInfo
	table    *ConversionTable
	aliases  map[string]string
	warnings []Warning
	workers  int
	logger   *zap.Logger
}

// NewBuilder creates a builder over the given catalog
func NewBuilder(cat *catalog.Catalog, workers int) *Builder {
	if workers <= 0 {
		workers = 4
	}
	return &Builder{
		cat:     cat,
		units:   make(map[string]catalog.UnitInfo),
		table:   NewConversionTable(),
		aliases: make(map[string]string),
		workers: workers,
		logger:  logging.Logger.With(zap.String("component", "graph_builder")),
	}
}

// Build runs the derivation pipeline and returns the completed graph.
// Malformed catalog data aborts the build; gaps in conversion coverage
// are reported as warnings on the result instead.
func (b *Builder) Build(ctx context.Context) (*Result, error) {
	if err := b.cat.Validate(); err != nil {
		return nil, err
	}

	for name, info := range b.cat.Units() {
		b.units[name] = info
	}

	if err := b.seedPrimitives(); err != nil {
		return nil, err
	}
	b.reverseConversions()
	b.expandPrefixedUnits()
	b.deriveAreaVolumeUnits()
	b.expandRateUnits()

	if err := b.transitiveClosure(ctx); err != nil {
		return nil, err
	}

	b.checkReachability()
	b.buildAliases()

	result := &Result{
		Units:    b.units,
		Types:    make(map[string]catalog.UnitType),
		Table:    b.table,
		Aliases:  b.aliases,
		Warnings: b.warnings,
	}
	for _, t := range b.cat.Types() {
		result.Types[t.Name] = t
	}
	result.Stats = Stats{
		Units:       len(result.Units),
		Types:       len(result.Types),
		Conversions: b.table.Len(),
		Aliases:     len(b.aliases),
		Warnings:    len(b.warnings),
	}

	b.logger.Info("conversion graph built",
		zap.Int("units", result.Stats.Units),
		zap.Int("conversions", result.Stats.Conversions),
		zap.Int("aliases", result.Stats.Aliases),
		zap.Int("warnings", result.Stats.Warnings))

	return result, nil
}

// seedPrimitives parses the authored conversion facts into the table
func (b *Builder) seedPrimitives() error {
	for _, conv := range b.cat.Conversions() {
		factor, err := determinism.ParseFactor(conv.Factor)
		if err != nil {
			return errors.Wrapf(errors.TypeMalformedCatalog, err,
				"conversion %s -> %s", conv.From, conv.To)
		}
		if factor.IsZero() {
			return errors.Newf(errors.TypeMalformedCatalog,
				"conversion %s -> %s has zero factor", conv.From, conv.To)
		}
		b.table.Set(conv.From, conv.To, factor)
	}
	b.logger.Debug("primitive conversions seeded", zap.Int("count", b.table.Len()))
	return nil
}

// reverseConversions adds the reciprocal edge for every seeded edge
func (b *Builder) reverseConversions() {
	for _, p := range b.table.Pairs() {
		if b.table.Has(p.To, p.From) {
			continue
		}
		factor, _ := b.table.Get(p.From, p.To)
		b.table.Set(p.To, p.From, determinism.Inv(factor))
	}
}

// addUnit registers a synthesized unit unless a primitive already claims
// the name. Returns false when the name was taken.
func (b *Builder) addUnit(info catalog.UnitInfo) bool {
	if _, exists := b.units[info.Name]; exists {
		return false
	}
	b.units[info.Name] = info
	return true
}

// unitsOfType returns the names of all working-set units of a type, sorted
func (b *Builder) unitsOfType(typeName string) []string {
	var names []string
	for name, info := range b.units {
		if info.Type == typeName {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// checkReachability records a warning for every same-type pair that has
// no conversion path after closure
func (b *Builder) checkReachability() {
	for _, t := range b.cat.Types() {
		names := b.unitsOfType(t.Name)
		for i, from := range names {
			for _, to := range names[i+1:] {
				if b.table.Has(from, to) {
					continue
				}
				b.warn(Warning{
					Code:    WarnUnreachablePair,
					Message: fmt.Sprintf("no conversion path between %s and %s (%s)", from, to, t.Name),
					From:    from,
					To:      to,
				})
			}
		}
	}
}

func (b *Builder) warn(w Warning) {
	b.warnings = append(b.warnings, w)
	b.logger.Warn(w.Message, zap.String("code", w.Code))
}
