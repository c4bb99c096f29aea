// Package validate - Conversion-graph consistency checks.
// All findings are advisory: an inconsistent graph is reported, never
// silently repaired.
package validate

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"unitcalc/core/determinism"
	"unitcalc/core/graph"
	"unitcalc/internal/logging"
)

const (
	CheckRoundTrip    = "ROUND_TRIP"
	CheckTransitivity = "TRANSITIVITY"
	CheckCompleteness = "COMPLETENESS"
)

// Finding is one failed check
type Finding struct {
	Check   string   `json:"check"`
	Units   []string `json:"units"`
	Message string   `json:"message"`
}

// Report aggregates every finding from a validation run
type Report struct {
	PairsChecked   int       `json:"pairs_checked"`
	TriplesChecked int       `json:"triples_checked"`
	Findings       []Finding `json:"findings,omitempty"`
}

// Clean reports whether no check failed
func (r *Report) Clean() bool {
	return len(r.Findings) == 0
}

// Validator checks a built conversion graph for internal consistency
type Validator struct {
	tolerance decimal.Decimal
	logger    *zap.Logger
}

// New creates a validator with the default factor tolerance
func New() *Validator {
	return &Validator{
		tolerance: determinism.RelativeTolerance,
		logger:    logging.Logger.With(zap.String("component", "validator")),
	}
}

// WithTolerance overrides the relative tolerance for factor comparisons
func (v *Validator) WithTolerance(tolerance decimal.Decimal) *Validator {
	v.tolerance = tolerance
	return v
}

// Check runs every consistency check over the graph and aggregates the
// findings. It never mutates the graph and never fails fast: the point
// of the report is the complete list.
func (v *Validator) Check(result *graph.Result) *Report {
	report := &Report{}

	byType := make(map[string][]string)
	for name, info := range result.Units {
		byType[info.Type] = append(byType[info.Type], name)
	}
	typeNames := make([]string, 0, len(byType))
	for t := range byType {
		sort.Strings(byType[t])
		typeNames = append(typeNames, t)
	}
	sort.Strings(typeNames)

	unreachable := unreachableSet(result.Warnings)

	for _, typeName := range typeNames {
		names := byType[typeName]
		v.checkPairs(report, typeName, names, result, unreachable)
		v.checkTriples(report, names, result)
	}

	v.logger.Info("validation complete",
		zap.Int("pairs", report.PairsChecked),
		zap.Int("triples", report.TriplesChecked),
		zap.Int("findings", len(report.Findings)))
	return report
}

// checkPairs verifies completeness and round-trip identity for one type.
// Pairs the builder already flagged as unreachable are not re-reported.
func (v *Validator) checkPairs(report *Report, typeName string, names []string, result *graph.Result, unreachable map[graph.Pair]bool) {
	one := decimal.NewFromInt(1)
	for i, a := range names {
		for _, b := range names[i+1:] {
			report.PairsChecked++
			forward, okF := result.Table.Get(a, b)
			backward, okB := result.Table.Get(b, a)
			if !okF || !okB {
				if unreachable[graph.Pair{From: a, To: b}] || unreachable[graph.Pair{From: b, To: a}] {
					continue
				}
				report.Findings = append(report.Findings, Finding{
					Check:   CheckCompleteness,
					Units:   []string{a, b},
					Message: fmt.Sprintf("%s units %s and %s are not connected", typeName, a, b),
				})
				continue
			}
			if !determinism.ApproxEqual(forward.Mul(backward), one, v.tolerance) {
				report.Findings = append(report.Findings, Finding{
					Check: CheckRoundTrip,
					Units: []string{a, b},
					Message: fmt.Sprintf("factor(%s,%s) * factor(%s,%s) = %s, want 1",
						a, b, b, a, forward.Mul(backward)),
				})
			}
		}
	}
}

// checkTriples verifies that every two-hop path agrees with the direct edge
func (v *Validator) checkTriples(report *Report, names []string, result *graph.Result) {
	for _, a := range names {
		for _, b := range names {
			if b == a {
				continue
			}
			fab, ok := result.Table.Get(a, b)
			if !ok {
				continue
			}
			for _, c := range names {
				if c == a || c == b {
					continue
				}
				fbc, ok := result.Table.Get(b, c)
				if !ok {
					continue
				}
				fac, ok := result.Table.Get(a, c)
				if !ok {
					continue
				}
				report.TriplesChecked++
				if !determinism.ApproxEqual(fab.Mul(fbc), fac, v.tolerance) {
					report.Findings = append(report.Findings, Finding{
						Check: CheckTransitivity,
						Units: []string{a, b, c},
						Message: fmt.Sprintf("factor(%s,%s) * factor(%s,%s) = %s, but factor(%s,%s) = %s",
							a, b, b, c, fab.Mul(fbc), a, c, fac),
					})
				}
			}
		}
	}
}

func unreachableSet(warnings []graph.Warning) map[graph.Pair]bool {
	set := make(map[graph.Pair]bool)
	for _, w := range warnings {
		if w.Code == graph.WarnUnreachablePair {
			set[graph.Pair{From: w.From, To: w.To}] = true
		}
	}
	return set
}
