// Package cmd - validate command
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"unitcalc/adapters/output"
	"unitcalc/core/bundle"
	"unitcalc/core/determinism"
	"unitcalc/core/graph"
	"unitcalc/core/validate"
	"unitcalc/internal/config"
)

var (
	validateUnits     []string
	validateWorkers   int
	validateFormat    string
	validateTolerance string
	validateBundle    string
)

// validateCmd rebuilds the graph in memory and checks its consistency
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the derived conversion graph for inconsistencies",
	Long: `Validate rebuilds the conversion graph in memory and checks every
same-type unit pair for completeness and round-trip identity, and
every triple for multiplicative consistency.

Findings are reported but never fail the command; only a malformed
catalog produces a nonzero exit.

With --bundle the checks run against a stored bundle instead of a
fresh build.

Examples:
  unitcalc validate
  unitcalc validate --bundle latest
  unitcalc validate --units-file extra.units.hcl --format json`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringArrayVar(&validateUnits, "units-file", nil, "catalog overlay file (repeatable)")
	validateCmd.Flags().IntVar(&validateWorkers, "workers", 0, "closure worker count (0 = NumCPU)")
	validateCmd.Flags().StringVarP(&validateFormat, "format", "f", "", "output format (table, json, yaml)")
	validateCmd.Flags().StringVar(&validateTolerance, "tolerance", "", "relative tolerance for round-trip checks")
	validateCmd.Flags().StringVar(&validateBundle, "bundle", "", "check a stored bundle instead of rebuilding ('latest' or a bundle ID)")
}

func runValidate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	format, err := output.ParseFormat(pickFormat(validateFormat))
	if err != nil {
		return err
	}

	result, err := validationSubject(ctx)
	if err != nil {
		return err
	}

	validator := validate.New()
	if validateTolerance != "" {
		tol, err := determinism.ParseFactor(validateTolerance)
		if err != nil {
			return err
		}
		validator = validator.WithTolerance(tol)
	}

	report := validator.Check(result)
	if format != output.FormatTable {
		return output.RenderValue(os.Stdout, format, report)
	}

	fmt.Fprintf(os.Stdout, "checked %d pairs, %d triples\n", report.PairsChecked, report.TriplesChecked)
	if report.Clean() {
		fmt.Fprintln(os.Stdout, "no inconsistencies found")
		return nil
	}
	for _, finding := range report.Findings {
		fmt.Fprintf(os.Stdout, "  [%s] %s\n", finding.Check, finding.Message)
	}
	return nil
}

// validationSubject resolves what to validate: a stored bundle when --bundle
// is given, a fresh in-memory build otherwise
func validationSubject(ctx context.Context) (*graph.Result, error) {
	if validateBundle == "" {
		return buildGraph(ctx, validateUnits, validateWorkers)
	}

	store, err := bundle.NewStore(config.Get().Data.Directory)
	if err != nil {
		return nil, err
	}
	var b *bundle.CatalogBundle
	if validateBundle == "latest" {
		b, err = store.Latest(ctx)
	} else {
		b, err = store.Get(ctx, bundle.BundleID(validateBundle))
	}
	if err != nil {
		return nil, err
	}
	return b.GraphResult(), nil
}
