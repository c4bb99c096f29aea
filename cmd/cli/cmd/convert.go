// Package cmd - convert command
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"unitcalc/core/bundle"
	"unitcalc/core/determinism"
	"unitcalc/core/units"
	"unitcalc/internal/config"
	"unitcalc/internal/logging"
)

var (
	convertUnits []string
	convertFresh bool
)

// convertCmd converts a value between unit expressions
var convertCmd = &cobra.Command{
	Use:   "convert VALUE FROM TO [TO...]",
	Short: "Convert a value between unit expressions",
	Long: `Convert evaluates VALUE in the FROM units and expresses it in the TO
units. Compound expressions use '*', '/', and '^' (e.g. meter/second,
foot^2, kilogram*meter/second^2).

With multiple TO units the value is broken down across them, largest
first, with whole amounts in every unit but the last:

  unitcalc convert 100000 second day hour minute second
  1 day, 3 hours, 46 minutes, 40 seconds

Examples:
  unitcalc convert 128 floz gallon
  unitcalc convert 55 mph meter/second
  unitcalc convert 1 acre foot^2`,
	Args: cobra.MinimumNArgs(3),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringArrayVar(&convertUnits, "units-file", nil, "catalog overlay file (repeatable)")
	convertCmd.Flags().BoolVar(&convertFresh, "fresh", false, "rebuild the graph in memory instead of using the stored bundle")
}

func runConvert(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	rt, err := loadRuntime(ctx, convertUnits, convertFresh)
	if err != nil {
		return err
	}

	value, err := determinism.ParseFactor(args[0])
	if err != nil {
		return err
	}
	m, err := rt.NewMeasurement(value, args[1])
	if err != nil {
		return err
	}

	targets := args[2:]
	if len(targets) == 1 {
		converted, err := m.ConvertTo(targets[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, converted)
		return nil
	}

	series, err := m.ConvertToSeries(targets)
	if err != nil {
		return err
	}
	for i, part := range series {
		if i > 0 {
			fmt.Fprint(os.Stdout, ", ")
		}
		fmt.Fprint(os.Stdout, part)
	}
	fmt.Fprintln(os.Stdout)
	return nil
}

// loadRuntime resolves the measurement runtime, preferring the latest
// stored bundle and rebuilding in memory when the store is empty or a
// rebuild was forced
func loadRuntime(ctx context.Context, unitsFiles []string, fresh bool) (*units.Runtime, error) {
	if !fresh && len(unitsFiles) == 0 {
		store, err := bundle.NewStore(config.Get().Data.Directory)
		if err == nil {
			if b, err := store.Latest(ctx); err == nil {
				return units.NewRuntime(b), nil
			}
		}
		logging.Debug("no stored bundle, rebuilding in memory")
	}

	result, err := buildGraph(ctx, unitsFiles, 0)
	if err != nil {
		return nil, err
	}
	logging.Debug("built in-memory graph",
		zap.Int("units", result.Stats.Units),
		zap.Int("conversions", result.Stats.Conversions))
	return units.NewRuntime(bundle.Seal(result)), nil
}
