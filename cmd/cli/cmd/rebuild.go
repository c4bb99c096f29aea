// Package cmd - rebuild command
package cmd

import (
	"context"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"unitcalc/adapters/hclcatalog"
	"unitcalc/adapters/output"
	"unitcalc/core/bundle"
	"unitcalc/core/catalog"
	"unitcalc/core/graph"
	"unitcalc/core/validate"
	"unitcalc/internal/config"
	"unitcalc/internal/logging"
)

var (
	rebuildValidate bool
	rebuildOut      string
	rebuildUnits    []string
	rebuildWorkers  int
	rebuildFormat   string
)

// rebuildCmd derives the complete conversion graph and stores it
var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Derive the conversion graph and store a catalog bundle",
	Long: `Rebuild derives the complete conversion table from the authored
catalog (plus any overlay files), seals the result into an immutable
bundle, and stores it.

Exit status is nonzero only when the catalog itself cannot be parsed;
validator findings and unreachable-pair warnings are reported but do
not fail the build.

Examples:
  unitcalc rebuild
  unitcalc rebuild --validate --format json
  unitcalc rebuild --units-file extra.units.hcl --out ./bundles`,
	RunE: runRebuild,
}

func init() {
	rebuildCmd.Flags().BoolVar(&rebuildValidate, "validate", false, "run the consistency validator on the built graph")
	rebuildCmd.Flags().StringVarP(&rebuildOut, "out", "o", "", "bundle store directory (default from config)")
	rebuildCmd.Flags().StringArrayVar(&rebuildUnits, "units-file", nil, "catalog overlay file (repeatable)")
	rebuildCmd.Flags().IntVar(&rebuildWorkers, "workers", 0, "closure worker count (0 = NumCPU)")
	rebuildCmd.Flags().StringVarP(&rebuildFormat, "format", "f", "", "output format (table, json, yaml)")
}

func runRebuild(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg := config.Get()

	format, err := output.ParseFormat(pickFormat(rebuildFormat))
	if err != nil {
		return err
	}

	result, err := buildGraph(ctx, rebuildUnits, rebuildWorkers)
	if err != nil {
		return err
	}

	report := &output.BuildReport{Warnings: result.Warnings, Stats: result.Stats}

	if rebuildValidate {
		report.Validation = validate.New().Check(result)
	}

	sealed := bundle.Seal(result)
	report.BundleID = string(sealed.ID)
	report.ContentHash = sealed.ContentHash.Hex()

	outDir := rebuildOut
	if outDir == "" {
		outDir = cfg.Data.Directory
	}
	store, err := bundle.NewStore(outDir)
	if err != nil {
		return err
	}
	if err := store.Put(ctx, sealed); err != nil {
		return err
	}
	report.StoredAt = outDir

	logging.Info("bundle stored")
	return report.Render(os.Stdout, format)
}

// buildGraph assembles the catalog (with overlays) and runs the builder
func buildGraph(ctx context.Context, unitsFiles []string, workers int) (*graph.Result, error) {
	cat := catalog.Default()
	if len(unitsFiles) > 0 {
		if err := hclcatalog.NewLoader().LoadFiles(unitsFiles, cat); err != nil {
			return nil, err
		}
	}

	if workers <= 0 {
		workers = config.Get().Builder.Workers
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return graph.NewBuilder(cat, workers).Build(ctx)
}

// pickFormat prefers the flag over the configured default
func pickFormat(flag string) string {
	if flag != "" {
		return flag
	}
	return config.Get().Output.DefaultFormat
}
