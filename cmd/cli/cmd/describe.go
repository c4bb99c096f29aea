// Package cmd - describe command
package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"unitcalc/adapters/output"
	"unitcalc/core/units"
)

var (
	describeUnits  []string
	describeFormat string
)

// describeCmd prints the metadata of a unit or alias
var describeCmd = &cobra.Command{
	Use:   "describe UNIT [UNIT...]",
	Short: "Show a unit's type, base unit, and aliases",
	Long: `Describe resolves each argument (a canonical unit name, plural,
abbreviation, or alias) and prints its metadata.

Examples:
  unitcalc describe mph
  unitcalc describe foot meter furlong --format json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDescribe,
}

func init() {
	describeCmd.Flags().StringArrayVar(&describeUnits, "units-file", nil, "catalog overlay file (repeatable)")
	describeCmd.Flags().StringVarP(&describeFormat, "format", "f", "", "output format (table, json, yaml)")
}

func runDescribe(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	format, err := output.ParseFormat(pickFormat(describeFormat))
	if err != nil {
		return err
	}

	rt, err := loadRuntime(ctx, describeUnits, false)
	if err != nil {
		return err
	}

	descriptions := make([]units.Description, 0, len(args))
	for _, token := range args {
		d, err := rt.Describe(token)
		if err != nil {
			return err
		}
		descriptions = append(descriptions, d)
	}

	if format != output.FormatTable {
		if len(descriptions) == 1 {
			return output.RenderValue(os.Stdout, format, descriptions[0])
		}
		return output.RenderValue(os.Stdout, format, descriptions)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for i, d := range descriptions {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "name\t%s\n", d.Name)
		fmt.Fprintf(tw, "type\t%s\n", d.Type)
		fmt.Fprintf(tw, "base unit\t%s\n", d.BaseUnit)
		if d.Plural != "" {
			fmt.Fprintf(tw, "plural\t%s\n", d.Plural)
		}
		if d.Abbrev != "" {
			fmt.Fprintf(tw, "abbrev\t%s\n", d.Abbrev)
		}
		if len(d.Aliases) > 0 {
			fmt.Fprintf(tw, "aliases\t%v\n", d.Aliases)
		}
		if d.HelpText != "" {
			fmt.Fprintf(tw, "help\t%s\n", d.HelpText)
		}
		if d.Derived {
			fmt.Fprintf(tw, "derived\ttrue\n")
		}
	}
	return tw.Flush()
}
