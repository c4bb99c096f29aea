// Package output renders build and validation results for the CLI.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"unitcalc/core/graph"
	"unitcalc/core/validate"
	"unitcalc/internal/errors"
)

// Format selects the output encoding
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates a format flag value
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatTable, FormatJSON, FormatYAML:
		return Format(s), nil
	default:
		return "", errors.Newf(errors.TypeConfig, "unknown output format %q", s)
	}
}

// BuildReport is the rebuild command's result document
type BuildReport struct {
	BundleID    string           `json:"bundle_id" yaml:"bundle_id"`
	ContentHash string           `json:"content_hash" yaml:"content_hash"`
	Stats       graph.Stats      `json:"stats" yaml:"stats"`
	Warnings    []graph.Warning  `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Validation  *validate.Report `json:"validation,omitempty" yaml:"validation,omitempty"`
	StoredAt    string           `json:"stored_at,omitempty" yaml:"stored_at,omitempty"`
}

// Render writes the report in the chosen format
func (r *BuildReport) Render(w io.Writer, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(r)
	default:
		return r.renderTable(w)
	}
}

func (r *BuildReport) renderTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "bundle\t%s\n", r.BundleID)
	fmt.Fprintf(tw, "content hash\t%s\n", r.ContentHash)
	fmt.Fprintf(tw, "unit types\t%d\n", r.Stats.Types)
	fmt.Fprintf(tw, "units\t%d\n", r.Stats.Units)
	fmt.Fprintf(tw, "conversions\t%d\n", r.Stats.Conversions)
	fmt.Fprintf(tw, "aliases\t%d\n", r.Stats.Aliases)
	if r.StoredAt != "" {
		fmt.Fprintf(tw, "stored at\t%s\n", r.StoredAt)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(r.Warnings) > 0 {
		fmt.Fprintf(w, "\n%d warnings:\n", len(r.Warnings))
		for _, warning := range r.Warnings {
			fmt.Fprintf(w, "  [%s] %s\n", warning.Code, warning.Message)
		}
	}
	if r.Validation != nil {
		fmt.Fprintf(w, "\nvalidation: %d pairs, %d triples checked\n",
			r.Validation.PairsChecked, r.Validation.TriplesChecked)
		if r.Validation.Clean() {
			fmt.Fprintln(w, "no inconsistencies found")
		} else {
			for _, finding := range r.Validation.Findings {
				fmt.Fprintf(w, "  [%s] %s\n", finding.Check, finding.Message)
			}
		}
	}
	return nil
}

// RenderValue writes an arbitrary document in json or yaml, falling back
// to its String for tables
func RenderValue(w io.Writer, format Format, v interface{}) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(v)
	default:
		_, err := fmt.Fprintln(w, v)
		return err
	}
}
