// Package hclcatalog loads catalog overlay files written in HCL.
// Overlays let a deployment add units, conversion facts, and prefix
// entries on top of the compiled-in catalog before a build.
package hclcatalog

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"go.uber.org/zap"

	"unitcalc/core/catalog"
	"unitcalc/internal/errors"
	"unitcalc/internal/logging"
)

// Loader parses catalog overlay files
type Loader struct {
	parser *hclparse.Parser
	logger *zap.Logger
}

// NewLoader creates an overlay loader
func NewLoader() *Loader {
	return &Loader{
		parser: hclparse.NewParser(),
		logger: logging.Logger.With(zap.String("component", "hcl_catalog")),
	}
}

var overlaySchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "unit", LabelNames: []string{"name"}},
		{Type: "conversion", LabelNames: []string{"from", "to"}},
		{Type: "metric", LabelNames: []string{"name"}},
		{Type: "data", LabelNames: []string{"name"}},
	},
}

// LoadFiles applies every overlay file to the catalog in order
func (l *Loader) LoadFiles(paths []string, cat *catalog.Catalog) error {
	for _, path := range paths {
		if err := l.loadFile(path, cat); err != nil {
			return err
		}
	}
	return nil
}

func (l *Loader) loadFile(path string, cat *catalog.Catalog) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(errors.TypeMalformedCatalog, "read overlay "+path, err)
	}

	file, diags := l.parser.ParseHCL(src, path)
	if diags.HasErrors() {
		return errors.MalformedCatalog("parse overlay "+path, diags)
	}

	content, _, diags := file.Body.PartialContent(overlaySchema)
	if diags.HasErrors() {
		return errors.MalformedCatalog("read overlay blocks in "+path, diags)
	}

	units, conversions := 0, 0
	for _, block := range content.Blocks {
		switch block.Type {
		case "unit":
			if err := l.loadUnit(block, cat); err != nil {
				return err
			}
			units++
		case "conversion":
			if err := l.loadConversion(block, cat); err != nil {
				return err
			}
			conversions++
		case "metric":
			if err := l.loadMetric(block, cat); err != nil {
				return err
			}
		case "data":
			if err := l.loadData(block, cat); err != nil {
				return err
			}
		}
	}

	l.logger.Info("catalog overlay loaded",
		zap.String("path", path), zap.Int("units", units), zap.Int("conversions", conversions))
	return nil
}

func (l *Loader) loadUnit(block *hcl.Block, cat *catalog.Catalog) error {
	name := block.Labels[0]
	attrs, err := blockAttributes(block)
	if err != nil {
		return err
	}

	info := catalog.UnitInfo{Name: name}
	if info.Type, err = requireString(attrs, "type", block); err != nil {
		return err
	}
	if info.Plural, err = optionalString(attrs, "plural"); err != nil {
		return blockError(block, "plural", err)
	}
	if info.Abbrev, err = optionalString(attrs, "abbrev"); err != nil {
		return blockError(block, "abbrev", err)
	}
	if info.HelpText, err = optionalString(attrs, "help"); err != nil {
		return blockError(block, "help", err)
	}
	if info.Aliases, err = optionalStrings(attrs, "aliases"); err != nil {
		return blockError(block, "aliases", err)
	}
	if info.Categories, err = optionalStrings(attrs, "categories"); err != nil {
		return blockError(block, "categories", err)
	}
	if info.Plural == "" {
		info.Plural = name + "s"
	}

	cat.Register(info)
	return nil
}

func (l *Loader) loadConversion(block *hcl.Block, cat *catalog.Catalog) error {
	attrs, err := blockAttributes(block)
	if err != nil {
		return err
	}
	factor, err := requireString(attrs, "factor", block)
	if err != nil {
		return err
	}
	cat.RegisterConversion(block.Labels[0], block.Labels[1], factor)
	return nil
}

func (l *Loader) loadMetric(block *hcl.Block, cat *catalog.Catalog) error {
	entry, err := prefixEntry(block)
	if err != nil {
		return err
	}
	cat.RegisterMetric(entry)
	return nil
}

func (l *Loader) loadData(block *hcl.Block, cat *catalog.Catalog) error {
	entry, err := prefixEntry(block)
	if err != nil {
		return err
	}
	cat.RegisterData(catalog.DataEntry{
		Name:   entry.Name,
		Plural: entry.Plural,
		Abbrev: entry.Abbrev,
	})
	return nil
}

func prefixEntry(block *hcl.Block) (catalog.MetricEntry, error) {
	entry := catalog.MetricEntry{Name: block.Labels[0]}
	attrs, err := blockAttributes(block)
	if err != nil {
		return entry, err
	}
	if entry.Plural, err = optionalString(attrs, "plural"); err != nil {
		return entry, blockError(block, "plural", err)
	}
	if entry.Abbrev, err = optionalString(attrs, "abbrev"); err != nil {
		return entry, blockError(block, "abbrev", err)
	}
	if entry.Plural == "" {
		entry.Plural = entry.Name + "s"
	}
	return entry, nil
}

// blockAttributes evaluates a block body's attributes to cty values.
// Overlay files are pure data: expressions may not reference anything.
func blockAttributes(block *hcl.Block) (map[string]cty.Value, error) {
	body, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, errors.MalformedCatalog(blockName(block), diags)
	}

	result := make(map[string]cty.Value, len(body))
	for name, attr := range body {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, errors.MalformedCatalog(
				fmt.Sprintf("%s: attribute %s is not a literal", blockName(block), name), diags)
		}
		if !val.IsKnown() || val.IsNull() {
			return nil, errors.Newf(errors.TypeMalformedCatalog,
				"%s: attribute %s has no value", blockName(block), name)
		}
		result[name] = val
	}
	return result, nil
}

func requireString(attrs map[string]cty.Value, name string, block *hcl.Block) (string, error) {
	val, ok := attrs[name]
	if !ok {
		return "", errors.Newf(errors.TypeMalformedCatalog,
			"%s: missing required attribute %s", blockName(block), name)
	}
	if val.Type() != cty.String {
		return "", errors.Newf(errors.TypeMalformedCatalog,
			"%s: attribute %s must be a string, got %s", blockName(block), name, val.Type().FriendlyName())
	}
	return val.AsString(), nil
}

func optionalString(attrs map[string]cty.Value, name string) (string, error) {
	val, ok := attrs[name]
	if !ok {
		return "", nil
	}
	if val.Type() != cty.String {
		return "", fmt.Errorf("must be a string, got %s", val.Type().FriendlyName())
	}
	return val.AsString(), nil
}

func optionalStrings(attrs map[string]cty.Value, name string) ([]string, error) {
	val, ok := attrs[name]
	if !ok {
		return nil, nil
	}
	if !val.CanIterateElements() {
		return nil, fmt.Errorf("must be a list of strings, got %s", val.Type().FriendlyName())
	}
	var result []string
	for it := val.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		if elem.Type() != cty.String {
			return nil, fmt.Errorf("must contain only strings, got %s", elem.Type().FriendlyName())
		}
		result = append(result, elem.AsString())
	}
	return result, nil
}

func blockError(block *hcl.Block, attr string, err error) error {
	return errors.Newf(errors.TypeMalformedCatalog, "%s: attribute %s %v", blockName(block), attr, err)
}

func blockName(block *hcl.Block) string {
	name := block.Type
	for _, label := range block.Labels {
		name += " " + label
	}
	return name + " at " + block.DefRange.String()
}
