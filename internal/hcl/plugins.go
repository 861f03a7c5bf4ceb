package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/sentproc/internal/ctxlog"
	"github.com/vk/sentproc/internal/declarative"
)

// PluginParser is the HCL implementation of declarative.Parser.
type PluginParser struct {
	evalCtx *hcl.EvalContext
}

// NewPluginParser creates a parser whose expressions can reference the
// placeholder tokens, e.g. `with = token.url`.
func NewPluginParser() *PluginParser {
	return &PluginParser{evalCtx: EvalContext()}
}

// pluginFile is the top-level schema of a plugin definition file.
type pluginFile struct {
	Plugins []*pluginBlock `hcl:"plugin,block"`
}

type pluginBlock struct {
	Name           string         `hcl:"name,label"`
	Description    string         `hcl:"description,optional"`
	Replace        []*replaceRule `hcl:"replace,block"`
	Lowercase      bool           `hcl:"lowercase,optional"`
	Trim           bool           `hcl:"trim,optional"`
	CollapseSpaces bool           `hcl:"collapse_spaces,optional"`
	DefRange       hcl.Range      `hcl:",def_range"`
}

type replaceRule struct {
	Pattern string `hcl:"pattern"`
	With    string `hcl:"with,optional"`
}

// Extension implements declarative.Parser.
func (p *PluginParser) Extension() string { return ".hcl" }

// ParseFile implements declarative.Parser.
func (p *PluginParser) ParseFile(ctx context.Context, path string) ([]*declarative.Definition, error) {
	logger := ctxlog.FromContext(ctx)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var root pluginFile
	diags = gohcl.DecodeBody(file.Body, p.evalCtx, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	seen := make(map[string]hcl.Range, len(root.Plugins))
	defs := make([]*declarative.Definition, 0, len(root.Plugins))
	for _, block := range root.Plugins {
		if prev, dup := seen[block.Name]; dup {
			return nil, fmt.Errorf("%s: plugin %q declared twice (first at %s)", block.DefRange, block.Name, prev)
		}
		seen[block.Name] = block.DefRange

		def := &declarative.Definition{
			Name:           block.Name,
			Description:    block.Description,
			Lowercase:      block.Lowercase,
			Trim:           block.Trim,
			CollapseSpaces: block.CollapseSpaces,
			Source:         path,
		}
		for _, r := range block.Replace {
			def.Rules = append(def.Rules, declarative.Rule{Pattern: r.Pattern, With: r.With})
		}
		defs = append(defs, def)
		logger.Debug("Decoded plugin definition.", "name", def.Name, "rules", len(def.Rules))
	}
	return defs, nil
}
