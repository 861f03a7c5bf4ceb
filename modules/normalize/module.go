// Package normalize provides whitespace and case normalisation plugins.
package normalize

import (
	"regexp"
	"strings"

	"github.com/vk/sentproc/internal/plugin"
	"github.com/vk/sentproc/internal/registry"
)

// Registered plugin names.
const (
	LowercaseName          = "lowercase"
	CollapseWhitespaceName = "collapse_whitespace"
	TrimName               = "trim"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

var whitespace = regexp.MustCompile(`\s+`)

// CollapseWhitespace replaces every run of whitespace with a single space.
func CollapseWhitespace(line string) string {
	return whitespace.ReplaceAllLiteralString(line, " ")
}

// Register registers all normalisation plugins with the registry.
func (m *Module) Register(r *registry.Registry) error {
	plugins := []struct {
		name string
		fn   plugin.Func
		desc string
	}{
		{LowercaseName, strings.ToLower, "lowercases the line"},
		{CollapseWhitespaceName, CollapseWhitespace, "collapses runs of whitespace into one space"},
		{TrimName, strings.TrimSpace, "removes leading and trailing whitespace"},
	}
	for _, p := range plugins {
		if _, err := r.Register(p.name, func() plugin.Plugin { return plugin.Described(p.fn, p.desc) }); err != nil {
			return err
		}
	}
	return nil
}
