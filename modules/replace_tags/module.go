package replace_tags

import (
	"regexp"

	"github.com/vk/sentproc/internal/plugin"
	"github.com/vk/sentproc/internal/registry"
)

// Name is the registered plugin name.
const Name = "replace_tags"

// Module implements the registry.Module interface for this package.
type Module struct{}

// tagPattern matches opening, closing and self-closing markup tags.
var tagPattern = regexp.MustCompile(`</?[A-Za-z][^<>]*>`)

var placeholders = map[string]struct{}{
	plugin.TagToken:    {},
	plugin.URLToken:    {},
	plugin.EmailToken:  {},
	plugin.NumberToken: {},
}

// ReplaceTags replaces every markup tag in line with <TAG>. Placeholder
// tokens produced by other plugins are left alone.
func ReplaceTags(line string) string {
	return tagPattern.ReplaceAllStringFunc(line, func(tag string) string {
		if _, ok := placeholders[tag]; ok {
			return tag
		}
		return plugin.TagToken
	})
}

// New returns the plugin instance.
func New() plugin.Plugin {
	return plugin.Described(plugin.Func(ReplaceTags), "replaces <markup> tags with "+plugin.TagToken)
}

// Register registers the plugin with the registry.
func (m *Module) Register(r *registry.Registry) error {
	_, err := r.Register(Name, New)
	return err
}
