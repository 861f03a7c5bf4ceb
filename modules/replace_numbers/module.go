package replace_numbers

import (
	"regexp"

	"github.com/vk/sentproc/internal/plugin"
	"github.com/vk/sentproc/internal/registry"
)

// Name is the registered plugin name.
const Name = "replace_numbers"

// Module implements the registry.Module interface for this package.
type Module struct{}

// numberPattern matches integers and decimals with optional sign and
// digit-group separators, e.g. "42", "-3.14", "1,000,000".
var numberPattern = regexp.MustCompile(`[-+]?\b\d+(?:[.,]\d+)*\b`)

// ReplaceNumbers replaces every number in line with <NUM>.
func ReplaceNumbers(line string) string {
	return numberPattern.ReplaceAllLiteralString(line, plugin.NumberToken)
}

// New returns the plugin instance.
func New() plugin.Plugin {
	return plugin.Described(plugin.Func(ReplaceNumbers), "replaces numbers with "+plugin.NumberToken)
}

// Register registers the plugin with the registry.
func (m *Module) Register(r *registry.Registry) error {
	_, err := r.Register(Name, New)
	return err
}
