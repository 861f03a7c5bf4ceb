package replace_emails

import (
	"regexp"

	"github.com/vk/sentproc/internal/plugin"
	"github.com/vk/sentproc/internal/registry"
)

// Name is the registered plugin name.
const Name = "replace_emails"

// Module implements the registry.Module interface for this package.
type Module struct{}

var emailPattern = regexp.MustCompile(`(?i)\b[a-z0-9._%+-]+@(?:[a-z0-9-]+\.)+[a-z]{2,}\b`)

// ReplaceEmails replaces every e-mail address in line with <EMAIL>.
func ReplaceEmails(line string) string {
	return emailPattern.ReplaceAllLiteralString(line, plugin.EmailToken)
}

// New returns the plugin instance.
func New() plugin.Plugin {
	return plugin.Described(plugin.Func(ReplaceEmails), "replaces e-mail addresses with "+plugin.EmailToken)
}

// Register registers the plugin with the registry.
func (m *Module) Register(r *registry.Registry) error {
	_, err := r.Register(Name, New)
	return err
}
