package replace_urls

import (
	"regexp"
	"strings"

	"github.com/vk/sentproc/internal/plugin"
	"github.com/vk/sentproc/internal/registry"
)

// Name is the registered plugin name.
const Name = "replace_urls"

// Module implements the registry.Module interface for this package.
type Module struct{}

// urlPattern matches URLs with or without a scheme, including bare
// domain-like tokens such as "example.com". Userinfo is only accepted after
// a scheme.
var urlPattern = regexp.MustCompile(`(?i)\b(?:[a-z][a-z0-9+.-]*://(?:[^\s@/]+@)?)?(?:[a-z0-9-]+\.)+[a-z]{2,}(?::\d+)?(?:/[^\s]*)?`)

// trailingPunct is sentence punctuation that ends a URL rather than
// belonging to it.
const trailingPunct = ".,;:!?)]}'\""

// ReplaceURLs replaces every URL or bare domain in line with <URL>. The
// domain part of an e-mail address is not a URL and is kept, and closing
// punctuation after a URL stays in the sentence.
func ReplaceURLs(line string) string {
	matches := urlPattern.FindAllStringIndex(line, -1)
	if matches == nil {
		return line
	}

	var sb strings.Builder
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		if start > 0 && line[start-1] == '@' {
			continue
		}
		for end > start && strings.IndexByte(trailingPunct, line[end-1]) >= 0 {
			end--
		}
		sb.WriteString(line[last:start])
		sb.WriteString(plugin.URLToken)
		last = end
	}
	sb.WriteString(line[last:])
	return sb.String()
}

// New returns the plugin instance.
func New() plugin.Plugin {
	return plugin.Described(plugin.Func(ReplaceURLs), "replaces URLs and bare domains with "+plugin.URLToken)
}

// Register registers the plugin with the registry.
func (m *Module) Register(r *registry.Registry) error {
	_, err := r.Register(Name, New)
	return err
}
