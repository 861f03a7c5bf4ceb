package plugin

// Plugin transforms a single line of text.
type Plugin interface {
	Process(line string) string
}

// Describer is implemented by plugins that carry a human-readable summary.
type Describer interface {
	Description() string
}

// Factory builds a plugin instance. The registry calls it at most once per
// registered name.
type Factory func() Plugin

// Func adapts an ordinary function to the Plugin interface.
type Func func(line string) string

// Process calls f(line).
func (f Func) Process(line string) string {
	return f(line)
}

// Described wraps a plugin with a description for listings.
func Described(p Plugin, description string) Plugin {
	return &described{Plugin: p, description: description}
}

type described struct {
	Plugin
	description string
}

func (d *described) Description() string {
	return d.description
}

// Describe returns the description of p, or an empty string when p does not
// provide one.
func Describe(p Plugin) string {
	if d, ok := p.(Describer); ok {
		return d.Description()
	}
	return ""
}
