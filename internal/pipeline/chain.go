package pipeline

import (
	"fmt"

	"github.com/vk/sentproc/internal/plugin"
	"github.com/vk/sentproc/internal/registry"
)

// Chain is an ordered list of resolved plugins.
type Chain struct {
	names   []string
	plugins []plugin.Plugin
}

// ResolveChain looks up every name through reg, in order. It fails on the
// first unknown name and never returns a partial chain. The registry must
// have completed discovery.
func ResolveChain(reg *registry.Registry, names []string) (*Chain, error) {
	if !reg.Sealed() {
		return nil, registry.ErrNotSealed
	}

	c := &Chain{
		names:   make([]string, 0, len(names)),
		plugins: make([]plugin.Plugin, 0, len(names)),
	}
	for i, name := range names {
		p, err := reg.Resolve(name)
		if err != nil {
			return nil, fmt.Errorf("resolving processor %d: %w", i, err)
		}
		c.names = append(c.names, name)
		c.plugins = append(c.plugins, p)
	}
	return c, nil
}

// NewChain builds a chain directly from plugins, bypassing the registry.
func NewChain(plugins ...plugin.Plugin) *Chain {
	c := &Chain{plugins: append([]plugin.Plugin(nil), plugins...)}
	for i := range plugins {
		c.names = append(c.names, fmt.Sprintf("#%d", i))
	}
	return c
}

// Names returns the plugin names in application order.
func (c *Chain) Names() []string {
	return append([]string(nil), c.names...)
}

// Plugins returns the resolved plugins in application order.
func (c *Chain) Plugins() []plugin.Plugin {
	return append([]plugin.Plugin(nil), c.plugins...)
}

// Len returns the number of plugins in the chain.
func (c *Chain) Len() int {
	return len(c.plugins)
}

// ProcessLine applies every plugin of the chain to line, each consuming
// the output of the previous one. A nil or empty chain returns line
// unchanged.
func ProcessLine(line string, c *Chain) string {
	if c == nil {
		return line
	}
	for _, p := range c.plugins {
		line = p.Process(line)
	}
	return line
}
