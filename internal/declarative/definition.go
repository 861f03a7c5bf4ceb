package declarative

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/vk/sentproc/internal/plugin"
)

// Definition is the format-agnostic description of a declarative plugin.
type Definition struct {
	Name           string
	Description    string
	Rules          []Rule
	Lowercase      bool
	Trim           bool
	CollapseSpaces bool
	// Source is the file the definition came from.
	Source string
}

// Rule replaces every match of Pattern with With. With may reference
// capture groups using regexp.Expand syntax ($1, ${name}).
type Rule struct {
	Pattern string
	With    string
}

var spaces = regexp.MustCompile(`\s+`)

type compiledRule struct {
	re   *regexp.Regexp
	with string
}

// Compile turns the definition into a plugin. Replacement rules run first,
// in order, followed by lowercasing, whitespace collapsing and trimming.
func (d *Definition) Compile() (plugin.Plugin, error) {
	rules := make([]compiledRule, 0, len(d.Rules))
	for i, r := range d.Rules {
		if r.Pattern == "" {
			return nil, fmt.Errorf("plugin %q rule %d: pattern is empty", d.Name, i)
		}
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("plugin %q rule %d: %w", d.Name, i, err)
		}
		rules = append(rules, compiledRule{re: re, with: r.With})
	}

	lowercase, collapse, trim := d.Lowercase, d.CollapseSpaces, d.Trim
	fn := plugin.Func(func(line string) string {
		for _, r := range rules {
			line = r.re.ReplaceAllString(line, r.with)
		}
		if lowercase {
			line = strings.ToLower(line)
		}
		if collapse {
			line = spaces.ReplaceAllString(line, " ")
		}
		if trim {
			line = strings.TrimSpace(line)
		}
		return line
	})

	desc := d.Description
	if desc == "" {
		desc = fmt.Sprintf("declared in %s", d.Source)
	}
	return plugin.Described(fn, desc), nil
}
