package hcl

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/vk/sentproc/internal/plugin"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// EvalContext returns the evaluation context shared by plugin definition
// files. It exposes a single `token` object holding the placeholder tokens.
func EvalContext() *hcl.EvalContext {
	tokens, err := gocty.ToCtyValue(plugin.Tokens(), cty.Map(cty.String))
	if err != nil {
		// plugin.Tokens is a static map of strings.
		panic(err)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"token": cty.ObjectVal(tokens.AsValueMap()),
		},
	}
}
