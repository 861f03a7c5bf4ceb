package integration_tests

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/sentproc/internal/config"
	"github.com/vk/sentproc/internal/registry"
	"github.com/vk/sentproc/internal/testutil"
)

// Test for: invalid hcl in a plugin definition file is rejected at startup.
func TestErrorHandling_InvalidHCL_IsRejected(t *testing.T) {
	// --- Arrange ---
	invalidHCL := `
		plugin "broken" {
			replace {
		// Missing closing brace here
	`
	sc := testutil.Scenario{
		Files:  map[string]string{"plugins/broken.hcl": invalidHCL, "input.txt": "x\n"},
		Config: config.Config{Input: "input.txt", Processors: []string{"broken"}, PluginsPath: "plugins"},
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, sc)

	// --- Assert ---
	require.Error(t, result.StartErr)
	require.Contains(t, result.StartErr.Error(), "failed to parse")
	testutil.AssertNoOutput(t, result, "input.txt")
}

// Test for: a declarative plugin reusing a built-in name stops discovery.
func TestErrorHandling_DeclarativeNameConflict_StopsDiscovery(t *testing.T) {
	// --- Arrange ---
	sc := testutil.Scenario{
		Files: map[string]string{
			"plugins/tags.hcl": `
				plugin "replace_tags" {
					replace {
						pattern = "<[^>]+>"
						with    = "[tag]"
					}
				}
			`,
			"input.txt": "x\n",
		},
		Config: config.Config{Input: "input.txt", Processors: []string{"replace_tags"}, PluginsPath: "plugins"},
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, sc)

	// --- Assert ---
	require.ErrorIs(t, result.StartErr, registry.ErrNameConflict)
	var conflict *registry.ConflictError
	require.ErrorAs(t, result.StartErr, &conflict)
	require.Equal(t, "replace_tags", conflict.Name)
}

// Test for: a pattern that is not a valid regular expression is rejected at startup.
func TestErrorHandling_InvalidPattern_IsRejected(t *testing.T) {
	// --- Arrange ---
	sc := testutil.Scenario{
		Files: map[string]string{
			"plugins/bad.hcl": `
				plugin "bad" {
					replace {
						pattern = "(unclosed"
					}
				}
			`,
		},
		Config: config.Config{PluginsPath: "plugins"},
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, sc)

	// --- Assert ---
	require.Error(t, result.StartErr)
	require.Contains(t, result.StartErr.Error(), "bad")
}
