package integration_tests

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/sentproc/internal/config"
	"github.com/vk/sentproc/internal/registry"
	"github.com/vk/sentproc/internal/testutil"
)

// Test for: an unregistered name in the chain fails the run before any output exists.
func TestErrorHandling_UnknownPlugin_LeavesNoOutput(t *testing.T) {
	// --- Arrange ---
	sc := testutil.Scenario{
		Files: map[string]string{"input.txt": "replace <xml> tags\n"},
		Config: config.Config{
			Input:      "input.txt",
			Processors: []string{"replace_tags", "unknown_plugin"},
		},
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, sc)

	// --- Assert ---
	require.NoError(t, result.StartErr)
	require.ErrorIs(t, result.Err, registry.ErrUnknownPlugin)
	var unknown *registry.UnknownPluginError
	require.True(t, errors.As(result.Err, &unknown))
	require.Equal(t, "unknown_plugin", unknown.Name)
	testutil.AssertNoOutput(t, result, "input.txt")
}
