package integration_tests

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/sentproc/internal/config"
	"github.com/vk/sentproc/internal/pipeline"
	"github.com/vk/sentproc/internal/testutil"
)

// Test for: a missing input file is an I/O error and leaves no output.
func TestErrorHandling_MissingInput_IsIOError(t *testing.T) {
	// --- Arrange ---
	sc := testutil.Scenario{
		Config: config.Config{Input: "absent.txt", Processors: []string{"trim"}},
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, sc)

	// --- Assert ---
	require.ErrorIs(t, result.Err, pipeline.ErrIO)
	require.ErrorIs(t, result.Err, os.ErrNotExist)
	testutil.AssertNoOutput(t, result, "absent.txt")
}

// Test for: with overwriting disabled an existing output is left untouched.
func TestErrorHandling_OverwriteDisabled_KeepsExistingOutput(t *testing.T) {
	// --- Arrange ---
	overwrite := false
	sc := testutil.Scenario{
		Files: map[string]string{
			"input.txt":           "new <b>content</b>\n",
			"input.txt.processed": "previous run\n",
		},
		Config: config.Config{
			Input:      "input.txt",
			Processors: []string{"replace_tags"},
			Overwrite:  &overwrite,
		},
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, sc)

	// --- Assert ---
	require.ErrorIs(t, result.Err, pipeline.ErrOutputExists)
	data, err := os.ReadFile(result.Path("input.txt.processed"))
	require.NoError(t, err)
	require.Equal(t, "previous run\n", string(data))
}

// Test for: by default an existing output is replaced.
func TestErrorHandling_OverwriteDefault_ReplacesOutput(t *testing.T) {
	// --- Arrange ---
	sc := testutil.Scenario{
		Files: map[string]string{
			"input.txt":           "new <b>content</b>\n",
			"input.txt.processed": "previous run\nwith two lines\n",
		},
		Config: config.Config{Input: "input.txt", Processors: []string{"replace_tags"}},
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, sc)

	// --- Assert ---
	testutil.AssertOutputLines(t, result, []string{"new <TAG>content<TAG>"})
}
