package testutil

import (
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// AssertOutputLines checks that the processed file holds exactly want, one
// entry per line, each terminated by a single newline.
func AssertOutputLines(t *testing.T, result *HarnessResult, want []string) {
	t.Helper()
	require.NoError(t, result.StartErr)
	require.NoError(t, result.Err)
	require.NotNil(t, result.Result)

	data, err := os.ReadFile(result.Result.OutputPath)
	require.NoError(t, err)

	content := string(data)
	require.True(t, len(want) == 0 || strings.HasSuffix(content, "\n"), "output must end with a newline")
	got := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	if len(want) == 0 {
		require.Empty(t, content)
		return
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("processed output mismatch (-want +got):\n%s", diff)
	}
}

// AssertNoOutput checks that no processed file was written next to input.
func AssertNoOutput(t *testing.T, result *HarnessResult, input string) {
	t.Helper()
	_, err := os.Stat(result.Path(input) + ".processed")
	require.True(t, os.IsNotExist(err), "expected no output file for %s", input)
}
