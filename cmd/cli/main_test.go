package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/sentproc/internal/cli"
)

func TestRun_ProcessesFile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	input := filepath.Join(t.TempDir(), "sentences.txt")
	err := os.WriteFile(input, []byte("replace <xml> tags\nvisit example.com now\n"), 0600)
	require.NoError(t, err, "failed to set up test file")
	out, logs := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	runErr := run(context.Background(), out, logs, []string{"run", input, "-p", "replace_tags,replace_urls"})

	// --- Assert ---
	require.NoError(t, runErr)
	require.Equal(t, "wrote 2 lines to "+input+".processed\n", out.String())
	require.Contains(t, logs.String(), "Processing finished.")
	data, err := os.ReadFile(input + ".processed")
	require.NoError(t, err)
	require.Equal(t, "replace <TAG> tags\nvisit <URL> now\n", string(data))
}

func TestRun_InvalidConfigFile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// An HCL file with a syntax error.
	invalidHCL := `
		input = "x.txt"
		processors = [
	`
	filePath := filepath.Join(t.TempDir(), "run.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(invalidHCL), 0600))

	// --- Act ---
	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"run", "-c", filePath})

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse")
	require.Equal(t, cli.ExitUsage, cli.ExitCode(err))
}

func TestRun_Help(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(context.Background(), out, out, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error for help")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"run", "--this-is-not-a-valid-flag"})

	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "unknown flag: --this-is-not-a-valid-flag")
	require.Equal(t, cli.ExitUsage, cli.ExitCode(err))
}
