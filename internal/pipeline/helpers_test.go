package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/sentproc/internal/plugin"
	"github.com/vk/sentproc/internal/registry"
	"github.com/vk/sentproc/modules/replace_tags"
	"github.com/vk/sentproc/modules/replace_urls"
)

// newTestRegistry returns a sealed registry holding the tag and URL
// plugins plus a few helpers used by the tests.
func newTestRegistry(t *testing.T, extra map[string]plugin.Func) *registry.Registry {
	t.Helper()
	reg := registry.New()
	require.NoError(t, (&replace_tags.Module{}).Register(reg))
	require.NoError(t, (&replace_urls.Module{}).Register(reg))
	for name, fn := range extra {
		reg.MustRegister(name, func() plugin.Plugin { return fn })
	}
	reg.Seal()
	return reg
}

// writeInput writes lines to a fresh file and returns its path.
func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sentences.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func readOutput(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
