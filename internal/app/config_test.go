package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/sentproc/internal/config"
	"github.com/vk/sentproc/internal/hcl"
	"github.com/vk/sentproc/internal/yamlcfg"
)

func TestLoaderFor(t *testing.T) {
	l, err := LoaderFor("run.hcl")
	require.NoError(t, err)
	assert.IsType(t, &hcl.Loader{}, l)

	l, err = LoaderFor("run.YAML")
	require.NoError(t, err)
	assert.IsType(t, &yamlcfg.Loader{}, l)

	_, err = LoaderFor("run.toml")
	assert.ErrorIs(t, err, config.ErrInvalidValue)
}

func TestLoadConfig_OverridesWin(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.hcl")
	writeFile(t, path, `
input      = "in.txt"
processors = ["replace_tags"]
workers    = 2
`)

	cfg, err := LoadConfig(context.Background(), path, &config.Config{Processors: []string{"trim"}})

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "in.txt"), cfg.Input)
	assert.Equal(t, []string{"trim"}, cfg.Processors)
	assert.Equal(t, 2, cfg.Workers)
}

func TestLoadConfig_NoFile(t *testing.T) {
	cfg, err := LoadConfig(context.Background(), "", &config.Config{Input: "x"})
	require.NoError(t, err)
	assert.Equal(t, "x", cfg.Input)
}
