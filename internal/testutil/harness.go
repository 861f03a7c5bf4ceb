package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/sentproc/internal/app"
	"github.com/vk/sentproc/internal/config"
	"github.com/vk/sentproc/internal/pipeline"
	"github.com/vk/sentproc/internal/registry"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// Scenario describes one integration test run. Paths in Files and in the
// Input and PluginsPath fields of Config are relative to a fresh temporary
// root directory.
type Scenario struct {
	Files   map[string]string
	Config  config.Config
	Modules []registry.Module
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Root      string
	LogOutput string
	// StartErr is set when the application failed to start (plugin discovery).
	StartErr error
	// Err is set when the run itself failed.
	Err    error
	Result *pipeline.Result
	App    *app.App
}

// Path returns the absolute path of a file relative to the scenario root.
func (r *HarnessResult) Path(rel string) string {
	return filepath.Join(r.Root, rel)
}

// RunIntegrationTest provides a standardized harness for running integration
// tests using a default background context.
func RunIntegrationTest(t *testing.T, sc Scenario) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, sc)
}

// RunIntegrationTestWithContext writes the scenario files, builds the app
// with debug logging and runs it with the caller's context.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, sc Scenario) *HarnessResult {
	t.Helper()

	root := t.TempDir()
	for name, content := range sc.Files {
		filePath := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))
	}

	cfg := sc.Config
	cfg.Processors = append([]string(nil), sc.Config.Processors...)
	if sc.Config.Processors != nil && cfg.Processors == nil {
		cfg.Processors = []string{}
	}
	if cfg.Input != "" {
		cfg.Input = filepath.Join(root, cfg.Input)
	}
	if cfg.PluginsPath != "" {
		cfg.PluginsPath = filepath.Join(root, cfg.PluginsPath)
	}
	cfg.LogLevel = "debug"

	logBuffer := &SafeBuffer{}
	res := &HarnessResult{Root: root}
	t.Cleanup(func() {
		if os.Getenv("SENTPROC_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	testApp, err := app.New(ctx, logBuffer, &cfg, sc.Modules...)
	if err != nil {
		res.StartErr = err
		res.LogOutput = logBuffer.String()
		return res
	}
	res.App = testApp
	res.Result, res.Err = testApp.Run(ctx)
	res.LogOutput = logBuffer.String()
	return res
}
