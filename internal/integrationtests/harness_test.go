package integration_tests

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/worldreg/internal/app"
	"github.com/vk/worldreg/internal/hcl"
	"github.com/vk/worldreg/internal/testutil"
)

// harnessResult holds the outcomes of an integration test run.
type harnessResult struct {
	Root      string
	Report    *app.Report
	LogOutput string
	Err       error
	App       *app.App
}

// path joins elements onto the harness root.
func (r *harnessResult) path(elem ...string) string {
	return filepath.Join(append([]string{r.Root}, elem...)...)
}

// runIntegrationTest writes files under a fresh root, builds the app from
// the config returned by configure and runs it once with a JSON report.
// Paths in files are relative to the root.
func runIntegrationTest(t *testing.T, files map[string]string, configure func(root string) app.Config) *harnessResult {
	t.Helper()

	root := testutil.WriteFiles(t, files)

	appConfig := configure(root)
	appConfig.OutputFormat = app.OutputJSON
	if appConfig.LogLevel == "" {
		appConfig.LogLevel = "debug"
	}
	cfg, err := app.NewConfig(appConfig)
	require.NoError(t, err)

	outBuffer := &testutil.SafeBuffer{}
	logBuffer := &testutil.SafeBuffer{}
	testutil.DumpLogs(t, logBuffer)

	testApp := app.NewApp(outBuffer, logBuffer, cfg, hcl.NewLoader())
	t.Cleanup(testApp.Close)

	result := &harnessResult{Root: root, App: testApp}
	result.Err = testApp.Run(context.Background())
	result.LogOutput = logBuffer.String()
	if result.Err != nil {
		return result
	}

	result.Report = &app.Report{}
	require.NoError(t, json.Unmarshal([]byte(outBuffer.String()), result.Report))
	return result
}

// worldsOnly configures a run over the given descriptor paths and queries,
// both relative to the root.
func worldsOnly(worlds []string, queries ...string) func(string) app.Config {
	return func(root string) app.Config {
		cfg := app.Config{}
		for _, w := range worlds {
			cfg.WorldPaths = append(cfg.WorldPaths, filepath.Join(root, w))
		}
		for _, q := range queries {
			cfg.MapQueries = append(cfg.MapQueries, filepath.Join(root, q))
		}
		return cfg
	}
}
