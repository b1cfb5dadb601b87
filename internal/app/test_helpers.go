package app

import (
	"testing"

	"github.com/vk/worldreg/internal/hcl"
	"github.com/vk/worldreg/internal/testutil"
)

// SetupAppTest creates a new app instance for system testing, backed by the
// HCL project loader. It returns the app with its report and log buffers.
// The app's registry is torn down when the test finishes.
func SetupAppTest(t *testing.T, appConfig *Config) (*App, *testutil.SafeBuffer, *testutil.SafeBuffer) {
	t.Helper()

	outBuffer := &testutil.SafeBuffer{}
	logBuffer := &testutil.SafeBuffer{}
	if appConfig.LogLevel == "" {
		appConfig.LogLevel = "debug"
	}
	testApp := NewApp(outBuffer, logBuffer, appConfig, hcl.NewLoader())

	testutil.DumpLogs(t, logBuffer)
	t.Cleanup(testApp.Close)

	return testApp, outBuffer, logBuffer
}
