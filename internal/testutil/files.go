// Package testutil holds helpers shared by the test suites: fixture files
// written into temporary directories and loggers that capture output.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteFile writes contents to path, creating parent directories as needed,
// and returns path.
func WriteFile(t *testing.T, path, contents string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

// WriteFiles creates a temporary root directory and writes every entry of
// files beneath it. Keys are slash-separated paths relative to the root, so
// "worlds/a.world" creates the worlds subdirectory. It returns the root.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, contents := range files {
		WriteFile(t, filepath.Join(root, filepath.FromSlash(name)), contents)
	}
	return root
}
