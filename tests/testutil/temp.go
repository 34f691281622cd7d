package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// TempDir creates a temporary directory for testing
func TempDir(t *testing.T) string {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "resourcelist-test-*")
	require.NoError(t, err)

	t.Cleanup(func() {
		os.RemoveAll(tmpDir)
	})

	// Resolve symlinked temp roots (macOS /var -> /private/var)
	resolved, err := filepath.EvalSymlinks(tmpDir)
	require.NoError(t, err)

	return resolved
}

// WriteTree creates each slash-separated relative file under root with
// placeholder content, creating parent directories as needed.
func WriteTree(t *testing.T, fs afero.Fs, root string, files ...string) {
	t.Helper()

	require.NoError(t, fs.MkdirAll(root, 0755))
	for _, f := range files {
		WriteFile(t, fs, filepath.Join(root, filepath.FromSlash(f)), "x")
	}
}

// WriteFile writes content to path, creating parent directories as needed
func WriteFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()

	require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0644))
}

// ProjectTree creates a project layout under a fresh temp dir and returns
// the project directory. Files are relative to src/<sourceSet>/java.
func ProjectTree(t *testing.T, sourceSet string, files ...string) string {
	t.Helper()

	projectDir := TempDir(t)
	root := filepath.Join(projectDir, "src", sourceSet, "java")
	WriteTree(t, afero.NewOsFs(), root, files...)
	return projectDir
}
