package testutil

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertFileExists asserts a file exists at the given path
func AssertFileExists(t *testing.T, fs afero.Fs, path string) {
	t.Helper()

	ok, err := afero.Exists(fs, path)
	require.NoError(t, err)
	assert.True(t, ok, "File should exist at %s", path)
}

// AssertFileNotExists asserts a file does not exist at the given path
func AssertFileNotExists(t *testing.T, fs afero.Fs, path string) {
	t.Helper()

	ok, err := afero.Exists(fs, path)
	require.NoError(t, err)
	assert.False(t, ok, "File should not exist at %s", path)
}

// AssertFileEquals asserts a file equals expected content
func AssertFileEquals(t *testing.T, fs afero.Fs, path, expectedContent string) {
	t.Helper()

	content, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	assert.Equal(t, expectedContent, string(content))
}

// AssertManifest asserts a manifest holds exactly the given entries, one per
// line, each newline-terminated.
func AssertManifest(t *testing.T, fs afero.Fs, path string, entries ...string) {
	t.Helper()

	expected := ""
	for _, e := range entries {
		expected += e + "\n"
	}
	AssertFileEquals(t, fs, path, expected)
}
