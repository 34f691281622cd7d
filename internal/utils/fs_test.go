package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := filepath.Join("build", "generated", "resourcelist", "orm", "orm.resource")

	require.NoError(t, EnsureDir(fs, path))

	info, err := fs.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// second call is a no-op
	require.NoError(t, EnsureDir(fs, path))
}

func TestEnsureDir_ReadOnly(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	err := EnsureDir(fs, filepath.Join("a", "b", "c.resource"))
	assert.Error(t, err)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "tilde only", input: "~", expected: home},
		{name: "tilde prefix", input: "~/.resourcelist", expected: filepath.Join(home, ".resourcelist")},
		{name: "absolute path", input: "/tmp/build", expected: "/tmp/build"},
		{name: "relative path", input: "build", expected: "build"},
		{name: "tilde in middle", input: "a/~/b", expected: "a/~/b"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExpandPath(tt.input))
		})
	}
}

func TestResolvePath(t *testing.T) {
	base := filepath.Join(string(filepath.Separator), "work", "shop")
	abs := filepath.Join(string(filepath.Separator), "tmp", "out")

	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{name: "empty returns base", path: "", expected: base},
		{name: "relative joined", path: "build", expected: filepath.Join(base, "build")},
		{name: "relative with dots", path: "../other/build", expected: filepath.Join(string(filepath.Separator), "work", "other", "build")},
		{name: "absolute kept", path: abs, expected: abs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolvePath(base, tt.path))
		})
	}
}
