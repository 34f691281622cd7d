package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConfig_Validate tests configuration validation
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		check  func(*testing.T, *Config)
	}{
		{
			name:   "valid config unchanged",
			modify: func(c *Config) {},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, Default(), c)
			},
		},
		{
			name:   "workers below minimum defaults to 4",
			modify: func(c *Config) { c.Generation.Workers = 0 },
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, DefaultWorkers, c.Generation.Workers)
			},
		},
		{
			name:   "workers above maximum clamped",
			modify: func(c *Config) { c.Generation.Workers = 1000 },
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, MaxWorkers, c.Generation.Workers)
			},
		},
		{
			name:   "unknown log level defaults to info",
			modify: func(c *Config) { c.Logging.Level = "trace" },
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, DefaultLogLevel, c.Logging.Level)
			},
		},
		{
			name:   "unknown log format defaults to pretty",
			modify: func(c *Config) { c.Logging.Format = "xml" },
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, DefaultLogFormat, c.Logging.Format)
			},
		},
		{
			name:   "empty build directory defaults",
			modify: func(c *Config) { c.Build.Directory = "" },
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, DefaultBuildDir, c.Build.Directory)
			},
		},
		{
			name:   "empty project file defaults",
			modify: func(c *Config) { c.Project.File = "" },
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, DefaultProjectFile, c.Project.File)
			},
		},
		{
			name:   "debug level kept",
			modify: func(c *Config) { c.Logging.Level = "debug" },
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, "debug", c.Logging.Level)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			require.NoError(t, cfg.Validate())
			tt.check(t, cfg)
		})
	}
}

// TestDefault tests default configuration
func TestDefault(t *testing.T) {
	cfg := Default()

	require.NotNil(t, cfg)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "pretty", cfg.Logging.Format)
	assert.Equal(t, "build", cfg.Build.Directory)
	assert.Equal(t, "resourcelist.yaml", cfg.Project.File)
	assert.Equal(t, 4, cfg.Generation.Workers)
	assert.False(t, cfg.Generation.DryRun)
	assert.True(t, cfg.State.Enabled)
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	assert.True(t, strings.HasSuffix(dir, ".resourcelist"))
	assert.Equal(t, filepath.Join(dir, "config.yaml"), ConfigFilePath())
}

func TestEnsureConfigDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	require.NoError(t, EnsureConfigDir())

	info, err := os.Stat(ConfigDir())
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

// TestLoad_LoadWithMissingConfig tests loading with no config file
func TestLoad_LoadWithMissingConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, v, err := LoadWithViper()
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, Default(), cfg)
}

// TestLoad_WithInvalidConfigFile tests loading with invalid config file
func TestLoad_WithInvalidConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.yaml"), []byte("invalid: yaml: content: ["), 0644))
	t.Setenv("HOME", t.TempDir())
	t.Chdir(tmpDir)

	cfg, _, err := LoadWithViper()
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

// TestLoad_WithValidConfigFile tests loading with valid config file
func TestLoad_WithValidConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	configContent := `
build:
  directory: "out"
generation:
  workers: 8
  dry_run: true
state:
  enabled: false
logging:
  level: "debug"
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.yaml"), []byte(configContent), 0644))
	t.Setenv("HOME", t.TempDir())
	t.Chdir(tmpDir)

	cfg, _, err := LoadWithViper()
	require.NoError(t, err)

	assert.Equal(t, "out", cfg.Build.Directory)
	assert.Equal(t, 8, cfg.Generation.Workers)
	assert.True(t, cfg.Generation.DryRun)
	assert.False(t, cfg.State.Enabled)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, DefaultProjectFile, cfg.Project.File)
}

func TestLoad_ExplicitConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("project:\n  file: lists.json\n"), 0644))

	cfg, err := load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, "lists.json", cfg.Project.File)
}

func TestLoad_ExplicitConfigFileMissing(t *testing.T) {
	cfg, err := load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

// TestLoadWithEnvironmentVariable tests loading with environment variables
func TestLoadWithEnvironmentVariable(t *testing.T) {
	t.Setenv("RESOURCELIST_BUILD_DIRECTORY", "env-build")
	t.Setenv("RESOURCELIST_GENERATION_WORKERS", "2")
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "env-build", cfg.Build.Directory)
	assert.Equal(t, 2, cfg.Generation.Workers)
}

func TestLoadWithEnvironmentVariable_InvalidClamped(t *testing.T) {
	t.Setenv("RESOURCELIST_GENERATION_WORKERS", "-3")
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, _, err := LoadWithViper()
	require.NoError(t, err)
	assert.Equal(t, DefaultWorkers, cfg.Generation.Workers)
}

// TestConstants tests constant values
func TestConstants(t *testing.T) {
	assert.Greater(t, DefaultWorkers, 0)
	assert.GreaterOrEqual(t, MaxWorkers, DefaultWorkers)
	assert.Equal(t, "RESOURCELIST", EnvPrefix)
}
