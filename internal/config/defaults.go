package config

import (
	"os"
	"path/filepath"

	"github.com/quantmind-br/resourcelist-go/internal/utils"
)

// Default values
const (
	// Build defaults
	DefaultBuildDir    = "build"
	DefaultProjectFile = "resourcelist.yaml"

	// Generation defaults
	DefaultWorkers = 4
	MaxWorkers     = 64
	DefaultDryRun  = false

	// State defaults
	DefaultStateEnabled = true

	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = utils.FormatPretty
)

// EnvPrefix prefixes every environment override (RESOURCELIST_BUILD_DIRECTORY, ...)
const EnvPrefix = "RESOURCELIST"

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".resourcelist"
	}
	return filepath.Join(home, ".resourcelist")
}

// ConfigFilePath returns the config file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Build: BuildConfig{
			Directory: DefaultBuildDir,
		},
		Project: ProjectConfig{
			File: DefaultProjectFile,
		},
		Generation: GenerationConfig{
			Workers: DefaultWorkers,
			DryRun:  DefaultDryRun,
		},
		State: StateConfig{
			Enabled: DefaultStateEnabled,
		},
	}
}
