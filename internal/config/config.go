package config

import "github.com/quantmind-br/resourcelist-go/internal/utils"

// Config represents the tool configuration
type Config struct {
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging"`
	Build      BuildConfig      `mapstructure:"build" yaml:"build"`
	Project    ProjectConfig    `mapstructure:"project" yaml:"project"`
	Generation GenerationConfig `mapstructure:"generation" yaml:"generation"`
	State      StateConfig      `mapstructure:"state" yaml:"state"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// BuildConfig contains build directory settings
type BuildConfig struct {
	// Directory is relative to the project directory unless absolute
	Directory string `mapstructure:"directory" yaml:"directory"`
}

// ProjectConfig locates the project file
type ProjectConfig struct {
	File string `mapstructure:"file" yaml:"file"`
}

// GenerationConfig contains generation settings
type GenerationConfig struct {
	Workers int  `mapstructure:"workers" yaml:"workers"`
	DryRun  bool `mapstructure:"dry_run" yaml:"dry_run"`
}

// StateConfig controls the generation state file
type StateConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
}

// Validate validates the configuration, replacing invalid values with defaults
func (c *Config) Validate() error {
	if c.Generation.Workers < 1 {
		c.Generation.Workers = DefaultWorkers
	}
	if c.Generation.Workers > MaxWorkers {
		c.Generation.Workers = MaxWorkers
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		c.Logging.Level = DefaultLogLevel
	}
	switch c.Logging.Format {
	case utils.FormatPretty, utils.FormatJSON:
	default:
		c.Logging.Format = DefaultLogFormat
	}
	if c.Build.Directory == "" {
		c.Build.Directory = DefaultBuildDir
	}
	if c.Project.File == "" {
		c.Project.File = DefaultProjectFile
	}
	return nil
}
