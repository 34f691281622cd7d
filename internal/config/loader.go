package config

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Load loads configuration from file, environment, and defaults.
// Uses the global viper instance to access CLI flag bindings.
func Load() (*Config, error) {
	return load(viper.GetViper(), "")
}

// LoadFile is Load with an explicit config file instead of the search paths
func LoadFile(path string) (*Config, error) {
	return load(viper.GetViper(), path)
}

// LoadWithViper loads configuration into a fresh viper instance and returns it.
// This is useful for merging CLI flags later.
func LoadWithViper() (*Config, *viper.Viper, error) {
	v := viper.New()
	cfg, err := load(v, "")
	if err != nil {
		return nil, nil, err
	}
	return cfg, v, nil
}

func load(v *viper.Viper, configFile string) (*Config, error) {
	// Set defaults
	setDefaults(v)

	// Config file settings
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(ConfigDir())
		v.AddConfigPath(".")
	}

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, err
		}
	}

	// Environment variables (RESOURCELIST_*)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unmarshal config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Validate and apply defaults for invalid values
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults sets default values in viper
func setDefaults(v *viper.Viper) {
	// Logging defaults
	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)

	// Build defaults
	v.SetDefault("build.directory", DefaultBuildDir)
	v.SetDefault("project.file", DefaultProjectFile)

	// Generation defaults
	v.SetDefault("generation.workers", DefaultWorkers)
	v.SetDefault("generation.dry_run", DefaultDryRun)

	// State defaults
	v.SetDefault("state.enabled", DefaultStateEnabled)
}

// EnsureConfigDir creates the config directory if it doesn't exist
func EnsureConfigDir() error {
	dir := ConfigDir()
	return os.MkdirAll(dir, 0755)
}
