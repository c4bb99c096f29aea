// Package config provides configuration management.
package config

import (
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"

	"unitcalc/internal/errors"
	"unitcalc/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `env:"UNITCALC_CONFIG_VERSION" env-default:"1.0" yaml:"version"`

	// Data contains bundle storage settings
	Data DataConfig `yaml:"data"`

	// Builder contains conversion-graph builder settings
	Builder BuilderConfig `yaml:"builder"`

	// Output contains output settings
	Output OutputConfig `yaml:"output"`

	// Logging contains logging configuration
	Logging logging.Config `yaml:"logging"`
}

// DataConfig contains bundle storage settings
type DataConfig struct {
	// Directory is where built catalog bundles are stored
	Directory string `env:"UNITCALC_DATA_DIR" yaml:"directory"`
}

// BuilderConfig contains builder-related settings.
// Factor precision is fixed at compile time (determinism.FactorScale),
// not configurable.
type BuilderConfig struct {
	// Workers is the worker count for the per-type closure (0 = NumCPU)
	Workers int `env:"UNITCALC_WORKERS" env-default:"0" yaml:"workers"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default report format (table, json, yaml)
	DefaultFormat string `env:"UNITCALC_OUTPUT_FORMAT" env-default:"table" yaml:"default_format"`
}

// Default returns a default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Version: "1.0",
		Data: DataConfig{
			Directory: filepath.Join(homeDir, ".unitcalc", "bundles"),
		},
		Builder: BuilderConfig{
			Workers: 0,
		},
		Output: OutputConfig{
			DefaultFormat: "table",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a YAML file with environment overrides.
// A missing file falls back to defaults (still honoring the environment).
func Load(path string) (*Config, error) {
	config := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, errors.Config("could not read environment", err)
		}
		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, errors.Config("could not read config file", err)
	}

	return config, nil
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
