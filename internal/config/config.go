// Package config provides configuration management for termlog using Viper.
package config

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/thoreinstein/termlog/internal/paths"
	"github.com/thoreinstein/termlog/pkg/logging"
)

// EnvPrefix is prepended to configuration keys to form environment
// variable names, e.g. TERMLOG_VERBOSITY.
const EnvPrefix = "TERMLOG"

// Configuration keys.
const (
	KeyVersion   = "version"
	KeyVerbosity = "verbosity"
	KeyColor     = "color"
)

// Config represents the top-level configuration structure.
type Config struct {
	Version   int    `mapstructure:"version" yaml:"version" toml:"version"`
	Verbosity string `mapstructure:"verbosity" yaml:"verbosity" toml:"verbosity"`
	Color     string `mapstructure:"color" yaml:"color" toml:"color"`
}

// Keys returns the configuration keys in display order.
func Keys() []string {
	return []string{KeyVersion, KeyVerbosity, KeyColor}
}

// Default returns the configuration used when no file or environment
// overrides exist.
func Default() *Config {
	return &Config{
		Version:   1,
		Verbosity: logging.DefaultLevel.String(),
		Color:     string(logging.ColorAuto),
	}
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	// No config type: the extension decides, so config.yaml and
	// config.toml are both found.
	viper.SetConfigName("config")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigDir())

	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	def := Default()
	viper.SetDefault(KeyVersion, def.Version)
	viper.SetDefault(KeyVerbosity, def.Verbosity)
	viper.SetDefault(KeyColor, def.Color)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found (when path is empty).
// The result is validated; all problems are reported together, each
// matching ErrInvalidConfig.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Only an error when the caller asked for a specific file
			if path != "" {
				return nil, errors.Wrapf(err, "config file not found at %s", path)
			}
		} else {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	cfg, err := Current()
	if err != nil {
		return nil, err
	}

	if errs := Validate(cfg); len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return cfg, nil
}

// Current decodes the values Viper holds right now, without touching disk.
func Current() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}
	return &cfg, nil
}

// ResolveVerbosity resolves the configured verbosity token.
func (c *Config) ResolveVerbosity() (logging.Verbosity, error) {
	return logging.Resolve(c.Verbosity)
}

// ColorMode parses the configured color mode.
func (c *Config) ColorMode() (logging.ColorMode, error) {
	return logging.ParseColorMode(c.Color)
}

// Map returns the configuration as a key/value map for display and
// persistence.
func (c *Config) Map() map[string]any {
	return map[string]any{
		KeyVersion:   c.Version,
		KeyVerbosity: c.Verbosity,
		KeyColor:     c.Color,
	}
}
