// Package config provides configuration file and environment variable support
// for skillinit.
//
// Configuration priority (highest to lowest):
//  1. Command-line flags
//  2. Environment variables
//  3. Config file (~/.skillinit/config.toml)
//  4. Built-in defaults
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the skillinit configuration.
type Config struct {
	// DefaultPath is the destination directory used when --path is not
	// specified. Empty means --path is required.
	DefaultPath string `toml:"default_path"`

	// NoColor disables colored output.
	// Default: false
	NoColor bool `toml:"no_color"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skillinit", "config.toml")
}

// Load loads configuration from the config file and environment variables.
// Environment variables take precedence over file settings.
// Returns default config if the config file doesn't exist.
func Load() (*Config, error) {
	return LoadFromPath(DefaultConfigPath())
}

// LoadFromPath loads configuration from a specific file path.
// Environment variables take precedence over file settings.
// Returns default config if the config file doesn't exist.
func LoadFromPath(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	// Try to load from config file
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			if _, err := toml.DecodeFile(configPath, cfg); err != nil {
				return nil, err
			}
		}
		// If file doesn't exist, just continue with defaults
	}

	// Apply environment variable overrides
	cfg.applyEnv()

	return cfg, nil
}

// applyEnv applies environment variable overrides to the config.
func (c *Config) applyEnv() {
	if path := os.Getenv("SKILLINIT_PATH"); path != "" {
		c.DefaultPath = path
	}

	// SKILLINIT_NO_COLOR - any value means true
	if _, ok := os.LookupEnv("SKILLINIT_NO_COLOR"); ok {
		c.NoColor = true
	}
}
