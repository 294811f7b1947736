// Package config loads blueprint CLI configuration from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// HistoryConfig configures the derivation history store.
type HistoryConfig struct {
	// Enabled records derivations in the history database after each solve
	Enabled bool `yaml:"enabled"`

	// DBPath is the path to the history database
	DBPath string `yaml:"db_path"`
}

// Config represents blueprint configuration options.
type Config struct {
	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// CatalogPath points at a YAML file overriding the built-in rule set
	// and block catalog (empty = built-in defaults)
	CatalogPath string `yaml:"catalog_path"`

	// History contains history store configuration
	History HistoryConfig `yaml:"history"`
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:    "info",
		CatalogPath: "",
		History: HistoryConfig{
			Enabled: true,
			DBPath:  ".blueprint/history.db",
		},
	}
}

// LoadConfig loads configuration from the specified file path.
// If the file doesn't exist, returns default configuration without error.
// If the file exists but is malformed, returns an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Temporary struct so an absent history.enabled keeps the default
	// instead of reading as false.
	type yamlHistory struct {
		Enabled *bool  `yaml:"enabled"`
		DBPath  string `yaml:"db_path"`
	}
	type yamlConfig struct {
		LogLevel    string      `yaml:"log_level"`
		CatalogPath string      `yaml:"catalog_path"`
		History     yamlHistory `yaml:"history"`
	}

	var fileCfg yamlConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Merge non-zero values from the file over the defaults.
	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}
	if fileCfg.CatalogPath != "" {
		cfg.CatalogPath = fileCfg.CatalogPath
	}
	if fileCfg.History.DBPath != "" {
		cfg.History.DBPath = fileCfg.History.DBPath
	}
	if fileCfg.History.Enabled != nil {
		cfg.History.Enabled = *fileCfg.History.Enabled
	}

	return cfg, nil
}
