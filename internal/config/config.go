// Package config holds the planner configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all planner configuration.
type Config struct {
	// DataFile is the course file offered as the default when loading.
	DataFile string `yaml:"data_file"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`

	// UI settings for the interactive shell
	UI UIConfig `yaml:"ui"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
}

// UIConfig configures the interactive shell.
type UIConfig struct {
	DarkMode bool `yaml:"dark_mode"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		DataFile: "courses.csv",
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		UI: UIConfig{
			DarkMode: false,
		},
	}
}

// Load loads configuration from a YAML file. A missing file is not an
// error; defaults are returned instead.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if path := os.Getenv("PLANNER_DATA_FILE"); path != "" {
		c.DataFile = path
	}
	if level := os.Getenv("PLANNER_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if os.Getenv("PLANNER_DARK_MODE") == "1" {
		c.UI.DarkMode = true
	}
}
