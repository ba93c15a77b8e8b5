// Package config loads omnilint configuration from .omnilint/config.json.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the complete omnilint configuration.
type Config struct {
	Version int `json:"version" mapstructure:"version"`

	Engine  EngineConfig  `json:"engine" mapstructure:"engine"`
	History HistoryConfig `json:"history" mapstructure:"history"`
	Logging LoggingConfig `json:"logging" mapstructure:"logging"`

	// ToolsFile points to an optional YAML registry file whose entries
	// extend the built-in tool registry.
	ToolsFile string `json:"toolsFile,omitempty" mapstructure:"toolsFile"`
}

// EngineConfig contains analysis engine settings.
type EngineConfig struct {
	// Parallel runs sibling tools of one pipeline concurrently.
	Parallel bool `json:"parallel" mapstructure:"parallel"`
	// MinSeverity is the default reporting threshold for error lists.
	MinSeverity string `json:"minSeverity" mapstructure:"minSeverity"`
	// MaxResults is the default truncation limit for error lists.
	MaxResults int `json:"maxResults" mapstructure:"maxResults"`
}

// HistoryConfig contains run archive settings.
type HistoryConfig struct {
	Enabled bool `json:"enabled" mapstructure:"enabled"`
	// Path is the SQLite database location; empty means
	// .omnilint/history.db under the working directory.
	Path string `json:"path,omitempty" mapstructure:"path"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Format string `json:"format" mapstructure:"format"`
	Level  string `json:"level" mapstructure:"level"`
}

// CurrentVersion is the supported config schema version.
const CurrentVersion = 1

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentVersion,
		Engine: EngineConfig{
			Parallel:    false,
			MinSeverity: "warning",
			MaxResults:  50,
		},
		History: HistoryConfig{
			Enabled: false,
		},
		Logging: LoggingConfig{
			Format: "human",
			Level:  "info",
		},
	}
}

// Load reads configuration from <root>/.omnilint/config.json. A missing file
// yields the defaults.
func Load(root string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("version", defaults.Version)
	v.SetDefault("engine.parallel", defaults.Engine.Parallel)
	v.SetDefault("engine.minSeverity", defaults.Engine.MinSeverity)
	v.SetDefault("engine.maxResults", defaults.Engine.MaxResults)
	v.SetDefault("history.enabled", defaults.History.Enabled)
	v.SetDefault("logging.format", defaults.Logging.Format)
	v.SetDefault("logging.level", defaults.Logging.Level)

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(root, ".omnilint"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return defaults, nil
		}
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the configuration to <root>/.omnilint/config.json.
func (c *Config) Save(root string) error {
	dir := filepath.Join(root, ".omnilint")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "config.json"), data, 0o644)
}

// HistoryPath resolves the run archive location relative to root.
func (c *Config) HistoryPath(root string) string {
	if c.History.Path != "" {
		return c.History.Path
	}
	return filepath.Join(root, ".omnilint", "history.db")
}
