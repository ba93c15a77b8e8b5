package main

import (
	"encoding/json"
	"fmt"
	"os"

	"omnilint/internal/analyzer"
	"omnilint/internal/config"
	"omnilint/internal/logging"
	"omnilint/internal/toolrun"
)

// loggerConfig merges the config's logging section with the --format flag.
// Requesting json output forces json logs so stderr stays machine-parsable
// too; otherwise format and level come from the config.
func loggerConfig(format string, cfg *config.Config) logging.Config {
	logFormat := logging.HumanFormat
	if cfg.Logging.Format == string(logging.JSONFormat) {
		logFormat = logging.JSONFormat
	}
	if format == "json" {
		logFormat = logging.JSONFormat
	}
	return logging.Config{
		Format: logFormat,
		Level:  logging.ParseLevel(cfg.Logging.Level),
	}
}

// newLogger creates the CLI logger. Logs go to stderr so command output on
// stdout stays machine-parsable.
func newLogger(format string, cfg *config.Config) *logging.Logger {
	return logging.NewLogger(loggerConfig(format, cfg))
}

// mustGetRoot returns the working directory or exits on error.
func mustGetRoot() string {
	root, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return root
}

// mustLoadConfig loads configuration, falling back to defaults on error.
// Runs before the logger exists, so the warning goes straight to stderr.
func mustLoadConfig(root string) *config.Config {
	cfg, err := config.Load(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config, using defaults: %v\n", err)
		return config.DefaultConfig()
	}
	return cfg
}

// buildEngine creates an analysis engine from the built-in registry plus any
// user registry file named by the configuration.
func buildEngine(cfg *config.Config, logger *logging.Logger) (*analyzer.Engine, error) {
	registry := analyzer.DefaultRegistry()
	if cfg.ToolsFile != "" {
		if err := analyzer.LoadRegistryFile(cfg.ToolsFile, registry); err != nil {
			return nil, fmt.Errorf("failed to load tool registry %s: %w", cfg.ToolsFile, err)
		}
	}
	return analyzer.NewEngine(registry, toolrun.NewRealRunner(), logger, cfg.Engine.Parallel), nil
}

// mustBuildEngine creates the engine or exits on error.
func mustBuildEngine(cfg *config.Config, logger *logging.Logger) *analyzer.Engine {
	engine, err := buildEngine(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return engine
}

// printJSON writes a value as indented JSON to stdout.
func printJSON(value interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}
