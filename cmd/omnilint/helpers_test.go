package main

import (
	"testing"

	"omnilint/internal/config"
	"omnilint/internal/logging"
)

func TestLoggerConfigUsesConfigSection(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Logging.Format = "json"
	cfg.Logging.Level = "debug"

	got := loggerConfig("human", cfg)
	if got.Format != logging.JSONFormat {
		t.Errorf("format = %v, want json from config", got.Format)
	}
	if got.Level != logging.DebugLevel {
		t.Errorf("level = %v, want debug from config", got.Level)
	}
}

func TestLoggerConfigDefaults(t *testing.T) {
	got := loggerConfig("human", config.DefaultConfig())
	if got.Format != logging.HumanFormat {
		t.Errorf("format = %v, want human", got.Format)
	}
	if got.Level != logging.InfoLevel {
		t.Errorf("level = %v, want info", got.Level)
	}
}

func TestLoggerConfigJSONOutputForcesJSONLogs(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Logging.Format = "human"
	cfg.Logging.Level = "warn"

	got := loggerConfig("json", cfg)
	if got.Format != logging.JSONFormat {
		t.Errorf("format = %v, want json when --format json is set", got.Format)
	}
	if got.Level != logging.WarnLevel {
		t.Errorf("level = %v, want warn from config", got.Level)
	}
}
