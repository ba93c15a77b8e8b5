package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Version != CurrentVersion {
		t.Errorf("Version = %d, want %d", cfg.Version, CurrentVersion)
	}
	if cfg.Engine.MinSeverity != "warning" {
		t.Errorf("MinSeverity = %q, want warning", cfg.Engine.MinSeverity)
	}
	if cfg.Engine.MaxResults != 50 {
		t.Errorf("MaxResults = %d, want 50", cfg.Engine.MaxResults)
	}
	if cfg.Engine.Parallel {
		t.Error("Parallel should default to false")
	}
	if cfg.History.Enabled {
		t.Error("History should default to disabled")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	root := t.TempDir()

	cfg := DefaultConfig()
	cfg.Engine.Parallel = true
	cfg.Engine.MaxResults = 100
	cfg.History.Enabled = true
	cfg.ToolsFile = "custom-tools.yaml"
	if err := cfg.Save(root); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(root)
	if err != nil {
		t.Fatal(err)
	}
	if !loaded.Engine.Parallel {
		t.Error("Parallel was not persisted")
	}
	if loaded.Engine.MaxResults != 100 {
		t.Errorf("MaxResults = %d, want 100", loaded.Engine.MaxResults)
	}
	if !loaded.History.Enabled {
		t.Error("History.Enabled was not persisted")
	}
	if loaded.ToolsFile != "custom-tools.yaml" {
		t.Errorf("ToolsFile = %q", loaded.ToolsFile)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, ".omnilint")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	content := `{"engine": {"parallel": true}}`
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(root)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Engine.Parallel {
		t.Error("Parallel was not read from file")
	}
	if cfg.Engine.MaxResults != 50 {
		t.Errorf("MaxResults = %d, want default 50", cfg.Engine.MaxResults)
	}
	if cfg.Engine.MinSeverity != "warning" {
		t.Errorf("MinSeverity = %q, want default warning", cfg.Engine.MinSeverity)
	}
}

func TestHistoryPath(t *testing.T) {
	root := t.TempDir()

	cfg := DefaultConfig()
	want := filepath.Join(root, ".omnilint", "history.db")
	if got := cfg.HistoryPath(root); got != want {
		t.Errorf("HistoryPath = %q, want %q", got, want)
	}

	cfg.History.Path = "/tmp/custom.db"
	if got := cfg.HistoryPath(root); got != "/tmp/custom.db" {
		t.Errorf("HistoryPath = %q, want /tmp/custom.db", got)
	}
}
