package analyzer

import (
	"os"
	"path/filepath"
	"testing"

	"omnilint/internal/toolrun"
)

func writeRegistryFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tools.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadRegistryFile(t *testing.T) {
	path := writeRegistryFile(t, `
tools:
  - language: python
    name: pylint
    binary: pylint
    args: ["--output-format=text", "{path}"]
    parser: pattern
    pattern: '^(?P<file>.+?):(?P<line>\d+):(?P<col>\d+): (?P<code>\S+): (?P<msg>.+)$'
    timeout_seconds: 45
  - language: ruby
    name: rubocop
    binary: rubocop
    args: ["--format", "json", "{path}"]
    parser: eslint
`)

	registry := DefaultRegistry()
	if err := LoadRegistryFile(path, registry); err != nil {
		t.Fatal(err)
	}

	python, ok := registry.Lookup("python")
	if !ok {
		t.Fatal("python entry missing")
	}
	last := python.Tools[len(python.Tools)-1]
	if last.Name != "pylint" {
		t.Errorf("appended tool = %q, want pylint", last.Name)
	}
	if last.TimeoutSeconds != 45 {
		t.Errorf("timeout = %d, want 45", last.TimeoutSeconds)
	}

	ruby, ok := registry.Lookup("ruby")
	if !ok {
		t.Fatal("ruby entry was not created")
	}
	if len(ruby.Tools) != 1 || ruby.Tools[0].Parser != toolrun.ParserESLint {
		t.Errorf("ruby tools = %+v", ruby.Tools)
	}
}

func TestLoadRegistryFileValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			"missing language",
			"tools:\n  - name: t\n    binary: t\n    parser: pattern\n    pattern: '(?P<file>.+)'\n",
		},
		{
			"missing binary",
			"tools:\n  - language: python\n    name: t\n    parser: pattern\n    pattern: '(?P<file>.+)'\n",
		},
		{
			"unknown parser",
			"tools:\n  - language: python\n    name: t\n    binary: t\n    parser: xml\n",
		},
		{
			"pattern parser without pattern",
			"tools:\n  - language: python\n    name: t\n    binary: t\n    parser: pattern\n",
		},
		{
			"not yaml",
			"{{{",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeRegistryFile(t, tt.content)
			if err := LoadRegistryFile(path, NewRegistry()); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadRegistryFileMissingFile(t *testing.T) {
	err := LoadRegistryFile(filepath.Join(t.TempDir(), "nope.yaml"), NewRegistry())
	if err == nil {
		t.Error("expected error for missing file")
	}
}
