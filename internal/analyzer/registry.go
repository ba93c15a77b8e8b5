// Package analyzer routes analysis requests to per-language tool pipelines
// and synthesizes their findings into a single result.
package analyzer

import (
	"omnilint/internal/lang"
	"omnilint/internal/toolrun"
)

// Entry is one language's analysis pipeline: an ordered list of tool specs
// plus an optional metrics-only tool.
type Entry struct {
	// Language is the name reported in results. Aliases share an entry, so
	// a javascript request reports "typescript", as the tooling does.
	Language lang.Language      `json:"language" yaml:"language"`
	Tools    []toolrun.ToolSpec `json:"tools" yaml:"tools"`
	Metrics  *toolrun.ToolSpec  `json:"metrics,omitempty" yaml:"metrics,omitempty"`
}

// Registry maps requested languages to pipeline entries.
type Registry struct {
	entries map[lang.Language]*Entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[lang.Language]*Entry)}
}

// Register binds a requested language to an entry. Aliases may point several
// requested languages at one entry.
func (r *Registry) Register(requested lang.Language, entry *Entry) {
	r.entries[requested] = entry
}

// Lookup returns the entry for a requested language.
func (r *Registry) Lookup(language lang.Language) (*Entry, bool) {
	entry, ok := r.entries[language]
	return entry, ok
}

// AddTool appends a tool spec to a language's pipeline, creating the entry if
// needed. This is how registry files extend the built-in tool set.
func (r *Registry) AddTool(language lang.Language, spec toolrun.ToolSpec) {
	entry, ok := r.entries[language]
	if !ok {
		entry = &Entry{Language: language}
		r.entries[language] = entry
	}
	entry.Tools = append(entry.Tools, spec)
}

// AllTools returns every registered tool spec, metrics tools included.
// Entries shared between aliases are reported once.
func (r *Registry) AllTools() []toolrun.ToolSpec {
	seen := make(map[*Entry]struct{}, len(r.entries))
	var specs []toolrun.ToolSpec
	for _, entry := range r.entries {
		if _, dup := seen[entry]; dup {
			continue
		}
		seen[entry] = struct{}{}
		specs = append(specs, entry.Tools...)
		if entry.Metrics != nil {
			specs = append(specs, *entry.Metrics)
		}
	}
	return specs
}

// DefaultRegistry returns the built-in tool registry. Command lines, output
// formats, severity policies, and timeouts are all data; the adapter code is
// shared by every entry.
func DefaultRegistry() *Registry {
	registry := NewRegistry()

	python := &Entry{
		Language: "python",
		Tools: []toolrun.ToolSpec{
			{
				Name:           "ruff",
				Binary:         "ruff",
				Args:           []string{"check", toolrun.PathPlaceholder, "--output-format=json"},
				Parser:         toolrun.ParserRuff,
				TimeoutSeconds: 30,
			},
			{
				Name:            "mypy",
				Binary:          "mypy",
				Args:            []string{toolrun.PathPlaceholder, "--show-column-numbers", "--no-error-summary"},
				Parser:          toolrun.ParserPattern,
				Pattern:         `^(?P<file>.+?):(?P<line>\d+):(?P<col>\d+): (?P<sev>\w+): (?P<msg>.+)$`,
				SeverityTokens:  map[string]string{"error": "error"},
				DefaultSeverity: "warning",
				TimeoutSeconds:  30,
			},
			{
				Name:           "bandit",
				Binary:         "bandit",
				Args:           []string{"-r", toolrun.PathPlaceholder, "-f", "json"},
				Parser:         toolrun.ParserBandit,
				TimeoutSeconds: 30,
			},
		},
		Metrics: &toolrun.ToolSpec{
			Name:           "radon",
			Binary:         "radon",
			Args:           []string{"cc", toolrun.PathPlaceholder, "-j"},
			Parser:         toolrun.ParserMetricsJSON,
			TimeoutSeconds: 10,
			MetricsOnly:    true,
		},
	}
	registry.Register("python", python)

	typescript := &Entry{
		Language: "typescript",
		Tools: []toolrun.ToolSpec{
			{
				Name:            "typescript",
				Binary:          "tsc",
				Args:            []string{"--noEmit", "--pretty", "false"},
				RunInDir:        true,
				Parser:          toolrun.ParserPattern,
				Pattern:         `^(?P<file>.+?)\((?P<line>\d+),(?P<col>\d+)\): (?P<sev>error|warning) TS(?P<code>\d+): (?P<msg>.+)$`,
				SeverityTokens:  map[string]string{"error": "error", "warning": "warning"},
				DefaultSeverity: "warning",
				CodePrefix:      "TS",
				TimeoutSeconds:  30,
			},
			{
				Name:           "eslint",
				Binary:         "eslint",
				Args:           []string{toolrun.PathPlaceholder, "--format=json"},
				Parser:         toolrun.ParserESLint,
				TimeoutSeconds: 30,
			},
		},
	}
	registry.Register("typescript", typescript)
	registry.Register("javascript", typescript)

	goEntry := &Entry{
		Language: "go",
		Tools: []toolrun.ToolSpec{
			{
				Name:            "go vet",
				Binary:          "go",
				Args:            []string{"vet", "./..."},
				RunInDir:        true,
				Stream:          toolrun.StreamStderr,
				Parser:          toolrun.ParserPattern,
				Pattern:         `^(?P<file>.+?):(?P<line>\d+):(?P<col>\d+): (?P<msg>.+)$`,
				DefaultSeverity: "error",
				TimeoutSeconds:  30,
			},
			{
				Name:           "golangci-lint",
				Binary:         "golangci-lint",
				Args:           []string{"run", "--out-format=json"},
				RunInDir:       true,
				Parser:         toolrun.ParserGolangciLint,
				TimeoutSeconds: 60,
			},
		},
	}
	registry.Register("go", goEntry)

	rust := &Entry{
		Language: "rust",
		Tools: []toolrun.ToolSpec{
			{
				Name:           "rustc",
				Binary:         "cargo",
				Args:           []string{"check", "--message-format=json"},
				RunInDir:       true,
				Parser:         toolrun.ParserCargo,
				TimeoutSeconds: 60,
			},
		},
	}
	registry.Register("rust", rust)

	return registry
}
