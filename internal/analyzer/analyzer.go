package analyzer

import (
	"context"
	"os"

	"golang.org/x/sync/errgroup"

	"omnilint/internal/diag"
	"omnilint/internal/lang"
	"omnilint/internal/logging"
	"omnilint/internal/toolrun"
)

// Engine resolves a request's language and runs that language's pipeline.
// Engines hold no per-request state; concurrent Analyze calls are safe.
type Engine struct {
	registry *Registry
	runner   toolrun.ExecRunner
	logger   *logging.Logger
	parallel bool
}

// NewEngine creates an engine. When parallel is set, sibling tools of one
// pipeline run concurrently, each still bounded by its own timeout.
func NewEngine(registry *Registry, runner toolrun.ExecRunner, logger *logging.Logger, parallel bool) *Engine {
	return &Engine{
		registry: registry,
		runner:   runner,
		logger:   logger,
		parallel: parallel,
	}
}

// Registry returns the engine's tool registry.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Runner returns the engine's exec runner.
func (e *Engine) Runner() toolrun.ExecRunner {
	return e.runner
}

// Analyze resolves path to a language (unless hint is given) and runs the
// matching pipeline. An unresolvable or unregistered language yields a
// zeroed result, never an error: the caller always gets a well-formed Result.
func (e *Engine) Analyze(ctx context.Context, path string, hint lang.Language) diag.Result {
	language := hint
	if language == "" {
		language = e.detect(path)
	}
	if language == "" {
		e.logger.Debug("no language resolved", map[string]interface{}{"path": path})
		return diag.EmptyResult(lang.Unknown.String())
	}

	entry, ok := e.registry.Lookup(language)
	if !ok {
		e.logger.Debug("no analyzer registered", map[string]interface{}{"language": language.String()})
		return diag.EmptyResult(language.String())
	}

	e.logger.Debug("analyzing", map[string]interface{}{
		"path":     path,
		"language": entry.Language.String(),
		"tools":    len(entry.Tools),
	})
	return e.run(ctx, entry, path)
}

func (e *Engine) detect(path string) lang.Language {
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		if language, ok := lang.DetectFileLanguage(path); ok {
			return language
		}
		return ""
	}
	counts := lang.DetectDirectoryLanguages(path)
	if language, ok := lang.PrimaryLanguage(counts); ok {
		return language
	}
	return ""
}

// run invokes the entry's tools in registry order, concatenates their
// diagnostics without re-sorting, attaches metrics, and synthesizes the
// result. Tool failures only ever shrink the diagnostic list.
func (e *Engine) run(ctx context.Context, entry *Entry, path string) diag.Result {
	perTool := make([][]diag.Diagnostic, len(entry.Tools))
	statuses := make([]diag.ToolStatus, len(entry.Tools))

	invoke := func(i int) {
		adapter := toolrun.NewAdapter(entry.Tools[i], e.runner)
		perTool[i], statuses[i] = adapter.Invoke(ctx, path)
	}

	if e.parallel {
		var group errgroup.Group
		for i := range entry.Tools {
			i := i
			group.Go(func() error {
				invoke(i)
				return nil
			})
		}
		_ = group.Wait()
	} else {
		for i := range entry.Tools {
			invoke(i)
		}
	}

	var diagnostics []diag.Diagnostic
	for _, found := range perTool {
		diagnostics = append(diagnostics, found...)
	}

	var metrics diag.Metrics
	if entry.Metrics != nil {
		adapter := toolrun.NewAdapter(*entry.Metrics, e.runner)
		collected, status := adapter.CollectMetrics(ctx, path)
		metrics = collected
		statuses = append(statuses, status)
	}

	return diag.Synthesize(entry.Language.String(), diagnostics, metrics, statuses)
}
