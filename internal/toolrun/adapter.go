package toolrun

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"omnilint/internal/diag"
)

// Adapter binds one ToolSpec to an ExecRunner. Invoke never fails: a missing
// binary, a timeout, or unparsable output all collapse to zero diagnostics,
// with the distinction recorded in the returned ToolStatus. Partial tool
// availability is the normal operating condition.
type Adapter struct {
	spec   ToolSpec
	runner ExecRunner
}

// NewAdapter creates an adapter for the given tool spec.
func NewAdapter(spec ToolSpec, runner ExecRunner) *Adapter {
	return &Adapter{spec: spec, runner: runner}
}

// Spec returns the adapter's tool spec.
func (a *Adapter) Spec() ToolSpec {
	return a.spec
}

// Invoke runs the tool against path and returns its normalized findings.
func (a *Adapter) Invoke(ctx context.Context, path string) ([]diag.Diagnostic, diag.ToolStatus) {
	output, status, ok := a.run(ctx, path)
	if !ok {
		return nil, status
	}

	diagnostics, err := parseOutput(a.spec, output)
	if err != nil {
		status.State = diag.StateParseFailed
		return nil, status
	}
	status.State = diag.StateRan
	return diagnostics, status
}

// CollectMetrics runs a metrics-only tool and returns its opaque output.
// Failures of any kind yield empty metrics, never an error.
func (a *Adapter) CollectMetrics(ctx context.Context, path string) (diag.Metrics, diag.ToolStatus) {
	output, status, ok := a.run(ctx, path)
	if !ok {
		return nil, status
	}

	metrics, err := parseMetrics(output)
	if err != nil {
		status.State = diag.StateParseFailed
		return nil, status
	}
	status.State = diag.StateRan
	return metrics, status
}

// run's status return is named so the deferred duration stamp lands on the
// value the caller receives.
func (a *Adapter) run(ctx context.Context, path string) (output string, status diag.ToolStatus, ok bool) {
	status.Tool = a.spec.Name
	start := time.Now()
	defer func() {
		status.DurationMs = time.Since(start).Milliseconds()
	}()

	if _, err := a.runner.LookPath(a.spec.Binary); err != nil {
		status.State = diag.StateNotFound
		return "", status, false
	}

	args := make([]string, 0, len(a.spec.Args))
	for _, arg := range a.spec.Args {
		args = append(args, strings.ReplaceAll(arg, PathPlaceholder, path))
	}

	dir := ""
	if a.spec.RunInDir {
		dir = workDir(path)
	}

	runCtx, cancel := context.WithTimeout(ctx, a.spec.Timeout())
	defer cancel()

	stdout, stderr, _ := a.runner.Run(runCtx, dir, a.spec.Binary, args...)
	if runCtx.Err() == context.DeadlineExceeded {
		status.State = diag.StateTimedOut
		return "", status, false
	}

	// Nonzero exits are expected: linters exit 1 when they find issues.
	// Only the captured stream matters.
	output = stdout
	if a.spec.Stream == StreamStderr {
		output = stderr
	}
	return output, status, true
}

// workDir resolves the working directory for RunInDir tools: the path itself
// for directories, its parent for files.
func workDir(path string) string {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return path
	}
	return filepath.Dir(path)
}

// Availability reports whether a tool's binary is installed.
type Availability struct {
	Tool   string `json:"tool"`
	Binary string `json:"binary"`
	Found  bool   `json:"found"`
	Path   string `json:"path,omitempty"`
}

// CheckAvailability probes each spec's binary in PATH. Used by doctor-style
// reporting; analysis itself tolerates missing binaries without it.
func CheckAvailability(runner ExecRunner, specs []ToolSpec) []Availability {
	seen := make(map[string]struct{}, len(specs))
	report := make([]Availability, 0, len(specs))
	for _, spec := range specs {
		if _, dup := seen[spec.Name]; dup {
			continue
		}
		seen[spec.Name] = struct{}{}

		availability := Availability{Tool: spec.Name, Binary: spec.Binary}
		if path, err := runner.LookPath(spec.Binary); err == nil {
			availability.Found = true
			availability.Path = path
		}
		report = append(report, availability)
	}
	return report
}
