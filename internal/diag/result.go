package diag

// RunState describes how a tool adapter invocation ended. The engine still
// returns zero diagnostics for every non-ran state; statuses exist so callers
// can tell "clean" apart from "tooling was unavailable".
type RunState string

const (
	// StateRan means the tool executed and its output was parsed.
	StateRan RunState = "ran"
	// StateNotFound means the tool binary is not installed.
	StateNotFound RunState = "not-found"
	// StateTimedOut means the tool exceeded its per-tool timeout.
	StateTimedOut RunState = "timed-out"
	// StateParseFailed means the tool produced output the adapter could not parse.
	StateParseFailed RunState = "parse-failed"
)

// ToolStatus reports the outcome of one adapter invocation.
type ToolStatus struct {
	Tool       string   `json:"tool"`
	State      RunState `json:"state"`
	DurationMs int64    `json:"duration_ms,omitempty"`
}

// Metrics is an opaque per-tool blob. The engine never inspects it.
type Metrics map[string]interface{}

// Result is the complete output of one analysis request.
type Result struct {
	Language string `json:"language"`
	// FilesAnalyzed counts distinct files that have at least one diagnostic.
	// Files scanned without findings are not counted.
	FilesAnalyzed int          `json:"files_analyzed"`
	Diagnostics   []Diagnostic `json:"diagnostics"`
	Metrics       Metrics      `json:"metrics"`
	// Summary maps severity name to count. All four keys are always present.
	Summary map[string]int `json:"summary"`
	// ToolStatuses records per-adapter outcomes. Empty for unresolved
	// languages; diagnostics and summary are unaffected by its contents.
	ToolStatuses []ToolStatus `json:"tool_statuses,omitempty"`
}

// Synthesize builds a Result from a diagnostic list. The summary is tallied
// in a single pass and carries every severity key even when zero.
func Synthesize(language string, diagnostics []Diagnostic, metrics Metrics, statuses []ToolStatus) Result {
	summary := make(map[string]int, len(Severities))
	for _, s := range Severities {
		summary[s.String()] = 0
	}

	files := make(map[string]struct{})
	for _, d := range diagnostics {
		summary[d.Severity.String()]++
		files[d.Location.File] = struct{}{}
	}

	if diagnostics == nil {
		diagnostics = []Diagnostic{}
	}
	if metrics == nil {
		metrics = Metrics{}
	}

	return Result{
		Language:      language,
		FilesAnalyzed: len(files),
		Diagnostics:   diagnostics,
		Metrics:       metrics,
		Summary:       summary,
		ToolStatuses:  statuses,
	}
}

// EmptyResult returns a zeroed Result for the given language name. Used when
// no analyzer is registered; this is a successful outcome, not an error.
func EmptyResult(language string) Result {
	return Synthesize(language, nil, nil, nil)
}
