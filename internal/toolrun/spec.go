package toolrun

import "time"

// Stream selects which output stream of the tool carries its findings.
type Stream string

const (
	// StreamStdout reads findings from standard output.
	StreamStdout Stream = "stdout"
	// StreamStderr reads findings from standard error.
	StreamStderr Stream = "stderr"
)

// Parser names for built-in structured formats. User-defined tools use
// ParserPattern with a named-group regex.
const (
	// ParserPattern matches one finding per line against Pattern.
	ParserPattern = "pattern"
	// ParserRuff parses ruff's JSON issue array.
	ParserRuff = "ruff"
	// ParserBandit parses bandit's JSON report object.
	ParserBandit = "bandit"
	// ParserESLint parses eslint's per-file JSON array.
	ParserESLint = "eslint"
	// ParserGolangciLint parses golangci-lint's JSON report object.
	ParserGolangciLint = "golangci-lint"
	// ParserCargo parses cargo's record-per-line compiler-message stream.
	ParserCargo = "cargo"
	// ParserMetricsJSON parses a JSON object into an opaque metrics blob.
	ParserMetricsJSON = "metrics-json"
)

// PathPlaceholder is substituted with the analyzed path in Args.
const PathPlaceholder = "{path}"

// ToolSpec declares how to invoke one external analysis tool and how to read
// its output. Everything an adapter needs is configuration data.
type ToolSpec struct {
	// Name is the tool name recorded as each diagnostic's source.
	Name string `json:"name" yaml:"name"`
	// Binary is the executable looked up in PATH.
	Binary string `json:"binary" yaml:"binary"`
	// Args is the command line; {path} is replaced with the target path.
	Args []string `json:"args" yaml:"args"`
	// RunInDir runs the tool with its working directory set to the target
	// (or the target's directory for single files) instead of passing the
	// path as an argument. Used by project-oriented tools like tsc.
	RunInDir bool `json:"run_in_dir,omitempty" yaml:"run_in_dir,omitempty"`
	// Stream selects stdout or stderr; defaults to stdout.
	Stream Stream `json:"stream,omitempty" yaml:"stream,omitempty"`
	// Parser selects the output format handler.
	Parser string `json:"parser" yaml:"parser"`
	// Pattern is the per-line regex for ParserPattern. Named groups: file,
	// line, col, sev, code, msg. file, line and msg are required.
	Pattern string `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	// SeverityTokens maps the sev capture to a severity name for
	// ParserPattern, e.g. {"error": "error"}. Unlisted tokens fall back to
	// DefaultSeverity.
	SeverityTokens map[string]string `json:"severity_tokens,omitempty" yaml:"severity_tokens,omitempty"`
	// DefaultSeverity is the severity name used when sev is absent or
	// unmapped. Empty means "warning".
	DefaultSeverity string `json:"default_severity,omitempty" yaml:"default_severity,omitempty"`
	// CodePrefix is prepended to the code capture, e.g. "TS".
	CodePrefix string `json:"code_prefix,omitempty" yaml:"code_prefix,omitempty"`
	// TimeoutSeconds bounds the child process. Zero means DefaultTimeout.
	TimeoutSeconds int `json:"timeout_seconds,omitempty" yaml:"timeout_seconds,omitempty"`
	// MetricsOnly marks a tool whose output feeds the result's opaque
	// metrics blob instead of the diagnostic list.
	MetricsOnly bool `json:"metrics_only,omitempty" yaml:"metrics_only,omitempty"`
}

// DefaultTimeout bounds tools that do not declare their own.
const DefaultTimeout = 30 * time.Second

// Timeout returns the effective per-tool timeout.
func (s ToolSpec) Timeout() time.Duration {
	if s.TimeoutSeconds > 0 {
		return time.Duration(s.TimeoutSeconds) * time.Second
	}
	return DefaultTimeout
}
