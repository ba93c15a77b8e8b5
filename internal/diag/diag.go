// Package diag defines the normalized diagnostic model shared by every
// analysis tool adapter, plus the summary and filtering stages that turn a
// flat diagnostic list into a reportable result.
package diag

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Severity ranks diagnostics from least to most important.
type Severity int

const (
	// SeverityHint is a stylistic nudge.
	SeverityHint Severity = 0
	// SeverityInfo is informational.
	SeverityInfo Severity = 1
	// SeverityWarning is a problem worth fixing.
	SeverityWarning Severity = 2
	// SeverityError is a defect.
	SeverityError Severity = 3
)

// Severities lists all severities in ascending order.
var Severities = []Severity{SeverityHint, SeverityInfo, SeverityWarning, SeverityError}

// String returns the wire name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityHint:
		return "hint"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the severity as its wire name.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a severity from its wire name.
func (s *Severity) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, ok := ParseSeverity(name)
	if !ok {
		return fmt.Errorf("unknown severity %q", name)
	}
	*s = parsed
	return nil
}

// ParseSeverity converts a wire name to a Severity.
func ParseSeverity(name string) (Severity, bool) {
	switch strings.ToLower(name) {
	case "hint":
		return SeverityHint, true
	case "info":
		return SeverityInfo, true
	case "warning", "warn":
		return SeverityWarning, true
	case "error":
		return SeverityError, true
	default:
		return SeverityWarning, false
	}
}

// Location identifies where a diagnostic was reported. Line and column
// conventions are whatever the producing tool uses; some tools count columns
// from zero, some from one. The engine does not renormalize them.
type Location struct {
	File      string `json:"file"`
	Line      int    `json:"line"`
	Column    int    `json:"column"`
	EndLine   int    `json:"end_line,omitempty"`
	EndColumn int    `json:"end_column,omitempty"`
}

// String renders the location as file:line:col.
func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// Diagnostic is one normalized finding. Adapters construct diagnostics and
// never mutate them afterwards.
type Diagnostic struct {
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
	Location Location `json:"location"`
	// Code is the tool's rule identifier, e.g. "E501" or "TS2322".
	Code string `json:"code,omitempty"`
	// Source names the tool that produced the finding, e.g. "eslint".
	Source string `json:"source,omitempty"`
	// Suggestion holds a fix description when the tool offers one.
	Suggestion string     `json:"suggestion,omitempty"`
	Related    []Location `json:"related,omitempty"`
}
