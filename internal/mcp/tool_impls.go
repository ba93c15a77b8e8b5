package mcp

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"omnilint/internal/diag"
	"omnilint/internal/envelope"
	"omnilint/internal/errors"
	"omnilint/internal/lang"
	"omnilint/internal/toolrun"
)

// stringParam extracts an optional string parameter.
func stringParam(params map[string]interface{}, name string) string {
	if value, ok := params[name].(string); ok {
		return value
	}
	return ""
}

// requireStringParam extracts a required string parameter.
func requireStringParam(params map[string]interface{}, name string) (string, error) {
	value, ok := params[name].(string)
	if !ok || value == "" {
		return "", errors.NewInvalidParameterError(name, "required string")
	}
	return value, nil
}

// boolParam extracts a boolean parameter with a default.
func boolParam(params map[string]interface{}, name string, fallback bool) bool {
	if value, ok := params[name].(bool); ok {
		return value
	}
	return fallback
}

// intParam extracts a number parameter with a default. JSON numbers decode
// as float64.
func intParam(params map[string]interface{}, name string, fallback int) int {
	switch value := params[name].(type) {
	case float64:
		return int(value)
	case int:
		return value
	}
	return fallback
}

func (s *Server) handleAnalyzeCodebase(params map[string]interface{}) (*envelope.Response, error) {
	path, err := requireStringParam(params, "path")
	if err != nil {
		return nil, err
	}
	hint := lang.Language(stringParam(params, "language"))
	includeMetrics := boolParam(params, "include_metrics", true)

	requestID := uuid.New().String()
	start := time.Now()
	result := s.engine.Analyze(context.Background(), path, hint)
	if !includeMetrics {
		result.Metrics = diag.Metrics{}
	}

	return envelope.New().
		Data(result).
		RequestID(requestID).
		Duration(time.Since(start).Milliseconds()).
		Build(), nil
}

// errorListEntry is the flattened diagnostic shape for get_error_list, with
// the location rendered as file:line:col.
type errorListEntry struct {
	Message    string        `json:"message"`
	Severity   diag.Severity `json:"severity"`
	Location   string        `json:"location"`
	Code       string        `json:"code,omitempty"`
	Source     string        `json:"source,omitempty"`
	Suggestion string        `json:"suggestion,omitempty"`
}

func (s *Server) handleGetErrorList(params map[string]interface{}) (*envelope.Response, error) {
	path, err := requireStringParam(params, "path")
	if err != nil {
		return nil, err
	}

	minSeverity := diag.DefaultMinSeverity
	if raw := stringParam(params, "min_severity"); raw != "" {
		parsed, ok := diag.ParseSeverity(raw)
		if !ok {
			return nil, errors.NewInvalidParameterError("min_severity", fmt.Sprintf("unknown severity %q", raw))
		}
		minSeverity = parsed
	}
	maxResults := intParam(params, "max_results", diag.DefaultMaxResults)

	requestID := uuid.New().String()
	start := time.Now()
	result := s.engine.Analyze(context.Background(), path, "")
	filtered := diag.FilterAndRank(result.Diagnostics, minSeverity, maxResults)

	entries := make([]errorListEntry, 0, len(filtered))
	for _, d := range filtered {
		entries = append(entries, errorListEntry{
			Message:    d.Message,
			Severity:   d.Severity,
			Location:   d.Location.String(),
			Code:       d.Code,
			Source:     d.Source,
			Suggestion: d.Suggestion,
		})
	}

	return envelope.New().
		Data(map[string]interface{}{
			"total_diagnostics": len(result.Diagnostics),
			"filtered_count":    len(entries),
			"diagnostics":       entries,
		}).
		RequestID(requestID).
		Duration(time.Since(start).Milliseconds()).
		Build(), nil
}

func (s *Server) handleDetectLanguages(params map[string]interface{}) (*envelope.Response, error) {
	directory, err := requireStringParam(params, "directory")
	if err != nil {
		return nil, err
	}
	if info, statErr := os.Stat(directory); statErr != nil || !info.IsDir() {
		return nil, errors.NewInvalidParameterError("directory", "not a readable directory")
	}

	requestID := uuid.New().String()
	start := time.Now()
	counts := lang.DetectDirectoryLanguages(directory)

	languages := make(map[string]int, len(counts))
	total := 0
	for language, count := range counts {
		languages[language.String()] = count
		total += count
	}
	var primary interface{}
	if language, ok := lang.PrimaryLanguage(counts); ok {
		primary = language.String()
	}

	return envelope.New().
		Data(map[string]interface{}{
			"languages":        languages,
			"primary_language": primary,
			"total_files":      total,
		}).
		RequestID(requestID).
		Duration(time.Since(start).Milliseconds()).
		Build(), nil
}

// toolReport is one doctor entry: an analysis tool, whether its binary was
// found, and an install suggestion when it was not.
type toolReport struct {
	Tool    string            `json:"tool"`
	Binary  string            `json:"binary"`
	Found   bool              `json:"found"`
	Path    string            `json:"path,omitempty"`
	Install *errors.FixAction `json:"install,omitempty"`
}

func (s *Server) handleDoctor(params map[string]interface{}) (*envelope.Response, error) {
	requestID := uuid.New().String()
	start := time.Now()

	availability := toolrun.CheckAvailability(s.engine.Runner(), s.engine.Registry().AllTools())
	reports := make([]toolReport, 0, len(availability))
	missing := 0
	for _, check := range availability {
		report := toolReport{
			Tool:   check.Tool,
			Binary: check.Binary,
			Found:  check.Found,
			Path:   check.Path,
		}
		if !check.Found {
			missing++
			report.Install = errors.InstallFix(check.Tool)
		}
		reports = append(reports, report)
	}

	builder := envelope.New().
		Data(map[string]interface{}{
			"tools":   reports,
			"missing": missing,
		}).
		RequestID(requestID).
		Duration(time.Since(start).Milliseconds())
	if missing > 0 {
		builder = builder.Warning("tools-missing", fmt.Sprintf("%d analysis tools are not installed", missing))
	}
	return builder.Build(), nil
}

// symbolToolStub answers the navigation tools. Symbol resolution needs a
// language server behind it; until one is wired in, these report their own
// absence instead of failing the call.
func (s *Server) symbolToolStub(tool string, params map[string]interface{}) (*envelope.Response, error) {
	file, err := requireStringParam(params, "file")
	if err != nil {
		return nil, err
	}
	line := intParam(params, "line", 0)
	column := intParam(params, "column", -1)
	if line < 1 {
		return nil, errors.NewInvalidParameterError("line", "must be >= 1")
	}
	if column < 0 {
		return nil, errors.NewInvalidParameterError("column", "must be >= 0")
	}

	return envelope.New().
		Data(map[string]interface{}{
			"file":      file,
			"line":      line,
			"column":    column,
			"available": false,
			"message":   fmt.Sprintf("%s requires a language server integration, which is not configured", tool),
		}).
		RequestID(uuid.New().String()).
		Warning("not-implemented", tool+" is a placeholder").
		Build(), nil
}

func (s *Server) handleHoverInfo(params map[string]interface{}) (*envelope.Response, error) {
	return s.symbolToolStub("hover_info", params)
}

func (s *Server) handleFindReferences(params map[string]interface{}) (*envelope.Response, error) {
	return s.symbolToolStub("find_references", params)
}

func (s *Server) handleGoToDefinition(params map[string]interface{}) (*envelope.Response, error) {
	return s.symbolToolStub("go_to_definition", params)
}
