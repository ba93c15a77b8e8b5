package toolrun

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"omnilint/internal/diag"
)

// parseOutput converts a tool's raw output into diagnostics per its declared
// parser. Empty output means no findings. A returned error marks the whole
// invocation as parse-failed; adapters translate that into zero diagnostics.
func parseOutput(spec ToolSpec, output string) ([]diag.Diagnostic, error) {
	if strings.TrimSpace(output) == "" {
		return nil, nil
	}

	switch spec.Parser {
	case ParserRuff:
		return parseRuff(spec, output)
	case ParserBandit:
		return parseBandit(spec, output)
	case ParserESLint:
		return parseESLint(spec, output)
	case ParserGolangciLint:
		return parseGolangciLint(spec, output)
	case ParserCargo:
		return parseCargo(spec, output), nil
	case ParserPattern:
		return parsePattern(spec, output)
	default:
		return nil, fmt.Errorf("unknown parser %q", spec.Parser)
	}
}

// parseMetrics converts a metrics-only tool's JSON output into an opaque blob.
func parseMetrics(output string) (diag.Metrics, error) {
	if strings.TrimSpace(output) == "" {
		return nil, nil
	}
	var metrics diag.Metrics
	if err := json.Unmarshal([]byte(output), &metrics); err != nil {
		return nil, err
	}
	return metrics, nil
}

type ruffIssue struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Filename string `json:"filename"`
	Location struct {
		Row    int `json:"row"`
		Column int `json:"column"`
	} `json:"location"`
	Fix *struct {
		Message string `json:"message"`
	} `json:"fix"`
}

// parseRuff reads ruff's JSON issue array. Issues with an available fix map
// to warnings, issues without one to errors.
func parseRuff(spec ToolSpec, output string) ([]diag.Diagnostic, error) {
	var issues []ruffIssue
	if err := json.Unmarshal([]byte(output), &issues); err != nil {
		return nil, err
	}

	diagnostics := make([]diag.Diagnostic, 0, len(issues))
	for _, issue := range issues {
		severity := diag.SeverityError
		suggestion := ""
		if issue.Fix != nil {
			severity = diag.SeverityWarning
			suggestion = issue.Fix.Message
		}
		diagnostics = append(diagnostics, diag.Diagnostic{
			Message:  issue.Message,
			Severity: severity,
			Location: diag.Location{
				File:   issue.Filename,
				Line:   issue.Location.Row,
				Column: issue.Location.Column,
			},
			Code:       issue.Code,
			Source:     spec.Name,
			Suggestion: suggestion,
		})
	}
	return diagnostics, nil
}

type banditReport struct {
	Results []struct {
		IssueText     string `json:"issue_text"`
		IssueSeverity string `json:"issue_severity"`
		Filename      string `json:"filename"`
		LineNumber    int    `json:"line_number"`
		ColOffset     int    `json:"col_offset"`
		TestID        string `json:"test_id"`
	} `json:"results"`
}

// parseBandit reads bandit's JSON report. HIGH severity maps to error,
// everything else to warning.
func parseBandit(spec ToolSpec, output string) ([]diag.Diagnostic, error) {
	var report banditReport
	if err := json.Unmarshal([]byte(output), &report); err != nil {
		return nil, err
	}

	diagnostics := make([]diag.Diagnostic, 0, len(report.Results))
	for _, issue := range report.Results {
		severity := diag.SeverityWarning
		if issue.IssueSeverity == "HIGH" {
			severity = diag.SeverityError
		}
		diagnostics = append(diagnostics, diag.Diagnostic{
			Message:  issue.IssueText,
			Severity: severity,
			Location: diag.Location{
				File:   issue.Filename,
				Line:   issue.LineNumber,
				Column: issue.ColOffset,
			},
			Code:   issue.TestID,
			Source: spec.Name,
		})
	}
	return diagnostics, nil
}

type eslintFile struct {
	FilePath string `json:"filePath"`
	Messages []struct {
		Message   string `json:"message"`
		Severity  int    `json:"severity"`
		Line      int    `json:"line"`
		Column    int    `json:"column"`
		EndLine   int    `json:"endLine"`
		EndColumn int    `json:"endColumn"`
		RuleID    string `json:"ruleId"`
		Fix       *struct {
			Text string `json:"text"`
		} `json:"fix"`
	} `json:"messages"`
}

// parseESLint reads eslint's per-file JSON array. Level 2 maps to error,
// level 1 to warning.
func parseESLint(spec ToolSpec, output string) ([]diag.Diagnostic, error) {
	var files []eslintFile
	if err := json.Unmarshal([]byte(output), &files); err != nil {
		return nil, err
	}

	var diagnostics []diag.Diagnostic
	for _, file := range files {
		for _, message := range file.Messages {
			severity := diag.SeverityWarning
			if message.Severity == 2 {
				severity = diag.SeverityError
			}
			suggestion := ""
			if message.Fix != nil {
				suggestion = message.Fix.Text
			}
			diagnostics = append(diagnostics, diag.Diagnostic{
				Message:  message.Message,
				Severity: severity,
				Location: diag.Location{
					File:      file.FilePath,
					Line:      message.Line,
					Column:    message.Column,
					EndLine:   message.EndLine,
					EndColumn: message.EndColumn,
				},
				Code:       message.RuleID,
				Source:     spec.Name,
				Suggestion: suggestion,
			})
		}
	}
	return diagnostics, nil
}

type golangciReport struct {
	Issues []struct {
		Text       string `json:"Text"`
		FromLinter string `json:"FromLinter"`
		Pos        struct {
			Filename string `json:"Filename"`
			Line     int    `json:"Line"`
			Column   int    `json:"Column"`
		} `json:"Pos"`
	} `json:"Issues"`
}

// parseGolangciLint reads golangci-lint's JSON report. Every issue maps to a
// warning; hard errors surface through go vet instead.
func parseGolangciLint(spec ToolSpec, output string) ([]diag.Diagnostic, error) {
	var report golangciReport
	if err := json.Unmarshal([]byte(output), &report); err != nil {
		return nil, err
	}

	diagnostics := make([]diag.Diagnostic, 0, len(report.Issues))
	for _, issue := range report.Issues {
		diagnostics = append(diagnostics, diag.Diagnostic{
			Message:  issue.Text,
			Severity: diag.SeverityWarning,
			Location: diag.Location{
				File:   issue.Pos.Filename,
				Line:   issue.Pos.Line,
				Column: issue.Pos.Column,
			},
			Code:   issue.FromLinter,
			Source: spec.Name,
		})
	}
	return diagnostics, nil
}

type cargoMessage struct {
	Reason  string `json:"reason"`
	Message struct {
		Message string `json:"message"`
		Level   string `json:"level"`
		Code    *struct {
			Code string `json:"code"`
		} `json:"code"`
		Spans []struct {
			IsPrimary   bool   `json:"is_primary"`
			FileName    string `json:"file_name"`
			LineStart   int    `json:"line_start"`
			ColumnStart int    `json:"column_start"`
			LineEnd     int    `json:"line_end"`
			ColumnEnd   int    `json:"column_end"`
		} `json:"spans"`
	} `json:"message"`
}

// parseCargo reads cargo's record-per-line compiler-message stream. Lines
// that are not valid JSON are skipped; one diagnostic is emitted per primary
// span, with the compiler's level passed through.
func parseCargo(spec ToolSpec, output string) []diag.Diagnostic {
	var diagnostics []diag.Diagnostic
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		var msg cargoMessage
		if err := json.Unmarshal([]byte(line), &msg); err != nil {
			continue
		}
		if msg.Reason != "compiler-message" {
			continue
		}

		severity := diag.SeverityWarning
		if msg.Message.Level == "error" {
			severity = diag.SeverityError
		}
		code := ""
		if msg.Message.Code != nil {
			code = msg.Message.Code.Code
		}

		for _, span := range msg.Message.Spans {
			if !span.IsPrimary {
				continue
			}
			diagnostics = append(diagnostics, diag.Diagnostic{
				Message:  msg.Message.Message,
				Severity: severity,
				Location: diag.Location{
					File:      span.FileName,
					Line:      span.LineStart,
					Column:    span.ColumnStart,
					EndLine:   span.LineEnd,
					EndColumn: span.ColumnEnd,
				},
				Code:   code,
				Source: spec.Name,
			})
		}
	}
	return diagnostics
}

// parsePattern matches each output line against the spec's named-group regex.
// Lines that do not match are skipped, mirroring how the text tools emit
// progress chatter between findings.
func parsePattern(spec ToolSpec, output string) ([]diag.Diagnostic, error) {
	pattern, err := regexp.Compile(spec.Pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern for %s: %w", spec.Name, err)
	}

	groups := make(map[string]int)
	for i, name := range pattern.SubexpNames() {
		if name != "" {
			groups[name] = i
		}
	}
	if _, ok := groups["file"]; !ok {
		return nil, fmt.Errorf("pattern for %s is missing the file group", spec.Name)
	}

	defaultSeverity := diag.SeverityWarning
	if spec.DefaultSeverity != "" {
		defaultSeverity, _ = diag.ParseSeverity(spec.DefaultSeverity)
	}

	var diagnostics []diag.Diagnostic
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		match := pattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		group := func(name string) string {
			if i, ok := groups[name]; ok {
				return match[i]
			}
			return ""
		}

		severity := defaultSeverity
		if token := group("sev"); token != "" {
			if name, ok := spec.SeverityTokens[strings.ToLower(token)]; ok {
				severity, _ = diag.ParseSeverity(name)
			}
		}

		code := group("code")
		if code != "" {
			code = spec.CodePrefix + code
		}

		lineNo, _ := strconv.Atoi(group("line"))
		column, _ := strconv.Atoi(group("col"))

		diagnostics = append(diagnostics, diag.Diagnostic{
			Message:  group("msg"),
			Severity: severity,
			Location: diag.Location{
				File:   group("file"),
				Line:   lineNo,
				Column: column,
			},
			Code:   code,
			Source: spec.Name,
		})
	}
	return diagnostics, nil
}
