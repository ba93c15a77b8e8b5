// Package errors defines stable error codes for the surfaces that can fail:
// request validation, storage, and the MCP layer. Tool-level failures inside
// the engine never become errors; they collapse to empty diagnostic lists
// with a per-tool status.
package errors

import "fmt"

// ErrorCode represents stable error codes for all failure modes.
type ErrorCode string

const (
	// InvalidParameter indicates a malformed or missing request parameter.
	InvalidParameter ErrorCode = "INVALID_PARAMETER"
	// UnknownTool indicates a tools/call for a tool that is not registered.
	UnknownTool ErrorCode = "UNKNOWN_TOOL"
	// RegistryInvalid indicates an unloadable tool registry file.
	RegistryInvalid ErrorCode = "REGISTRY_INVALID"
	// HistoryUnavailable indicates the run archive could not be opened.
	HistoryUnavailable ErrorCode = "HISTORY_UNAVAILABLE"
	// InternalError indicates an unexpected failure.
	InternalError ErrorCode = "INTERNAL_ERROR"
)

// FixActionType represents the type of a suggested fix.
type FixActionType string

const (
	// RunCommand suggests running a command.
	RunCommand FixActionType = "run-command"
	// InstallTool suggests installing an analysis tool.
	InstallTool FixActionType = "install-tool"
)

// FixAction represents a suggested fix for an error or a missing tool.
type FixAction struct {
	Type        FixActionType `json:"type"`
	Command     string        `json:"command,omitempty"`
	Description string        `json:"description,omitempty"`
	Tool        string        `json:"tool,omitempty"`
}

// Error carries a stable code, a message, and optional fix suggestions.
type Error struct {
	Code           ErrorCode   `json:"code"`
	Message        string      `json:"message"`
	Details        interface{} `json:"details,omitempty"`
	SuggestedFixes []FixAction `json:"suggestedFixes,omitempty"`
	cause          error
}

// New creates an Error with the given code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.cause
}

// WithDetails attaches details to the error.
func (e *Error) WithDetails(details interface{}) *Error {
	e.Details = details
	return e
}

// NewInvalidParameterError reports a bad request parameter.
func NewInvalidParameterError(name, reason string) *Error {
	message := fmt.Sprintf("invalid parameter %q", name)
	if reason != "" {
		message += ": " + reason
	}
	return New(InvalidParameter, message)
}

// NewUnknownToolError reports a tools/call for an unregistered tool.
func NewUnknownToolError(name string) *Error {
	return New(UnknownTool, fmt.Sprintf("unknown tool: %s", name))
}

// NewHistoryError reports an unusable run archive.
func NewHistoryError(message string, cause error) *Error {
	return &Error{Code: HistoryUnavailable, Message: message, cause: cause}
}

// NewOperationError wraps an unexpected failure of a named operation.
func NewOperationError(operation string, cause error) *Error {
	return &Error{Code: InternalError, Message: operation + " failed", cause: cause}
}

// InstallCommands maps analysis tool names to install commands suggested by
// doctor when a binary is missing.
var InstallCommands = map[string]string{
	"ruff":          "pip install ruff",
	"mypy":          "pip install mypy",
	"bandit":        "pip install bandit",
	"radon":         "pip install radon",
	"typescript":    "npm install -g typescript",
	"eslint":        "npm install -g eslint",
	"golangci-lint": "go install github.com/golangci/golangci-lint/cmd/golangci-lint@latest",
}

// InstallFix returns an install suggestion for a missing tool, or nil when
// none is known.
func InstallFix(tool string) *FixAction {
	command, ok := InstallCommands[tool]
	if !ok {
		return nil
	}
	return &FixAction{
		Type:        InstallTool,
		Tool:        tool,
		Command:     command,
		Description: fmt.Sprintf("Install %s to enable its diagnostics", tool),
	}
}
