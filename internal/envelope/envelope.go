// Package envelope provides the standardized response wrapper for MCP tool
// responses. Every tool response carries the payload plus metadata about
// timing, warnings, and failure.
package envelope

// Response is the standard envelope for all MCP tool responses.
type Response struct {
	SchemaVersion string      `json:"schemaVersion"`
	Data          interface{} `json:"data"`
	Meta          *Meta       `json:"meta,omitempty"`
	Warnings      []Warning   `json:"warnings,omitempty"`
	Error         *string     `json:"error,omitempty"`
}

// Meta holds response metadata.
type Meta struct {
	RequestID  string `json:"requestId,omitempty"`
	DurationMs int64  `json:"durationMs,omitempty"`
}

// Warning represents a non-fatal issue.
type Warning struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// CurrentSchemaVersion is the current envelope schema version.
const CurrentSchemaVersion = "1.0"

// Builder constructs Response envelopes using a fluent API.
type Builder struct {
	resp *Response
}

// New creates a new envelope builder.
func New() *Builder {
	return &Builder{resp: &Response{SchemaVersion: CurrentSchemaVersion}}
}

// Data sets the tool-specific payload.
func (b *Builder) Data(data interface{}) *Builder {
	b.resp.Data = data
	return b
}

// RequestID tags the response with a request identifier.
func (b *Builder) RequestID(id string) *Builder {
	if b.resp.Meta == nil {
		b.resp.Meta = &Meta{}
	}
	b.resp.Meta.RequestID = id
	return b
}

// Duration records how long the request took.
func (b *Builder) Duration(ms int64) *Builder {
	if b.resp.Meta == nil {
		b.resp.Meta = &Meta{}
	}
	b.resp.Meta.DurationMs = ms
	return b
}

// Warning adds a warning message.
func (b *Builder) Warning(code, message string) *Builder {
	b.resp.Warnings = append(b.resp.Warnings, Warning{Code: code, Message: message})
	return b
}

// Error marks the response as failed.
func (b *Builder) Error(err error) *Builder {
	if err != nil {
		msg := err.Error()
		b.resp.Error = &msg
	}
	return b
}

// Build returns the envelope response.
func (b *Builder) Build() *Response {
	return b.resp
}
