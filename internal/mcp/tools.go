package mcp

// Tool represents an omnilint tool exposed via MCP.
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// ToolDefinitions returns all tool definitions.
func (s *Server) ToolDefinitions() []Tool {
	return []Tool{
		{
			Name: "analyze_codebase",
			Description: "Analyze a file or directory in any programming language. " +
				"Returns comprehensive diagnostics including errors, warnings, " +
				"type issues, security vulnerabilities, and code metrics. " +
				"Supports Python, TypeScript, JavaScript, Go, Rust, and more.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to file or directory to analyze",
					},
					"language": map[string]interface{}{
						"type":        "string",
						"description": "Programming language (auto-detected if omitted)",
					},
					"include_metrics": map[string]interface{}{
						"type":        "boolean",
						"description": "Include code metrics (complexity)",
						"default":     true,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name: "get_error_list",
			Description: "Get a filtered list of errors/warnings from code analysis. " +
				"Returns diagnostics with severity ratings, locations, and fix suggestions.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Path to analyze",
					},
					"min_severity": map[string]interface{}{
						"type":        "string",
						"description": "Minimum severity to include",
						"enum":        []string{"error", "warning", "info", "hint"},
						"default":     "warning",
					},
					"max_results": map[string]interface{}{
						"type":        "number",
						"description": "Maximum number of diagnostics to return",
						"default":     50,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name: "detect_languages",
			Description: "Detect all programming languages used in a project directory. " +
				"Returns language names and file counts.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"directory": map[string]interface{}{
						"type":        "string",
						"description": "Project directory path",
					},
				},
				"required": []string{"directory"},
			},
		},
		{
			Name: "doctor",
			Description: "Report which external analysis tools are installed and " +
				"suggest install commands for missing ones.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name: "hover_info",
			Description: "Get type information and documentation for a symbol at a " +
				"specific location. Like IDE hover tooltips.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"file": map[string]interface{}{
						"type":        "string",
						"description": "File path",
					},
					"line": map[string]interface{}{
						"type":        "number",
						"description": "Line number (1-indexed)",
					},
					"column": map[string]interface{}{
						"type":        "number",
						"description": "Column number (0-indexed)",
					},
					"language": map[string]interface{}{
						"type":        "string",
						"description": "Programming language (auto-detected if omitted)",
					},
				},
				"required": []string{"file", "line", "column"},
			},
		},
		{
			Name: "find_references",
			Description: "Find all references to a symbol in the codebase. " +
				"Returns a list of locations where the symbol is used.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"file": map[string]interface{}{
						"type":        "string",
						"description": "File containing the symbol",
					},
					"line": map[string]interface{}{
						"type":        "number",
						"description": "Line number of symbol",
					},
					"column": map[string]interface{}{
						"type":        "number",
						"description": "Column number of symbol",
					},
				},
				"required": []string{"file", "line", "column"},
			},
		},
		{
			Name: "go_to_definition",
			Description: "Jump to the definition of a symbol. " +
				"Returns the location where the symbol is defined.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"file": map[string]interface{}{
						"type":        "string",
						"description": "File containing the symbol",
					},
					"line": map[string]interface{}{
						"type":        "number",
						"description": "Line number of symbol",
					},
					"column": map[string]interface{}{
						"type":        "number",
						"description": "Column number of symbol",
					},
				},
				"required": []string{"file", "line", "column"},
			},
		},
	}
}

// registerTools binds tool names to their handlers.
func (s *Server) registerTools() {
	s.tools["analyze_codebase"] = s.handleAnalyzeCodebase
	s.tools["get_error_list"] = s.handleGetErrorList
	s.tools["detect_languages"] = s.handleDetectLanguages
	s.tools["doctor"] = s.handleDoctor
	s.tools["hover_info"] = s.handleHoverInfo
	s.tools["find_references"] = s.handleFindReferences
	s.tools["go_to_definition"] = s.handleGoToDefinition
}
