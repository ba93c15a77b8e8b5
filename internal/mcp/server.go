package mcp

import (
	"bufio"
	"io"
	"log/slog"
	"os"

	"omnilint/internal/analyzer"
	"omnilint/internal/config"
	"omnilint/internal/envelope"
)

// ToolHandler is a function that handles a tool call and returns an envelope
// response.
type ToolHandler func(params map[string]interface{}) (*envelope.Response, error)

// Server exposes the analysis engine over MCP stdio JSON-RPC.
type Server struct {
	stdin   io.Reader
	stdout  io.Writer
	scanner *bufio.Scanner
	logger  *slog.Logger
	version string

	engine *analyzer.Engine
	cfg    *config.Config
	tools  map[string]ToolHandler
}

// NewServer creates an MCP server around an analysis engine.
func NewServer(version string, engine *analyzer.Engine, cfg *config.Config, logger *slog.Logger) *Server {
	server := &Server{
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		logger:  logger,
		version: version,
		engine:  engine,
		cfg:     cfg,
		tools:   make(map[string]ToolHandler),
	}
	server.registerTools()
	return server
}

// Start begins processing messages and blocks until stdin closes.
func (s *Server) Start() error {
	s.logger.Info("MCP server starting", "version", s.version)

	for {
		msg, err := s.readMessage()
		if err != nil {
			if err == io.EOF {
				s.logger.Info("MCP server shutting down (EOF)")
				return nil
			}
			s.logger.Error("error reading message", "error", err.Error())

			// Unparsable input has no usable id; respond with a null-id
			// parse error so the client sees the failure.
			_ = s.writeError(nil, ParseError, "failed to parse message: "+err.Error())
			continue
		}

		response := s.handleMessage(msg)
		if response != nil {
			if err := s.writeMessage(response); err != nil {
				s.logger.Error("error writing response", "error", err.Error())
			}
		}
	}
}

// SetStdin sets the input stream (for testing).
func (s *Server) SetStdin(r io.Reader) {
	s.stdin = r
	s.scanner = nil
}

// SetStdout sets the output stream (for testing).
func (s *Server) SetStdout(w io.Writer) {
	s.stdout = w
}
