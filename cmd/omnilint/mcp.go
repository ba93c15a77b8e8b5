package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"omnilint/internal/mcp"
	"omnilint/internal/version"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol (MCP) server.

The server communicates over stdio using JSON-RPC 2.0 and exposes analysis
as MCP tools:
  - analyze_codebase: full diagnostics for a file or directory
  - get_error_list: filtered, severity-ranked diagnostics
  - detect_languages: languages used in a project
  - doctor: analysis tool availability
  - hover_info, find_references, go_to_definition: symbol navigation

This command is typically invoked by MCP clients and not directly by users.`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	// Logs go to stderr since stdout carries the protocol.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	logger.Info("starting MCP server", "version", version.Info(), "buildDate", version.BuildDate)

	root := mustGetRoot()
	cfg := mustLoadConfig(root)
	engine, err := buildEngine(cfg, newLogger("json", cfg))
	if err != nil {
		return err
	}

	server := mcp.NewServer(version.Version, engine, cfg, logger)
	if err := server.Start(); err != nil {
		logger.Error("MCP server error", "error", err)
		return err
	}
	return nil
}
