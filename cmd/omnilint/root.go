package main

import (
	"omnilint/internal/version"

	"github.com/spf13/cobra"
)

var (
	// formatFlag is the CLI --format flag value.
	formatFlag string
)

var rootCmd = &cobra.Command{
	Use:   "omnilint",
	Short: "omnilint - universal code diagnostics",
	Long: `omnilint runs the analysis tools a codebase already uses (linters, type
checkers, security scanners) and aggregates their findings into one unified,
severity-ranked diagnostic report. It detects the language automatically and
supports Python, TypeScript, JavaScript, Go, Rust, and more.`,
	Version: version.Info(),
}

func init() {
	rootCmd.SetVersionTemplate("omnilint version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", "human",
		"Output format (json, human)")
}
