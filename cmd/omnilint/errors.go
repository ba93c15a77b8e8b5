package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"omnilint/internal/diag"
)

var (
	errorsMinSeverity string
	errorsMaxResults  int
)

var errorsCmd = &cobra.Command{
	Use:   "errors <path>",
	Short: "List filtered, ranked diagnostics",
	Long: `Analyze a file or directory and print only the diagnostics at or above a
severity threshold, most severe first.

Examples:
  omnilint errors ./src
  omnilint errors ./src --min-severity info --max-results 100`,
	Args: cobra.ExactArgs(1),
	RunE: runErrors,
}

func init() {
	errorsCmd.Flags().StringVar(&errorsMinSeverity, "min-severity", "",
		"Minimum severity to include (error, warning, info, hint)")
	errorsCmd.Flags().IntVar(&errorsMaxResults, "max-results", 0,
		"Maximum number of diagnostics to print")
	rootCmd.AddCommand(errorsCmd)
}

func runErrors(cmd *cobra.Command, args []string) error {
	path := args[0]
	root := mustGetRoot()
	cfg := mustLoadConfig(root)
	logger := newLogger(formatFlag, cfg)
	engine := mustBuildEngine(cfg, logger)

	minSeverity, ok := diag.ParseSeverity(cfg.Engine.MinSeverity)
	if !ok {
		minSeverity = diag.DefaultMinSeverity
	}
	if errorsMinSeverity != "" {
		parsed, ok := diag.ParseSeverity(errorsMinSeverity)
		if !ok {
			return fmt.Errorf("unknown severity %q", errorsMinSeverity)
		}
		minSeverity = parsed
	}
	maxResults := cfg.Engine.MaxResults
	if errorsMaxResults > 0 {
		maxResults = errorsMaxResults
	}

	result := engine.Analyze(context.Background(), path, "")
	filtered := diag.FilterAndRank(result.Diagnostics, minSeverity, maxResults)

	if formatFlag == "json" {
		return printJSON(map[string]interface{}{
			"total_diagnostics": len(result.Diagnostics),
			"filtered_count":    len(filtered),
			"diagnostics":       filtered,
		})
	}

	if len(filtered) == 0 {
		fmt.Printf("No diagnostics at or above %s (%d total findings).\n",
			minSeverity, len(result.Diagnostics))
		return nil
	}

	for _, d := range filtered {
		line := fmt.Sprintf("[%s] %s: %s", d.Severity, d.Location, d.Message)
		if d.Code != "" {
			line += fmt.Sprintf(" (%s)", d.Code)
		}
		fmt.Println(line)
		if d.Suggestion != "" {
			fmt.Printf("    fix: %s\n", d.Suggestion)
		}
	}
	fmt.Printf("\nShowing %d of %d diagnostics.\n", len(filtered), len(result.Diagnostics))

	for _, d := range filtered {
		if d.Severity == diag.SeverityError {
			os.Exit(1)
		}
	}
	return nil
}
