package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"omnilint/internal/diag"
	"omnilint/internal/history"
	"omnilint/internal/lang"
)

var (
	analyzeLanguage string
	analyzeMetrics  bool
	analyzeSave     bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <path>",
	Short: "Analyze a file or directory",
	Long: `Analyze a file or directory with the analysis tools registered for its
language and print the aggregated diagnostics.

Examples:
  omnilint analyze ./src                  # auto-detect language
  omnilint analyze main.py --language python
  omnilint analyze . --format json
  omnilint analyze . --save               # archive the run`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeLanguage, "language", "", "Override language detection")
	analyzeCmd.Flags().BoolVar(&analyzeMetrics, "metrics", true, "Collect code metrics")
	analyzeCmd.Flags().BoolVar(&analyzeSave, "save", false, "Archive this run in the history database")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path := args[0]
	root := mustGetRoot()
	cfg := mustLoadConfig(root)
	logger := newLogger(formatFlag, cfg)
	engine := mustBuildEngine(cfg, logger)

	start := time.Now()
	result := engine.Analyze(context.Background(), path, lang.Language(analyzeLanguage))
	if !analyzeMetrics {
		result.Metrics = diag.Metrics{}
	}

	if analyzeSave || cfg.History.Enabled {
		store, err := history.Open(cfg.HistoryPath(root), logger)
		if err != nil {
			logger.Warn("Failed to open history archive", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			defer store.Close()
			if id, err := store.Save(path, result); err != nil {
				logger.Warn("Failed to archive run", map[string]interface{}{
					"error": err.Error(),
				})
			} else {
				logger.Info("Run archived", map[string]interface{}{"run_id": id})
			}
		}
	}

	if formatFlag == "json" {
		return printJSON(result)
	}

	printHumanResult(result)
	fmt.Printf("\n(Analysis took %dms)\n", time.Since(start).Milliseconds())

	if result.Summary[diag.SeverityError.String()] > 0 {
		os.Exit(1)
	}
	return nil
}

func printHumanResult(result diag.Result) {
	fmt.Printf("Language: %s\n", result.Language)
	fmt.Printf("Files with findings: %d\n", result.FilesAnalyzed)
	fmt.Printf("Summary: %d errors, %d warnings, %d info, %d hints\n",
		result.Summary[diag.SeverityError.String()],
		result.Summary[diag.SeverityWarning.String()],
		result.Summary[diag.SeverityInfo.String()],
		result.Summary[diag.SeverityHint.String()])

	if len(result.ToolStatuses) > 0 {
		fmt.Println("\nTools:")
		for _, status := range result.ToolStatuses {
			fmt.Printf("  %-16s %s (%dms)\n", status.Tool, status.State, status.DurationMs)
		}
	}

	if len(result.Diagnostics) > 0 {
		fmt.Println("\nDiagnostics:")
		for _, d := range result.Diagnostics {
			line := fmt.Sprintf("  [%s] %s: %s", d.Severity, d.Location, d.Message)
			if d.Code != "" {
				line += fmt.Sprintf(" (%s)", d.Code)
			}
			if d.Source != "" {
				line += fmt.Sprintf(" [%s]", d.Source)
			}
			fmt.Println(line)
		}
	}

	if len(result.Metrics) > 0 {
		fmt.Println("\nMetrics:")
		keys := make([]string, 0, len(result.Metrics))
		for k := range result.Metrics {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("  %s: %v\n", k, result.Metrics[k])
		}
	}
}
