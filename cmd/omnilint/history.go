package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"omnilint/internal/history"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect archived analysis runs",
	Long: `List or show analysis runs archived with 'omnilint analyze --save' or with
history enabled in the configuration.

Examples:
  omnilint history list
  omnilint history list -n 50
  omnilint history show <run-id>`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent runs, newest first",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show one archived run with its diagnostics",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func init() {
	historyListCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of runs to list")
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	rootCmd.AddCommand(historyCmd)
}

func openHistory() (*history.Store, error) {
	root := mustGetRoot()
	cfg := mustLoadConfig(root)
	return history.Open(cfg.HistoryPath(root), newLogger(formatFlag, cfg))
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.List(historyLimit)
	if err != nil {
		return err
	}

	if formatFlag == "json" {
		return printJSON(runs)
	}

	if len(runs) == 0 {
		fmt.Println("No archived runs. Use 'omnilint analyze --save' to archive one.")
		return nil
	}
	for _, run := range runs {
		fmt.Printf("%s  %s  %-12s %s  (%d errors, %d warnings)\n",
			run.ID, run.CreatedAt.Format("2006-01-02 15:04"), run.Language,
			run.Path, run.Errors, run.Warnings)
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	run, diagnostics, err := store.Get(args[0])
	if err != nil {
		return err
	}

	if formatFlag == "json" {
		return printJSON(map[string]interface{}{
			"run":         run,
			"diagnostics": diagnostics,
		})
	}

	fmt.Printf("Run %s\n", run.ID)
	fmt.Printf("  Archived:  %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("  Path:      %s\n", run.Path)
	fmt.Printf("  Language:  %s\n", run.Language)
	fmt.Printf("  Summary:   %d errors, %d warnings, %d info, %d hints\n",
		run.Errors, run.Warnings, run.Infos, run.Hints)

	if len(diagnostics) > 0 {
		fmt.Println("\nDiagnostics:")
		for _, d := range diagnostics {
			fmt.Printf("  [%s] %s: %s\n", d.Severity, d.Location, d.Message)
		}
	}
	return nil
}
