package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"omnilint/internal/errors"
	"omnilint/internal/toolrun"
)

var doctorFix bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check which analysis tools are installed",
	Long: `Check the availability of every registered analysis tool and suggest
install commands for the missing ones.

Use --fix to print a shell script with the install commands (does not
auto-execute).`,
	RunE: runDoctor,
}

func init() {
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Output install script (does not auto-execute)")
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	root := mustGetRoot()
	cfg := mustLoadConfig(root)
	logger := newLogger(formatFlag, cfg)
	engine := mustBuildEngine(cfg, logger)

	availability := toolrun.CheckAvailability(engine.Runner(), engine.Registry().AllTools())

	if doctorFix {
		fmt.Println("#!/bin/sh")
		fmt.Println("# Install commands for missing analysis tools")
		for _, check := range availability {
			if check.Found {
				continue
			}
			if fix := errors.InstallFix(check.Tool); fix != nil {
				fmt.Println(fix.Command)
			}
		}
		return nil
	}

	if formatFlag == "json" {
		return printJSON(availability)
	}

	missing := 0
	for _, check := range availability {
		if check.Found {
			fmt.Printf("  ok       %-16s %s\n", check.Tool, check.Path)
			continue
		}
		missing++
		suggestion := ""
		if fix := errors.InstallFix(check.Tool); fix != nil {
			suggestion = "  (" + fix.Command + ")"
		}
		fmt.Printf("  missing  %-16s%s\n", check.Tool, suggestion)
	}

	if missing > 0 {
		fmt.Printf("\n%d of %d tools missing. Run 'omnilint doctor --fix' for an install script.\n",
			missing, len(availability))
		os.Exit(1)
	}
	fmt.Printf("\nAll %d tools installed.\n", len(availability))
	return nil
}
