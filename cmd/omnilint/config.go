package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"omnilint/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	RunE:  runConfig,
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long:  `Write the default configuration to .omnilint/config.json in the current directory.`,
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(initCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	return printJSON(mustLoadConfig(mustGetRoot()))
}

func runInit(cmd *cobra.Command, args []string) error {
	root := mustGetRoot()
	if err := config.DefaultConfig().Save(root); err != nil {
		return err
	}
	fmt.Println("Wrote .omnilint/config.json")
	return nil
}
