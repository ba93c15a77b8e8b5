package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"omnilint/internal/lang"
)

var languagesCmd = &cobra.Command{
	Use:   "languages [directory]",
	Short: "Detect languages used in a project",
	Long: `Scan a directory and report every recognized programming language with its
source file count, plus the primary language.

Defaults to the current directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLanguages,
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}

func runLanguages(cmd *cobra.Command, args []string) error {
	directory := "."
	if len(args) == 1 {
		directory = args[0]
	}

	counts := lang.DetectDirectoryLanguages(directory)
	primary, hasPrimary := lang.PrimaryLanguage(counts)

	if formatFlag == "json" {
		languages := make(map[string]int, len(counts))
		total := 0
		for language, count := range counts {
			languages[language.String()] = count
			total += count
		}
		var primaryValue interface{}
		if hasPrimary {
			primaryValue = primary.String()
		}
		return printJSON(map[string]interface{}{
			"languages":        languages,
			"primary_language": primaryValue,
			"total_files":      total,
		})
	}

	if len(counts) == 0 {
		fmt.Println("No recognized source files found.")
		return nil
	}

	type languageCount struct {
		name  string
		count int
	}
	sorted := make([]languageCount, 0, len(counts))
	for language, count := range counts {
		sorted = append(sorted, languageCount{language.String(), count})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].count != sorted[j].count {
			return sorted[i].count > sorted[j].count
		}
		return sorted[i].name < sorted[j].name
	})

	for _, entry := range sorted {
		marker := " "
		if hasPrimary && entry.name == primary.String() {
			marker = "*"
		}
		fmt.Printf("%s %-12s %d files\n", marker, entry.name, entry.count)
	}
	if hasPrimary {
		fmt.Printf("\nPrimary language: %s\n", primary)
	}
	return nil
}
