package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"waitcmp/internal/formatter"
	"waitcmp/internal/report"
	"waitcmp/internal/strategy"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	outputFormat string
	outputFile   string
	oldName      string
	newName      string
)

func main() {
	rootCmd := newRootCmd()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "waitcmp",
		Short:   "Compare scraper wait strategies",
		Version: version,
		Long: `waitcmp reports on the wait strategies a scraper uses while waiting
for dynamic pages to render: the initial wait after navigation, the
scroll steps that trigger lazy loading, and the final network wait.
It prints a before/after comparison of two named strategies.`,
		Example: `  # Print the old vs. new wait strategy report
  waitcmp

  # Same comparison as JSON or as a terminal table
  waitcmp -f json
  waitcmp -f table

  # Write a markdown comparison to a file (format inferred from extension)
  waitcmp -o comparison.md

  # Compare two registered strategies by name
  waitcmp --old old --new new -f csv`,
		Args:         cobra.ArbitraryArgs,
		RunE:         run,
		SilenceUsage: true,
		FParseErrWhitelist: cobra.FParseErrWhitelist{
			UnknownFlags: true,
		},
	}

	rootCmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format (text, markdown, json, csv, table)")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file path (format inferred from extension if -f not specified)")
	rootCmd.Flags().StringVar(&oldName, "old", "old", "Name of the baseline wait strategy")
	rootCmd.Flags().StringVar(&newName, "new", "new", "Name of the updated wait strategy")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	// If output file is specified but format is not, infer format from file extension
	if outputFile != "" && outputFormat == "text" {
		inferredFormat := inferFormatFromExtension(outputFile)
		if inferredFormat != "" {
			outputFormat = inferredFormat
		}
	}

	if err := validateFlags(); err != nil {
		return err
	}

	oldStrategy, ok := strategy.Get(oldName)
	if !ok {
		return fmt.Errorf("unknown strategy: %s (registered: %s)", oldName, strings.Join(strategy.Names(), ", "))
	}
	newStrategy, ok := strategy.Get(newName)
	if !ok {
		return fmt.Errorf("unknown strategy: %s (registered: %s)", newName, strings.Join(strategy.Names(), ", "))
	}

	comparison := report.NewComparison(oldStrategy, newStrategy)

	outputContent, err := formatter.Format(comparison, outputFormat)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	if !strings.HasSuffix(outputContent, "\n") {
		outputContent += "\n"
	}

	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(outputContent), 0644); err != nil {
			return fmt.Errorf("failed to write to file: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Output written to: %s\n", outputFile)
	} else {
		// The text report's byte layout is part of the contract, so no
		// trailing newline is added beyond what the content carries.
		fmt.Fprint(cmd.OutOrStdout(), outputContent)
	}

	return nil
}

func validateFlags() error {
	validFormats := map[string]bool{
		"text":     true,
		"markdown": true,
		"json":     true,
		"csv":      true,
		"table":    true,
	}
	if !validFormats[outputFormat] {
		return fmt.Errorf("invalid output format: %s", outputFormat)
	}
	return nil
}

// inferFormatFromExtension infers output format from file extension
func inferFormatFromExtension(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".md", ".markdown":
		return "markdown"
	case ".json":
		return "json"
	case ".csv":
		return "csv"
	case ".txt":
		return "text"
	default:
		return ""
	}
}
