// Package cmd provides the marcup command line interface.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func setupLogger() {
	logLevel := strings.ToUpper(os.Getenv("LOG_LEVEL"))
	if logLevel == "" {
		logLevel = "INFO"
	}

	var level slog.Level
	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN", "WARNING":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

var rootCmd = &cobra.Command{
	Use:   "marcup",
	Short: "Generate collection-level MARC records from digital collection metadata",
	Long: `Marcup turns the per-item metadata spreadsheet of a digitized archival
collection into one collection-level MARC 21 bibliographic record.

Semicolon-delimited values are aggregated across all rows, ranked by
frequency, classified by vocabulary source, and laid out in the field
order catalogers review.

Examples:
  marcup build -i collection.csv -o collection.mrc
  marcup build --avian -i birds.csv -o birds.mrc
  marcup fields -i collection.csv
  marcup validate -i collection.csv --verbose`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	setupLogger()
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(fieldsCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(areaCodesCmd)
}
