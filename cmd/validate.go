package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/isu-meta/marcup/catalog"
)

var validateVerbose bool

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate collection metadata without building a record",
	Long: `Validate parses the input and reports whether a record could be built
from it, without producing output. Useful for checking a spreadsheet
before cataloging.

Examples:
  marcup validate -i collection.csv
  marcup validate -i collection.csv --verbose
  cat collection.csv | marcup validate`,
	RunE: runValidate,
}

func init() {
	addInputFlags(validateCmd)
	validateCmd.Flags().BoolVarP(&validateVerbose, "verbose", "v", false, "Show the collection summary")
}

func runValidate(cmd *cobra.Command, args []string) error {
	rows, err := readRows()
	if err != nil {
		return err
	}

	summary, err := catalog.Summarize(rows)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Printf("✓ Valid: %d rows, %d digital objects\n", len(rows), summary.Objects)

	warnUnknownLanguages(summary.Languages)

	if validateVerbose {
		fmt.Println("\nCollection summary:")
		fmt.Printf("  Title: %s\n", summary.Title)
		fmt.Printf("  Digital collection: %s\n", summary.DigitalCollection)
		fmt.Printf("  Ark: %s\n", summary.Ark)
		fmt.Printf("  Date range: %s\n", summary.DateRange)
		fmt.Printf("  Languages: %d\n", len(summary.Languages))
		if summary.Disclaimer != "" {
			fmt.Printf("  Disclaimer: %s\n", truncate(summary.Disclaimer, 60))
		}
		fmt.Printf("  Physical collections: %d\n", len(summary.PhysicalCollections))
		for _, pc := range summary.PhysicalCollections {
			fmt.Printf("    %s (%s): %d rows\n", pc.Name, pc.CallNumber, pc.Count)
		}
	}

	return nil
}

// warnUnknownLanguages logs a warning for each language value that does not
// parse as a BCP 47 language tag.
func warnUnknownLanguages(languages []string) {
	for _, lang := range languages {
		if _, err := language.Parse(lang); err != nil {
			slog.Warn("Unknown language code", "language", lang, "error", err)
		}
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
