package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/isu-meta/marcup/areacodes"
	"github.com/isu-meta/marcup/catalog"
	"github.com/isu-meta/marcup/marc"
	"github.com/isu-meta/marcup/metadata"
)

var (
	inputFile     string
	outputFile    string
	aliasFile     string
	areaCodeFile  string
	avian         bool
	legacy        bool
	includeEvents bool
	maxTerms      int
	stripHTML     bool
	normalize     bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a binary MARC record from collection metadata",
	Long: `Build reads a collection metadata CSV and writes one binary MARC 21
record describing the whole collection.

Input defaults to stdin and output to stdout, so the command pipes.

Examples:
  # CSV to binary MARC
  marcup build -i collection.csv -o collection.mrc

  # Avian collection: geographic terms come from the geonames column
  marcup build --avian -i birds.csv -o birds.mrc

  # Override the geographic area code table
  marcup build -i collection.csv -o collection.mrc --area-codes codes.yaml`,
	RunE: runBuild,
}

func init() {
	addInputFlags(buildCmd)
	addBuildFlags(buildCmd)
	buildCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output MARC file (default: stdout)")
}

// addInputFlags registers the flags shared by every command that parses
// collection metadata.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input CSV file (default: stdin)")
	cmd.Flags().StringVar(&aliasFile, "aliases", "", "YAML file mapping CSV headers to canonical column names")
	cmd.Flags().BoolVar(&stripHTML, "strip-html", false, "Remove HTML markup from cell values")
	cmd.Flags().BoolVar(&normalize, "normalize", false, "Apply Unicode NFC normalization to cell values")
}

// addBuildFlags registers the flags shared by commands that derive a
// record.
func addBuildFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&avian, "avian", false, "Aggregate geographic terms from the geonames column")
	cmd.Flags().BoolVar(&legacy, "legacy", false, "Use the legacy record template")
	cmd.Flags().BoolVar(&includeEvents, "events", false, "Emit meeting name fields from event subjects")
	cmd.Flags().IntVar(&maxTerms, "max-terms", catalog.DefaultMaxTerms, "Maximum aggregated terms per repeatable field")
	cmd.Flags().StringVar(&areaCodeFile, "area-codes", "", "YAML file overriding the geographic area code table")
}

func runBuild(cmd *cobra.Command, args []string) (err error) {
	rows, err := readRows()
	if err != nil {
		return err
	}

	opts, err := buildOptions()
	if err != nil {
		return err
	}

	record, err := catalog.Build(rows, opts)
	if err != nil {
		return fmt.Errorf("building record: %w", err)
	}
	slog.Debug("derived collection record", "rows", len(rows), "fields", len(record.Fields))

	// The record is complete before the output file exists, so a failed
	// build never leaves a partial file behind.
	var output io.Writer = os.Stdout
	if outputFile != "" {
		f, createErr := os.Create(outputFile)
		if createErr != nil {
			return fmt.Errorf("creating output file: %w", createErr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing output file: %w", cerr)
			}
		}()
		output = f
	}

	if err := marc.NewWriter(output).Write(record); err != nil {
		return fmt.Errorf("writing record: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Built 1 record with %d fields from %d rows\n", len(record.Fields), len(rows))

	return nil
}

// readRows parses collection metadata from the input flag or stdin.
func readRows() (rows []metadata.Row, err error) {
	parseOpts := metadata.NewParseOptions()
	parseOpts.StripHTML = stripHTML
	parseOpts.Normalize = normalize
	parseOpts.SourceName = "stdin"

	if aliasFile != "" {
		aliases, aliasErr := metadata.LoadAliases(aliasFile)
		if aliasErr != nil {
			return nil, fmt.Errorf("loading aliases: %w", aliasErr)
		}
		parseOpts.Aliases = aliases
	}

	var input io.Reader = os.Stdin
	if inputFile != "" {
		f, openErr := os.Open(inputFile)
		if openErr != nil {
			return nil, fmt.Errorf("opening input file: %w", openErr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing input file: %w", cerr)
			}
		}()
		input = f
		parseOpts.SourceName = inputFile
	}

	rows, err = metadata.Parse(input, parseOpts)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", parseOpts.SourceName, err)
	}

	return rows, nil
}

// buildOptions assembles catalog options from the build flags.
func buildOptions() (*catalog.Options, error) {
	opts := catalog.NewOptions()
	opts.Avian = avian
	opts.MaxTerms = maxTerms
	opts.IncludeEvents = includeEvents
	if legacy {
		opts.Policy = catalog.LegacyPolicy()
	}

	if areaCodeFile != "" {
		table, err := areacodes.LoadFile(areaCodeFile)
		if err != nil {
			return nil, fmt.Errorf("loading area codes: %w", err)
		}
		opts.AreaCodes = table
	}

	return opts, nil
}
