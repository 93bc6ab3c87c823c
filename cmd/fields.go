package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/isu-meta/marcup/catalog"
	"github.com/isu-meta/marcup/marc"
)

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "Print the derived MARC fields for visual review",
	Long: `Fields derives the same record as build but prints it in mnemonic form,
one line per field in record order, so the field sequence and content
can be reviewed before anything is loaded into the catalog.

Examples:
  marcup fields -i collection.csv
  cat collection.csv | marcup fields --avian`,
	RunE: runFields,
}

func init() {
	addInputFlags(fieldsCmd)
	addBuildFlags(fieldsCmd)
}

func runFields(cmd *cobra.Command, args []string) error {
	rows, err := readRows()
	if err != nil {
		return err
	}

	opts, err := buildOptions()
	if err != nil {
		return err
	}

	fields, err := catalog.BuildFields(rows, opts)
	if err != nil {
		return fmt.Errorf("building record: %w", err)
	}

	record := marc.Record{Leader: catalog.Leader(), Fields: fields}
	fmt.Println(record.String())

	return nil
}
