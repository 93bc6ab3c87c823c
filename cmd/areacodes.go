package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/isu-meta/marcup/areacodes"
)

var areaCodesCmd = &cobra.Command{
	Use:   "areacodes",
	Short: "Inspect the geographic area code table",
	Long: `List and query the place-name table behind the geographic area code
field. Without --area-codes the built-in table is used.

Examples:
  marcup areacodes list
  marcup areacodes lookup Iowa
  marcup areacodes lookup "Story County (Iowa)" --area-codes codes.yaml`,
}

var areaCodesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the active table as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := activeTable()
		if err != nil {
			return err
		}

		out, err := yaml.Marshal(table)
		if err != nil {
			return err
		}

		fmt.Print(string(out))
		return nil
	},
}

var areaCodesLookupCmd = &cobra.Command{
	Use:   "lookup <place>",
	Short: "Resolve one place name to its area code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := activeTable()
		if err != nil {
			return err
		}

		code, ok := table.Lookup(args[0])
		if !ok {
			return fmt.Errorf("unknown place: %s", args[0])
		}

		fmt.Println(code)
		return nil
	},
}

func activeTable() (areacodes.Table, error) {
	if areaCodeFile == "" {
		return areacodes.Default(), nil
	}

	table, err := areacodes.LoadFile(areaCodeFile)
	if err != nil {
		return nil, fmt.Errorf("loading area codes: %w", err)
	}
	return table, nil
}

func init() {
	areaCodesCmd.PersistentFlags().StringVar(&areaCodeFile, "area-codes", "", "YAML file overriding the geographic area code table")
	areaCodesCmd.AddCommand(areaCodesListCmd)
	areaCodesCmd.AddCommand(areaCodesLookupCmd)
}
