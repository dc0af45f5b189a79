package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/streamprobe/pkg/cases"
)

// NewSchemaCommand creates the schema command.
func NewSchemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for case files",
		Long: `Print a JSON Schema describing the case file format.

Point an editor's YAML language server at it for completion and validation:
  streamprobe schema > streamprobe.schema.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := cases.GenerateJSONSchema()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), schema)
			return err
		},
	}
}
