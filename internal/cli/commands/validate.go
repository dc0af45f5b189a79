package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/streamprobe/pkg/cases"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <case-file>",
		Short: "Validate a case file",
		Long: `Validate a streamprobe case file without running any cases.

Checks:
  - YAML syntax
  - At least one case
  - Case names present and unique
  - repeat within range
  - output and abort not both set`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Validating %s...\n", path)

	suite, err := cases.Load(ctx, path)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Fprintf(out, "\nCase file valid!\n")
	fmt.Fprintf(out, "  Cases:  %d\n", len(suite.Cases))
	fmt.Fprintf(out, "  Repeat: %d\n", suite.Repeat)

	fmt.Fprintf(out, "\nCases:\n")
	for i, c := range suite.Cases {
		expect := fmt.Sprintf("output %q", c.Output)
		if c.Abort {
			expect = "abort"
		}
		fmt.Fprintf(out, "  %d. %s (expects %s)\n", i+1, c.Name, expect)
		if c.Description != "" {
			fmt.Fprintf(out, "     %s\n", c.Description)
		}
	}

	return nil
}
