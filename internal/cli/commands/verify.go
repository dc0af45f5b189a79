package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/streamprobe/pkg/cases"
	"github.com/ccollicutt/streamprobe/pkg/output"
	"github.com/ccollicutt/streamprobe/pkg/verify"
)

// VerifyOptions holds command-line options for the verify command.
type VerifyOptions struct {
	Output  string
	Verbose bool
	Quiet   bool
}

// NewVerifyCommand creates the verify command.
func NewVerifyCommand() *cobra.Command {
	opts := &VerifyOptions{}

	cmd := &cobra.Command{
		Use:   "verify <case-file>...",
		Short: "Run probe cases and check their results",
		Long: `Run every case in the given case files through the probe and compare
the result with the expected output or expected abort.

Each case is run repeatedly (repeat, default 2) and every run must produce
the same output and status.

Arguments may be file paths or glob patterns.

Exit codes:
  0 - All cases passed
  1 - One or more cases failed
  2 - Configuration or runtime error`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show passing cases, not just failures")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no details")

	return cmd
}

func runVerify(cmd *cobra.Command, args []string, opts *VerifyOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	formatter, err := output.New(opts.Output, output.FormatOptions{
		Verbose: opts.Verbose,
		Quiet:   opts.Quiet,
	})
	if err != nil {
		return err
	}

	files, err := cases.ExpandGlobs(args)
	if err != nil {
		return fmt.Errorf("expanding case files: %w", err)
	}

	suites := make([]*cases.Suite, 0, len(files))
	for _, file := range files {
		suite, err := cases.Load(ctx, file)
		if err != nil {
			return fmt.Errorf("loading %s: %w", file, err)
		}
		suites = append(suites, suite)
	}

	report, err := verify.Verify(ctx, suites)
	if err != nil {
		return fmt.Errorf("verification failed: %w", err)
	}

	if err := formatter.Format(ctx, report, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if report.HasFailures() {
		ExitCode = ExitFailures
	}

	return nil
}
