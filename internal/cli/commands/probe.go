package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/streamprobe/pkg/probe"
)

// RunProbe runs the input probe over the command's stdin and stdout.
// A failed stream check is reported on stderr and sets ExitCode to ExitAbort.
func RunProbe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	_, err := probe.Run(ctx, cmd.InOrStdin(), cmd.OutOrStdout())

	var ae *probe.AssertionError
	if errors.As(err, &ae) {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "streamprobe: %v\n", ae)
		ExitCode = ExitAbort
		return nil
	}
	return err
}
