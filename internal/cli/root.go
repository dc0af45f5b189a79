// Package cli provides the command-line interface for streamprobe.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/streamprobe/internal/cli/commands"
)

// Execute runs the root command against the process streams and returns the
// exit code.
func Execute() int {
	return Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

// Run executes the command line args with the given streams and returns the
// exit code.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	commands.ExitCode = commands.ExitOK

	// Cobra falls back to os.Args when given nil
	if args == nil {
		args = []string{}
	}

	rootCmd := NewRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		// SilenceErrors prevents Cobra from printing this itself
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return commands.ExitError
	}
	return commands.ExitCode
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "streamprobe",
		Short: "Probe token-then-line input parsing on stdin",
		Long: `streamprobe reads an unsigned integer token from standard input, skips the
whitespace after it, reads the next full line, and prints both values as

  {<integer>}{<line>}

with no trailing newline. It checks a classic pitfall: a line read directly
after a token read returning the leftover newline instead of the next line.

If the integer is missing or malformed, or the stream fails while reading,
streamprobe prints the failed check to stderr and exits with status 134.

Example:
  printf '42\nhello\n' | streamprobe        # {42}{hello}
  streamprobe verify testdata/cases/*.yaml`,
		Args:          cobra.NoArgs,
		RunE:          commands.RunProbe,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewVerifyCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewSchemaCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
