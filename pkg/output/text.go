package output

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ccollicutt/streamprobe/pkg/verify"
)

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *verify.Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(report, w)
	}
	return f.formatFull(report, w)
}

func (f *TextFormatter) formatQuiet(report *verify.Report, w io.Writer) error {
	_, err := fmt.Fprintf(w, "streamprobe: %d cases checked, %d passed, %d failed\n",
		report.Summary.CasesChecked,
		report.Summary.CasesPassed,
		report.Summary.CasesFailed)
	return err
}

func (f *TextFormatter) formatFull(report *verify.Report, w io.Writer) error {
	fmt.Fprintln(w, "=== streamprobe Verification Report ===")
	fmt.Fprintln(w)

	suite := ""
	for _, result := range report.Results {
		if result.Suite != suite {
			suite = result.Suite
			if suite != "" {
				fmt.Fprintf(w, "%s\n", suite)
			}
		}
		f.formatCaseResult(result, w)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "---")
	_, err := fmt.Fprintf(w, "Summary: %d cases checked, %d passed, %d failed\n",
		report.Summary.CasesChecked,
		report.Summary.CasesPassed,
		report.Summary.CasesFailed)
	if err != nil {
		return err
	}

	if f.opts.Verbose {
		fmt.Fprintf(w, "Probe runs: %d\n", report.Summary.TotalRuns)
		fmt.Fprintf(w, "Duration: %s\n", report.Metadata.Duration.Round(1e6))
	}

	return nil
}

func (f *TextFormatter) formatCaseResult(result *verify.CaseResult, w io.Writer) {
	fmt.Fprintf(w, "  [%s] %s\n", strings.ToUpper(string(result.Status)), result.Name)

	if !result.Passed() {
		fmt.Fprintf(w, "    %s\n", result.Reason)
		fmt.Fprintf(w, "    input: %q\n", result.Input)
		return
	}

	if !f.opts.Verbose {
		return
	}

	if result.Description != "" {
		fmt.Fprintf(w, "    %s\n", result.Description)
	}
	if result.ExpectAbort {
		fmt.Fprintf(w, "    aborted at %s after %d run(s)\n", result.First.Check, result.Runs)
	} else {
		fmt.Fprintf(w, "    output %q after %d run(s)\n", result.First.Output, result.Runs)
	}
}
