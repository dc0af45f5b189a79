package verify

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ccollicutt/streamprobe/pkg/cases"
	"github.com/ccollicutt/streamprobe/pkg/probe"
)

// Verify runs every case of every suite and builds a report.
// Suites are processed in the order given. An error is returned only for
// cancellation or a failure unrelated to the cases themselves.
func Verify(ctx context.Context, suites []*cases.Suite) (*Report, error) {
	start := time.Now()
	report := &Report{Results: []*CaseResult{}}

	for _, suite := range suites {
		report.Metadata.Sources = append(report.Metadata.Sources, suite.Source)
		report.Summary.SuitesChecked++

		for i := range suite.Cases {
			result, err := verifyCase(ctx, suite, &suite.Cases[i])
			if err != nil {
				return nil, err
			}

			report.Results = append(report.Results, result)
			report.Summary.CasesChecked++
			report.Summary.TotalRuns += result.Runs
			if result.Passed() {
				report.Summary.CasesPassed++
			} else {
				report.Summary.CasesFailed++
			}
		}
	}

	report.Metadata.VerifiedAt = time.Now()
	report.Metadata.Duration = report.Metadata.VerifiedAt.Sub(start)

	return report, nil
}

func verifyCase(ctx context.Context, suite *cases.Suite, c *cases.Case) (*CaseResult, error) {
	result := &CaseResult{
		Suite:       suite.Source,
		Name:        c.Name,
		Description: c.Description,
		Input:       c.Input,
		Expected:    c.Output,
		ExpectAbort: c.Abort,
		Status:      StatusPass,
	}

	repeat := suite.Repeat
	if repeat < 1 {
		repeat = 1
	}

	for i := 0; i < repeat; i++ {
		run, err := Execute(ctx, c.Input)
		if err != nil {
			return nil, fmt.Errorf("case %q: %w", c.Name, err)
		}
		result.Runs++

		if i == 0 {
			result.First = run
			continue
		}
		if run != result.First {
			result.Status = StatusFail
			result.Reason = fmt.Sprintf("nondeterministic: run %d gave %s, run 1 gave %s",
				i+1, describe(run), describe(result.First))
			return result, nil
		}
	}

	if reason := mismatch(c, result.First); reason != "" {
		result.Status = StatusFail
		result.Reason = reason
	}

	return result, nil
}

// Execute runs the probe once over input and captures its outcome.
// Assertion failures are part of the outcome; only cancellation is an error.
func Execute(ctx context.Context, input string) (Run, error) {
	var out bytes.Buffer
	_, err := probe.Run(ctx, strings.NewReader(input), &out)
	run := Run{Output: out.String()}

	if err == nil {
		return run, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return Run{}, ctxErr
	}

	run.Error = err.Error()
	var ae *probe.AssertionError
	if errors.As(err, &ae) {
		run.Aborted = true
		run.Check = ae.Check
	}
	return run, nil
}

// mismatch compares a run with the case expectation and describes any difference.
func mismatch(c *cases.Case, run Run) string {
	if c.Abort {
		if !run.Aborted {
			return fmt.Sprintf("expected abort, got %s", describe(run))
		}
		if run.Output != "" {
			return fmt.Sprintf("expected no output before abort, got %q", run.Output)
		}
		return ""
	}

	if run.Aborted || run.Error != "" {
		return fmt.Sprintf("expected output %q, got %s", c.Output, describe(run))
	}
	if run.Output != c.Output {
		return fmt.Sprintf("expected output %q, got %q", c.Output, run.Output)
	}
	return ""
}

func describe(run Run) string {
	if run.Aborted {
		return fmt.Sprintf("abort at %s (%s)", run.Check, run.Error)
	}
	if run.Error != "" {
		return fmt.Sprintf("error (%s)", run.Error)
	}
	return fmt.Sprintf("output %q", run.Output)
}
