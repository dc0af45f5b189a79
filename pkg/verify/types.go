// Package verify runs case suites through the probe and reports the results.
package verify

import (
	"time"

	"github.com/ccollicutt/streamprobe/pkg/probe"
)

// Status is the outcome of a single case.
type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
)

// Run is the observed outcome of one probe execution.
type Run struct {
	// Output is everything the probe wrote.
	Output string `json:"output"`

	// Aborted is true when a stream validity check failed.
	Aborted bool `json:"aborted"`

	// Check names the failed check when Aborted is set.
	Check probe.Check `json:"check,omitempty"`

	// Error is the failure message, if any.
	Error string `json:"error,omitempty"`
}

// CaseResult holds the outcome of one case across all of its runs.
type CaseResult struct {
	Suite       string `json:"suite"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Status      Status `json:"status"`

	// Input is the probe input of the case.
	Input string `json:"input"`

	// Reason explains a failure.
	Reason string `json:"reason,omitempty"`

	// Expected is the expected output, or empty for abort cases.
	Expected string `json:"expected"`

	// ExpectAbort is true when the case expects the probe to abort.
	ExpectAbort bool `json:"expect_abort"`

	// First is the outcome of the first run.
	First Run `json:"first"`

	// Runs is how many times the case was executed.
	Runs int `json:"runs"`
}

// Passed reports whether the case met its expectation.
func (r *CaseResult) Passed() bool {
	return r.Status == StatusPass
}

// Report is the complete verification output.
type Report struct {
	Summary  Summary       `json:"summary"`
	Results  []*CaseResult `json:"results"`
	Metadata Metadata      `json:"metadata"`
}

// Summary provides aggregate statistics.
type Summary struct {
	// SuitesChecked is the number of case files processed.
	SuitesChecked int `json:"suites_checked"`

	// CasesChecked is the number of cases that were executed.
	CasesChecked int `json:"cases_checked"`

	// CasesPassed is the number of cases that met their expectation.
	CasesPassed int `json:"cases_passed"`

	// CasesFailed is the number of cases that did not.
	CasesFailed int `json:"cases_failed"`

	// TotalRuns is the number of probe executions.
	TotalRuns int `json:"total_runs"`
}

// Metadata provides context about the verification run.
type Metadata struct {
	// Sources lists the case files that were verified.
	Sources []string `json:"sources"`

	// VerifiedAt is when verification finished.
	VerifiedAt time.Time `json:"verified_at"`

	// Duration is how long verification took.
	Duration time.Duration `json:"duration"`
}

// HasFailures returns true if any case failed.
func (r *Report) HasFailures() bool {
	return r.Summary.CasesFailed > 0
}
