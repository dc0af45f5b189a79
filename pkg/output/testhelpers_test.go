package output

import (
	"time"

	"github.com/ccollicutt/streamprobe/pkg/probe"
	"github.com/ccollicutt/streamprobe/pkg/verify"
)

func createTestReport() *verify.Report {
	return &verify.Report{
		Summary: verify.Summary{
			SuitesChecked: 1,
			CasesChecked:  2,
			CasesPassed:   1,
			CasesFailed:   1,
			TotalRuns:     4,
		},
		Results: []*verify.CaseResult{
			{
				Suite:       "testdata/cases/basic.yaml",
				Name:        "basic",
				Description: "integer then line",
				Status:      verify.StatusPass,
				Input:       "42\nhello\n",
				Expected:    "{42}{hello}",
				First:       verify.Run{Output: "{42}{hello}"},
				Runs:        2,
			},
			{
				Suite:       "testdata/cases/basic.yaml",
				Name:        "malformed",
				Status:      verify.StatusFail,
				Input:       "abc\n",
				ExpectAbort: false,
				Expected:    "{0}{abc}",
				Reason:      "expected output \"{0}{abc}\", got abort at precondition",
				First:       verify.Run{Aborted: true, Check: probe.CheckPrecondition, Error: "assertion failed"},
				Runs:        2,
			},
		},
		Metadata: verify.Metadata{
			Sources:    []string{"testdata/cases/basic.yaml"},
			VerifiedAt: time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
			Duration:   1500 * time.Millisecond,
		},
	}
}
