package output

import (
	"context"
	"encoding/json"
	"io"

	"github.com/ccollicutt/streamprobe/pkg/verify"
)

// JSONFormatter formats reports as JSON. The full report is indented; quiet
// mode writes a single line so that scripts can read it with one call.
type JSONFormatter struct {
	opts FormatOptions
}

// quietReport is the quiet-mode document: the summary counters plus the
// failing cases, each as "<suite>: <name>".
type quietReport struct {
	verify.Summary
	Passed bool     `json:"passed"`
	Failed []string `json:"failed"`
}

// NewJSONFormatter creates a new JSON formatter with the given options.
func NewJSONFormatter(opts FormatOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// Format renders the report as JSON.
func (f *JSONFormatter) Format(ctx context.Context, report *verify.Report, w io.Writer) error {
	encoder := json.NewEncoder(w)

	if f.opts.Quiet {
		return encoder.Encode(newQuietReport(report))
	}

	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

func newQuietReport(report *verify.Report) quietReport {
	q := quietReport{
		Summary: report.Summary,
		Passed:  !report.HasFailures(),
		Failed:  []string{},
	}
	for _, r := range report.Results {
		if !r.Passed() {
			q.Failed = append(q.Failed, r.Suite+": "+r.Name)
		}
	}
	return q
}
