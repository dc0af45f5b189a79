// Package output provides formatting for verification reports.
package output

import (
	"context"
	"io"

	"github.com/ccollicutt/streamprobe/pkg/verify"
)

// Formatter renders verification reports in a specific format.
type Formatter interface {
	// Format renders the report to the given writer.
	Format(ctx context.Context, report *verify.Report, w io.Writer) error

	// Name returns the format name (text, json).
	Name() string
}

// FormatOptions controls formatter behavior.
type FormatOptions struct {
	// Verbose enables detailed output including passing cases.
	Verbose bool

	// Quiet enables minimal summary-only output.
	Quiet bool
}

// New returns the formatter registered under name.
func New(name string, opts FormatOptions) (Formatter, error) {
	switch name {
	case "text":
		return NewTextFormatter(opts), nil
	case "json":
		return NewJSONFormatter(opts), nil
	default:
		return nil, &UnknownFormatError{Name: name}
	}
}

// UnknownFormatError is returned by New for unsupported format names.
type UnknownFormatError struct {
	Name string
}

func (e *UnknownFormatError) Error() string {
	return "unknown output format \"" + e.Name + "\" (use text or json)"
}
