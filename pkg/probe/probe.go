// Package probe reads an unsigned integer token followed by a full line and
// prints both values bracketed, asserting that the input stream stays valid.
package probe

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ccollicutt/streamprobe/pkg/scan"
	"github.com/ccollicutt/streamprobe/pkg/stream"
)

// Check identifies which stream validity check failed.
type Check string

const (
	// CheckPrecondition runs after the integer read and whitespace skip.
	CheckPrecondition Check = "precondition"
	// CheckPostcondition runs after the line read.
	CheckPostcondition Check = "postcondition"
)

// AssertionError reports a failed stream validity check.
// Callers are expected to treat it as fatal.
type AssertionError struct {
	Check Check
	Err   error
}

func (e *AssertionError) Error() string {
	return fmt.Sprintf("assertion failed: stream invalid at %s: %v", e.Check, e.Err)
}

func (e *AssertionError) Unwrap() error {
	return e.Err
}

// Result holds the values produced by a single probe run.
type Result struct {
	// Value is the parsed integer.
	Value uint64 `json:"value"`

	// Token is the raw integer token text.
	Token string `json:"token"`

	// Skipped is the number of whitespace bytes consumed after the token.
	Skipped int `json:"skipped"`

	// Line is the line read after the skip, without its terminator.
	Line string `json:"line"`
}

// String renders the result in the probe output format.
func (r *Result) String() string {
	return fmt.Sprintf("{%d}{%s}", r.Value, r.Line)
}

// Run reads an integer and a line from in and writes "{<integer>}{<line>}"
// to out with no trailing newline.
//
// A malformed or missing integer fails the precondition check and nothing is
// written. Reaching the end of input during the skip or the line read is not
// a failure; the line is then empty. A read error that cuts the line short
// fails the postcondition check after the characters read before it have been
// written. A read error before the line starts fails the precondition check.
func Run(ctx context.Context, in io.Reader, out io.Writer) (*Result, error) {
	r := stream.NewReader(in)
	res := &Result{}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tok, err := readToken(r)
	if err != nil {
		return nil, &AssertionError{Check: CheckPrecondition, Err: err}
	}
	res.Token = tok.text
	res.Value = tok.value

	res.Skipped, err = r.SkipWhitespace()
	if err != nil {
		return nil, &AssertionError{Check: CheckPrecondition, Err: err}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	line, lineErr := r.ReadLine()
	if errors.Is(lineErr, stream.ErrEOF) {
		lineErr = nil
	}
	res.Line = line

	if _, err := io.WriteString(out, res.String()); err != nil {
		return nil, fmt.Errorf("writing output: %w", err)
	}

	if lineErr != nil {
		return res, &AssertionError{Check: CheckPostcondition, Err: lineErr}
	}
	return res, nil
}

type token struct {
	text  string
	value uint64
}

// readToken reads the integer token, keeping its raw text for diagnostics.
func readToken(r *stream.Reader) (token, error) {
	text, err := r.Token()
	if err != nil {
		return token{}, err
	}
	v, err := scan.ParseUint64(text)
	if err != nil {
		return token{}, err
	}
	return token{text: text, value: v}, nil
}
