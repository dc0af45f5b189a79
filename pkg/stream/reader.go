// Package stream provides a line-buffered, cursor-based reader for
// token-oriented and line-oriented input.
package stream

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Whitespace lists the characters that delimit tokens.
const Whitespace = " \t\n\r\v\f"

// ErrEOF is returned when input ends before the requested read is satisfied.
var ErrEOF = errors.New("expect more characters before EOF")

// ReadError wraps an error returned by the underlying reader.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string {
	return "reading input: " + e.Err.Error()
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// Reader reads tokens, characters, and lines from an io.Reader.
// One line is buffered at a time; the cursor indexes into that line.
// A Reader is not safe for concurrent use.
type Reader struct {
	rd     *bufio.Reader
	line   string
	cursor int
	err    error // sticky error from the underlying reader, io.EOF included
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{rd: bufio.NewReader(r)}
}

// atEOL reports whether the buffered line has been fully consumed.
func (r *Reader) atEOL() bool {
	return r.cursor >= len(r.line)
}

// failed reports whether the underlying reader returned an error other than
// io.EOF. The buffered line is then the partial data read before the error.
func (r *Reader) failed() bool {
	return r.err != nil && r.err != io.EOF
}

// fill replaces the buffer with the next line. It returns false when no more
// input is available. Data read before an error is kept as the buffered line;
// the error is reported by the next read that needs more than that data.
func (r *Reader) fill() (bool, error) {
	r.line, r.cursor = "", 0
	if r.failed() {
		return false, &ReadError{Err: r.err}
	}
	if r.err != nil {
		return false, nil
	}

	line, err := r.rd.ReadString('\n')
	if err != nil {
		r.err = err
		if line == "" {
			return r.fill()
		}
	}
	r.line = line
	return true, nil
}

// fillIfEOL loads the next line when the current one is consumed.
func (r *Reader) fillIfEOL() (bool, error) {
	if !r.atEOL() {
		return true, nil
	}
	return r.fill()
}

// SkipWhitespace skips whitespace, crossing line boundaries, and returns the
// number of bytes skipped. Reaching the end of input is not an error.
func (r *Reader) SkipWhitespace() (int, error) {
	skipped := 0
	for {
		ok, err := r.fillIfEOL()
		if err != nil {
			return skipped, err
		}
		if !ok {
			return skipped, nil
		}

		rest := r.line[r.cursor:]
		n := len(rest) - len(strings.TrimLeft(rest, Whitespace))
		skipped += n
		r.cursor += n
		if !r.atEOL() {
			return skipped, nil
		}
	}
}

// Token returns the next maximal run of non-whitespace characters.
// Leading whitespace, newlines included, is skipped.
func (r *Reader) Token() (string, error) {
	if _, err := r.SkipWhitespace(); err != nil {
		return "", err
	}
	if r.atEOL() {
		return "", ErrEOF
	}

	rest := r.line[r.cursor:]
	i := strings.IndexAny(rest, Whitespace)
	if i < 0 {
		// The token may continue past data cut short by a read error.
		if r.failed() {
			return "", &ReadError{Err: r.err}
		}
		i = len(rest)
	}
	r.cursor += i
	return rest[:i], nil
}

// ReadLine returns the remainder of the current line. The line terminator
// ("\n" or "\r\n") is consumed and not returned. At the end of input without
// a terminator, the remaining characters are returned. ErrEOF is returned
// only when nothing at all is left.
//
// When the underlying reader fails partway through the line, ReadLine returns
// the characters read before the failure together with a *ReadError.
func (r *Reader) ReadLine() (string, error) {
	ok, err := r.fillIfEOL()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrEOF
	}

	rest := r.line[r.cursor:]
	r.cursor = len(r.line)
	if r.failed() {
		return TrimEOL(rest), &ReadError{Err: r.err}
	}
	return TrimEOL(rest), nil
}

// TrimEOL removes one trailing "\n" or "\r\n" from s. A "\r" not followed by
// "\n" is kept.
func TrimEOL(s string) string {
	s, ok := strings.CutSuffix(s, "\n")
	if !ok {
		return s
	}
	return strings.TrimSuffix(s, "\r")
}
