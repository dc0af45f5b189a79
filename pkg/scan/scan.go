// Package scan converts whitespace-delimited tokens to typed values.
package scan

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseError reports a token that could not be converted to the requested type.
type ParseError struct {
	// Token is the raw token text.
	Token string

	// Type names the requested type.
	Type string

	// Err is the underlying conversion error.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("converting %q to %s: %v", e.Token, e.Type, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseUint64 parses tok as an unsigned decimal integer.
// A single leading '+' is accepted.
func ParseUint64(tok string) (uint64, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(tok, "+"), 10, 64)
	if err != nil {
		return 0, &ParseError{Token: tok, Type: "uint64", Err: unwrapNumError(err)}
	}
	return v, nil
}

// unwrapNumError strips strconv's own token quoting so ParseError does not
// repeat it.
func unwrapNumError(err error) error {
	if ne, ok := err.(*strconv.NumError); ok {
		return ne.Err
	}
	return err
}
