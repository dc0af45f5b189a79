package cases

import (
	"fmt"
	"os"
	"strconv"
)

// Default values for case files.
const (
	DefaultRepeat = 2
	MaxRepeat     = 100
)

// Environment variable names.
const (
	EnvRepeat = "STREAMPROBE_REPEAT"
)

// DefaultSuite returns a suite with defaults applied.
func DefaultSuite() *Suite {
	return &Suite{
		Repeat: DefaultRepeat,
		Cases:  []Case{},
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the suite.
func (s *Suite) applyEnvironmentOverrides() error {
	v := os.Getenv(EnvRepeat)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: invalid integer %q", EnvRepeat, v)
	}
	s.Repeat = n
	return nil
}
