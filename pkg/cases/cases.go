package cases

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a case file.
func Load(_ context.Context, path string) (*Suite, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided case path is expected
	if err != nil {
		return nil, fmt.Errorf("reading case file: %w", err)
	}

	suite, err := Parse(data)
	if err != nil {
		return nil, err
	}
	suite.Source = path

	return suite, nil
}

// Parse decodes and validates case file content.
func Parse(data []byte) (*Suite, error) {
	suite := DefaultSuite()
	if err := yaml.Unmarshal(data, suite); err != nil {
		return nil, fmt.Errorf("parsing case file: %w", err)
	}

	if err := suite.applyEnvironmentOverrides(); err != nil {
		return nil, err
	}

	if err := Validate(suite); err != nil {
		return nil, fmt.Errorf("validating case file: %w", err)
	}

	return suite, nil
}

// Validate checks a suite for errors.
func Validate(s *Suite) error {
	if s.Repeat < 1 || s.Repeat > MaxRepeat {
		return fmt.Errorf("repeat: must be between 1 and %d, got %d", MaxRepeat, s.Repeat)
	}

	if len(s.Cases) == 0 {
		return errors.New("cases: at least one case is required")
	}

	seen := make(map[string]int, len(s.Cases))
	for i := range s.Cases {
		c := &s.Cases[i]
		if err := validateCase(c); err != nil {
			return fmt.Errorf("cases[%d] (%s): %w", i, c.Name, err)
		}
		if j, ok := seen[c.Name]; ok {
			return fmt.Errorf("cases[%d] (%s): duplicate name, first defined at cases[%d]", i, c.Name, j)
		}
		seen[c.Name] = i
	}

	return nil
}

func validateCase(c *Case) error {
	if c.Name == "" {
		return errors.New("name is required")
	}

	if c.Abort && c.Output != "" {
		return errors.New("output and abort are mutually exclusive")
	}

	// The probe writes at least "{N}{}" whenever it does not abort.
	if !c.Abort && c.Output == "" {
		return errors.New("output is required unless abort is true")
	}

	return nil
}
