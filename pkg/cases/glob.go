package cases

import (
	"fmt"
	"path/filepath"
	"sort"
)

// ExpandGlobs expands a list of file paths and glob patterns into a deduplicated,
// sorted list of case files. Patterns that don't match any files are returned
// as-is so that Load reports a file-not-found error for them.
func ExpandGlobs(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var result []string

	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}

		if len(matches) == 0 {
			matches = []string{pattern}
		}

		for _, match := range matches {
			if !seen[match] {
				seen[match] = true
				result = append(result, match)
			}
		}
	}

	sort.Strings(result)

	return result, nil
}
