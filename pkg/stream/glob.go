package stream

import (
	"fmt"
	"path/filepath"
	"sort"
)

// ExpandGlobs expands file arguments that contain glob patterns into a
// deduplicated list of paths, preserving argument order. A pattern that
// matches nothing is kept as a literal path so the caller can report a
// proper open error against the user's original argument. StdinName is
// never expanded.
func ExpandGlobs(args []string) ([]string, error) {
	seen := make(map[string]bool)
	var result []string

	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			result = append(result, name)
		}
	}

	for _, arg := range args {
		if arg == StdinName {
			add(arg)
			continue
		}

		matches, err := filepath.Glob(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", arg, err)
		}

		if len(matches) == 0 {
			add(arg)
			continue
		}

		// Sort within a pattern for deterministic ordering.
		sort.Strings(matches)
		for _, match := range matches {
			add(match)
		}
	}

	return result, nil
}
