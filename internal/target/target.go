// Package target handles admission of submitted video URLs.
package target

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// MaxLength caps accepted URLs to guard against garbage input.
const MaxLength = 2048

// Validate reports whether s is acceptable as a download target. This is a
// permissive admission check, not a full URL grammar: non-empty, within the
// length cap, http(s) scheme, and at least one domain separator.
func Validate(s string) bool {
	if s == "" || len(s) > MaxLength {
		return false
	}
	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
		return false
	}
	return strings.Contains(s, ".")
}

// ParseFile reads a newline-delimited list of targets. Blank lines and lines
// starting with '#' are skipped. Entries are returned in file order,
// unvalidated; admission happens per target in the pipeline.
func ParseFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open targets file: %w", err)
	}
	defer f.Close()

	var targets []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		targets = append(targets, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read targets file: %w", err)
	}

	return targets, nil
}
