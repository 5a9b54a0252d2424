// Package scanner finds version pins annotated with the watchdog marker
// comment in line-oriented manifest files.
package scanner

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/rios0rios0/watchdog/domain"
)

// MarkerPhrase is the literal comment that flags a line for tracking.
const MarkerPhrase = "# watchdog this"

// fieldPattern extracts the field name and pinned value from a marker line,
// e.g. "  addonChartVersion: 2.7.0 # watchdog this".
var fieldPattern = regexp.MustCompile(`^\s*(\w+):\s*([^\s#]+)`)

// Scanner extracts version markers from manifest files.
type Scanner struct{}

// New creates a marker scanner.
func New() *Scanner {
	return &Scanner{}
}

// Scan reads the file at path and returns the markers found, in line order.
// Line numbers are 1-based and counted over all lines of the file. Lines
// containing the marker phrase but no leading "key: value" field are
// silently skipped.
func (s *Scanner) Scan(path string) ([]domain.VersionMarker, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %q: %w", path, err)
	}

	var markers []domain.VersionMarker
	for i, line := range strings.Split(string(data), "\n") {
		if !strings.Contains(line, MarkerPhrase) {
			continue
		}
		match := fieldPattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		markers = append(markers, domain.VersionMarker{
			Line:    i + 1,
			Field:   match[1],
			Current: match[2],
		})
	}

	return markers, nil
}
