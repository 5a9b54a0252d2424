// Package rewriter applies minimal-diff version substitutions to single
// manifest lines.
package rewriter

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrLineOutOfRange is returned when the requested line number does not
// exist in the current file snapshot.
var ErrLineOutOfRange = errors.New("line number out of range")

// Rewriter performs exact textual substitution of one version token on one
// line. Writes are whole-file rewrites, so callers must serialize updates to
// a given file within one run.
type Rewriter struct{}

// New creates a line rewriter.
func New() *Rewriter {
	return &Rewriter{}
}

// ReplaceVersion re-reads the file fresh, replaces the first occurrence of
// oldVersion on the given 1-based line with newVersion, and writes the file
// back when persist is true. All other bytes on the line, including the
// marker comment, are preserved.
//
// It returns false without error when the line does not contain oldVersion
// (already changed, or normalized away); that is a no-op, not a failure.
func (r *Rewriter) ReplaceVersion(
	path string,
	lineNum int,
	oldVersion, newVersion string,
	persist bool,
) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("failed to stat %q: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("failed to read %q: %w", path, err)
	}

	// SplitAfter keeps each line's own terminator so the write-back is
	// byte-identical outside the mutated line.
	lines := strings.SplitAfter(string(data), "\n")
	last := len(lines)
	if last > 0 && lines[last-1] == "" {
		last-- // trailing newline produces an empty tail element
	}

	if lineNum < 1 || lineNum > last {
		return false, fmt.Errorf("%w: %d (file has %d lines)", ErrLineOutOfRange, lineNum, last)
	}

	original := lines[lineNum-1]
	updated := strings.Replace(original, oldVersion, newVersion, 1)
	if updated == original {
		return false, nil
	}

	if persist {
		lines[lineNum-1] = updated
		content := strings.Join(lines, "")
		if writeErr := os.WriteFile(path, []byte(content), info.Mode().Perm()); writeErr != nil {
			return false, fmt.Errorf("failed to write %q: %w", path, writeErr)
		}
	}

	return true, nil
}
