// Package version normalizes heterogeneous version strings and selects the
// latest under semantic-version precedence.
package version

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ErrUnparseable is returned when a version string cannot be interpreted
// under the loose semantic-version grammar.
var ErrUnparseable = errors.New("unparseable version")

// strictTriple matches a plain major.minor.patch pin, optionally
// "v"-prefixed, with no pre-release or build suffix.
var strictTriple = regexp.MustCompile(`^v?\d+\.\d+\.\d+$`)

// Parse normalizes a raw version string into a comparable representation.
// A leading "v" and surrounding whitespace are stripped; the remainder is
// parsed with a loose grammar that accepts pre-release and build suffixes.
// Two strings that parse to equal tuples compare equal even when textually
// different ("v1.2.3" vs "1.2.3").
func Parse(raw string) (*semver.Version, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(raw), "v")
	v, err := semver.NewVersion(trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnparseable, raw)
	}
	return v, nil
}

// ParseStrict accepts only the canonical major.minor.patch form (optional
// "v" prefix). Used for filtering registry tags before comparison.
func ParseStrict(raw string) (*semver.Version, error) {
	if !strictTriple.MatchString(raw) {
		return nil, fmt.Errorf("%w: %q", ErrUnparseable, raw)
	}
	v, err := semver.StrictNewVersion(strings.TrimPrefix(raw, "v"))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnparseable, raw)
	}
	return v, nil
}

// IsStrictTriple reports whether raw is a canonical triple as accepted by
// ParseStrict.
func IsStrictTriple(raw string) bool {
	return strictTriple.MatchString(raw)
}

// Latest returns the maximum candidate under semantic-version precedence:
// release segments compared numerically, a pre-release ranked below the
// final release with the same segments, build metadata ignored.
//
// Candidates that fail to parse are excluded from selection. When every
// candidate is unparseable the raw lexicographic maximum is returned as a
// best-effort answer. ok is false only for an empty candidate set.
func Latest(candidates []string) (latest string, ok bool) {
	var best *semver.Version
	for _, c := range candidates {
		v, err := Parse(c)
		if err != nil {
			continue
		}
		if best == nil || v.GreaterThan(best) {
			best = v
		}
	}
	if best != nil {
		return best.String(), true
	}

	// All candidates unparseable: degrade to lexicographic selection.
	for _, c := range candidates {
		if c > latest {
			latest = c
		}
	}
	return latest, latest != ""
}

// IsNewer reports whether candidate is strictly newer than current.
// Either side failing to parse is an error; callers treat that as "unknown".
func IsNewer(current, candidate string) (bool, error) {
	cur, err := Parse(current)
	if err != nil {
		return false, err
	}
	cand, err := Parse(candidate)
	if err != nil {
		return false, err
	}
	return cand.GreaterThan(cur), nil
}
