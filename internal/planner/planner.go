// Package planner decides, per marker, whether an update is warranted.
package planner

import (
	"github.com/rios0rios0/watchdog/domain"
	"github.com/rios0rios0/watchdog/internal/version"
)

// Planner joins scanned markers with fetched candidate versions.
type Planner struct{}

// New creates an update planner.
func New() *Planner {
	return &Planner{}
}

// Decide evaluates one marker against the dependency's candidate list.
// The same total ordering is applied regardless of where the candidates
// came from, including the pre-release-below-release rule, so a marker
// pinned to a pre-release is flagged as updatable to the final release
// with equal segments.
func (p *Planner) Decide(
	marker domain.VersionMarker,
	candidates []string,
) domain.UpdateDecision {
	latest, ok := version.Latest(candidates)
	if !ok {
		return domain.UpdateDecision{Marker: marker, Result: domain.OutcomeUnknown}
	}

	newer, err := version.IsNewer(marker.Current, latest)
	if err != nil {
		// Latest resolved but one side is unparseable (lexicographic
		// fallback or a non-semver pin): cannot compare.
		return domain.UpdateDecision{Marker: marker, Latest: latest, Result: domain.OutcomeUnknown}
	}

	result := domain.OutcomeUpToDate
	if newer {
		result = domain.OutcomeUpdateAvailable
	}
	return domain.UpdateDecision{Marker: marker, Latest: latest, Result: result}
}
