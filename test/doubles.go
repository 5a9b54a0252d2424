// Package testdoubles provides test doubles (spies, stubs, dummies) for
// domain interfaces. These are hand-crafted implementations — no mock
// frameworks.
package testdoubles

import (
	"context"
)

// StubFetcher implements domain.Fetcher as a configurable stub.
// Configure Versions or FetchErr for the behavior your test exercises,
// then inspect RequestedURLs to verify dispatch.
type StubFetcher struct {
	// --- identity ---
	FetcherName string

	// --- Fetch ---
	Versions []string
	FetchErr error
	// spy: URLs that were requested
	RequestedURLs []string
}

// Name returns the configured fetcher name, defaulting to "stub".
func (s *StubFetcher) Name() string {
	if s.FetcherName == "" {
		return "stub"
	}
	return s.FetcherName
}

// Fetch records the requested URL and returns the configured response.
func (s *StubFetcher) Fetch(_ context.Context, url string) ([]string, error) {
	s.RequestedURLs = append(s.RequestedURLs, url)
	if s.FetchErr != nil {
		return nil, s.FetchErr
	}
	return s.Versions, nil
}
