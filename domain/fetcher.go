package domain

import "context"

// Fetcher abstracts an upstream release source (RSS feed, OCI registry, ...).
// Implementations return the raw candidate version strings published by the
// source; they do not decide which one is the latest.
type Fetcher interface {
	// Name returns the fetcher identifier, matching Repository.Type.
	Name() string

	// Fetch returns all candidate version strings advertised at the URL.
	// The returned strings are raw; normalization happens downstream.
	Fetch(ctx context.Context, url string) ([]string, error)
}
