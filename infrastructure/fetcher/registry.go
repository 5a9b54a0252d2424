// Package fetcher manages the registered upstream source implementations.
package fetcher

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rios0rios0/watchdog/domain"
	"github.com/rios0rios0/watchdog/infrastructure/fetcher/oci"
	"github.com/rios0rios0/watchdog/infrastructure/fetcher/rss"
)

// fetchTimeout bounds every upstream request. Timeout or transport errors
// degrade the affected dependency to an empty candidate list, never the run.
const fetchTimeout = 10 * time.Second

// Factory is a constructor that creates a Fetcher for one dependency,
// given the shared HTTP client and an optional credential.
type Factory func(client *http.Client, token string) domain.Fetcher

// Registry manages all registered source fetcher implementations.
type Registry struct {
	client    *http.Client
	factories map[string]Factory
}

// NewHTTPClient returns the shared client used for all upstream requests.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: fetchTimeout}
}

// NewRegistry creates an empty registry backed by the given client.
func NewRegistry(client *http.Client) *Registry {
	return &Registry{
		client:    client,
		factories: make(map[string]Factory),
	}
}

// NewDefaultRegistry creates a registry with the built-in fetchers
// registered: "rss" and "oci".
func NewDefaultRegistry(client *http.Client) *Registry {
	r := NewRegistry(client)
	r.Register(domain.RepositoryTypeRSS, func(c *http.Client, _ string) domain.Fetcher {
		return rss.New(c)
	})
	r.Register(domain.RepositoryTypeOCI, func(c *http.Client, token string) domain.Fetcher {
		return oci.New(c, token)
	})
	return r
}

// Register adds a fetcher factory under the given repository type tag.
func (r *Registry) Register(name string, factory Factory) {
	r.factories[name] = factory
}

// Get returns a configured fetcher for the given repository type. The type
// tag determines the fetch strategy exclusively; no dependency is resolved
// against two strategies.
func (r *Registry) Get(name, token string) (domain.Fetcher, error) {
	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown repository type: %q", name)
	}
	return factory(r.client, token), nil
}

// Names returns the list of registered repository types.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	return names
}
