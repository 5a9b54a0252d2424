// Package oci fetches candidate versions from OCI registry tag lists.
package oci

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/watchdog/domain"
	"github.com/rios0rios0/watchdog/internal/version"
)

const (
	scheme = "oci://"

	// maxPages caps the tag-list pagination loop so a misbehaving registry
	// returning cyclic next-links cannot hang the run.
	maxPages = 100

	pageSize = 100
)

// Fetcher implements domain.Fetcher for OCI registries using the
// distribution v2 tag-list API with anonymous pull tokens.
type Fetcher struct {
	client *http.Client
	token  string // configured credential; overrides the anonymous flow
}

// New creates an OCI fetcher using the given HTTP client. token may be
// empty, in which case well-known registries are queried with an anonymous
// pull token and everything else unauthenticated.
func New(client *http.Client, token string) *Fetcher {
	return &Fetcher{client: client, token: token}
}

// Name returns the repository type tag this fetcher handles.
func (f *Fetcher) Name() string {
	return domain.RepositoryTypeOCI
}

// Fetch lists all tags of the repository at an oci://registry/repository URL
// and returns those matching a strict major.minor.patch triple, normalized
// by stripping the "v" prefix.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) ([]string, error) {
	host, repository, err := splitReference(rawURL)
	if err != nil {
		return nil, err
	}

	token := f.token
	if token == "" {
		token, err = f.anonymousToken(ctx, host, repository)
		if err != nil {
			return nil, err
		}
	}

	tags, err := f.listTags(ctx, apiHost(host), repository, token)
	if err != nil {
		return nil, err
	}

	var versions []string
	for _, tag := range tags {
		if version.IsStrictTriple(tag) {
			versions = append(versions, strings.TrimPrefix(tag, "v"))
		}
	}

	return versions, nil
}

// splitReference separates the registry host from the repository path in an
// oci:// URL: first path segment vs. remainder.
func splitReference(rawURL string) (host, repository string, err error) {
	ref, ok := strings.CutPrefix(rawURL, scheme)
	if !ok {
		return "", "", fmt.Errorf("invalid OCI URL %q: missing %s prefix", rawURL, scheme)
	}

	host, repository, ok = strings.Cut(ref, "/")
	if !ok || host == "" || repository == "" {
		return "", "", fmt.Errorf("invalid OCI URL %q: expected oci://registry/repository", rawURL)
	}

	return host, repository, nil
}

// apiHost remaps login hosts whose registry API lives elsewhere.
// Docker Hub is the notable case: docker.io -> registry-1.docker.io.
func apiHost(host string) string {
	if host == "docker.io" {
		return "registry-1.docker.io"
	}
	return host
}

// registryScheme picks plain HTTP for local registries so the fetcher can be
// pointed at a development registry without TLS.
func registryScheme(host string) string {
	bare := host
	if h, _, ok := strings.Cut(host, ":"); ok {
		bare = h
	}
	if bare == "localhost" || bare == "127.0.0.1" {
		return "http"
	}
	return "https"
}

// anonymousToken obtains a bearer token from the registry's anonymous-pull
// token endpoint. GitHub Container Registry and Docker Hub have distinct
// well-known endpoints keyed by repository scope; other registries are
// queried unauthenticated (empty token).
func (f *Fetcher) anonymousToken(ctx context.Context, host, repository string) (string, error) {
	var endpoint string
	switch host {
	case "ghcr.io":
		endpoint = fmt.Sprintf(
			"https://ghcr.io/token?service=ghcr.io&scope=repository:%s:pull",
			url.QueryEscape(repository),
		)
	case "docker.io", "registry-1.docker.io":
		endpoint = fmt.Sprintf(
			"https://auth.docker.io/token?service=registry.docker.io&scope=repository:%s:pull",
			url.QueryEscape(repository),
		)
	default:
		return "", nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build token request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch pull token for %q: %w", repository, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token endpoint for %q returned status %d", host, resp.StatusCode)
	}

	var result struct {
		Token string `json:"token"`
	}
	if decodeErr := json.NewDecoder(resp.Body).Decode(&result); decodeErr != nil {
		return "", fmt.Errorf("failed to parse token response: %w", decodeErr)
	}

	return result.Token, nil
}

// listTags accumulates the registry's tag list, following RFC 5988
// Link rel="next" headers until none remains or the page cap is reached.
func (f *Fetcher) listTags(
	ctx context.Context,
	host, repository, token string,
) ([]string, error) {
	base := fmt.Sprintf("%s://%s", registryScheme(host), host)
	next := fmt.Sprintf("%s/v2/%s/tags/list?n=%d", base, repository, pageSize)

	var allTags []string
	for page := 0; next != ""; page++ {
		if page >= maxPages {
			logger.Warnf(
				"Tag listing for %q did not terminate after %d pages, truncating",
				repository, maxPages,
			)
			break
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, next, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to build tags request: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}

		resp, err := f.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("failed to list tags for %q: %w", repository, err)
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("tags endpoint for %q returned status %d", repository, resp.StatusCode)
		}

		var result struct {
			Name string   `json:"name"`
			Tags []string `json:"tags"`
		}
		decodeErr := json.NewDecoder(resp.Body).Decode(&result)
		link := resp.Header.Get("Link")
		resp.Body.Close()

		if decodeErr != nil {
			return nil, fmt.Errorf("failed to parse tags response for %q: %w", repository, decodeErr)
		}

		allTags = append(allTags, result.Tags...)

		next, err = nextLink(link, next)
		if err != nil {
			return nil, err
		}
	}

	return allTags, nil
}

// nextLink extracts the rel="next" target from a Link header and resolves it
// against the URL of the page just fetched. An empty header or one without a
// next relation terminates pagination.
func nextLink(header, current string) (string, error) {
	if header == "" {
		return "", nil
	}

	for _, part := range strings.Split(header, ",") {
		segments := strings.Split(part, ";")
		if len(segments) < 2 {
			continue
		}

		target := strings.Trim(strings.TrimSpace(segments[0]), "<>")
		rel := ""
		for _, param := range segments[1:] {
			key, value, ok := strings.Cut(strings.TrimSpace(param), "=")
			if ok && strings.TrimSpace(key) == "rel" {
				rel = strings.Trim(strings.TrimSpace(value), `"`)
			}
		}
		if rel != "next" {
			continue
		}

		base, err := url.Parse(current)
		if err != nil {
			return "", fmt.Errorf("invalid current page URL %q: %w", current, err)
		}
		ref, err := url.Parse(target)
		if err != nil {
			return "", fmt.Errorf("invalid next link %q: %w", target, err)
		}
		return base.ResolveReference(ref).String(), nil
	}

	return "", nil
}
