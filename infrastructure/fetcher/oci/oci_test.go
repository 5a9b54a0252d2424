package oci //nolint:testpackage // tests unexported helpers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitReference(t *testing.T) {
	t.Parallel()

	t.Run("should split host and repository path", func(t *testing.T) {
		t.Parallel()

		// when
		host, repo, err := splitReference("oci://ghcr.io/chaos-mesh/chaos-mesh")

		// then
		require.NoError(t, err)
		assert.Equal(t, "ghcr.io", host)
		assert.Equal(t, "chaos-mesh/chaos-mesh", repo)
	})

	t.Run("should reject a URL without the oci scheme", func(t *testing.T) {
		t.Parallel()

		// when
		_, _, err := splitReference("https://ghcr.io/org/repo")

		// then
		require.Error(t, err)
	})

	t.Run("should reject a URL without a repository path", func(t *testing.T) {
		t.Parallel()

		// when
		_, _, err := splitReference("oci://ghcr.io")

		// then
		require.Error(t, err)
	})
}

func TestAPIHost(t *testing.T) {
	t.Parallel()

	t.Run("should remap docker.io to its registry API host", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "registry-1.docker.io", apiHost("docker.io"))
	})

	t.Run("should pass other hosts through", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "ghcr.io", apiHost("ghcr.io"))
	})
}

func TestRegistryScheme(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		host     string
		expected string
	}{
		{name: "should use http for localhost", host: "localhost:5000", expected: "http"},
		{name: "should use http for loopback", host: "127.0.0.1:5000", expected: "http"},
		{name: "should use https for public registries", host: "ghcr.io", expected: "https"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, registryScheme(tt.host))
		})
	}
}

func TestNextLink(t *testing.T) {
	t.Parallel()

	t.Run("should resolve a relative next link against the current host", func(t *testing.T) {
		t.Parallel()

		// given
		header := `</v2/org/repo/tags/list?last=v1.0.0&n=100>; rel="next"`
		current := "https://ghcr.io/v2/org/repo/tags/list?n=100"

		// when
		next, err := nextLink(header, current)

		// then
		require.NoError(t, err)
		assert.Equal(t, "https://ghcr.io/v2/org/repo/tags/list?last=v1.0.0&n=100", next)
	})

	t.Run("should keep an absolute next link", func(t *testing.T) {
		t.Parallel()

		// given
		header := `<https://mirror.example.com/v2/org/repo/tags/list?last=x>; rel="next"`

		// when
		next, err := nextLink(header, "https://ghcr.io/v2/org/repo/tags/list")

		// then
		require.NoError(t, err)
		assert.Equal(t, "https://mirror.example.com/v2/org/repo/tags/list?last=x", next)
	})

	t.Run("should terminate without a next relation", func(t *testing.T) {
		t.Parallel()

		// when
		next, err := nextLink(`</v2/_catalog>; rel="prev"`, "https://ghcr.io/v2/x/tags/list")

		// then
		require.NoError(t, err)
		assert.Empty(t, next)
	})

	t.Run("should terminate on an empty header", func(t *testing.T) {
		t.Parallel()

		// when
		next, err := nextLink("", "https://ghcr.io/v2/x/tags/list")

		// then
		require.NoError(t, err)
		assert.Empty(t, next)
	})
}

// newTagServer serves a two-page tag list for repository org/app, linking
// page one to page two via a relative Link header.
func newTagServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/v2/org/app/tags/list", func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))

		var tags []string
		if r.URL.Query().Get("last") == "" {
			w.Header().Set("Link", `</v2/org/app/tags/list?last=latest&n=100>; rel="next"`)
			tags = []string{"v1.0.0", "latest"}
		} else {
			tags = []string{"v1.1.0", "1.1.0-rc"}
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"name": "org/app", "tags": tags})
	})

	return httptest.NewServer(mux)
}

func TestFetch(t *testing.T) {
	t.Parallel()

	t.Run("should accumulate paginated tags and keep only strict triples", func(t *testing.T) {
		t.Parallel()

		// given
		server := newTagServer(t)
		defer server.Close()
		host := strings.TrimPrefix(server.URL, "http://")

		// when
		versions, err := New(server.Client(), "").Fetch(
			context.Background(), "oci://"+host+"/org/app",
		)

		// then
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"1.0.0", "1.1.0"}, versions)
	})

	t.Run("should send a configured token as a bearer credential", func(t *testing.T) {
		t.Parallel()

		// given
		var authHeader string
		server := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				authHeader = r.Header.Get("Authorization")
				_ = json.NewEncoder(w).Encode(map[string]any{"tags": []string{"2.0.0"}})
			}))
		defer server.Close()
		host := strings.TrimPrefix(server.URL, "http://")

		// when
		versions, err := New(server.Client(), "s3cr3t").Fetch(
			context.Background(), "oci://"+host+"/org/app",
		)

		// then
		require.NoError(t, err)
		assert.Equal(t, "Bearer s3cr3t", authHeader)
		assert.Equal(t, []string{"2.0.0"}, versions)
	})

	t.Run("should fail on a non-OK tags response", func(t *testing.T) {
		t.Parallel()

		// given
		server := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			}))
		defer server.Close()
		host := strings.TrimPrefix(server.URL, "http://")

		// when
		_, err := New(server.Client(), "").Fetch(context.Background(), "oci://"+host+"/org/app")

		// then
		require.Error(t, err)
	})

	t.Run("should stop pagination at the page cap", func(t *testing.T) {
		t.Parallel()

		// given: a registry that always advertises a next page
		requests := 0
		server := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				requests++
				w.Header().Set("Link",
					fmt.Sprintf(`<%s?last=%d>; rel="next"`, r.URL.Path, requests))
				_ = json.NewEncoder(w).Encode(map[string]any{"tags": []string{"1.0.0"}})
			}))
		defer server.Close()
		host := strings.TrimPrefix(server.URL, "http://")

		// when
		versions, err := New(server.Client(), "").Fetch(
			context.Background(), "oci://"+host+"/org/app",
		)

		// then
		require.NoError(t, err)
		assert.Equal(t, maxPages, requests)
		assert.Len(t, versions, maxPages)
	})
}
