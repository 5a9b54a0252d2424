// Package rss fetches candidate versions from RSS release feeds.
package rss

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"regexp"

	"github.com/rios0rios0/watchdog/domain"
)

// versionPattern extracts the first embedded numeric triple from an item
// title, e.g. "chaos-mesh 2.7.0" -> "2.7.0".
var versionPattern = regexp.MustCompile(`(\d+\.\d+\.\d+)`)

// Fetcher implements domain.Fetcher for RSS feeds.
type Fetcher struct {
	client *http.Client
}

// New creates an RSS fetcher using the given HTTP client.
func New(client *http.Client) *Fetcher {
	return &Fetcher{client: client}
}

// Name returns the repository type tag this fetcher handles.
func (f *Fetcher) Name() string {
	return domain.RepositoryTypeRSS
}

// Fetch downloads the feed and returns a version string per item title that
// embeds one. Titles without a version are skipped. Duplicates are kept;
// they are harmless to max-selection.
func (f *Fetcher) Fetch(ctx context.Context, feedURL string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build feed request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed %q: %w", feedURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed %q returned status %d", feedURL, resp.StatusCode)
	}

	titles, err := itemTitles(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed %q: %w", feedURL, err)
	}

	var versions []string
	for _, title := range titles {
		if match := versionPattern.FindString(title); match != "" {
			versions = append(versions, match)
		}
	}

	return versions, nil
}

// itemTitles walks the XML document and collects the title of every <item>
// element, wherever it appears (RSS 2.0 nests items under <channel>, RDF
// feeds keep them at the top level).
func itemTitles(r io.Reader) ([]string, error) {
	decoder := xml.NewDecoder(r)

	var titles []string
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "item" {
			continue
		}

		var item struct {
			Title string `xml:"title"`
		}
		if decodeErr := decoder.DecodeElement(&item, &start); decodeErr != nil {
			return nil, decodeErr
		}
		if item.Title != "" {
			titles = append(titles, item.Title)
		}
	}

	return titles, nil
}
