// Package genius implements the lyrics collaborator: a search against the
// Genius API followed by a scrape of the public lyrics page, since the API
// itself does not serve lyrics text.
package genius

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

const (
	defaultAPIBaseURL  = "https://api.genius.com"
	defaultSiteBaseURL = "https://genius.com"

	requestTimeout = 20 * time.Second
)

// ErrNotFound reports that no lyrics could be located for a track. It is a
// normal resolved outcome, not a failure: handlers turn it into a
// "no lyrics found" reply.
var ErrNotFound = errors.New("lyrics not found")

// Client fetches lyrics for a track by artist and title.
type Client interface {
	FetchLyrics(ctx context.Context, artist, title string) (string, error)
}

// NewClient returns a lyrics client backed by the Genius API. An empty token
// degrades the feature: the returned client reports ErrNotFound for every
// lookup instead of failing requests.
func NewClient(token string, logger *slog.Logger) Client {
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With("component", "genius_client")
	if token == "" {
		log.Warn("Genius token not configured, lyrics lookups disabled")
		return disabledClient{}
	}
	return &httpClient{
		token:       token,
		apiBaseURL:  defaultAPIBaseURL,
		siteBaseURL: defaultSiteBaseURL,
		http:        &http.Client{Timeout: requestTimeout},
		log:         log,
	}
}

type disabledClient struct{}

func (disabledClient) FetchLyrics(context.Context, string, string) (string, error) {
	return "", ErrNotFound
}

type httpClient struct {
	token       string
	apiBaseURL  string
	siteBaseURL string
	http        *http.Client
	log         *slog.Logger
}

func (c *httpClient) FetchLyrics(ctx context.Context, artist, title string) (string, error) {
	path, err := c.searchSongPath(ctx, artist, title)
	if err != nil {
		return "", err
	}

	raw, err := c.scrapeLyrics(ctx, path)
	if err != nil {
		return "", err
	}

	return CleanLyrics(raw), nil
}

// searchSongPath queries the Genius search API and returns the page path of
// the first hit, e.g. "/the-weeknd-faith-lyrics".
func (c *httpClient) searchSongPath(ctx context.Context, artist, title string) (string, error) {
	q := url.QueryEscape(artist + " " + title)
	endpoint := fmt.Sprintf("%s/search?q=%s", c.apiBaseURL, q)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("genius search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("genius search returned status %d", resp.StatusCode)
	}

	var parsed struct {
		Response struct {
			Hits []struct {
				Result struct {
					ID   int64  `json:"id"`
					Path string `json:"path"`
				} `json:"result"`
			} `json:"hits"`
		} `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode genius search response: %w", err)
	}

	if len(parsed.Response.Hits) == 0 {
		c.log.DebugContext(ctx, "Genius search returned no hits", "artist", artist, "title", title)
		return "", ErrNotFound
	}
	return parsed.Response.Hits[0].Result.Path, nil
}

var (
	lyricsContainerRe = regexp.MustCompile(`(?is)<div[^>]*data-lyrics-container="true"[^>]*>(.*?)</div>`)
	legacyLyricsRe    = regexp.MustCompile(`(?is)<div class="lyrics">(.*?)</div>`)
	brTagRe           = regexp.MustCompile(`(?i)<br\s*/?>`)
	anyTagRe          = regexp.MustCompile(`<[^>]+>`)
	headerLineRe      = regexp.MustCompile(`(?i)contributors|translations`)
	newlineRunRe      = regexp.MustCompile(`\n{3,}`)
)

// scrapeLyrics fetches the public lyrics page and extracts the raw lyrics
// text: first from the modern data-lyrics-container blocks, then from the
// legacy lyrics div as fallback.
func (c *httpClient) scrapeLyrics(ctx context.Context, songPath string) (string, error) {
	pageURL := c.siteBaseURL + songPath

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build page request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("genius page request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("genius page returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read genius page: %w", err)
	}
	page := string(body)

	if blocks := lyricsContainerRe.FindAllStringSubmatch(page, -1); len(blocks) > 0 {
		parts := make([]string, 0, len(blocks))
		for _, m := range blocks {
			parts = append(parts, stripTags(m[1]))
		}
		return strings.Join(parts, "\n\n"), nil
	}

	if m := legacyLyricsRe.FindStringSubmatch(page); m != nil {
		return strings.TrimSpace(stripTags(m[1])), nil
	}

	c.log.DebugContext(ctx, "No lyrics containers found on page", "url", pageURL)
	return "", ErrNotFound
}

// CleanLyrics normalizes scraped lyrics text: drops the page's
// "Contributors"/"Translations" header line, decodes HTML entities, strips
// leftover tags, and collapses runs of three or more newlines.
func CleanLyrics(raw string) string {
	lines := strings.Split(raw, "\n")
	if len(lines) > 0 && headerLineRe.MatchString(lines[0]) {
		lines = lines[1:]
	}
	cleaned := html.UnescapeString(strings.Join(lines, "\n"))
	cleaned = anyTagRe.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(cleaned)
	return newlineRunRe.ReplaceAllString(cleaned, "\n\n")
}

func stripTags(block string) string {
	withBreaks := brTagRe.ReplaceAllString(block, "\n")
	return anyTagRe.ReplaceAllString(withBreaks, "")
}
