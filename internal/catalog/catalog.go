// Package catalog holds the static song catalog and the lookup structures
// derived from it: album and category indexes, short deep-link codes, slugs,
// and the substring query resolver.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Song is one entry of the static catalog. The album and category fields may
// each carry a comma-joined list of names.
type Song struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	Album    string `json:"album"`
	Category string `json:"category"`
	FileID   string `json:"file_id"`
}

// Catalog bundles the immutable tables loaded at startup: the song list, the
// album cover map (album display name -> image URL), and the category synonym
// map (lowercased raw tag -> canonical display name).
type Catalog struct {
	Songs    []Song
	Covers   map[string]string
	Synonyms map[string]string
}

// Load reads the catalog tables from disk. The songs file is required; the
// covers and synonyms files are optional and default to empty maps when the
// path is empty or the file does not exist.
func Load(songsPath, coversPath, synonymsPath string) (*Catalog, error) {
	c := &Catalog{
		Covers:   map[string]string{},
		Synonyms: map[string]string{},
	}

	data, err := os.ReadFile(songsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read songs file: %w", err)
	}
	if err := json.Unmarshal(data, &c.Songs); err != nil {
		return nil, fmt.Errorf("failed to parse songs file %s: %w", songsPath, err)
	}

	if err := loadOptionalMap(coversPath, &c.Covers); err != nil {
		return nil, fmt.Errorf("failed to load covers file: %w", err)
	}
	if err := loadOptionalMap(synonymsPath, &c.Synonyms); err != nil {
		return nil, fmt.Errorf("failed to load category synonyms file: %w", err)
	}

	return c, nil
}

func loadOptionalMap(path string, dst *map[string]string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// Cover returns the cover image URL for an album display name, if one exists.
func (c *Catalog) Cover(album string) (string, bool) {
	url, ok := c.Covers[strings.TrimSpace(album)]
	return url, ok && url != ""
}

// SongByID returns the song with the given catalog id.
func (c *Catalog) SongByID(id string) (Song, bool) {
	for _, s := range c.Songs {
		if s.ID == id {
			return s, true
		}
	}
	return Song{}, false
}

// SongsInAlbum returns all songs whose album field, split on commas, contains
// the given album display name, in catalog order.
func (c *Catalog) SongsInAlbum(album string) []Song {
	var out []Song
	for _, s := range c.Songs {
		if containsTrimmed(s.Album, album) {
			out = append(out, s)
		}
	}
	return out
}

// SongsWithTag returns all songs carrying the given canonical category tag.
// Raw category tokens are normalized through the synonym map before the
// comparison; normalization is idempotent, so already-canonical data matches
// unchanged.
func (c *Catalog) SongsWithTag(tag string) []Song {
	var out []Song
	for _, s := range c.Songs {
		for _, raw := range strings.Split(s.Category, ",") {
			if NormalizeTag(raw, c.Synonyms) == tag {
				out = append(out, s)
				break
			}
		}
	}
	return out
}

// SongsForSlug returns all songs whose slugified album field equals slug.
// Distinct album names that slugify identically are not told apart: the
// first match's literal album name is treated as canonical by callers.
func (c *Catalog) SongsForSlug(slug string) []Song {
	var out []Song
	for _, s := range c.Songs {
		if Slugify(s.Album) == slug {
			out = append(out, s)
		}
	}
	return out
}

// NormalizeTag maps a raw comma-separated category token to its canonical
// display name. Unknown tokens pass through trimmed, which makes the
// normalization idempotent.
func NormalizeTag(raw string, synonyms map[string]string) string {
	trimmed := strings.TrimSpace(raw)
	if canonical, ok := synonyms[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	return trimmed
}

func containsTrimmed(list, want string) bool {
	for _, piece := range strings.Split(list, ",") {
		if strings.TrimSpace(piece) == want {
			return true
		}
	}
	return false
}
