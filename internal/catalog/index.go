package catalog

import (
	"sort"
	"strings"
)

// Coded pairs a display name with its assigned deep-link code.
type Coded struct {
	Code string
	Name string
}

// Index holds the lookup structures derived from one catalog load: the
// sorted unique album list, the sorted unique category-tag list (after
// synonym normalization), and the bijective code maps for both.
//
// The index is rebuilt fresh on every inbound request; it is a pure function
// of the static tables, so there is no shared mutable state across requests.
// Codes are bijective within one load but not stable across catalog edits:
// adding or removing a name can shift collision suffixes.
type Index struct {
	Albums []Coded
	Tags   []Coded

	albumByCode map[string]string
	tagByCode   map[string]string
}

// BuildIndex derives the album and category indexes from the catalog.
// Names are sorted lexicographically before code assignment so that the
// collision-suffix outcome is deterministic.
func BuildIndex(c *Catalog) *Index {
	albumSet := map[string]struct{}{}
	tagSet := map[string]struct{}{}
	for _, s := range c.Songs {
		for _, piece := range strings.Split(s.Album, ",") {
			if name := strings.TrimSpace(piece); name != "" {
				albumSet[name] = struct{}{}
			}
		}
		for _, raw := range strings.Split(s.Category, ",") {
			if tag := NormalizeTag(raw, c.Synonyms); tag != "" {
				tagSet[tag] = struct{}{}
			}
		}
	}

	ix := &Index{
		albumByCode: map[string]string{},
		tagByCode:   map[string]string{},
	}
	ix.Albums = assignCodes(sortedKeys(albumSet), ix.albumByCode)
	ix.Tags = assignCodes(sortedKeys(tagSet), ix.tagByCode)
	return ix
}

// AlbumName resolves an album code back to its display name.
func (ix *Index) AlbumName(code string) (string, bool) {
	name, ok := ix.albumByCode[code]
	return name, ok
}

// TagName resolves a category code back to its canonical tag name.
func (ix *Index) TagName(code string) (string, bool) {
	name, ok := ix.tagByCode[code]
	return name, ok
}

func assignCodes(names []string, byCode map[string]string) []Coded {
	taken := codeSet{}
	out := make([]Coded, 0, len(names))
	for _, name := range names {
		code := taken.assign(CodeOf(name))
		byCode[code] = name
		out = append(out, Coded{Code: code, Name: name})
	}
	return out
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
