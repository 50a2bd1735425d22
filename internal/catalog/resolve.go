package catalog

import "strings"

// Cardinality classifies the outcome of a free-text query: no match, a
// single match that gets a full detail view, or several matches that get a
// disambiguation list.
type Cardinality int

const (
	NoMatch Cardinality = iota
	OneMatch
	ManyMatches
)

// Entry is one candidate in a resolver universe. Display is the text the
// query is matched against; Aliases are additional match targets (a song's
// id, for example). Key carries whatever the caller needs to act on the
// match, usually a deep-link code.
type Entry struct {
	Key     string
	Display string
	Aliases []string
}

// Resolve narrows a universe by case-insensitive substring containment of
// the query in each entry's display text or aliases. Matches keep the
// universe's iteration order; there is no relevance ranking. A blank query
// is the caller's concern and is treated here as matching everything.
func Resolve(query string, universe []Entry) (Cardinality, []Entry) {
	q := strings.ToLower(query)
	var matches []Entry
	for _, e := range universe {
		if entryMatches(e, q) {
			matches = append(matches, e)
		}
	}
	switch len(matches) {
	case 0:
		return NoMatch, nil
	case 1:
		return OneMatch, matches
	default:
		return ManyMatches, matches
	}
}

// SongUniverse builds resolver entries for the song list: queries match
// against both the title and the catalog id.
func SongUniverse(songs []Song) []Entry {
	entries := make([]Entry, 0, len(songs))
	for _, s := range songs {
		entries = append(entries, Entry{Key: s.ID, Display: s.Title, Aliases: []string{s.ID}})
	}
	return entries
}

// CodedUniverse builds resolver entries for a coded name list (albums or
// tags): queries match against the display name only, never the code.
func CodedUniverse(coded []Coded) []Entry {
	entries := make([]Entry, 0, len(coded))
	for _, c := range coded {
		entries = append(entries, Entry{Key: c.Code, Display: c.Name})
	}
	return entries
}

func entryMatches(e Entry, loweredQuery string) bool {
	if strings.Contains(strings.ToLower(e.Display), loweredQuery) {
		return true
	}
	for _, alias := range e.Aliases {
		if strings.Contains(strings.ToLower(alias), loweredQuery) {
			return true
		}
	}
	return false
}
