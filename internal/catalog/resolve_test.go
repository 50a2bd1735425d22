package catalog_test

import (
	"testing"

	"github.com/akiratakt/dawnfm/internal/catalog"
)

// TestResolveCardinality verifies the NONE/ONE/MANY classification over an
// album universe.
func TestResolveCardinality(t *testing.T) {
	t.Parallel()

	albums := []catalog.Coded{
		{Code: "AH", Name: "After Hours"},
		{Code: "S", Name: "Starboy"},
		{Code: "AHD", Name: "After Hours (Deluxe)"},
	}
	universe := catalog.CodedUniverse(albums)

	tests := []struct {
		name        string
		query       string
		cardinality catalog.Cardinality
		matchCount  int
	}{
		{
			name:        "Substring hits both variants",
			query:       "after",
			cardinality: catalog.ManyMatches,
			matchCount:  2,
		},
		{
			name:        "Exact lowercase single hit",
			query:       "starboy",
			cardinality: catalog.OneMatch,
			matchCount:  1,
		},
		{
			name:        "No hit",
			query:       "zzz",
			cardinality: catalog.NoMatch,
			matchCount:  0,
		},
		{
			name:        "Case-insensitive",
			query:       "STAR",
			cardinality: catalog.OneMatch,
			matchCount:  1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			card, matches := catalog.Resolve(tc.query, universe)
			if card != tc.cardinality {
				t.Errorf("Resolve(%q) cardinality = %v, want %v", tc.query, card, tc.cardinality)
			}
			if len(matches) != tc.matchCount {
				t.Errorf("Resolve(%q) matches = %d, want %d", tc.query, len(matches), tc.matchCount)
			}
		})
	}
}

// TestResolvePreservesOrder verifies that matches keep the universe's
// iteration order.
func TestResolvePreservesOrder(t *testing.T) {
	t.Parallel()

	albums := []catalog.Coded{
		{Code: "AH", Name: "After Hours"},
		{Code: "AHD", Name: "After Hours (Deluxe)"},
	}

	_, matches := catalog.Resolve("after", catalog.CodedUniverse(albums))
	if len(matches) != 2 || matches[0].Key != "AH" || matches[1].Key != "AHD" {
		t.Fatalf("unexpected match order: %+v", matches)
	}
}

// TestSongUniverseMatchesID verifies that song queries match the catalog id
// as well as the title.
func TestSongUniverseMatchesID(t *testing.T) {
	t.Parallel()

	songs := []catalog.Song{
		{ID: "Faith_AH", Title: "Faith", Album: "After Hours"},
		{ID: "Sacrifice_D", Title: "Sacrifice", Album: "Dawn FM"},
	}
	universe := catalog.SongUniverse(songs)

	card, matches := catalog.Resolve("faith_ah", universe)
	if card != catalog.OneMatch {
		t.Fatalf("expected OneMatch by id, got %v", card)
	}
	if matches[0].Key != "Faith_AH" {
		t.Errorf("match key = %q, want %q", matches[0].Key, "Faith_AH")
	}

	card, matches = catalog.Resolve("sacr", universe)
	if card != catalog.OneMatch || matches[0].Key != "Sacrifice_D" {
		t.Errorf("title match failed: %v %+v", card, matches)
	}
}
