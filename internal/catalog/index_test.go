package catalog_test

import (
	"testing"

	"github.com/akiratakt/dawnfm/internal/catalog"
)

// TestBuildIndexCodeUniqueness verifies that colliding base codes receive
// numeric suffixes and that every assigned code maps back to exactly one
// name.
func TestBuildIndexCodeUniqueness(t *testing.T) {
	t.Parallel()

	c := &catalog.Catalog{
		Songs: []catalog.Song{
			{ID: "s1", Title: "One", Album: "House Of Balloons", Category: "Album"},
			{ID: "s2", Title: "Two", Album: "Heroes Of Brooklyn", Category: "Album"},
			{ID: "s3", Title: "Three", Album: "Hall Of Bells", Category: "Album"},
		},
	}

	ix := catalog.BuildIndex(c)

	if len(ix.Albums) != 3 {
		t.Fatalf("expected 3 albums, got %d", len(ix.Albums))
	}

	// Lexicographic assignment order: Hall Of Bells, Heroes Of Brooklyn,
	// House Of Balloons. All three share base code HOB.
	wantCodes := map[string]string{
		"HOB":  "Hall Of Bells",
		"HOB1": "Heroes Of Brooklyn",
		"HOB2": "House Of Balloons",
	}
	for code, wantName := range wantCodes {
		name, ok := ix.AlbumName(code)
		if !ok {
			t.Errorf("code %q not assigned", code)
			continue
		}
		if name != wantName {
			t.Errorf("code %q = %q, want %q", code, name, wantName)
		}
	}

	seen := map[string]struct{}{}
	for _, a := range ix.Albums {
		if _, dup := seen[a.Code]; dup {
			t.Errorf("code %q assigned twice", a.Code)
		}
		seen[a.Code] = struct{}{}
	}
}

// TestBuildIndexEmptyBaseCode verifies that names with no code-able
// characters still receive usable numeric codes.
func TestBuildIndexEmptyBaseCode(t *testing.T) {
	t.Parallel()

	c := &catalog.Catalog{
		Songs: []catalog.Song{
			{ID: "s1", Title: "One", Album: "???", Category: "Single"},
			{ID: "s2", Title: "Two", Album: "!!!", Category: "Single"},
		},
	}

	ix := catalog.BuildIndex(c)

	if len(ix.Albums) != 2 {
		t.Fatalf("expected 2 albums, got %d", len(ix.Albums))
	}
	if _, ok := ix.AlbumName("1"); !ok {
		t.Errorf("expected code %q to be assigned", "1")
	}
	if _, ok := ix.AlbumName("2"); !ok {
		t.Errorf("expected code %q to be assigned", "2")
	}
}

// TestBuildIndexTagNormalization verifies synonym substitution and
// idempotence of tag normalization.
func TestBuildIndexTagNormalization(t *testing.T) {
	t.Parallel()

	synonyms := map[string]string{"mixtape": "Mixtape Era"}

	if got := catalog.NormalizeTag("  MIXTAPE ", synonyms); got != "Mixtape Era" {
		t.Errorf("NormalizeTag(%q) = %q, want %q", "  MIXTAPE ", got, "Mixtape Era")
	}
	// The canonical form is not itself a synonym key, so normalizing again
	// must be a no-op.
	if got := catalog.NormalizeTag("Mixtape Era", synonyms); got != "Mixtape Era" {
		t.Errorf("NormalizeTag(%q) = %q, want %q", "Mixtape Era", got, "Mixtape Era")
	}

	c := &catalog.Catalog{
		Songs: []catalog.Song{
			{ID: "s1", Title: "One", Album: "Thursday", Category: "MIXTAPE, chill"},
			{ID: "s2", Title: "Two", Album: "Thursday", Category: "mixtape"},
		},
		Synonyms: synonyms,
	}

	ix := catalog.BuildIndex(c)

	var names []string
	for _, tag := range ix.Tags {
		names = append(names, tag.Name)
	}
	want := []string{"Mixtape Era", "chill"}
	if len(names) != len(want) {
		t.Fatalf("tags = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("tags = %v, want %v", names, want)
		}
	}
}

// TestBuildIndexSplitsCommaAlbums verifies that multi-album fields
// contribute each trimmed piece once.
func TestBuildIndexSplitsCommaAlbums(t *testing.T) {
	t.Parallel()

	c := &catalog.Catalog{
		Songs: []catalog.Song{
			{ID: "s1", Title: "One", Album: "Starboy, After Hours", Category: "Single"},
			{ID: "s2", Title: "Two", Album: "After Hours", Category: "Single"},
		},
	}

	ix := catalog.BuildIndex(c)

	if len(ix.Albums) != 2 {
		t.Fatalf("expected 2 unique albums, got %d: %v", len(ix.Albums), ix.Albums)
	}
	if ix.Albums[0].Name != "After Hours" || ix.Albums[1].Name != "Starboy" {
		t.Errorf("albums not sorted lexicographically: %v", ix.Albums)
	}
}
