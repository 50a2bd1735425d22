package catalog_test

import (
	"testing"

	"github.com/akiratakt/dawnfm/internal/catalog"
)

// TestSlugify tests slug derivation for piece deep links.
func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Parentheses stripped",
			input:    "After Hours (Deluxe)",
			expected: "after-hours-deluxe",
		},
		{
			name:     "Simple album name",
			input:    "House Of Balloons",
			expected: "house-of-balloons",
		},
		{
			name:     "Existing hyphens collapsed with spaces",
			input:    "Kiss Land -- Remixes",
			expected: "kiss-land-remixes",
		},
		{
			name:     "Leading and trailing noise trimmed",
			input:    "  Starboy!  ",
			expected: "starboy",
		},
		{
			name:     "Digits preserved",
			input:    "Mod Club 2011",
			expected: "mod-club-2011",
		},
		{
			name:     "Empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := catalog.Slugify(tc.input)
			if got != tc.expected {
				t.Errorf("Slugify(%q) = %q, want %q", tc.input, got, tc.expected)
			}
			if again := catalog.Slugify(got); again != got {
				t.Errorf("Slugify not idempotent: Slugify(%q) = %q", got, again)
			}
		})
	}
}

// TestUnSlug verifies the human-readable fallback form.
func TestUnSlug(t *testing.T) {
	t.Parallel()

	if got := catalog.UnSlug("after-hours-deluxe"); got != "after hours deluxe" {
		t.Errorf("UnSlug = %q, want %q", got, "after hours deluxe")
	}
}
