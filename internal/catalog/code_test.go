// Package catalog_test tests the catalog package.
package catalog_test

import (
	"testing"

	"github.com/akiratakt/dawnfm/internal/catalog"
)

// TestCodeOf tests the deep-link code derivation rules for display names.
func TestCodeOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Title-case words reduce to initials",
			input:    "House Of Balloons",
			expected: "HOB",
		},
		{
			name:     "Numeric token kept whole",
			input:    "Mod Club 2011",
			expected: "MC2011",
		},
		{
			name:     "Acronym token kept whole",
			input:    "DJ Mustard",
			expected: "DJM",
		},
		{
			name:     "Internal uppercase kept whole",
			input:    "My iPhone Mixes",
			expected: "MiPhoneM",
		},
		{
			name:     "Punctuation treated as separator",
			input:    "After Hours (Deluxe)",
			expected: "AHD",
		},
		{
			name:     "Lowercase words reduce to uppercased initials",
			input:    "echoes of silence",
			expected: "EOS",
		},
		{
			name:     "Single letter word",
			input:    "A",
			expected: "A",
		},
		{
			name:     "All punctuation yields empty code",
			input:    "!!!",
			expected: "",
		},
		{
			name:     "Empty input yields empty code",
			input:    "",
			expected: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := catalog.CodeOf(tc.input)
			if got != tc.expected {
				t.Errorf("CodeOf(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

// TestCodeOfDeterminism verifies that repeated derivation yields identical
// codes.
func TestCodeOfDeterminism(t *testing.T) {
	t.Parallel()

	names := []string{"House Of Balloons", "Thursday", "Echoes Of Silence", "Mod Club 2011"}
	for _, name := range names {
		first := catalog.CodeOf(name)
		for i := 0; i < 5; i++ {
			if got := catalog.CodeOf(name); got != first {
				t.Fatalf("CodeOf(%q) unstable: %q then %q", name, first, got)
			}
		}
	}
}
