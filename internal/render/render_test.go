// Package render_test tests the render package.
package render_test

import (
	"strings"
	"testing"

	"github.com/akiratakt/dawnfm/internal/catalog"
	"github.com/akiratakt/dawnfm/internal/render"
)

// TestSplitLines verifies the line-atomic chunking behavior.
func TestSplitLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		maxLen   int
		expected []string
	}{
		{
			name:     "Empty input yields no chunks",
			text:     "",
			maxLen:   10,
			expected: nil,
		},
		{
			name:     "Single short line",
			text:     "hello",
			maxLen:   10,
			expected: []string{"hello"},
		},
		{
			name:     "Lines packed up to the limit",
			text:     "aaa\nbbb\nccc",
			maxLen:   7,
			expected: []string{"aaa\nbbb", "ccc"},
		},
		{
			name:     "Oversized line becomes its own chunk",
			text:     "short\n" + strings.Repeat("x", 20) + "\nend",
			maxLen:   10,
			expected: []string{"short", strings.Repeat("x", 20), "end"},
		},
		{
			name:     "Blank lines preserved",
			text:     "a\n\nb",
			maxLen:   100,
			expected: []string{"a\n\nb"},
		},
		{
			name:     "Leading blank line preserved",
			text:     "\na",
			maxLen:   100,
			expected: []string{"\na"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := render.SplitLines(tc.text, tc.maxLen)
			if len(got) != len(tc.expected) {
				t.Fatalf("SplitLines(%q) = %q, want %q", tc.text, got, tc.expected)
			}
			for i := range got {
				if got[i] != tc.expected[i] {
					t.Fatalf("SplitLines(%q) = %q, want %q", tc.text, got, tc.expected)
				}
			}
		})
	}
}

// TestSplitLinesReconstruction verifies that re-joining chunks with the
// split separator reconstructs the input exactly and that chunks respect the
// limit except for single oversized lines.
func TestSplitLinesReconstruction(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"one line",
		strings.Repeat("line of text\n", 800) + "tail",
		"a\n\n\nb\nc",
		strings.Repeat("y", 5000),
	}

	for _, text := range inputs {
		chunks := render.SplitLines(text, render.MaxMessageLen)
		if got := strings.Join(chunks, "\n"); got != text {
			t.Errorf("re-joined chunks differ from input (len %d vs %d)", len(got), len(text))
		}
		for _, chunk := range chunks {
			if len(chunk) > render.MaxMessageLen && strings.Contains(chunk, "\n") {
				t.Errorf("multi-line chunk exceeds limit: %d chars", len(chunk))
			}
		}
	}
}

// TestPayloads verifies deep-link payload encoding.
func TestPayloads(t *testing.T) {
	t.Parallel()

	if got := render.PlayPayload("Faith_AH"); got != "play_Faith_AH" {
		t.Errorf("PlayPayload = %q", got)
	}
	if got := render.LyricsPayload("Some Song"); got != "lyrics_Some+Song" {
		t.Errorf("LyricsPayload = %q", got)
	}
	if got := render.PiecePayload("After Hours (Deluxe)"); got != "piece_after-hours-deluxe" {
		t.Errorf("PiecePayload = %q", got)
	}
	want := "https://t.me/dawnfmbot?start=play_Faith_AH"
	if got := render.DeepLink("dawnfmbot", "play_Faith_AH"); got != want {
		t.Errorf("DeepLink = %q, want %q", got, want)
	}
}

// TestTrackList verifies the private and group listing variants.
func TestTrackList(t *testing.T) {
	t.Parallel()

	tracks := []catalog.Song{
		{ID: "Faith_AH", Title: "Faith", Artist: "The Weeknd", Album: "After Hours"},
		{ID: "Scared_HOB", Title: "The Knowing", Artist: "The Weeknd", Album: "House Of Balloons"},
	}

	private := render.TrackList(tracks, "dawnfmbot", true)
	if !strings.Contains(private, `1. <a href="https://t.me/dawnfmbot?start=play_Faith_AH">Faith</a>`) {
		t.Errorf("private list missing deep link line:\n%s", private)
	}
	if !strings.Contains(private, "2. ") {
		t.Errorf("private list not 1-indexed:\n%s", private)
	}

	group := render.TrackList(tracks, "dawnfmbot", false)
	if !strings.Contains(group, "<code>/play@dawnfmbot Faith_AH</code>") {
		t.Errorf("group list missing copyable command:\n%s", group)
	}
	if strings.Contains(group, "t.me") {
		t.Errorf("group list must not carry deep links:\n%s", group)
	}
}

// TestAudioCaption verifies the delivered-track caption layout.
func TestAudioCaption(t *testing.T) {
	t.Parallel()

	s := catalog.Song{Title: "Faith", Artist: "The Weeknd", Album: "After Hours"}
	got := render.AudioCaption(s)
	want := "<b>Song:</b> Faith\n<b>Album:</b> <i>After Hours</i>\n<b>Artist:</b> <i>The Weeknd</i>"
	if got != want {
		t.Errorf("AudioCaption = %q, want %q", got, want)
	}
}

// TestAlbumChoices verifies disambiguation entries link through piece slugs.
func TestAlbumChoices(t *testing.T) {
	t.Parallel()

	matches := []catalog.Entry{
		{Key: "AH", Display: "After Hours"},
		{Key: "AHD", Display: "After Hours (Deluxe)"},
	}

	got := render.AlbumChoices(matches, "dawnfmbot", true)
	if !strings.Contains(got, "start=piece_after-hours") {
		t.Errorf("missing piece slug link:\n%s", got)
	}
	if !strings.Contains(got, "start=piece_after-hours-deluxe") {
		t.Errorf("missing deluxe piece slug link:\n%s", got)
	}
}

// TestSearchResults verifies hits are grouped under their album header.
func TestSearchResults(t *testing.T) {
	t.Parallel()

	found := []catalog.Song{
		{ID: "s1", Title: "Faith", Album: "After Hours"},
		{ID: "s2", Title: "Alone Again", Album: "After Hours"},
		{ID: "s3", Title: "Sacrifice", Album: "Dawn FM"},
	}

	got := render.SearchResults(found, "dawnfmbot")
	if strings.Count(got, "<b>Album:</b> <b>[After Hours]</b>") != 1 {
		t.Errorf("After Hours header not rendered exactly once:\n%s", got)
	}
	if !strings.Contains(got, "<b>Album:</b> <b>[Dawn FM]</b>") {
		t.Errorf("Dawn FM header missing:\n%s", got)
	}
	faith := strings.Index(got, "Faith")
	alone := strings.Index(got, "Alone Again")
	if faith == -1 || alone == -1 || faith > alone {
		t.Errorf("catalog order not preserved within album:\n%s", got)
	}
}

// TestBoldChunks verifies lyrics chunk wrapping.
func TestBoldChunks(t *testing.T) {
	t.Parallel()

	got := render.BoldChunks([]string{"a", "b"})
	if len(got) != 2 || got[0] != "<b>a</b>" || got[1] != "<b>b</b>" {
		t.Errorf("BoldChunks = %v", got)
	}
}
