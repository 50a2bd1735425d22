// Package render assembles the outbound message texts: deep links, track
// listings, disambiguation lists, captions, and the line-preserving chunking
// that keeps every message within Telegram's payload limit.
package render

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/akiratakt/dawnfm/internal/catalog"
)

// MaxMessageLen is the chunking limit applied to every multi-line response.
const MaxMessageLen = 4000

// SplitLines packs consecutive newline-separated lines into chunks of at
// most maxLen characters. Lines are never split: a single line longer than
// maxLen becomes its own oversized chunk. Re-joining the chunks with "\n"
// reconstructs the input exactly.
func SplitLines(text string, maxLen int) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	var chunks []string
	current := lines[0]
	for _, line := range lines[1:] {
		if len(current)+1+len(line) > maxLen {
			chunks = append(chunks, current)
			current = line
		} else {
			current += "\n" + line
		}
	}
	return append(chunks, current)
}

// DeepLink builds the /start URL that re-enters the bot with a payload.
func DeepLink(botUsername, payload string) string {
	return fmt.Sprintf("https://t.me/%s?start=%s", botUsername, payload)
}

// PlayPayload encodes a track id into a play deep-link payload.
func PlayPayload(id string) string {
	return "play_" + url.QueryEscape(id)
}

// LyricsPayload encodes a track id into a lyrics deep-link payload.
func LyricsPayload(id string) string {
	return "lyrics_" + url.QueryEscape(id)
}

// PiecePayload encodes an album display name into a slug deep-link payload,
// used where no pre-assigned code is at hand (disambiguation lists).
func PiecePayload(albumName string) string {
	return "piece_" + catalog.Slugify(albumName)
}

// AudioCaption is the HTML caption attached to a delivered track.
func AudioCaption(s catalog.Song) string {
	return strings.Join([]string{
		fmt.Sprintf("<b>Song:</b> %s", s.Title),
		fmt.Sprintf("<b>Album:</b> <i>%s</i>", s.Album),
		fmt.Sprintf("<b>Artist:</b> <i>%s</i>", s.Artist),
	}, "\n")
}

// Header renders the bolded bracket header used atop detail views.
func Header(name string) string {
	return fmt.Sprintf("<b>[%s]</b>", name)
}

// TrackList renders a 1-indexed track listing. Private chats get play deep
// links; group chats get copyable /play command lines instead, since deep
// links would bounce the whole group into a private conversation.
func TrackList(tracks []catalog.Song, botUsername string, private bool) string {
	lines := make([]string, 0, len(tracks))
	for i, s := range tracks {
		if private {
			u := DeepLink(botUsername, PlayPayload(s.ID))
			lines = append(lines, fmt.Sprintf(`%d. <a href="%s">%s</a> — <i>%s</i>`, i+1, u, s.Title, s.Artist))
		} else {
			lines = append(lines, fmt.Sprintf("<b>•%s — %s</b>\n<code>/play@%s %s</code>", s.Title, s.Artist, botUsername, s.ID))
		}
	}
	return strings.Join(lines, "\n")
}

// SongChoices renders the disambiguation list for a multi-match song query.
func SongChoices(matches []catalog.Song, botUsername string, private bool) string {
	lines := make([]string, 0, len(matches)+1)
	lines = append(lines, "<b>Multiple songs found:</b>")
	for _, s := range matches {
		if private {
			u := DeepLink(botUsername, PlayPayload(s.ID))
			lines = append(lines, fmt.Sprintf(`<a href="%s">•%s</a> — <i>%s</i>`, u, s.Title, s.Artist))
		} else {
			lines = append(lines, fmt.Sprintf("<b>•%s — %s</b>\n<code>/play@%s %s</code>", s.Title, s.Artist, botUsername, s.ID))
		}
	}
	return strings.Join(lines, "\n\n")
}

// AlbumChoices renders the disambiguation list for a multi-match album
// query. Entries link through piece slugs rather than codes so that the
// list works without consulting the code map.
func AlbumChoices(matches []catalog.Entry, botUsername string, private bool) string {
	lines := make([]string, 0, len(matches)+1)
	lines = append(lines, "<b>Multiple albums found:</b>")
	for _, m := range matches {
		if private {
			u := DeepLink(botUsername, PiecePayload(m.Display))
			lines = append(lines, fmt.Sprintf(`<a href="%s">%s</a>`, u, m.Display))
		} else {
			lines = append(lines, fmt.Sprintf("<b>%s</b>\n<code>/album@%s %s</code>", m.Display, botUsername, m.Display))
		}
	}
	return strings.Join(lines, "\n\n")
}

// AllAlbums renders the full album universe, shown for a bare /album.
func AllAlbums(albums []catalog.Coded, botUsername string, private bool) string {
	lines := make([]string, 0, len(albums)+1)
	lines = append(lines, "<b>All albums:</b>")
	for _, a := range albums {
		if private {
			u := DeepLink(botUsername, "album_"+a.Code)
			lines = append(lines, fmt.Sprintf(`<a href="%s">%s</a>`, u, a.Name))
		} else {
			lines = append(lines, fmt.Sprintf("%s\n<code>/album@%s %s</code>", a.Name, botUsername, a.Name))
		}
	}
	return strings.Join(lines, "\n\n")
}

// AllCategories renders the full category universe, shown for a bare /category.
func AllCategories(tags []catalog.Coded, botUsername string) string {
	lines := make([]string, 0, len(tags)+1)
	lines = append(lines, "<b>Available categories:</b>")
	for _, t := range tags {
		u := DeepLink(botUsername, "category_"+t.Code)
		lines = append(lines, fmt.Sprintf(`<a href="%s">%s</a>`, u, t.Name))
	}
	return strings.Join(lines, "\n")
}

// CategoryChoices renders the disambiguation list for a multi-match
// category query.
func CategoryChoices(matches []catalog.Entry, botUsername string) string {
	lines := make([]string, 0, len(matches)+1)
	lines = append(lines, "<b>Multiple categories found:</b>")
	for _, m := range matches {
		u := DeepLink(botUsername, "category_"+m.Key)
		lines = append(lines, fmt.Sprintf(`<a href="%s">%s</a>`, u, m.Display))
	}
	return strings.Join(lines, "\n")
}

// CategoryTracks renders the detail view for one category tag: the tag
// header, then each album carrying the tag with its matching tracks.
func CategoryTracks(tag string, albums []string, tracksByAlbum map[string][]catalog.Song, botUsername string) string {
	var lines []string
	lines = append(lines, fmt.Sprintf("<b>Tracks in [%s]:</b>", tag))
	for _, album := range albums {
		lines = append(lines, fmt.Sprintf("<b>%s</b>", album))
		for i, s := range tracksByAlbum[album] {
			u := DeepLink(botUsername, PlayPayload(s.ID))
			lines = append(lines, fmt.Sprintf(`%d. <a href="%s">%s — %s</a>`, i+1, u, s.Title, s.Artist))
		}
		lines = append(lines, "")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// SearchResults renders song search hits grouped by album.
func SearchResults(found []catalog.Song, botUsername string) string {
	var albumOrder []string
	byAlbum := map[string][]catalog.Song{}
	for _, s := range found {
		if _, seen := byAlbum[s.Album]; !seen {
			albumOrder = append(albumOrder, s.Album)
		}
		byAlbum[s.Album] = append(byAlbum[s.Album], s)
	}

	var b strings.Builder
	for _, album := range albumOrder {
		fmt.Fprintf(&b, "<b>Album:</b> <b>[%s]</b>\n", album)
		for i, s := range byAlbum[album] {
			u := DeepLink(botUsername, PlayPayload(s.ID))
			fmt.Fprintf(&b, `%d. <a href="%s">%s</a>`+"\n", i+1, u, s.Title)
		}
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}

// BoldChunks wraps each lyrics chunk in bold tags for Telegram rendering.
func BoldChunks(chunks []string) []string {
	out := make([]string, len(chunks))
	for i, c := range chunks {
		out[i] = "<b>" + c + "</b>"
	}
	return out
}
