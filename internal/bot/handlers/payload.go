package handlers

import (
	"net/url"
	"strings"
)

// IntentKind enumerates the routable deep-link payload classes.
type IntentKind int

const (
	IntentNone IntentKind = iota
	IntentPlay
	IntentLyrics
	IntentPiece
	IntentAlbum
	IntentCategory
)

// Intent is the typed outcome of payload classification. ID carries the
// track id, slug, or code the intent addresses; it is empty for IntentNone.
type Intent struct {
	Kind IntentKind
	ID   string
}

// payloadPrefixes is the classification order. Earlier prefixes win, so a
// payload like "play_lyrics_x" routes as a play intent for track
// "lyrics_x".
var payloadPrefixes = []struct {
	prefix string
	kind   IntentKind
	decode bool
}{
	{"play_", IntentPlay, true},
	{"lyrics_", IntentLyrics, true},
	{"piece_", IntentPiece, false},
	{"album_", IntentAlbum, false},
	{"category_", IntentCategory, false},
}

// ParsePayload classifies a deep-link payload into an intent by fixed
// prefix. Track-addressing payloads are URL-decoded since play links encode
// the id; codes and slugs are taken verbatim. Anything without a known
// prefix is IntentNone and yields the welcome response.
func ParsePayload(payload string) Intent {
	for _, p := range payloadPrefixes {
		if strings.HasPrefix(payload, p.prefix) {
			id := strings.TrimPrefix(payload, p.prefix)
			if p.decode {
				if decoded, err := url.QueryUnescape(id); err == nil {
					id = decoded
				}
			}
			return Intent{Kind: p.kind, ID: id}
		}
	}
	return Intent{Kind: IntentNone}
}

// startParam extracts the deep-link parameter from a /start message: the
// first whitespace-delimited token after the command, or "" when absent.
func startParam(text string) string {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return ""
	}
	return fields[1]
}

// commandArgs returns the free-text argument of a command message: all text
// after the command token, trimmed.
func commandArgs(text string) string {
	_, rest, found := strings.Cut(text, " ")
	if !found {
		return ""
	}
	return strings.TrimSpace(rest)
}
