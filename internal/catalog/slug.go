package catalog

import (
	"regexp"
	"strings"
	"unicode"
)

var slugSeparatorRun = regexp.MustCompile(`[\s-]+`)

// Slugify produces the URL-safe form of a display name used in piece deep
// links: lowercased, stripped to letters/digits/spaces/hyphens, trimmed,
// with runs of spaces and hyphens collapsed into a single hyphen. It is
// idempotent. Slugs are not collision-checked; two names that slugify
// identically collide silently and the first catalog match wins.
func Slugify(name string) string {
	lowered := strings.ToLower(name)
	kept := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			return r
		case unicode.IsSpace(r):
			return r
		default:
			return -1
		}
	}, lowered)
	return slugSeparatorRun.ReplaceAllString(strings.TrimSpace(kept), "-")
}

// UnSlug is the human-readable fallback for a slug with no catalog match:
// hyphens become spaces. It does not recover the original display name.
func UnSlug(slug string) string {
	return strings.ReplaceAll(slug, "-", " ")
}
