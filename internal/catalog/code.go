package catalog

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// CodeOf derives a short deep-link code from a display name. It is a pure
// function: the same name always yields the same code. Tokens that are
// acronyms (two or more uppercase letters), pure numbers, or stylized
// words with uppercase past the first rune (such as "iPhone") are kept
// whole; everything else, title-case words included, is reduced to its
// upper-cased first letter. An empty or all-punctuation name yields an
// empty code, which collision suffixing turns into "1", "2", and so on.
func CodeOf(name string) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, name)

	var b strings.Builder
	for _, token := range strings.Fields(cleaned) {
		switch {
		case isUppercaseRun(token):
			b.WriteString(token)
		case isAllDigits(token):
			b.WriteString(token)
		case hasInternalUpper(token):
			b.WriteString(token)
		default:
			r, _ := utf8.DecodeRuneInString(token)
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return b.String()
}

// codeSet tracks assigned codes for one catalog load and resolves collisions
// by appending an increasing numeric suffix. Which name receives the bare
// code depends on assignment order, so callers must iterate names in a
// deterministic (lexicographic) order.
type codeSet map[string]struct{}

func (cs codeSet) assign(base string) string {
	code := base
	for i := 1; ; i++ {
		if _, taken := cs[code]; !taken && code != "" {
			break
		}
		code = base + strconv.Itoa(i)
	}
	cs[code] = struct{}{}
	return code
}

func hasInternalUpper(token string) bool {
	first := true
	for _, r := range token {
		if !first && unicode.IsUpper(r) {
			return true
		}
		first = false
	}
	return false
}

func isUppercaseRun(token string) bool {
	if utf8.RuneCountInString(token) < 2 {
		return false
	}
	for _, r := range token {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

func isAllDigits(token string) bool {
	for _, r := range token {
		if r < '0' || r > '9' {
			return false
		}
	}
	return token != ""
}
