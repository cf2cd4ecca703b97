package srcpkg

import (
	"strings"
	"unicode"
)

// ParseList splits a list-valued assignment into sanitized tokens.
func ParseList(raw string) []string {
	raw = strings.NewReplacer("\n", " ", "\r", " ", "\t", " ").Replace(raw)

	var out []string
	for _, field := range strings.Fields(raw) {
		if token, ok := SanitizeToken(field); ok {
			out = append(out, token)
		}
	}
	return out
}

// SanitizeToken reduces a raw list element to a bare package name.
// Variable expansions are dropped and version constraints are cut off, so
// "foo>=1.2" becomes "foo" while "$makedepends" is discarded.
func SanitizeToken(token string) (string, bool) {
	if token == "" || strings.HasPrefix(token, "$") {
		return "", false
	}

	trimmed := strings.Trim(token, "\"'`,;")
	for strings.HasPrefix(trimmed, "${") {
		trimmed = strings.TrimPrefix(trimmed, "${")
	}
	trimmed = strings.TrimRight(trimmed, "}")
	trimmed = strings.Trim(trimmed, "()")
	trimmed = strings.TrimLeft(trimmed, "\"")
	if trimmed == "" {
		return "", false
	}

	if cut := strings.IndexAny(trimmed, "<>=([{)"); cut >= 0 {
		trimmed = trimmed[:cut]
	}
	trimmed = strings.TrimFunc(trimmed, func(r rune) bool {
		return !isNameRune(r)
	})
	if trimmed == "" {
		return "", false
	}
	return trimmed, true
}

func isNameRune(r rune) bool {
	return r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '+' || r == '.')
}
