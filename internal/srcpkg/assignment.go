// Package srcpkg extracts package metadata from source-package templates.
//
// Templates are shell fragments. Only the narrow subset of assignment syntax
// needed to read metadata is understood: line-anchored KEY=VALUE pairs whose
// values may be single- or double-quoted and span several lines.
package srcpkg

import (
	"regexp"
	"strings"
)

// An empty right-hand side still counts as an assignment, so `KEY=` on its own
// line shadows any later assignment to KEY.
var assignmentRegex = regexp.MustCompile(`(?m)^([A-Za-z0-9_]+)[ \t]*=[ \t]*(.*)$`)

// ExtractAssignment returns the value of the first assignment to key in raw.
// A bare `KEY=` yields "" with ok set.
func ExtractAssignment(raw, key string) (string, bool) {
	for _, loc := range assignmentRegex.FindAllStringSubmatchIndex(raw, -1) {
		if raw[loc[2]:loc[3]] != key {
			continue
		}
		return readValue(raw, loc[4]), true
	}
	return "", false
}

// readValue reads the value starting at offset, which points at its first
// non-blank byte or at the end of the line.
func readValue(raw string, offset int) string {
	if offset >= len(raw) {
		return ""
	}
	switch raw[offset] {
	case '"', '\'':
		return readQuoted(raw, offset+1, raw[offset])
	}

	rest := raw[offset:]
	if end := strings.IndexAny(rest, "\r\n"); end >= 0 {
		rest = rest[:end]
	}
	return strings.TrimSpace(rest)
}

// readQuoted reads until the first quote byte not preceded by a backslash.
// Escapes are passed through verbatim: `\"` stays `\"`. A missing closing
// quote consumes the rest of the input.
func readQuoted(raw string, offset int, quote byte) string {
	end := offset
	for ; end < len(raw); end++ {
		if raw[end] == quote && (end == offset || raw[end-1] != '\\') {
			break
		}
	}
	return raw[offset:end]
}
