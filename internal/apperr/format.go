package apperr

import (
	"strings"
	"unicode/utf8"
)

// TruncationMarker is appended whenever raw text is cut for display.
const TruncationMarker = "... (truncated)"

// TruncateForDisplay bounds s for embedding in a failure message. Input
// within maxLen bytes is returned unchanged; longer input is cut at the
// nearest rune boundary at or below maxLen and the truncation marker is
// appended. Total over arbitrary input.
func TruncateForDisplay(s string, maxLen int) string {
	if maxLen < 0 {
		maxLen = 0
	}
	if len(s) <= maxLen {
		return s
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + TruncationMarker
}

// JSONErrorSnippet extracts a bounded, whitespace-normalized snippet of
// raw JSON for embedding in a failure message. When the text contains a
// structural opener ('{' or '['), the snippet starts there; otherwise it
// falls back to plain prefix truncation. Total over arbitrary input.
func JSONErrorSnippet(s string, maxLen int) string {
	if idx := strings.IndexAny(s, "{["); idx > 0 {
		s = s[idx:]
	}
	snippet := TruncateForDisplay(s, maxLen)

	// Collapse multi-line payloads into one line.
	lines := strings.Split(snippet, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, " ")
}
