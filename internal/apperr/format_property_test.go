package apperr

import (
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func TestProperty_TruncateForDisplayBound(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		input := rapid.String().Draw(t, "input")
		maxLen := rapid.IntRange(4, 512).Draw(t, "maxLen")

		got := TruncateForDisplay(input, maxLen)

		if len(got) > maxLen+len(TruncationMarker) {
			t.Fatalf("len(%q) = %d exceeds %d", got, len(got), maxLen+len(TruncationMarker))
		}
		if len(input) <= maxLen && got != input {
			t.Fatalf("input within bound was modified: %q -> %q", input, got)
		}
		if len(input) > maxLen && !strings.HasSuffix(got, TruncationMarker) {
			t.Fatalf("truncated output missing marker: %q", got)
		}
	})
}

func TestProperty_TruncateForDisplayDeterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		input := rapid.String().Draw(t, "input")
		maxLen := rapid.IntRange(4, 512).Draw(t, "maxLen")

		if TruncateForDisplay(input, maxLen) != TruncateForDisplay(input, maxLen) {
			t.Fatal("two renderings of the same input differ")
		}
	})
}

func TestProperty_JSONErrorSnippetTotalAndBounded(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		input := rapid.String().Draw(t, "input")
		maxLen := rapid.IntRange(4, 512).Draw(t, "maxLen")

		got := JSONErrorSnippet(input, maxLen)

		if len(got) > maxLen+len(TruncationMarker) {
			t.Fatalf("snippet len %d exceeds bound %d", len(got), maxLen+len(TruncationMarker))
		}
		if strings.Contains(got, "\n") {
			t.Fatalf("snippet contains newline: %q", got)
		}
	})
}
