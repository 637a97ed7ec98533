package apperr

import (
	"strings"
	"testing"
)

func TestTruncateForDisplay(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"within bound", "short", 10, "short"},
		{"exactly at bound", "12345", 5, "12345"},
		{"over bound", "1234567890", 5, "12345" + TruncationMarker},
		{"empty", "", 10, ""},
		{"zero bound", "abc", 0, TruncationMarker},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := TruncateForDisplay(tc.input, tc.maxLen)
			if got != tc.want {
				t.Errorf("TruncateForDisplay(%q, %d) = %q, want %q", tc.input, tc.maxLen, got, tc.want)
			}
		})
	}
}

func TestTruncateForDisplayRuneBoundary(t *testing.T) {
	// "한" is 3 bytes; cutting at byte 4 would split the second rune.
	got := TruncateForDisplay("한국어", 4)
	if !strings.HasSuffix(got, TruncationMarker) {
		t.Fatalf("expected truncation marker, got %q", got)
	}
	kept := strings.TrimSuffix(got, TruncationMarker)
	if kept != "한" {
		t.Errorf("expected cut at rune boundary, kept %q", kept)
	}
}

func TestJSONErrorSnippet(t *testing.T) {
	t.Run("collapses whitespace", func(t *testing.T) {
		raw := "{\n  \"slug\": \"x\",\n  \"active\": true\n}"
		got := JSONErrorSnippet(raw, 100)
		if strings.Contains(got, "\n") {
			t.Errorf("snippet contains newline: %q", got)
		}
		if got != `{ "slug": "x", "active": true }` {
			t.Errorf("unexpected snippet: %q", got)
		}
	})

	t.Run("skips leading garbage before structural opener", func(t *testing.T) {
		got := JSONErrorSnippet("error page: {\"code\": 500}", 50)
		if !strings.HasPrefix(got, "{") {
			t.Errorf("snippet should start at structural opener: %q", got)
		}
	})

	t.Run("prefix fallback without structural cue", func(t *testing.T) {
		got := JSONErrorSnippet("plain text response", 50)
		if got != "plain text response" {
			t.Errorf("expected prefix fallback, got %q", got)
		}
	})

	t.Run("bounded", func(t *testing.T) {
		long := strings.Repeat("x", 1000)
		got := JSONErrorSnippet(long, 200)
		if len(got) > 200+len(TruncationMarker) {
			t.Errorf("snippet length %d exceeds bound", len(got))
		}
	})

	t.Run("truncated incomplete array", func(t *testing.T) {
		got := JSONErrorSnippet(`["YES", "NO"`, 200)
		if got != `["YES", "NO"` {
			t.Errorf("short input should pass through, got %q", got)
		}
	})
}
