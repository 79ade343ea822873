package logger

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncateString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		text   string
		maxLen int
		want   string
	}{
		{name: "short text untouched", text: "hello", maxLen: 50, want: "hello"},
		{name: "exact length untouched", text: "hello", maxLen: 5, want: "hello"},
		{name: "ascii truncated", text: "hello world", maxLen: 8, want: "hello..."},
		{name: "cyrillic truncated on rune boundary", text: "Привет, мне нужна помощь", maxLen: 10, want: "Привет,..."},
		{name: "accented text truncated on rune boundary", text: "Preciso de ajuda, por favor", maxLen: 12, want: "Preciso d..."},
		{name: "tiny limit", text: "hello", maxLen: 3, want: "..."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := truncateString(tc.text, tc.maxLen)
			if got != tc.want {
				t.Errorf("truncateString(%q, %d) = %q, want %q", tc.text, tc.maxLen, got, tc.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncateString(%q, %d) produced invalid UTF-8: %q", tc.text, tc.maxLen, got)
			}
		})
	}
}

func TestTruncateStringNeverSplitsRunes(t *testing.T) {
	t.Parallel()

	text := strings.Repeat("🇧🇷", 40)
	for maxLen := 1; maxLen < 20; maxLen++ {
		if got := truncateString(text, maxLen); !utf8.ValidString(got) {
			t.Errorf("maxLen %d produced invalid UTF-8: %q", maxLen, got)
		}
	}
}
