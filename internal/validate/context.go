package validate

import (
	"bytes"
	"strings"
)

// DefaultWindow is the number of bytes inspected on each side of a span when
// a context validator requires a nearby keyword.
const DefaultWindow = 64

func excluded(raw []byte, words []string) bool {
	if len(words) == 0 {
		return false
	}
	lower := strings.ToLower(string(raw))
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

func hasContextKeyword(text []byte, start, end, window int, keywords []string) bool {
	if len(keywords) == 0 {
		return true
	}
	if window <= 0 {
		window = DefaultWindow
	}
	windowStart := max(start-window, 0)
	windowEnd := min(end+window, len(text))
	chunk := bytes.ToLower(text[windowStart:windowEnd])
	for _, kw := range keywords {
		if bytes.Contains(chunk, []byte(kw)) {
			return true
		}
	}
	return false
}
