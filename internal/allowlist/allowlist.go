package allowlist

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

// List suppresses known-safe values. Entries in values are glob patterns
// matched against the whole value; stop words match anywhere inside it,
// case-insensitively.
type List struct {
	globs     []glob.Glob
	stopWords []string
}

// Compile builds a list from config entries. Blank entries are ignored.
func Compile(values []string, stopWords []string) (*List, error) {
	l := &List{}
	for _, entry := range values {
		pattern := strings.TrimSpace(entry)
		if pattern == "" {
			continue
		}
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("allowlist value %q: %w", pattern, err)
		}
		l.globs = append(l.globs, g)
	}
	for _, word := range stopWords {
		word = strings.ToLower(strings.TrimSpace(word))
		if word == "" {
			continue
		}
		l.stopWords = append(l.stopWords, word)
	}
	return l, nil
}

// Match reports whether value is allowlisted.
func (l *List) Match(value string) bool {
	if l == nil {
		return false
	}
	for _, g := range l.globs {
		if g.Match(value) {
			return true
		}
	}
	if len(l.stopWords) == 0 {
		return false
	}
	lower := strings.ToLower(value)
	for _, word := range l.stopWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// Empty reports whether the list has no entries.
func (l *List) Empty() bool {
	return l == nil || (len(l.globs) == 0 && len(l.stopWords) == 0)
}
