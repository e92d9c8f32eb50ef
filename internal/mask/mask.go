// Package mask renders detected values for display. Detection results always
// carry the full value; masking only happens at output time.
package mask

import (
	"bytes"
	"sort"
	"strings"
	"unicode/utf8"
)

// Options controls display masking.
type Options struct {
	// Char replaces each hidden character.
	Char string
	// Reveal is the number of leading characters left visible.
	Reveal int
}

// Span is a half-open byte range to mask.
type Span struct {
	Start int
	End   int
}

func (o Options) char() string {
	if o.Char == "" {
		return "*"
	}
	return o.Char
}

// Value masks value, keeping at most Reveal leading characters. Short values,
// where revealing would leave half or more of the value visible, are masked
// completely.
func Value(value string, opts Options) string {
	runes := utf8.RuneCountInString(value)
	if runes == 0 {
		return ""
	}
	reveal := opts.Reveal
	if reveal < 0 || reveal*2 >= runes {
		reveal = 0
	}
	var b strings.Builder
	i := 0
	for _, r := range value {
		if i < reveal {
			b.WriteRune(r)
		} else {
			b.WriteString(opts.char())
		}
		i++
	}
	return b.String()
}

// Apply returns a copy of text with every span masked. Spans that overlap an
// earlier span or fall outside text are skipped.
func Apply(text []byte, spans []Span, opts Options) []byte {
	if len(spans) == 0 {
		return text
	}
	local := append([]Span(nil), spans...)
	sort.Slice(local, func(i, j int) bool { return local[i].Start < local[j].Start })

	var out bytes.Buffer
	cursor := 0
	for _, s := range local {
		if s.Start < cursor {
			continue
		}
		if s.Start < 0 || s.End > len(text) || s.End <= s.Start {
			continue
		}
		out.Write(text[cursor:s.Start])
		out.WriteString(Value(string(text[s.Start:s.End]), opts))
		cursor = s.End
	}
	out.Write(text[cursor:])
	return out.Bytes()
}
