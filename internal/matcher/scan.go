package matcher

import (
	"sort"

	"github.com/suryansh-23/secretsieve/internal/types"
)

// Candidate is a raw rule match before validation and overlap resolution.
// Start and End are half-open byte offsets; Raw is text[Start:End].
type Candidate struct {
	TypeID string
	Start  int
	End    int
	Raw    []byte
	Tier   types.Tier
	Rule   int
}

// Scan reports every match of every activated rule, overlaps included,
// sorted by (start, end, type id).
func (m *Matcher) Scan(text []byte) []Candidate {
	if len(text) == 0 || len(m.rules) == 0 {
		return nil
	}
	active := m.activate(text)
	var out []Candidate
	for i, rule := range m.rules {
		if !active[i] {
			continue
		}
		for _, idx := range rule.re.FindAllSubmatchIndex(text, -1) {
			start, end := captureBounds(idx, rule.group)
			if start < 0 || end <= start {
				continue
			}
			out = append(out, Candidate{
				TypeID: rule.ID(),
				Start:  start,
				End:    end,
				Raw:    text[start:end],
				Tier:   rule.Def.Tier,
				Rule:   i,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		if a.End != b.End {
			return a.End < b.End
		}
		return a.TypeID < b.TypeID
	})
	return out
}

func (m *Matcher) activate(text []byte) []bool {
	active := make([]bool, len(m.rules))
	for _, i := range m.alwaysOn {
		active[i] = true
	}
	if m.trie == nil {
		return active
	}
	for _, hit := range m.trie.Match(lowerASCII(text)) {
		for _, i := range m.owners[int(hit.Pattern())] {
			active[i] = true
		}
	}
	return active
}

// lowerASCII lowercases A-Z only, so byte offsets line up with text.
func lowerASCII(text []byte) []byte {
	out := make([]byte, len(text))
	for i, b := range text {
		if b >= 'A' && b <= 'Z' {
			b += 'a' - 'A'
		}
		out[i] = b
	}
	return out
}

func captureBounds(submatches []int, group int) (int, int) {
	if group < 0 {
		return -1, -1
	}
	idx := group * 2
	if idx+1 >= len(submatches) {
		return -1, -1
	}
	return submatches[idx], submatches[idx+1]
}
