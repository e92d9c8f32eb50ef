package matcher

import (
	ahocorasick "github.com/BobuSumisu/aho-corasick"
)

// Matcher scans text for a fixed set of rules. A keyword trie decides which
// rules are worth running; rules without keywords run on every buffer.
// A Matcher is read-only after Build and safe for concurrent use.
type Matcher struct {
	rules    []*Rule
	trie     *ahocorasick.Trie
	owners   [][]int
	alwaysOn []int
}

// Build assembles a matcher over rules.
func Build(rules []*Rule) *Matcher {
	m := &Matcher{rules: rules}
	index := make(map[string]int)
	var keywords []string
	for i, rule := range rules {
		if len(rule.Def.Keywords) == 0 {
			m.alwaysOn = append(m.alwaysOn, i)
			continue
		}
		for _, kw := range rule.Def.Keywords {
			pos, ok := index[kw]
			if !ok {
				pos = len(keywords)
				index[kw] = pos
				keywords = append(keywords, kw)
				m.owners = append(m.owners, nil)
			}
			m.owners[pos] = append(m.owners[pos], i)
		}
	}
	if len(keywords) > 0 {
		m.trie = ahocorasick.NewTrieBuilder().AddStrings(keywords).Build()
	}
	return m
}

// Len returns the number of rules in the matcher.
func (m *Matcher) Len() int {
	return len(m.rules)
}

// IDs returns the type ids covered by the matcher.
func (m *Matcher) IDs() []string {
	out := make([]string, len(m.rules))
	for i, rule := range m.rules {
		out[i] = rule.ID()
	}
	return out
}

// Rule returns the rule at index i, as carried by Candidate.Rule.
func (m *Matcher) Rule(i int) *Rule {
	return m.rules[i]
}
