package matcher

import (
	"fmt"
	"regexp"
	"regexp/syntax"
	"sort"

	"go.uber.org/multierr"

	"github.com/suryansh-23/secretsieve/internal/registry"
)

// Rule is a compiled definition.
type Rule struct {
	Def   registry.Definition
	re    *regexp.Regexp
	group int
}

// ID returns the type id of the rule.
func (r *Rule) ID() string {
	return r.Def.ID
}

// Compile compiles def and lints its pattern. Keyword-less rules run on every
// buffer, so their matches must have a bounded length.
func Compile(def registry.Definition) (*Rule, error) {
	fail := func(format string, args ...any) error {
		return &registry.CompileError{TypeID: def.ID, Reason: fmt.Sprintf(format, args...)}
	}
	re, err := regexp.Compile(def.Pattern)
	if err != nil {
		return nil, fail("%v", err)
	}
	if def.Group > re.NumSubexp() {
		return nil, fail("capture group %d not in pattern (%d groups)", def.Group, re.NumSubexp())
	}
	if len(def.Keywords) == 0 {
		parsed, err := syntax.Parse(def.Pattern, syntax.Perl)
		if err != nil {
			return nil, fail("%v", err)
		}
		if _, bounded := maxLength(parsed.Simplify()); !bounded {
			return nil, fail("unbounded repetition without keyword anchor")
		}
	}
	return &Rule{Def: def, re: re, group: def.Group}, nil
}

// CompileAll compiles every definition in reg, keyed by type id.
func CompileAll(reg *registry.Registry) (map[string]*Rule, error) {
	rules := make(map[string]*Rule, reg.Len())
	var errs error
	for _, def := range reg.Definitions() {
		rule, err := Compile(def)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		rules[def.ID] = rule
	}
	if errs != nil {
		return nil, errs
	}
	return rules, nil
}

// Select returns the rules for ids in id order. Unknown ids are skipped.
func Select(rules map[string]*Rule, ids []string) []*Rule {
	out := make([]*Rule, 0, len(ids))
	for _, id := range ids {
		if rule, ok := rules[id]; ok {
			out = append(out, rule)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// maxLength returns the longest match in runes, or false when a repetition
// is unbounded.
func maxLength(re *syntax.Regexp) (int, bool) {
	switch re.Op {
	case syntax.OpNoMatch, syntax.OpEmptyMatch, syntax.OpBeginLine, syntax.OpEndLine,
		syntax.OpBeginText, syntax.OpEndText, syntax.OpWordBoundary, syntax.OpNoWordBoundary:
		return 0, true
	case syntax.OpLiteral:
		return len(re.Rune), true
	case syntax.OpCharClass, syntax.OpAnyChar, syntax.OpAnyCharNotNL:
		return 1, true
	case syntax.OpCapture:
		return maxLength(re.Sub[0])
	case syntax.OpStar, syntax.OpPlus:
		return 0, false
	case syntax.OpQuest:
		return maxLength(re.Sub[0])
	case syntax.OpRepeat:
		if re.Max < 0 {
			return 0, false
		}
		n, ok := maxLength(re.Sub[0])
		return n * re.Max, ok
	case syntax.OpConcat:
		total := 0
		for _, sub := range re.Sub {
			n, ok := maxLength(sub)
			if !ok {
				return 0, false
			}
			total += n
		}
		return total, true
	case syntax.OpAlternate:
		longest := 0
		for _, sub := range re.Sub {
			n, ok := maxLength(sub)
			if !ok {
				return 0, false
			}
			longest = max(longest, n)
		}
		return longest, true
	default:
		return 0, false
	}
}
