package matcher

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/suryansh-23/secretsieve/internal/registry"
	"github.com/suryansh-23/secretsieve/internal/types"
)

func mustCompile(t *testing.T, def registry.Definition) *Rule {
	t.Helper()
	rule, err := Compile(def)
	if err != nil {
		t.Fatalf("Compile(%s): %v", def.ID, err)
	}
	return rule
}

func TestCompileRejectsInvalidRegex(t *testing.T) {
	_, err := Compile(registry.Definition{ID: "broken", Pattern: "([a-z", Keywords: []string{"x"}})
	var cerr *registry.CompileError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected CompileError, got %v", err)
	}
	if cerr.TypeID != "broken" {
		t.Fatalf("type id = %q", cerr.TypeID)
	}
	if !errors.Is(err, registry.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration")
	}
}

func TestCompileRejectsMissingGroup(t *testing.T) {
	_, err := Compile(registry.Definition{ID: "g", Pattern: "a(b)", Group: 2, Keywords: []string{"a"}})
	if err == nil || !strings.Contains(err.Error(), "capture group 2") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCompileUnboundedWithoutKeyword(t *testing.T) {
	_, err := Compile(registry.Definition{ID: "loose", Pattern: `tok_[a-z]+`})
	if err == nil || !strings.Contains(err.Error(), "unbounded repetition without keyword anchor") {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := Compile(registry.Definition{ID: "loose", Pattern: `tok_[a-z]+`, Keywords: []string{"tok_"}}); err != nil {
		t.Fatalf("keyword-anchored rule should compile: %v", err)
	}
	if _, err := Compile(registry.Definition{ID: "fixed", Pattern: `\bAC[a-z0-9]{32}\b`}); err != nil {
		t.Fatalf("bounded rule should compile: %v", err)
	}
}

func TestCompileAllDefaults(t *testing.T) {
	reg, err := registry.New(registry.Defaults()...)
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	rules, err := CompileAll(reg)
	if err != nil {
		t.Fatalf("CompileAll: %v", err)
	}
	if len(rules) != reg.Len() {
		t.Fatalf("rules = %d, want %d", len(rules), reg.Len())
	}
}

func TestCompileAllAggregates(t *testing.T) {
	reg, err := registry.New(
		registry.Definition{ID: "one", Pattern: "(", Keywords: []string{"a"}},
		registry.Definition{ID: "two", Pattern: "[", Keywords: []string{"b"}},
		registry.Definition{ID: "ok", Pattern: "ok", Keywords: []string{"ok"}},
	)
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	_, err = CompileAll(reg)
	if err == nil {
		t.Fatalf("expected error")
	}
	for _, id := range []string{"compile one", "compile two"} {
		if !strings.Contains(err.Error(), id) {
			t.Fatalf("error %q missing %q", err.Error(), id)
		}
	}
}

func TestScanKeywordPrefilter(t *testing.T) {
	stripe := mustCompile(t, registry.Definition{
		ID: "stripe_test_key", Pattern: `sk_test_[0-9a-zA-Z]{24}`, Keywords: []string{"sk_test_"}, Tier: types.TierHigh,
	})
	aws := mustCompile(t, registry.Definition{
		ID: "aws_access_key", Pattern: `AKIA[0-9A-Z]{16}`, Keywords: []string{"akia"}, Tier: types.TierHigh,
	})
	m := Build([]*Rule{aws, stripe})

	text := []byte("sk_test_4eC39HqLyjWDarjtT1zdp7dcAKIAIOSFODNN7EXAMPLE")
	got := m.Scan(text)
	want := []Candidate{
		{TypeID: "stripe_test_key", Start: 0, End: 32, Raw: text[0:32], Tier: types.TierHigh, Rule: 1},
		{TypeID: "aws_access_key", Start: 32, End: 52, Raw: text[32:52], Tier: types.TierHigh, Rule: 0},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Scan mismatch (-want +got):\n%s", diff)
	}

	if got := m.Scan([]byte("nothing to see here")); len(got) != 0 {
		t.Fatalf("expected no candidates, got %v", got)
	}
}

func TestScanKeywordIsCaseInsensitive(t *testing.T) {
	rule := mustCompile(t, registry.Definition{
		ID: "aws_secret_key", Pattern: `(?i)aws_secret_key=([A-Za-z0-9]{8})`, Group: 1, Keywords: []string{"aws_secret"},
	})
	m := Build([]*Rule{rule})
	text := []byte("AWS_SECRET_KEY=abcdEFGH")
	got := m.Scan(text)
	if len(got) != 1 {
		t.Fatalf("candidates = %d", len(got))
	}
	if string(got[0].Raw) != "abcdEFGH" || got[0].Start != 15 {
		t.Fatalf("unexpected candidate %+v", got[0])
	}
}

func TestScanAlwaysOnRules(t *testing.T) {
	rule := mustCompile(t, registry.Definition{ID: "twilio_account_sid", Pattern: `\bAC[a-z0-9]{32}\b`})
	m := Build([]*Rule{rule})
	sid := "AC" + strings.Repeat("a1", 16)
	got := m.Scan([]byte("sid: " + sid))
	if len(got) != 1 || string(got[0].Raw) != sid {
		t.Fatalf("unexpected candidates %v", got)
	}
}

func TestScanKeepsOverlaps(t *testing.T) {
	long := mustCompile(t, registry.Definition{ID: "long", Pattern: `tok_[a-z]{8}`, Keywords: []string{"tok_"}})
	short := mustCompile(t, registry.Definition{ID: "short", Pattern: `tok_[a-z]{4}`, Keywords: []string{"tok_"}})
	m := Build([]*Rule{long, short})
	got := m.Scan([]byte("tok_abcdefgh"))
	ids := make([]string, 0, len(got))
	for _, c := range got {
		ids = append(ids, c.TypeID)
	}
	if diff := cmp.Diff([]string{"short", "long"}, ids); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
}

func TestScanEmpty(t *testing.T) {
	m := Build(nil)
	if diff := cmp.Diff([]Candidate(nil), m.Scan([]byte("abc")), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("unexpected candidates: %s", diff)
	}
	rule := mustCompile(t, registry.Definition{ID: "x", Pattern: "x", Keywords: []string{"x"}})
	if got := Build([]*Rule{rule}).Scan(nil); len(got) != 0 {
		t.Fatalf("expected no candidates for empty text")
	}
}

func TestSelectOrdersByID(t *testing.T) {
	rules := map[string]*Rule{
		"b": mustCompile(t, registry.Definition{ID: "b", Pattern: "b", Keywords: []string{"b"}}),
		"a": mustCompile(t, registry.Definition{ID: "a", Pattern: "a", Keywords: []string{"a"}}),
	}
	got := Build(Select(rules, []string{"b", "a", "missing"})).IDs()
	if diff := cmp.Diff([]string{"a", "b"}, got); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
}
