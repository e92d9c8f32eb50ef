package detect

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/suryansh-23/secretsieve/internal/matcher"
	"github.com/suryansh-23/secretsieve/internal/registry"
	"github.com/suryansh-23/secretsieve/internal/types"
)

func cand(id string, start, end int, tier types.Tier) matcher.Candidate {
	return matcher.Candidate{TypeID: id, Start: start, End: end, Tier: tier}
}

func ids(cands []matcher.Candidate) []string {
	out := make([]string, 0, len(cands))
	for _, c := range cands {
		out = append(out, c.TypeID)
	}
	return out
}

func TestResolveKeepsDisjoint(t *testing.T) {
	got := resolveOverlaps([]matcher.Candidate{
		cand("b", 10, 20, types.TierLow),
		cand("a", 0, 10, types.TierLow),
	})
	if diff := cmp.Diff([]string{"a", "b"}, ids(got)); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveLongerWins(t *testing.T) {
	got := resolveOverlaps([]matcher.Candidate{
		cand("short_high", 2, 8, types.TierHigh),
		cand("long_low", 0, 12, types.TierLow),
	})
	if diff := cmp.Diff([]string{"long_low"}, ids(got)); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveTierThenID(t *testing.T) {
	got := resolveOverlaps([]matcher.Candidate{
		cand("generic", 0, 10, types.TierLow),
		cand("zeta", 0, 10, types.TierHigh),
	})
	if diff := cmp.Diff([]string{"zeta"}, ids(got)); diff != "" {
		t.Fatalf("tier tie-break (-want +got):\n%s", diff)
	}

	got = resolveOverlaps([]matcher.Candidate{
		cand("zeta", 5, 15, types.TierHigh),
		cand("alpha", 0, 10, types.TierHigh),
	})
	if diff := cmp.Diff([]string{"alpha"}, ids(got)); diff != "" {
		t.Fatalf("id tie-break (-want +got):\n%s", diff)
	}
}

func TestResolveChainedOverlaps(t *testing.T) {
	// b is longest and knocks out both neighbours it overlaps.
	got := resolveOverlaps([]matcher.Candidate{
		cand("a", 0, 6, types.TierHigh),
		cand("b", 4, 14, types.TierHigh),
		cand("c", 12, 18, types.TierHigh),
		cand("d", 18, 20, types.TierLow),
	})
	if diff := cmp.Diff([]string{"b", "d"}, ids(got)); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveOrderIndependent(t *testing.T) {
	base := []matcher.Candidate{
		cand("a", 0, 6, types.TierHigh),
		cand("b", 4, 14, types.TierMedium),
		cand("c", 4, 14, types.TierMedium),
		cand("d", 14, 20, types.TierLow),
		cand("e", 30, 40, types.TierLow),
		cand("f", 32, 38, types.TierHigh),
	}
	want := resolveOverlaps(base)
	for shift := 1; shift < len(base); shift++ {
		rotated := append(append([]matcher.Candidate{}, base[shift:]...), base[:shift]...)
		if diff := cmp.Diff(want, resolveOverlaps(rotated)); diff != "" {
			t.Fatalf("rotation %d changed result (-want +got):\n%s", shift, diff)
		}
	}
	if diff := cmp.Diff([]string{"b", "d", "e"}, ids(want)); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestEngineTieBreakAcrossRuns(t *testing.T) {
	defs := []registry.Definition{
		{ID: "zz_token", Pattern: `tok_[a-z]{8}`, Keywords: []string{"tok_"}, Tier: types.TierMedium},
		{ID: "aa_token", Pattern: `tok_[a-z]{8}`, Keywords: []string{"tok_"}, Tier: types.TierMedium},
	}
	for i := 0; i < 5; i++ {
		engine, err := New(Options{Definitions: defs})
		if err != nil {
			t.Fatalf("new engine: %v", err)
		}
		got := detect(t, engine, "x tok_abcdefgh y")
		if len(got) != 1 || got[0].Type != "aa_token" {
			t.Fatalf("run %d: unexpected winner %#v", i, got)
		}
	}
}

func TestResolveEmpty(t *testing.T) {
	if got := resolveOverlaps(nil); len(got) != 0 {
		t.Fatalf("expected empty result")
	}
}
