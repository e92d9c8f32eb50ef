package registry

import (
	"errors"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/suryansh-23/secretsieve/internal/types"
)

func TestNewRejectsDuplicateIDs(t *testing.T) {
	_, err := New(
		Definition{ID: "a", Pattern: "a+"},
		Definition{ID: "a", Pattern: "b+"},
	)
	if err == nil {
		t.Fatalf("expected duplicate id error")
	}
	var cerr *CompileError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected CompileError, got %T: %v", err, err)
	}
	if cerr.TypeID != "a" {
		t.Fatalf("unexpected type id %q", cerr.TypeID)
	}
	if !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration")
	}
}

func TestNewAggregatesErrors(t *testing.T) {
	_, err := New(
		Definition{ID: "", Pattern: "a"},
		Definition{ID: "no_pattern"},
		Definition{ID: "bad_tier", Pattern: "x", Tier: "urgent"},
		Definition{ID: "bad_checksum", Pattern: "x", Validators: []ValidatorSpec{{Kind: types.ValidatorChecksum, Algorithm: "luhn"}}},
		Definition{ID: "empty_context", Pattern: "x", Validators: []ValidatorSpec{{Kind: types.ValidatorContext}}},
	)
	if err == nil {
		t.Fatalf("expected error")
	}
	for _, want := range []string{"type id is required", "pattern is required", "tier must be", "unknown checksum algorithm", "needs exclude or require"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error %q missing %q", err.Error(), want)
		}
	}
}

func TestNewRejectsVendorCollision(t *testing.T) {
	_, err := New(
		Definition{ID: "acme", Vendor: "other", Pattern: "x"},
		Definition{ID: "acme_key", Vendor: "acme", Pattern: "y"},
	)
	var cerr *CompileError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected CompileError, got %v", err)
	}
}

func TestNormalizeDefaults(t *testing.T) {
	reg, err := New(Definition{ID: " solo ", Pattern: "x", Keywords: []string{"ABC", "abc", ""}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	def, err := reg.Lookup("solo")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if def.Vendor != "solo" {
		t.Fatalf("vendor = %q", def.Vendor)
	}
	if def.Tier != types.TierMedium {
		t.Fatalf("tier = %q", def.Tier)
	}
	if !slices.Equal(def.Keywords, []string{"abc"}) {
		t.Fatalf("keywords = %v", def.Keywords)
	}
}

func TestResolve(t *testing.T) {
	reg, err := New(
		Definition{ID: "aws_access_key", Vendor: "aws", Pattern: "x"},
		Definition{ID: "aws_secret_key", Vendor: "aws", Pattern: "y"},
		Definition{ID: "slack_token", Vendor: "slack", Pattern: "z"},
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	all, err := reg.Resolve(nil)
	if err != nil {
		t.Fatalf("Resolve(nil): %v", err)
	}
	if !slices.Equal(all, []string{"aws_access_key", "aws_secret_key", "slack_token"}) {
		t.Fatalf("all = %v", all)
	}

	got, err := reg.Resolve([]string{"slack_token", "aws", "aws_access_key"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !slices.Equal(got, all) {
		t.Fatalf("got %v", got)
	}

	_, err = reg.Resolve([]string{"aws", "made_up", "also_made_up"})
	var uerr *UnknownTypeError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected UnknownTypeError, got %v", err)
	}
	if uerr.Requested != "made_up" {
		t.Fatalf("requested = %q, want first unknown entry", uerr.Requested)
	}
}

func TestVendorsSorted(t *testing.T) {
	reg, err := New(Defaults()...)
	if err != nil {
		t.Fatalf("New(Defaults): %v", err)
	}
	vendors := reg.Vendors()
	if !slices.IsSorted(vendors) {
		t.Fatalf("vendors not sorted: %v", vendors)
	}
	for _, want := range []string{"aws", "anthropic", "github", "stripe"} {
		if !slices.Contains(vendors, want) {
			t.Fatalf("missing vendor %q", want)
		}
	}
	if got := reg.VendorTypes("anthropic"); !slices.Equal(got, []string{"anthropic_admin_key", "anthropic_api_key"}) {
		t.Fatalf("anthropic types = %v", got)
	}
}

func TestDefaultsUniqueAndSorted(t *testing.T) {
	reg, err := New(Defaults()...)
	if err != nil {
		t.Fatalf("New(Defaults): %v", err)
	}
	if reg.Len() != len(Defaults()) {
		t.Fatalf("len = %d, want %d", reg.Len(), len(Defaults()))
	}
	if !slices.IsSorted(reg.AllTypes()) {
		t.Fatalf("types not sorted")
	}
	for _, def := range reg.Definitions() {
		if def.Description == "" {
			t.Fatalf("%s has no description", def.ID)
		}
	}
}

func TestDefaultPatternsCompile(t *testing.T) {
	for _, def := range Defaults() {
		if _, err := regexp.Compile(def.Pattern); err != nil {
			t.Fatalf("%s: %v", def.ID, err)
		}
	}
}

func TestGitLabAgentTokenLength(t *testing.T) {
	var pattern string
	for _, def := range Defaults() {
		if def.ID == "gitlab_agent_token" {
			pattern = def.Pattern
		}
	}
	re := regexp.MustCompile(pattern + `(?:[^A-Za-z0-9_\-]|$)`)
	for _, tc := range []struct {
		n    int
		want bool
	}{
		{49, false},
		{50, true},
		{1024, true},
		{1025, false},
	} {
		token := "glagent-" + strings.Repeat("a", tc.n)
		if got := re.MatchString(" " + token + " "); got != tc.want {
			t.Fatalf("body length %d: match = %v, want %v", tc.n, got, tc.want)
		}
	}
}
