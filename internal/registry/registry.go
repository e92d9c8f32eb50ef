package registry

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"go.uber.org/multierr"

	"github.com/suryansh-23/secretsieve/internal/types"
)

// ValidatorSpec is one step of a definition's validator chain. Kind selects
// the variant; only the fields of that variant are read.
type ValidatorSpec struct {
	Kind types.ValidatorKind `yaml:"kind"`

	// checksum
	Algorithm types.ChecksumAlgorithm `yaml:"algorithm,omitempty"`

	// entropy; zero means the configured floor for the definition's tier.
	MinEntropy float64 `yaml:"min_entropy,omitempty"`

	// context
	Exclude []string `yaml:"exclude,omitempty"`
	Require []string `yaml:"require,omitempty"`
	Window  int      `yaml:"window,omitempty"`
}

// Definition describes one secret type.
type Definition struct {
	ID          string          `yaml:"id"`
	Vendor      string          `yaml:"vendor"`
	Description string          `yaml:"description,omitempty"`
	Pattern     string          `yaml:"pattern"`
	Group       int             `yaml:"group,omitempty"`
	Keywords    []string        `yaml:"keywords,omitempty"`
	Tier        types.Tier      `yaml:"tier"`
	Validators  []ValidatorSpec `yaml:"validators,omitempty"`
}

// Registry is an immutable catalog of definitions keyed by type id.
type Registry struct {
	defs    []Definition
	byID    map[string]int
	vendors map[string][]string
}

// New validates defs and returns a registry holding private copies of them.
// All problems are reported together as CompileErrors.
func New(defs ...Definition) (*Registry, error) {
	r := &Registry{
		byID:    make(map[string]int, len(defs)),
		vendors: make(map[string][]string),
	}
	var errs error
	for _, def := range defs {
		def = normalize(def)
		if err := checkDefinition(def); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		if _, dup := r.byID[def.ID]; dup {
			errs = multierr.Append(errs, &CompileError{TypeID: def.ID, Reason: "duplicate type id"})
			continue
		}
		r.byID[def.ID] = len(r.defs)
		r.defs = append(r.defs, def)
	}
	if errs != nil {
		return nil, errs
	}

	sort.Slice(r.defs, func(i, j int) bool { return r.defs[i].ID < r.defs[j].ID })
	for i, def := range r.defs {
		r.byID[def.ID] = i
		r.vendors[def.Vendor] = append(r.vendors[def.Vendor], def.ID)
	}
	for vendor := range r.vendors {
		if idx, ok := r.byID[vendor]; ok && r.defs[idx].Vendor != vendor {
			errs = multierr.Append(errs, &CompileError{
				TypeID: vendor,
				Reason: fmt.Sprintf("vendor name collides with type id of vendor %q", r.defs[idx].Vendor),
			})
		}
	}
	if errs != nil {
		return nil, errs
	}
	return r, nil
}

func normalize(def Definition) Definition {
	def.ID = strings.TrimSpace(def.ID)
	def.Vendor = strings.TrimSpace(def.Vendor)
	if def.Vendor == "" {
		def.Vendor = def.ID
	}
	if def.Tier == "" {
		def.Tier = types.TierMedium
	}
	keywords := make([]string, 0, len(def.Keywords))
	for _, kw := range def.Keywords {
		kw = strings.ToLower(kw)
		if kw == "" || slices.Contains(keywords, kw) {
			continue
		}
		keywords = append(keywords, kw)
	}
	def.Keywords = keywords
	validators := make([]ValidatorSpec, len(def.Validators))
	for i, v := range def.Validators {
		v.Exclude = lowerAll(v.Exclude)
		v.Require = lowerAll(v.Require)
		validators[i] = v
	}
	def.Validators = validators
	return def
}

func lowerAll(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s == "" {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out
}

func checkDefinition(def Definition) error {
	fail := func(format string, args ...any) error {
		return &CompileError{TypeID: def.ID, Reason: fmt.Sprintf(format, args...)}
	}
	switch {
	case def.ID == "":
		return fail("type id is required")
	case strings.ContainsAny(def.ID, " \t\r\n,"):
		return fail("type id must not contain whitespace or commas")
	case def.Pattern == "":
		return fail("pattern is required")
	case def.Group < 0:
		return fail("group must be >= 0")
	case !def.Tier.Valid():
		return fail("tier must be high|medium|low, got %q", def.Tier)
	}
	for i, v := range def.Validators {
		switch v.Kind {
		case types.ValidatorChecksum:
			switch v.Algorithm {
			case types.ChecksumCRC32Base62, types.ChecksumAWSKeyID, types.ChecksumJWTHeader:
			default:
				return fail("validators[%d]: unknown checksum algorithm %q", i, v.Algorithm)
			}
		case types.ValidatorEntropy:
			if v.MinEntropy < 0 {
				return fail("validators[%d]: min_entropy must be >= 0", i)
			}
		case types.ValidatorContext:
			if len(v.Exclude) == 0 && len(v.Require) == 0 {
				return fail("validators[%d]: context validator needs exclude or require words", i)
			}
			if v.Window < 0 {
				return fail("validators[%d]: window must be >= 0", i)
			}
		default:
			return fail("validators[%d]: unknown validator kind %q", i, v.Kind)
		}
	}
	return nil
}

// AllTypes returns every type id in sorted order.
func (r *Registry) AllTypes() []string {
	out := make([]string, len(r.defs))
	for i, def := range r.defs {
		out[i] = def.ID
	}
	return out
}

// Definitions returns the definitions sorted by id.
func (r *Registry) Definitions() []Definition {
	return slices.Clone(r.defs)
}

// Len returns the number of definitions.
func (r *Registry) Len() int {
	return len(r.defs)
}

// Lookup returns the definition for id.
func (r *Registry) Lookup(id string) (Definition, error) {
	idx, ok := r.byID[id]
	if !ok {
		return Definition{}, &UnknownTypeError{Requested: id}
	}
	return r.defs[idx], nil
}

// Vendors returns the vendor group names in sorted order.
func (r *Registry) Vendors() []string {
	out := make([]string, 0, len(r.vendors))
	for vendor := range r.vendors {
		out = append(out, vendor)
	}
	sort.Strings(out)
	return out
}

// VendorTypes returns the type ids belonging to vendor, sorted.
func (r *Registry) VendorTypes(vendor string) []string {
	return slices.Clone(r.vendors[vendor])
}

// Resolve expands a type filter into a sorted, de-duplicated set of type ids.
// Each entry may name a type id or a vendor group. An empty filter selects
// every type. The first entry that matches neither fails the whole call.
func (r *Registry) Resolve(filter []string) ([]string, error) {
	if len(filter) == 0 {
		return r.AllTypes(), nil
	}
	seen := make(map[string]struct{}, len(filter))
	for _, name := range filter {
		if _, ok := r.byID[name]; ok {
			seen[name] = struct{}{}
			continue
		}
		ids, ok := r.vendors[name]
		if !ok {
			return nil, &UnknownTypeError{Requested: name}
		}
		for _, id := range ids {
			seen[id] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Strings(out)
	return out, nil
}
