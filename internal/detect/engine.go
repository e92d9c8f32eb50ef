package detect

import (
	"fmt"
	"strings"
	"time"

	"github.com/suryansh-23/secretsieve/internal/allowlist"
	"github.com/suryansh-23/secretsieve/internal/cache"
	"github.com/suryansh-23/secretsieve/internal/config"
	"github.com/suryansh-23/secretsieve/internal/debug"
	"github.com/suryansh-23/secretsieve/internal/matcher"
	"github.com/suryansh-23/secretsieve/internal/registry"
	"github.com/suryansh-23/secretsieve/internal/validate"
)

// fullKey names the matcher covering every registered type.
const fullKey = "*"

// Span is a half-open byte range [Start, End).
type Span struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// Secret is one detected secret. Value is exactly the input bytes in Span.
type Secret struct {
	Type  string `json:"type" yaml:"type"`
	Value string `json:"value" yaml:"value"`
	Span  Span   `json:"span" yaml:"span"`
}

// Options configures an Engine.
type Options struct {
	// Config defaults to config.DefaultConfig when nil. A given config is
	// validated as is.
	Config *config.Config
	// Definitions replaces the built-in catalog when non-nil.
	Definitions []registry.Definition
	Logger      *debug.Logger
}

// Engine detects secrets. It is immutable after New apart from its matcher
// cache and is safe for concurrent use.
type Engine struct {
	reg      *registry.Registry
	rules    map[string]*matcher.Rule
	chain    *validate.Chain
	matchers *cache.Matchers
	log      *debug.Logger
}

// New builds an engine. Every pattern is compiled here, so a bad definition
// fails construction rather than a later Detect call.
func New(opts Options) (*Engine, error) {
	cfg := config.DefaultConfig()
	if opts.Config != nil {
		cfg = *opts.Config
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := opts.Logger
	if log == nil {
		log = debug.New(cfg.Debug.Enabled)
	}

	base := opts.Definitions
	if base == nil {
		base = registry.Defaults()
	}
	defs, err := cfg.Definitions(base)
	if err != nil {
		return nil, fmt.Errorf("apply detection config: %w", err)
	}
	reg, err := registry.New(defs...)
	if err != nil {
		return nil, fmt.Errorf("build registry: %w", err)
	}
	rules, err := matcher.CompileAll(reg)
	if err != nil {
		return nil, fmt.Errorf("compile rules: %w", err)
	}
	allow, err := allowlist.Compile(cfg.Allowlist.Values, cfg.Allowlist.StopWords)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", config.ErrInvalidConfig, err)
	}

	e := &Engine{
		reg:   reg,
		rules: rules,
		chain: validate.New(validate.Options{
			Floors: validate.Floors{
				High:   cfg.Entropy.High,
				Medium: cfg.Entropy.Medium,
				Low:    cfg.Entropy.Low,
			},
			Allowlist: allow,
			Logger:    log,
		}),
		matchers: cache.New(cfg.Cache.MaxMatchers, fullKey),
		log:      log,
	}
	log.Debug().Int("types", reg.Len()).Int("vendors", len(reg.Vendors())).Msg("engine ready")
	return e, nil
}

// Detect scans text for secrets. secretTypes restricts the scan to the named
// type ids or vendor groups; with none given every type is used. An entry
// that names neither fails the call with *registry.UnknownTypeError.
// The result is never nil and is ordered by (start, end).
func (e *Engine) Detect(text string, secretTypes ...string) ([]Secret, error) {
	return e.DetectBytes([]byte(text), secretTypes...)
}

// DetectBytes is Detect for a byte buffer.
func (e *Engine) DetectBytes(text []byte, secretTypes ...string) ([]Secret, error) {
	m, err := e.matcherFor(secretTypes)
	if err != nil {
		return nil, err
	}
	out := []Secret{}
	if len(text) == 0 {
		return out, nil
	}

	started := time.Now()
	candidates := m.Scan(text)
	accepted := make([]matcher.Candidate, 0, len(candidates))
	for _, cand := range candidates {
		if e.chain.Accept(cand, m.Rule(cand.Rule).Def, text) {
			accepted = append(accepted, cand)
		}
	}
	for _, cand := range resolveOverlaps(accepted) {
		out = append(out, Secret{
			Type:  cand.TypeID,
			Value: string(cand.Raw),
			Span:  Span{Start: cand.Start, End: cand.End},
		})
	}
	e.log.Debug().
		Int("bytes", len(text)).
		Int("rules", m.Len()).
		Int("candidates", len(candidates)).
		Int("validated", len(accepted)).
		Int("secrets", len(out)).
		Dur("elapsed", time.Since(started)).
		Msg("scan complete")
	return out, nil
}

// ListSupportedTypes returns every type id in sorted order.
func (e *Engine) ListSupportedTypes() []string {
	return e.reg.AllTypes()
}

// ListVendors returns every vendor group name in sorted order.
func (e *Engine) ListVendors() []string {
	return e.reg.Vendors()
}

// Definitions returns the registered definitions sorted by id.
func (e *Engine) Definitions() []registry.Definition {
	return e.reg.Definitions()
}

func (e *Engine) matcherFor(filter []string) (*matcher.Matcher, error) {
	ids, err := e.reg.Resolve(filter)
	if err != nil {
		return nil, err
	}
	key := fullKey
	if len(ids) != e.reg.Len() {
		key = strings.Join(ids, ",")
	}
	return e.matchers.GetOrBuild(key, func() *matcher.Matcher {
		e.log.Debug().Str("key", key).Int("rules", len(ids)).Msg("building matcher")
		return matcher.Build(matcher.Select(e.rules, ids))
	}), nil
}
