// Package secretsieve finds credentials and other secrets in text.
//
// An Engine holds an immutable catalog of secret types. Detect scans a buffer
// once, validates each candidate match and resolves overlapping matches so
// that every byte belongs to at most one reported secret:
//
//	engine, err := secretsieve.New()
//	if err != nil {
//		return err
//	}
//	secrets, err := engine.Detect(text, "aws", "stripe_test_key")
//
// Type filters accept type ids as well as vendor groups such as "aws". An
// unknown filter entry fails the call with *UnknownTypeError.
package secretsieve

import (
	"io"
	"sync"

	"github.com/suryansh-23/secretsieve/internal/config"
	"github.com/suryansh-23/secretsieve/internal/debug"
	"github.com/suryansh-23/secretsieve/internal/detect"
	"github.com/suryansh-23/secretsieve/internal/registry"
)

type (
	// Secret is one detected secret.
	Secret = detect.Secret
	// Span is a half-open byte range within the scanned text.
	Span = detect.Span
	// Definition describes a secret type.
	Definition = registry.Definition
	// ValidatorSpec is one step of a definition's validator chain.
	ValidatorSpec = registry.ValidatorSpec
	// Config is the engine configuration, as read from YAML.
	Config = config.Config
	// Logger receives sanitized debug events.
	Logger = debug.Logger

	// UnknownTypeError reports a type filter entry that is not registered.
	UnknownTypeError = registry.UnknownTypeError
	// CompileError reports a definition that cannot be compiled.
	CompileError = registry.CompileError
)

// ErrConfiguration is matched by UnknownTypeError and CompileError.
var ErrConfiguration = registry.ErrConfiguration

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return config.DefaultConfig()
}

// LoadConfig reads a YAML config file. A missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg, _, err := config.Load(path)
	return cfg, err
}

// Defaults returns the built-in catalog.
func Defaults() []Definition {
	return registry.Defaults()
}

// NewLogger returns a logger writing JSON lines to w.
func NewLogger(w io.Writer) *Logger {
	return debug.NewWriter(w, true)
}

type options struct {
	cfg    *config.Config
	defs   []registry.Definition
	logger *debug.Logger
}

// Option configures New.
type Option func(*options)

// WithConfig sets the engine configuration. It is validated as given, so
// a Config not derived from DefaultConfig or LoadConfig must set Version.
func WithConfig(cfg Config) Option {
	return func(o *options) { o.cfg = &cfg }
}

// WithDefinitions replaces the built-in catalog.
func WithDefinitions(defs ...Definition) Option {
	return func(o *options) { o.defs = append([]Definition{}, defs...) }
}

// WithLogger routes debug events to l.
func WithLogger(l *Logger) Option {
	return func(o *options) { o.logger = l }
}

// Engine detects secrets. It is safe for concurrent use.
type Engine struct {
	inner *detect.Engine
}

// New builds an engine. Invalid definitions or configuration fail here.
func New(opts ...Option) (*Engine, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	inner, err := detect.New(detect.Options{
		Config:      o.cfg,
		Definitions: o.defs,
		Logger:      o.logger,
	})
	if err != nil {
		return nil, err
	}
	return &Engine{inner: inner}, nil
}

// Detect returns the secrets in text ordered by position. secretTypes
// restricts the scan to the given type ids or vendor groups.
func (e *Engine) Detect(text string, secretTypes ...string) ([]Secret, error) {
	return e.inner.Detect(text, secretTypes...)
}

// DetectBytes is Detect for a byte buffer.
func (e *Engine) DetectBytes(text []byte, secretTypes ...string) ([]Secret, error) {
	return e.inner.DetectBytes(text, secretTypes...)
}

// ListSupportedTypes returns the registered type ids in sorted order.
func (e *Engine) ListSupportedTypes() []string {
	return e.inner.ListSupportedTypes()
}

// ListVendors returns the vendor group names in sorted order.
func (e *Engine) ListVendors() []string {
	return e.inner.ListVendors()
}

// Definitions returns the registered definitions sorted by id.
func (e *Engine) Definitions() []Definition {
	return e.inner.Definitions()
}

var defaultEngine = sync.OnceValues(func() (*Engine, error) {
	return New()
})

// Default returns a shared engine using the built-in catalog and default
// configuration.
func Default() (*Engine, error) {
	return defaultEngine()
}

// Detect scans text with the default engine.
func Detect(text string, secretTypes ...string) ([]Secret, error) {
	e, err := Default()
	if err != nil {
		return nil, err
	}
	return e.Detect(text, secretTypes...)
}

// ListSupportedTypes lists the type ids of the default engine. It returns
// nil when the default engine cannot be built; Default reports why.
func ListSupportedTypes() []string {
	e, err := Default()
	if err != nil {
		return nil
	}
	return e.ListSupportedTypes()
}
