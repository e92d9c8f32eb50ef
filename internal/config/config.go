package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/suryansh-23/secretsieve/internal/allowlist"
	"github.com/suryansh-23/secretsieve/internal/registry"
	"github.com/suryansh-23/secretsieve/internal/types"
)

const (
	DefaultConfigVersion = 1
	defaultConfigRelPath = "secretsieve/config.yaml"
	defaultMaskChar      = "*"
	defaultReveal        = 4
	defaultMaxMatchers   = 64

	// EnvConfigPath overrides the default config location.
	EnvConfigPath = "SECRETSIEVE_CONFIG"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config is the top-level configuration schema.
type Config struct {
	Version int `yaml:"version"`

	Detection Detection `yaml:"detection"`
	Entropy   Entropy   `yaml:"entropy"`
	Allowlist Allowlist `yaml:"allowlist"`
	Cache     Cache     `yaml:"cache"`
	Output    Output    `yaml:"output"`

	Debug Debug `yaml:"debug"`
}

// Detection adjusts the built-in catalog.
type Detection struct {
	DisabledTypes []string              `yaml:"disabled_types"`
	CustomTypes   []registry.Definition `yaml:"custom_types"`
}

// Entropy sets the default minimum entropy per tier, in bits per byte.
type Entropy struct {
	High   float64 `yaml:"high"`
	Medium float64 `yaml:"medium"`
	Low    float64 `yaml:"low"`
}

// Allowlist suppresses known-safe values.
type Allowlist struct {
	Values    []string `yaml:"values"`
	StopWords []string `yaml:"stop_words"`
}

// Cache bounds the matcher cache.
type Cache struct {
	MaxMatchers int `yaml:"max_matchers"`
}

// Output configures CLI rendering.
type Output struct {
	Format   types.Format `yaml:"format"`
	Mask     bool         `yaml:"mask"`
	MaskChar string       `yaml:"mask_char"`
	Reveal   int          `yaml:"reveal"`
}

// Debug controls sanitized logging.
type Debug struct {
	Enabled bool `yaml:"enabled"`
}

// DefaultConfig returns the canonical default configuration.
func DefaultConfig() Config {
	return Config{
		Version: DefaultConfigVersion,
		Entropy: Entropy{
			High:   2.5,
			Medium: 3.0,
			Low:    3.5,
		},
		Cache: Cache{
			MaxMatchers: defaultMaxMatchers,
		},
		Output: Output{
			Format:   types.FormatText,
			Mask:     true,
			MaskChar: defaultMaskChar,
			Reveal:   defaultReveal,
		},
		Debug: Debug{
			Enabled: false,
		},
	}
}

// Definitions applies the detection section to base: disabled ids are
// removed and custom types appended. Disabled ids missing from base and
// the custom types are reported as unknown.
func (c Config) Definitions(base []registry.Definition) ([]registry.Definition, error) {
	all := make([]registry.Definition, 0, len(base)+len(c.Detection.CustomTypes))
	all = append(all, base...)
	all = append(all, c.Detection.CustomTypes...)
	if len(c.Detection.DisabledTypes) == 0 {
		return all, nil
	}

	known := make(map[string]struct{}, len(all))
	for _, def := range all {
		known[strings.TrimSpace(def.ID)] = struct{}{}
	}
	disabled := make(map[string]struct{}, len(c.Detection.DisabledTypes))
	for _, id := range c.Detection.DisabledTypes {
		id = strings.TrimSpace(id)
		if _, ok := known[id]; !ok {
			return nil, &registry.UnknownTypeError{Requested: id}
		}
		disabled[id] = struct{}{}
	}
	out := all[:0]
	for _, def := range all {
		if _, off := disabled[strings.TrimSpace(def.ID)]; off {
			continue
		}
		out = append(out, def)
	}
	return out, nil
}

// DefaultPath returns the default config path.
func DefaultPath() (string, error) {
	if env := strings.TrimSpace(os.Getenv(EnvConfigPath)); env != "" {
		return env, nil
	}
	if xdg := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); xdg != "" {
		return filepath.Join(xdg, defaultConfigRelPath), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".config", defaultConfigRelPath), nil
}

// Parse parses YAML config content, applying defaults.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads config from disk, applying defaults when missing.
// The boolean return indicates whether a config file was found.
func Load(pathOverride string) (Config, bool, error) {
	path := strings.TrimSpace(pathOverride)
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return Config{}, false, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := DefaultConfig()
			if err := cfg.Validate(); err != nil {
				return Config{}, false, err
			}
			return cfg, false, nil
		}
		return Config{}, false, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, true, err
	}
	return cfg, true, nil
}

// Validate enforces the supported configuration schema. Custom type
// patterns are compiled later, when the engine is built.
func (c Config) Validate() error {
	var errs []string
	if c.Version != DefaultConfigVersion {
		errs = append(errs, fmt.Sprintf("version must be %d", DefaultConfigVersion))
	}
	for i, id := range c.Detection.DisabledTypes {
		if strings.TrimSpace(id) == "" {
			errs = append(errs, fmt.Sprintf("detection.disabled_types[%d] must not be empty", i))
		}
	}
	for i, def := range c.Detection.CustomTypes {
		if strings.TrimSpace(def.ID) == "" {
			errs = append(errs, fmt.Sprintf("detection.custom_types[%d].id is required", i))
		}
		if def.Pattern == "" {
			errs = append(errs, fmt.Sprintf("detection.custom_types[%d].pattern is required", i))
		}
		if def.Tier != "" && !def.Tier.Valid() {
			errs = append(errs, fmt.Sprintf("detection.custom_types[%d].tier must be high|medium|low", i))
		}
		if def.Group < 0 {
			errs = append(errs, fmt.Sprintf("detection.custom_types[%d].group must be >= 0", i))
		}
	}
	if c.Entropy.High < 0 || c.Entropy.Medium < 0 || c.Entropy.Low < 0 {
		errs = append(errs, "entropy floors must be >= 0")
	}
	for i, entry := range c.Allowlist.Values {
		if strings.TrimSpace(entry) == "" {
			errs = append(errs, fmt.Sprintf("allowlist.values[%d] must not be empty", i))
			continue
		}
		if _, err := allowlist.Compile([]string{entry}, nil); err != nil {
			errs = append(errs, fmt.Sprintf("allowlist.values[%d] has invalid pattern: %v", i, err))
		}
	}
	if c.Cache.MaxMatchers < 0 {
		errs = append(errs, "cache.max_matchers must be >= 0")
	}
	if !validFormat(c.Output.Format) {
		errs = append(errs, "output.format must be text|json|yaml")
	}
	if utf8.RuneCountInString(c.Output.MaskChar) != 1 {
		errs = append(errs, "output.mask_char must be a single character")
	}
	if c.Output.Reveal < 0 {
		errs = append(errs, "output.reveal must be >= 0")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(errs, "; "))
	}
	return nil
}

func validFormat(format types.Format) bool {
	switch format {
	case types.FormatText, types.FormatJSON, types.FormatYAML:
		return true
	default:
		return false
	}
}
