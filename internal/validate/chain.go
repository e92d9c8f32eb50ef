// Package validate filters scanner candidates through each definition's
// validator chain.
package validate

import (
	"github.com/suryansh-23/secretsieve/internal/allowlist"
	"github.com/suryansh-23/secretsieve/internal/debug"
	"github.com/suryansh-23/secretsieve/internal/matcher"
	"github.com/suryansh-23/secretsieve/internal/registry"
	"github.com/suryansh-23/secretsieve/internal/types"
)

// Floors holds the default minimum entropy per tier.
type Floors struct {
	High   float64
	Medium float64
	Low    float64
}

// DefaultFloors are used when no entropy floors are configured.
var DefaultFloors = Floors{High: 2.5, Medium: 3.0, Low: 3.5}

// For returns the floor for tier.
func (f Floors) For(tier types.Tier) float64 {
	switch tier {
	case types.TierHigh:
		return f.High
	case types.TierLow:
		return f.Low
	default:
		return f.Medium
	}
}

// Options configures a Chain.
type Options struct {
	Floors    Floors
	Allowlist *allowlist.List
	Logger    *debug.Logger
}

// Chain applies validators and the global allowlist. It holds no mutable
// state and is safe for concurrent use.
type Chain struct {
	floors    Floors
	allowlist *allowlist.List
	log       *debug.Logger
}

// New returns a chain. Zero floors fall back to DefaultFloors.
func New(opts Options) *Chain {
	if opts.Floors == (Floors{}) {
		opts.Floors = DefaultFloors
	}
	return &Chain{floors: opts.Floors, allowlist: opts.Allowlist, log: opts.Logger}
}

// Accept reports whether c survives every validator of def and the
// allowlist. text is the scanned buffer, used for context windows.
func (ch *Chain) Accept(c matcher.Candidate, def registry.Definition, text []byte) bool {
	for _, v := range def.Validators {
		if !ch.check(v, c, def.Tier, text) {
			ch.log.Debug().Str("type", c.TypeID).Int("start", c.Start).Int("end", c.End).
				Str("validator", string(v.Kind)).Msg("candidate rejected")
			return false
		}
	}
	if !ch.allowlist.Empty() && ch.allowlist.Match(string(c.Raw)) {
		ch.log.Debug().Str("type", c.TypeID).Int("start", c.Start).Int("end", c.End).Msg("candidate allowlisted")
		return false
	}
	return true
}

func (ch *Chain) check(v registry.ValidatorSpec, c matcher.Candidate, tier types.Tier, text []byte) bool {
	switch v.Kind {
	case types.ValidatorChecksum:
		return checksum(v.Algorithm, c.Raw)
	case types.ValidatorEntropy:
		floor := v.MinEntropy
		if floor == 0 {
			floor = ch.floors.For(tier)
		}
		return Entropy(c.Raw) >= floor
	case types.ValidatorContext:
		if excluded(c.Raw, v.Exclude) {
			return false
		}
		return hasContextKeyword(text, c.Start, c.End, v.Window, v.Require)
	default:
		return false
	}
}
