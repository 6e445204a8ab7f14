// SPDX-License-Identifier: MIT
// Package: corrmap/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all generator knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • rng    = nil             (a stream must be supplied via WithSeed/WithRand)
//   • params = DefaultParams() (the documented engagement model)

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by generators.
// It is passed by VALUE to generators (immutable to callers).
type builderConfig struct {
	// RNG for every draw; nil means "not configured".
	rng *rand.Rand
	// Model coefficients, spreads and clamping bounds.
	params Params
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:    nil,
		params: DefaultParams(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
