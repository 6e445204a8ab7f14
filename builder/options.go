// SPDX-License-Identifier: MIT
// Package: corrmap/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors PANIC on programmer errors (nil RNG).
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"math/rand"
)

// BuilderOption customizes a generator by mutating a builderConfig before
// any draw happens.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. The generator consumes it in the
// documented field order, so sharing one stream across calls stays
// reproducible. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new, locally-owned *rand.Rand with the given seed.
// Use this in tests and reports to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithParams overrides the engagement model. Values are validated when the
// generator runs (ErrOptionViolation), since they may come from a config file.
func WithParams(p Params) BuilderOption {
	return func(c *builderConfig) {
		c.params = p
	}
}
