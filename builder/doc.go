// Package builder generates deterministic synthetic datasets in the
// functional-options style used across this module.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – WithSeed / WithRand: the only sources of randomness (no globals).
//     – WithParams:     overrides the engagement model coefficients.
//   - Generators:
//     – Engagement(n):  N customers with seven dependent engagement metrics.
//   - Model:
//     – Params / DefaultParams: means, spreads and clamping bounds per field.
//
// Guarantees:
//
//   - Same seed, size and parameters ⇒ bit-identical dataset.
//   - Fast-fail on invalid arguments via sentinel errors (ErrBadSize,
//     ErrNeedRandSource, ErrOptionViolation), wrapped with method context.
//   - Option constructors panic only on programmer errors (WithRand(nil)).
//
// Parallel use: give every goroutine its own WithSeed stream; a *rand.Rand
// passed through WithRand is not safe for concurrent use.
package builder
