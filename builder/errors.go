// SPDX-License-Identifier: MIT
// Package: corrmap/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with wrapf (method + detail + %w).
//   • Algorithms MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates an invalid dataset size (e.g. n < 0 customers).
// Classification: invalid argument.
var ErrBadSize = errors.New("builder: invalid size")

// ErrNeedRandSource indicates that the generator was called without a random
// stream (neither WithSeed nor WithRand was supplied).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrOptionViolation indicates that resolved option values are meaningless
// (negative spread, non-positive rate, inverted bounds). Surfaces as an error
// because parameters can come from user configuration.
var ErrOptionViolation = errors.New("builder: invalid option value")

// wrapf prefixes err with the method name and a formatted detail while
// keeping the sentinel reachable for errors.Is.
//
//	wrapf(MethodEngagement, ErrBadSize, "n=%d", n) → "Engagement: n=-1: builder: invalid size"
func wrapf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
