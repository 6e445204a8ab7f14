// SPDX-License-Identifier: MIT
// Package: corrmap/builder
//
// distributions.go — vectorized draw primitives.
//
// Contract:
//   • Every primitive consumes the RNG strictly in index order (0..n-1), so
//     a stream seeded once yields the same values on every run.
//   • Clamping happens after the draw and truncates only; the tails are not
//     renormalized.

package builder

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/corrmap/dataset"
)

// poisson draws one Poisson(λ) count with the multiplication method:
// multiply uniforms until the product drops to exp(-λ).
// Expected cost O(λ) uniforms; λ is capped by Params.Validate.
func poisson(rng *rand.Rand, lambda float64) int {
	limit := math.Exp(-lambda)
	k := 0
	p := rng.Float64()
	for p > limit {
		k++
		p *= rng.Float64()
	}

	return k
}

// poissonVec draws n independent Poisson(λ) counts.
func poissonVec(rng *rand.Rand, n int, lambda float64) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = poisson(rng, lambda)
	}

	return out
}

// normalVec draws out[i] ~ N(means[i], sigma), one draw per entity.
func normalVec(rng *rand.Rand, means []float64, sigma float64) []float64 {
	out := make([]float64, len(means))
	for i, mu := range means {
		out[i] = mu + sigma*rng.NormFloat64()
	}

	return out
}

// clampVec truncates every value into b in place and returns xs.
func clampVec(xs []float64, b dataset.Bounds) []float64 {
	for i, v := range xs {
		xs[i] = b.Clamp(v)
	}

	return xs
}

// constVec returns a length-n vector filled with v.
func constVec(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}

	return out
}
