// SPDX-License-Identifier: MIT
// Package: corrmap/builder
//
// impl_engagement.go — deterministic synthetic customer-engagement dataset.
//
// Purpose (single responsibility):
//   • Produce N customers whose metrics are linked by a chain of dependent
//     draws (frequency → open rate → CTR → loyalty → lifetime value).
//
// Contract:
//   • Engagement(n, opts...) returns a Dataset of exactly n records.
//   • n < 0 → ErrBadSize before any draw; n == 0 → empty Dataset.
//   • Strict determinism per (n, seed, params); no panics; no global state.
//   • Draw order is field-major: all n frequencies, then all n session
//     durations, and so on. Changing the order changes every later value.
//   • O(n·λ) time for the Poisson stage, O(n) otherwise; O(n) memory.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/corrmap/dataset"
)

// Engagement generates n synthetic customers.
//
// Stage 1 (Validate): size, model parameters, RNG presence (in that order).
// Stage 2 (Draw): run the per-field pipeline; each step receives the columns
// it depends on explicitly.
// Stage 3 (Assemble): zip columns into records.
func Engagement(n int, opts ...BuilderOption) (*dataset.Dataset, error) {
	// Stage 1 (Validate): size first, so no RNG state is consumed on bad input.
	if n < MinCustomers {
		return nil, wrapf(MethodEngagement, ErrBadSize, "n=%d", n)
	}
	cfg := newBuilderConfig(opts...)
	if err := cfg.params.Validate(); err != nil {
		return nil, wrapf(MethodEngagement, err, "params")
	}
	if cfg.rng == nil {
		return nil, wrapf(MethodEngagement, ErrNeedRandSource, "use WithSeed or WithRand")
	}
	if n == 0 {
		return dataset.New(nil), nil
	}

	// Stage 2 (Draw).
	cols := drawEngagement(cfg.rng, n, cfg.params)

	// Stage 3 (Assemble).
	records := make([]dataset.Record, n)
	for i := range records {
		records[i] = dataset.Record{
			PurchaseFrequency:     cols.frequency[i],
			AvgSessionDuration:    cols.session[i],
			EmailOpenRate:         cols.openRate[i],
			ClickThroughRate:      cols.clickThrough[i],
			LoyaltyScore:          cols.loyalty[i],
			SocialEngagementIndex: cols.social[i],
			CustomerLifetimeValue: cols.lifetime[i],
		}
	}

	return dataset.New(records), nil
}

// engagementColumns holds one generated column per field.
type engagementColumns struct {
	frequency    []int
	session      []float64
	openRate     []float64
	clickThrough []float64
	loyalty      []float64
	social       []float64
	lifetime     []float64
}

// drawEngagement runs the draw steps in their dependency order.
func drawEngagement(rng *rand.Rand, n int, p Params) engagementColumns {
	var c engagementColumns
	c.frequency = drawPurchaseFrequency(rng, n, p.Frequency)
	c.session = drawSessionDuration(rng, n, p.Session)
	c.openRate = drawEmailOpenRate(rng, c.frequency, p.OpenRate)
	c.clickThrough = drawClickThroughRate(rng, c.openRate, p.ClickThrough)
	c.loyalty = drawLoyaltyScore(rng, c.frequency, c.clickThrough, p.Loyalty)
	c.social = drawSocialEngagement(rng, c.frequency, p.Social)
	c.lifetime = drawLifetimeValue(rng, c.frequency, c.loyalty, p.Lifetime)

	return c
}

func drawPurchaseFrequency(rng *rand.Rand, n int, p FrequencyParams) []int {
	return poissonVec(rng, n, p.Lambda)
}

func drawSessionDuration(rng *rand.Rand, n int, p SessionParams) []float64 {
	return clampVec(normalVec(rng, constVec(n, p.Mean), p.Sigma), p.Bounds)
}

func drawEmailOpenRate(rng *rand.Rand, freq []int, p OpenRateParams) []float64 {
	means := make([]float64, len(freq))
	for i, f := range freq {
		means[i] = p.Base + p.PerPurchase*float64(f)
	}

	return clampVec(normalVec(rng, means, p.Sigma), p.Bounds)
}

func drawClickThroughRate(rng *rand.Rand, openRate []float64, p ClickThroughParams) []float64 {
	means := make([]float64, len(openRate))
	for i, o := range openRate {
		means[i] = p.Base + p.PerOpenRate*o
	}

	return clampVec(normalVec(rng, means, p.Sigma), p.Bounds)
}

func drawLoyaltyScore(rng *rand.Rand, freq []int, ctr []float64, p LoyaltyParams) []float64 {
	means := make([]float64, len(freq))
	for i, f := range freq {
		means[i] = p.Base + p.PerPurchase*float64(f) + p.PerClickThrough*ctr[i]
	}

	return clampVec(normalVec(rng, means, p.Sigma), p.Bounds)
}

func drawSocialEngagement(rng *rand.Rand, freq []int, p SocialParams) []float64 {
	means := make([]float64, len(freq))
	for i, f := range freq {
		means[i] = p.Base + p.PerPurchase*float64(f)
	}

	return clampVec(normalVec(rng, means, p.Sigma), p.Bounds)
}

func drawLifetimeValue(rng *rand.Rand, freq []int, loyalty []float64, p LifetimeParams) []float64 {
	means := make([]float64, len(freq))
	for i, f := range freq {
		means[i] = p.Base + p.PerPurchase*float64(f) + p.PerLoyalty*(loyalty[i]/p.LoyaltyScale)
	}

	return clampVec(normalVec(rng, means, p.Sigma), p.Bounds)
}
