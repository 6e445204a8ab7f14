// SPDX-License-Identifier: MIT
// Package: corrmap/builder
//
// params.go — coefficients of the engagement model.
//
// Every mean is linear in previously drawn fields of the same customer:
//
//	open_rate     ~ N(0.35 + 0.02·freq,                     0.07) ∩ [0, 1]
//	ctr           ~ N(0.08 + 0.8·open_rate,                 0.05) ∩ [0, 0.8]
//	loyalty       ~ N(50 + 5·freq + 10·ctr,                 10)   ∩ [0, 100]
//	social        ~ N(20 + 3·freq,                          10)   ∩ [0, ∞)
//	lifetime      ~ N(200 + 40·freq + 100·(loyalty/100),    100)  ∩ [0, ∞)
//
// The bounds are kept as configuration, not hardcoded in the draw steps.

package builder

import (
	"math"

	"github.com/katalvlaran/corrmap/dataset"
)

// maxPoissonLambda keeps exp(-λ) well above the float64 underflow point used
// by the multiplication sampler.
const maxPoissonLambda = 500.0

// FrequencyParams drives purchase_frequency ~ Poisson(Lambda).
type FrequencyParams struct {
	Lambda float64 `yaml:"lambda"`
}

// SessionParams drives avg_session_duration ~ N(Mean, Sigma), clamped.
type SessionParams struct {
	Mean   float64        `yaml:"mean"`
	Sigma  float64        `yaml:"sigma"`
	Bounds dataset.Bounds `yaml:"bounds"`
}

// OpenRateParams: mean = Base + PerPurchase·freq.
type OpenRateParams struct {
	Base        float64        `yaml:"base"`
	PerPurchase float64        `yaml:"per_purchase"`
	Sigma       float64        `yaml:"sigma"`
	Bounds      dataset.Bounds `yaml:"bounds"`
}

// ClickThroughParams: mean = Base + PerOpenRate·open_rate.
type ClickThroughParams struct {
	Base        float64        `yaml:"base"`
	PerOpenRate float64        `yaml:"per_open_rate"`
	Sigma       float64        `yaml:"sigma"`
	Bounds      dataset.Bounds `yaml:"bounds"`
}

// LoyaltyParams: mean = Base + PerPurchase·freq + PerClickThrough·ctr.
type LoyaltyParams struct {
	Base            float64        `yaml:"base"`
	PerPurchase     float64        `yaml:"per_purchase"`
	PerClickThrough float64        `yaml:"per_click_through"`
	Sigma           float64        `yaml:"sigma"`
	Bounds          dataset.Bounds `yaml:"bounds"`
}

// SocialParams: mean = Base + PerPurchase·freq.
type SocialParams struct {
	Base        float64        `yaml:"base"`
	PerPurchase float64        `yaml:"per_purchase"`
	Sigma       float64        `yaml:"sigma"`
	Bounds      dataset.Bounds `yaml:"bounds"`
}

// LifetimeParams: mean = Base + PerPurchase·freq + PerLoyalty·(loyalty/LoyaltyScale).
type LifetimeParams struct {
	Base         float64        `yaml:"base"`
	PerPurchase  float64        `yaml:"per_purchase"`
	PerLoyalty   float64        `yaml:"per_loyalty"`
	LoyaltyScale float64        `yaml:"loyalty_scale"`
	Sigma        float64        `yaml:"sigma"`
	Bounds       dataset.Bounds `yaml:"bounds"`
}

// Params bundles the whole engagement model.
type Params struct {
	Frequency    FrequencyParams    `yaml:"purchase_frequency"`
	Session      SessionParams      `yaml:"avg_session_duration"`
	OpenRate     OpenRateParams     `yaml:"email_open_rate"`
	ClickThrough ClickThroughParams `yaml:"click_through_rate"`
	Loyalty      LoyaltyParams      `yaml:"loyalty_score"`
	Social       SocialParams       `yaml:"social_engagement_index"`
	Lifetime     LifetimeParams     `yaml:"customer_lifetime_value"`
}

// DefaultParams returns the documented engagement model.
func DefaultParams() Params {
	unbounded := dataset.Bounds{Min: 0, Max: math.Inf(1)}

	return Params{
		Frequency: FrequencyParams{Lambda: 3},
		Session: SessionParams{
			Mean: 8, Sigma: 3,
			Bounds: dataset.AvgSessionDuration.Domain(),
		},
		OpenRate: OpenRateParams{
			Base: 0.35, PerPurchase: 0.02, Sigma: 0.07,
			Bounds: dataset.EmailOpenRate.Domain(),
		},
		ClickThrough: ClickThroughParams{
			Base: 0.08, PerOpenRate: 0.8, Sigma: 0.05,
			Bounds: dataset.ClickThroughRate.Domain(),
		},
		Loyalty: LoyaltyParams{
			Base: 50, PerPurchase: 5, PerClickThrough: 10, Sigma: 10,
			Bounds: dataset.LoyaltyScore.Domain(),
		},
		Social: SocialParams{
			Base: 20, PerPurchase: 3, Sigma: 10,
			Bounds: unbounded,
		},
		Lifetime: LifetimeParams{
			Base: 200, PerPurchase: 40, PerLoyalty: 100, LoyaltyScale: 100, Sigma: 100,
			Bounds: unbounded,
		},
	}
}

// Domains returns the ranges the model clamps into, in schema order.
// Fields without a configurable clamp keep their documented domain.
func (p Params) Domains() dataset.Domains {
	d := dataset.SchemaDomains()
	d[dataset.AvgSessionDuration] = p.Session.Bounds
	d[dataset.EmailOpenRate] = p.OpenRate.Bounds
	d[dataset.ClickThroughRate] = p.ClickThrough.Bounds
	d[dataset.LoyaltyScore] = p.Loyalty.Bounds
	d[dataset.SocialEngagementIndex] = p.Social.Bounds
	d[dataset.CustomerLifetimeValue] = p.Lifetime.Bounds

	return d
}

// Validate rejects meaningless models with ErrOptionViolation.
func (p Params) Validate() error {
	l := p.Frequency.Lambda
	if !(l > 0) || l > maxPoissonLambda {
		return wrapf(MethodParams, ErrOptionViolation, "purchase_frequency.lambda=%g not in (0,%g]", l, maxPoissonLambda)
	}
	if !(p.Lifetime.LoyaltyScale > 0) || math.IsInf(p.Lifetime.LoyaltyScale, 0) {
		return wrapf(MethodParams, ErrOptionViolation, "customer_lifetime_value.loyalty_scale=%g", p.Lifetime.LoyaltyScale)
	}

	spreads := []struct {
		field  dataset.Field
		sigma  float64
		bounds dataset.Bounds
	}{
		{dataset.AvgSessionDuration, p.Session.Sigma, p.Session.Bounds},
		{dataset.EmailOpenRate, p.OpenRate.Sigma, p.OpenRate.Bounds},
		{dataset.ClickThroughRate, p.ClickThrough.Sigma, p.ClickThrough.Bounds},
		{dataset.LoyaltyScore, p.Loyalty.Sigma, p.Loyalty.Bounds},
		{dataset.SocialEngagementIndex, p.Social.Sigma, p.Social.Bounds},
		{dataset.CustomerLifetimeValue, p.Lifetime.Sigma, p.Lifetime.Bounds},
	}
	for _, s := range spreads {
		if !(s.sigma >= 0) || math.IsInf(s.sigma, 0) {
			return wrapf(MethodParams, ErrOptionViolation, "%s: sigma=%g", s.field, s.sigma)
		}
		if math.IsNaN(s.bounds.Min) || math.IsInf(s.bounds.Min, 0) || math.IsNaN(s.bounds.Max) || s.bounds.Min > s.bounds.Max {
			return wrapf(MethodParams, ErrOptionViolation, "%s: bounds [%g,%g]", s.field, s.bounds.Min, s.bounds.Max)
		}
	}

	return nil
}
