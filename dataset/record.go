package dataset

// Record is one simulated customer.
type Record struct {
	PurchaseFrequency     int
	AvgSessionDuration    float64
	EmailOpenRate         float64
	ClickThroughRate      float64
	LoyaltyScore          float64
	SocialEngagementIndex float64
	CustomerLifetimeValue float64
}

// Value returns the metric f as a float64; unknown fields read as 0.
func (r Record) Value(f Field) float64 {
	switch f {
	case PurchaseFrequency:
		return float64(r.PurchaseFrequency)
	case AvgSessionDuration:
		return r.AvgSessionDuration
	case EmailOpenRate:
		return r.EmailOpenRate
	case ClickThroughRate:
		return r.ClickThroughRate
	case LoyaltyScore:
		return r.LoyaltyScore
	case SocialEngagementIndex:
		return r.SocialEngagementIndex
	case CustomerLifetimeValue:
		return r.CustomerLifetimeValue
	}

	return 0
}

// Values returns all metrics in display order.
func (r Record) Values() []float64 {
	out := make([]float64, NumFields)
	for _, f := range Fields {
		out[f] = r.Value(f)
	}

	return out
}
