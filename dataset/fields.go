package dataset

import "math"

// Field identifies one engagement metric. Its value is the column position.
type Field int

// Engagement metrics in display order.
const (
	PurchaseFrequency Field = iota
	AvgSessionDuration
	EmailOpenRate
	ClickThroughRate
	LoyaltyScore
	SocialEngagementIndex
	CustomerLifetimeValue

	fieldCount
)

// NumFields is the width of the schema.
const NumFields = int(fieldCount)

// Fields lists every metric in display order.
var Fields = [NumFields]Field{
	PurchaseFrequency,
	AvgSessionDuration,
	EmailOpenRate,
	ClickThroughRate,
	LoyaltyScore,
	SocialEngagementIndex,
	CustomerLifetimeValue,
}

var labels = [NumFields]string{
	"Purchase_Frequency",
	"Avg_Session_Duration_min",
	"Email_Open_Rate",
	"Click_Through_Rate",
	"Loyalty_Score",
	"Social_Engagement_Index",
	"Customer_Lifetime_Value",
}

// Bounds is an inclusive value range. Max may be +Inf for "no upper bound".
type Bounds struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Contains reports whether v lies in [Min, Max].
func (b Bounds) Contains(v float64) bool { return v >= b.Min && v <= b.Max }

// Clamp truncates v into [Min, Max].
func (b Bounds) Clamp(v float64) float64 {
	if v < b.Min {
		return b.Min
	}
	if v > b.Max {
		return b.Max
	}

	return v
}

var domains = [NumFields]Bounds{
	{0, math.Inf(1)},
	{1, 30},
	{0, 1},
	{0, 0.8},
	{0, 100},
	{0, math.Inf(1)},
	{0, math.Inf(1)},
}

// String returns the column label, e.g. "Email_Open_Rate".
func (f Field) String() string {
	if !f.Valid() {
		return "Unknown_Field"
	}

	return labels[f]
}

// Index returns the column position of f.
func (f Field) Index() int { return int(f) }

// Valid reports whether f is part of the schema.
func (f Field) Valid() bool { return f >= 0 && f < fieldCount }

// Domain returns the documented value range of f.
func (f Field) Domain() Bounds { return domains[f] }

// Domains assigns an inclusive range to every field, in schema order.
type Domains [NumFields]Bounds

// SchemaDomains returns the documented ranges of all fields.
func SchemaDomains() Domains { return Domains(domains) }

// Labels returns the column labels in display order.
func Labels() []string {
	out := make([]string, NumFields)
	copy(out, labels[:])

	return out
}

// FieldByLabel resolves a column label back to its Field.
func FieldByLabel(label string) (Field, bool) {
	for _, f := range Fields {
		if labels[f] == label {
			return f, true
		}
	}

	return 0, false
}
