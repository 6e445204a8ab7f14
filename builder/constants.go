// Package builder defines shared constants used by the dataset generators.
package builder

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors with the generator name for context.
//-----------------------------------------------------------------------------

const (
	// MethodEngagement is the canonical name for the Engagement generator.
	MethodEngagement = "Engagement"
	// MethodParams is the canonical name for model parameter validation.
	MethodParams = "Params"
)

// MinCustomers is the smallest accepted dataset size; zero yields an empty dataset.
const MinCustomers = 0
