// Package matrix provides a small row-major Dense matrix and the descriptive
// statistics kernels used by the correlation stage.
//
// The package offers:
//
//   - Dense: a flat, row-major float64 matrix with bounds-checked At/Set.
//     Zero-size shapes (0×c, r×0) are valid so empty datasets flow through.
//   - NewFromColumns / NewFromRows: constructors from Go slices.
//   - CenterColumns, Covariance, Correlation: column statistics with fixed
//     loop order, so results are bit-for-bit reproducible.
//   - ValidateNotNil, ValidateSquare, ValidateSymmetric: canonical guards.
//
// Numeric policy:
//
//	Correlation returns NaN rows/columns for zero-variance columns instead of
//	failing; fewer than two observations yield ErrInsufficientData. NaN is
//	never replaced silently.
//
// See the examples in this package for usage patterns.
package matrix
