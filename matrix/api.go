// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Facades never change the loop orders or numeric policy of the underlying
// kernels; validation lives in the kernels.

package matrix

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
func NewZeros(rows, cols int) (*Dense, error) { return NewDense(rows, cols) }

// NewFilled returns a rows×cols *Dense with every element set to v.
// Useful to seed NaN-filled placeholders for undefined statistics.
func NewFilled(rows, cols int, v float64) (*Dense, error) {
	d, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf("NewFilled", err)
	}
	for k := range d.data {
		d.data[k] = v
	}

	return d, nil
}

// CenterColumns subtracts per-column means and returns the centered copy
// together with the means. Complexity: O(r*c).
func CenterColumns(X Matrix) (Matrix, []float64, error) {
	Xc, means, err := centerColumns(X)
	if err != nil {
		return nil, nil, err
	}

	return Xc, means, nil
}

// Covariance returns the sample covariance (c×c) of the columns of X and the
// column means. Requires r >= 2 (ErrInsufficientData otherwise).
// Complexity: O(r*c²).
func Covariance(X Matrix) (Matrix, []float64, error) {
	cov, means, err := covariance(X)
	if err != nil {
		return nil, nil, err
	}

	return cov, means, nil
}

// Correlation returns the Pearson correlation (c×c) of the columns of X,
// the column means and the column sample standard deviations.
// Requires r >= 2 (ErrInsufficientData otherwise); zero-variance columns
// produce NaN rows/columns. Complexity: O(r*c²).
func Correlation(X Matrix) (Matrix, []float64, []float64, error) {
	corr, means, stds, err := correlation(X)
	if err != nil {
		return nil, nil, nil, err
	}

	return corr, means, stds, nil
}
