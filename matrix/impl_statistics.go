// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide column statistics (centering, covariance, Pearson correlation)
//     as deterministic compositions over the ew* micro-kernels.
//
// Exposed API:
//   - CenterColumns(X)   -> (Xc, means)         // subtract per-column mean
//   - Covariance(X)      -> (Cov, means)        // sample covariance of columns: (Xcᵀ Xc)/(r-1)
//   - Correlation(X)     -> (Corr, means, stds) // Pearson corr; std=0 → NaN row/column
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Dense fast-paths operate on row-major flat buffers; other Matrix
//     implementations are copied into a Dense once.
//   - Results are exactly symmetric: the upper triangle is mirrored.

package matrix

import "math"

// Operation name constants for unified error wrapping.
const (
	opCenterColumns = "CenterColumns"
	opCovariance    = "Covariance"
	opCorrelation   = "Correlation"
)

// Correlation bounds; accumulated rounding can push |r| a few ulps past 1.
const (
	corrMin  = -1.0
	corrMax  = 1.0
	corrDiag = 1.0
)

// asDense returns X itself when it is a *Dense, else a Dense copy built via At.
func asDense(X Matrix) (*Dense, error) {
	if d, ok := X.(*Dense); ok {
		return d, nil
	}
	r, c := X.Rows(), X.Cols()
	d, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, err
			}
			d.data[i*c+j] = v
		}
	}

	return d, nil
}

// centerColumns subtracts the per-column mean from every element.
// Implementation:
//   - Stage 1: Validate X (non-nil); zero-size input is a strict no-op.
//   - Stage 2: Compute column means in a deterministic pass.
//   - Stage 3: Apply ewBroadcastSubCols to produce a centered copy.
//
// Returns:
//   - *Dense: centered copy (r×c); for zero-size X an empty r×c Dense.
//   - []float64: column means (len=c, zeros when r==0).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func centerColumns(X Matrix) (*Dense, []float64, error) {
	// Stage 1 (Validate): ensure X is present.
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	d, err := asDense(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	r, c := d.r, d.c
	means := make([]float64, c)
	if r == 0 || c == 0 {
		empty, _ := NewDense(r, c)
		return empty, means, nil
	}

	// Stage 2 (Execute): accumulate sums into means, then convert to averages.
	var i, j int
	for i = 0; i < r; i++ {
		base := i * c
		for j = 0; j < c; j++ {
			means[j] += d.data[base+j]
		}
	}
	invR := 1.0 / float64(r)
	for j = 0; j < c; j++ {
		means[j] *= invR
	}

	// Stage 3 (Apply): broadcast-subtract the means over rows.
	Xc, err := ewBroadcastSubCols(d, means)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	return Xc, means, nil
}

// covariance computes the sample covariance of columns: Cov = (Xcᵀ Xc)/(r-1).
// Implementation:
//   - Stage 1: Validate X; c==0 yields a 0×0 result; r<2 is ErrInsufficientData.
//   - Stage 2: Center columns once; accumulate the Gram matrix; scale.
//
// Returns:
//   - *Dense: Covariance (c×c), exactly symmetric.
//   - []float64: column means used for centering.
//
// Complexity:
//   - Time O(r*c²), Space O(c²).
func covariance(X Matrix) (*Dense, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	r, c := X.Rows(), X.Cols()
	if c == 0 {
		z, _ := NewDense(0, 0)
		return z, make([]float64, 0), nil
	}
	if r < 2 {
		return nil, nil, matrixErrorf(opCovariance, ErrInsufficientData)
	}

	Xc, means, err := centerColumns(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	G := ewColumnCrossProducts(Xc)
	inv := 1.0 / float64(r-1)
	for k := range G.data {
		G.data[k] *= inv
	}

	return G, means, nil
}

// correlation computes the Pearson correlation of the columns of X.
// Implementation:
//   - Stage 1: Validate X; c==0 yields 0×0; r<2 is ErrInsufficientData.
//   - Stage 2: Center columns; per-column sums of squares give sample stds.
//   - Stage 3: corr[j,k] = Σ xc_j·xc_k / sqrt(Σ xc_j² · Σ xc_k²) on the upper
//     triangle, mirrored; diagonal pinned to 1; values clamped to [-1, 1].
//
// Behavior highlights:
//   - A zero-variance column (min == max over its raw values) yields NaN
//     across its row and column, diagonal included, and a zero std.
//     NaN is left visible for callers to report.
//
// Returns:
//   - *Dense: Correlation (c×c).
//   - []float64: column means.
//   - []float64: column sample stds.
//
// Complexity:
//   - Time O(r*c²), Space O(r*c + c²).
func correlation(X Matrix) (*Dense, []float64, []float64, error) {
	// Stage 1 (Validate).
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	r, c := X.Rows(), X.Cols()
	if c == 0 {
		z, _ := NewDense(0, 0)
		return z, make([]float64, 0), make([]float64, 0), nil
	}
	if r < 2 {
		return nil, nil, nil, matrixErrorf(opCorrelation, ErrInsufficientData)
	}

	// Stage 2 (Center + spread). Constancy is judged on the raw values:
	// centering by an inexact mean leaves residuals on a flat column.
	d, err := asDense(X)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	flat := ewColumnConstant(d)
	Xc, means, err := centerColumns(d)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	sumsq := ewColumnSumSquares(Xc)
	stds := make([]float64, c)
	inv := 1.0 / float64(r-1)
	var j, k int
	for j = 0; j < c; j++ {
		if flat[j] {
			sumsq[j] = 0
		}
		stds[j] = math.Sqrt(sumsq[j] * inv)
	}

	// Stage 3 (Normalize the Gram matrix).
	G := ewColumnCrossProducts(Xc)
	var v float64
	for j = 0; j < c; j++ {
		for k = j; k < c; k++ {
			switch {
			case sumsq[j] == 0 || sumsq[k] == 0:
				v = math.NaN()
			case j == k:
				v = corrDiag
			default:
				v = G.data[j*c+k] / math.Sqrt(sumsq[j]*sumsq[k])
				v = math.Max(corrMin, math.Min(corrMax, v))
			}
			G.data[j*c+k] = v
			G.data[k*c+j] = v
		}
	}

	return G, means, stds, nil
}
