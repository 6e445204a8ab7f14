// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/corrmap/matrix"
)

const epsTight = 1e-12

// ------------------------------
// CenterColumns
// ------------------------------

func TestCenterColumns_SmallAndFallback(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 10, 20, 30})

	Yf, meansF, err := matrix.CenterColumns(X)
	if err != nil {
		t.Fatalf("fast: %v", err)
	}
	Ys, meansS, err := matrix.CenterColumns(hide{X})
	if err != nil {
		t.Fatalf("slow: %v", err)
	}

	// Means should be [5.5, 11, 16.5].
	want := []float64{5.5, 11, 16.5}
	sliceClose(t, meansF, want, 0, 0)
	sliceClose(t, meansS, want, 0, 0)
	CompareClose(t, Yf, Ys, 0, 0)

	// Column averages of Y ≈ 0.
	var sum float64
	for j := 0; j < 3; j++ {
		sum = MustAt(t, Yf, 0, j) + MustAt(t, Yf, 1, j)
		if math.Abs(sum/2) > epsTight {
			t.Fatalf("col %d not centered: avg=%g", j, sum/2)
		}
	}
}

func TestCenterColumns_ZeroRows(t *testing.T) {
	t.Parallel()

	X := MustDense(t, 0, 4)
	Y, means, err := matrix.CenterColumns(X)
	if err != nil {
		t.Fatalf("CenterColumns: %v", err)
	}
	if Y.Rows() != 0 || Y.Cols() != 4 || len(means) != 4 {
		t.Fatalf("unexpected shape %dx%d, means=%v", Y.Rows(), Y.Cols(), means)
	}
}

// ------------------------------
// Covariance
// ------------------------------

func TestCovariance_DiagonalIsSampleVariance(t *testing.T) {
	t.Parallel()

	X := RandFilledDense(t, 9, 3, 7)
	Cov, means, err := matrix.Covariance(X)
	if err != nil {
		t.Fatalf("Covariance: %v", err)
	}

	r := X.Rows()
	var sum, d float64
	for j := 0; j < 3; j++ {
		sum = 0.0
		for i := 0; i < r; i++ {
			d = MustAt(t, X, i, j) - means[j]
			sum += d * d
		}
		wantVar := sum / float64(r-1)
		if got := MustAt(t, Cov, j, j); math.Abs(got-wantVar) > epsTight {
			t.Fatalf("var[%d]: got=%g want=%g", j, got, wantVar)
		}
	}
	if err = matrix.ValidateSymmetric(Cov, 0); err != nil {
		t.Fatalf("covariance not exactly symmetric: %v", err)
	}
}

func TestCovariance_RowsLessThan2_Error(t *testing.T) {
	t.Parallel()

	X := MustDense(t, 1, 3)
	_, _, err := matrix.Covariance(X)
	if !errors.Is(err, matrix.ErrInsufficientData) {
		t.Fatalf("want ErrInsufficientData, got %v", err)
	}
}

func TestCovariance_FallbackMatchesFast(t *testing.T) {
	t.Parallel()

	X := RandFilledDense(t, 7, 5, 42)
	Cf, _, err := matrix.Covariance(X)
	if err != nil {
		t.Fatalf("fast: %v", err)
	}
	Cs, _, err := matrix.Covariance(hide{X})
	if err != nil {
		t.Fatalf("slow: %v", err)
	}
	CompareClose(t, Cf, Cs, epsTight, epsTight)
}

// ------------------------------
// Correlation
// ------------------------------

func TestCorrelation_DiagSymmetryAndDegenerateColumn(t *testing.T) {
	t.Parallel()

	// Two perfectly correlated columns, one anti-correlated, one constant.
	X := NewFilledDense(t, 5, 4, []float64{
		1, 2, 5, 7,
		2, 3, 4, 7,
		3, 4, 3, 7,
		4, 5, 2, 7,
		5, 6, 1, 7,
	})

	Corr, means, stds, err := matrix.Correlation(X)
	if err != nil {
		t.Fatalf("Correlation: %v", err)
	}
	if len(means) != 4 || len(stds) != 4 {
		t.Fatalf("means/stds len mismatch")
	}
	if stds[3] != 0 {
		t.Fatalf("std of constant column = %g", stds[3])
	}

	if err = matrix.ValidateSymmetric(Corr, 0); err != nil {
		t.Fatalf("not symmetric: %v", err)
	}
	for j := 0; j < 3; j++ {
		if MustAt(t, Corr, j, j) != 1 {
			t.Fatalf("diag[%d] = %g, want exactly 1", j, MustAt(t, Corr, j, j))
		}
	}
	if got := MustAt(t, Corr, 0, 1); got != 1 {
		t.Fatalf("corr(0,1) = %g, want 1", got)
	}
	if got := MustAt(t, Corr, 0, 2); got != -1 {
		t.Fatalf("corr(0,2) = %g, want -1", got)
	}
	for j := 0; j < 4; j++ {
		if !math.IsNaN(MustAt(t, Corr, 3, j)) || !math.IsNaN(MustAt(t, Corr, j, 3)) {
			t.Fatalf("degenerate column 3 must be NaN at (3,%d)/(%d,3)", j, j)
		}
	}
}

func TestCorrelation_ConstantInexactColumn(t *testing.T) {
	t.Parallel()

	// 0.1 has no exact binary mean, so centering leaves tiny residuals;
	// the column must still count as zero-variance.
	const r = 250
	vals := make([]float64, 0, r*2)
	for i := 0; i < r; i++ {
		vals = append(vals, float64(i%7), 0.1)
	}
	X := NewFilledDense(t, r, 2, vals)

	Corr, _, stds, err := matrix.Correlation(X)
	if err != nil {
		t.Fatalf("Correlation: %v", err)
	}
	if stds[1] != 0 {
		t.Fatalf("std of constant column = %g, want 0", stds[1])
	}
	if MustAt(t, Corr, 0, 0) != 1 {
		t.Fatalf("diag[0] = %g, want 1", MustAt(t, Corr, 0, 0))
	}
	for j := 0; j < 2; j++ {
		if !math.IsNaN(MustAt(t, Corr, 1, j)) || !math.IsNaN(MustAt(t, Corr, j, 1)) {
			t.Fatalf("constant column 1 must be NaN at (1,%d)/(%d,1)", j, j)
		}
	}

	// The generic fallback path agrees.
	CorrH, _, _, err := matrix.Correlation(hide{X})
	if err != nil {
		t.Fatalf("Correlation(hide): %v", err)
	}
	if !math.IsNaN(MustAt(t, CorrH, 1, 1)) {
		t.Fatalf("fallback: diag[1] = %g, want NaN", MustAt(t, CorrH, 1, 1))
	}
}

func TestCorrelation_ScaleInvarianceBoundsAndFallback(t *testing.T) {
	t.Parallel()

	X := RandFilledDense(t, 20, 6, 123)
	X7 := MustDense(t, X.Rows(), X.Cols())
	for i := 0; i < X.Rows(); i++ {
		for j := 0; j < X.Cols(); j++ {
			MustSet(t, X7, i, j, 7*MustAt(t, X, i, j)+3)
		}
	}

	C1, _, _, err := matrix.Correlation(X)
	if err != nil {
		t.Fatalf("Corr(X): %v", err)
	}
	C2, _, _, err := matrix.Correlation(X7)
	if err != nil {
		t.Fatalf("Corr(7X+3): %v", err)
	}
	CompareClose(t, C1, C2, 1e-9, 1e-9)

	Cs, _, _, err := matrix.Correlation(hide{X})
	if err != nil {
		t.Fatalf("Corr slow: %v", err)
	}
	CompareClose(t, C1, Cs, 0, 0)

	for i := 0; i < C1.Rows(); i++ {
		for j := 0; j < C1.Cols(); j++ {
			v := MustAt(t, C1, i, j)
			if v < -1 || v > 1 {
				t.Fatalf("corr(%d,%d)=%g outside [-1,1]", i, j, v)
			}
		}
	}
}

func TestCorrelation_InsufficientRows(t *testing.T) {
	t.Parallel()

	for _, r := range []int{0, 1} {
		X := MustDense(t, r, 2)
		_, _, _, err := matrix.Correlation(X)
		if !errors.Is(err, matrix.ErrInsufficientData) {
			t.Fatalf("r=%d: want ErrInsufficientData, got %v", r, err)
		}
	}
}

func TestCorrelation_NilAndNoColumns(t *testing.T) {
	t.Parallel()

	_, _, _, err := matrix.Correlation(nil)
	if !errors.Is(err, matrix.ErrNilMatrix) {
		t.Fatalf("want ErrNilMatrix, got %v", err)
	}

	C, means, stds, err := matrix.Correlation(MustDense(t, 3, 0))
	if err != nil {
		t.Fatalf("0 columns: %v", err)
	}
	if C.Rows() != 0 || len(means) != 0 || len(stds) != 0 {
		t.Fatalf("want empty 0x0 result")
	}
}
