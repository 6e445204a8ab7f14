// SPDX-License-Identifier: MIT
// Package: matrix
//
// ops_elementwise.go — ew* micro-kernels shared by the statistics kernels.
// Each kernel allocates a fresh Dense, never mutates its input, and walks
// rows then columns in a fixed order.

package matrix

// ewBroadcastSubCols computes out[i,j] = X[i,j] - colMeans[j].
// Time: O(r*c). Space: O(r*c).
func ewBroadcastSubCols(X Matrix, colMeans []float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf("broadcastSubCols", err)
	}
	r, c := X.Rows(), X.Cols()
	if len(colMeans) != c {
		return nil, matrixErrorf("broadcastSubCols", ErrDimensionMismatch)
	}
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf("broadcastSubCols", err)
	}

	// Dense fast-path: single pass over the flat row-major buffer.
	if d, ok := X.(*Dense); ok {
		for i := 0; i < r; i++ {
			base := i * c
			for j := 0; j < c; j++ {
				out.data[base+j] = d.data[base+j] - colMeans[j]
			}
		}
		return out, nil
	}

	// Generic fallback via At (still deterministic).
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, e := X.At(i, j)
			if e != nil {
				return nil, matrixErrorf("broadcastSubCols", e)
			}
			out.data[i*c+j] = v - colMeans[j]
		}
	}

	return out, nil
}

// ewColumnSumSquares returns Σ_i X[i,j]² for every column j of a Dense.
// Time: O(r*c). Space: O(c).
func ewColumnSumSquares(X *Dense) []float64 {
	out := make([]float64, X.c)
	var v float64
	for i := 0; i < X.r; i++ {
		base := i * X.c
		for j := 0; j < X.c; j++ {
			v = X.data[base+j]
			out[j] += v * v
		}
	}

	return out
}

// ewColumnCrossProducts returns the c×c Gram matrix G = Xᵀ X of a Dense,
// filling the upper triangle and mirroring it so G is exactly symmetric.
// Time: O(r*c²). Space: O(c²).
func ewColumnCrossProducts(X *Dense) *Dense {
	r, c := X.r, X.c
	G := &Dense{r: c, c: c, data: make([]float64, c*c)}
	var (
		i, j, k int
		s       float64
	)
	for j = 0; j < c; j++ {
		for k = j; k < c; k++ {
			s = 0.0
			for i = 0; i < r; i++ {
				s += X.data[i*c+j] * X.data[i*c+k]
			}
			G.data[j*c+k] = s
			G.data[k*c+j] = s
		}
	}

	return G
}

// ewColumnConstant reports, per column of a Dense, whether every value equals
// the first one (min == max). Columns of an empty matrix count as constant.
// Time: O(r*c). Space: O(c).
func ewColumnConstant(X *Dense) []bool {
	out := make([]bool, X.c)
	for j := range out {
		out[j] = true
	}
	if X.r == 0 {
		return out
	}
	for i := 1; i < X.r; i++ {
		base := i * X.c
		for j := 0; j < X.c; j++ {
			if out[j] && X.data[base+j] != X.data[j] {
				out[j] = false
			}
		}
	}

	return out
}
