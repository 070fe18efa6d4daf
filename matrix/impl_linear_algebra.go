// SPDX-License-Identifier: MIT
// Package matrix provides the small set of linear-algebra kernels the solvers
// need for verification: matrix–vector product and augmented-system splitting.
//
// Notes:
//   - All kernels use central validators and wrap errors via matrixErrorf.
//   - Loop orders are fixed (i→j) so results are reproducible bit-for-bit.

package matrix

import "fmt"

// ZeroSum is the initial sum value for accumulations (dot products, substitutions).
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMatVec   = "MatVec"
	opSplitAug = "SplitAugmented"
	opAllClose = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows) // allocate exactly rows outputs

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	var mv float64
	var err error
	for i := 0; i < rows; i++ {
		y[i] = ZeroSum
		for j := 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// SplitAugmented separates an n×(n+1) augmented matrix into its coefficient
// block A (n×n, fresh Dense) and constants vector b (fresh slice).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (via ValidateAugmented).
// Complexity: O(n^2).
func SplitAugmented(m Matrix) (*Dense, []float64, error) {
	if err := ValidateAugmented(m); err != nil {
		return nil, nil, matrixErrorf(opSplitAug, err)
	}
	n := m.Rows()
	a, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opSplitAug, err)
	}
	b := make([]float64, n)
	var v float64
	for i := 0; i < n; i++ {
		for j := 0; j <= n; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, nil, matrixErrorf(opSplitAug, err)
			}
			if j == n {
				b[i] = v
				continue
			}
			a.data[i*n+j] = v
		}
	}

	return a, b, nil
}
