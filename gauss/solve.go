// SPDX-License-Identifier: MIT

package gauss

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/linsys/matrix"
)

// SolveUnique extracts the solution vector of a Unique system.
//
//   - MethodGauss: back-substitution from the last row up,
//     x[i] = (b[i] − Σ_{j>i} a[i][j]·x[j]) / a[i][i].
//   - MethodGaussJordan: the matrix is RREF with unit pivots, so x[PivotCols[i]]
//     is read straight from the constants column.
//
// Observer sees one OpSubstitute step per unknown on the Gauss path.
//
// Errors:
//   - ErrNotUnique when cls.Kind != Unique.
//   - ErrUnknownMethod for an unsupported red.Method.
//   - ErrInvalidReduction when a diagonal entry is negligible (hand-built input).
//
// Complexity: O(n²) (Gauss) or O(n) (Gauss-Jordan).
func SolveUnique(red Reduction, cls Classification, opts ...Option) ([]float64, error) {
	if cls.Kind != Unique {
		return nil, gaussErrorf(opSolveUnique, fmt.Errorf("classification %s: %w", cls.Kind, ErrNotUnique))
	}
	if err := matrix.ValidateAugmented(red.Matrix); err != nil {
		return nil, gaussErrorf(opSolveUnique, err)
	}
	if red.Matrix.Rows() != cls.N || len(cls.PivotCols) != cls.N {
		return nil, gaussErrorf(opSolveUnique, ErrInvalidReduction)
	}

	o := gatherOptions(opts...)
	switch red.Method {
	case MethodGauss:
		return backSubstitute(red.Matrix, o)
	case MethodGaussJordan:
		return readOff(red.Matrix, cls.PivotCols), nil
	default:
		return nil, gaussErrorf(opSolveUnique, fmt.Errorf("%v: %w", red.Method, ErrUnknownMethod))
	}
}

// backSubstitute solves an upper-triangular augmented system.
func backSubstitute(m *matrix.Dense, o Options) ([]float64, error) {
	n := m.Rows()
	x := make([]float64, n)
	em := newEmitter(o.observer, MethodGauss)

	var (
		i, j      int
		sum, diag float64
	)
	for i = n - 1; i >= 0; i-- {
		sum = at(m, i, n)
		for j = i + 1; j < n; j++ {
			sum -= at(m, i, j) * x[j]
		}
		diag = at(m, i, i)
		if isNegligible(diag) {
			return nil, gaussErrorf(opSolveUnique, fmt.Errorf("diagonal %d: %w", i, ErrInvalidReduction))
		}
		x[i] = sum / diag
		em.emit(Step{Op: OpSubstitute, Row: i, Value: x[i], Name: o.varPrefix + strconv.Itoa(i+1)}, nil)
	}

	return x, nil
}

// readOff copies the constants column into the pivot variables.
func readOff(m *matrix.Dense, pivots []int) []float64 {
	n := m.Rows()
	x := make([]float64, n)
	for i, c := range pivots {
		x[c] = at(m, i, n)
	}

	return x
}
