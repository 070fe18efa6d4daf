// SPDX-License-Identifier: MIT

package gauss

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/katalvlaran/linsys/matrix"
)

// isZeroRow reports whether every coefficient of row i (constants excluded)
// is negligible.
func isZeroRow(m *matrix.Dense, i int) bool {
	n := m.Rows()
	for j := 0; j < n; j++ {
		if !isNegligible(at(m, i, j)) {
			return false
		}
	}

	return true
}

// Classify inspects a reduced matrix and decides Unique / NoSolution / Infinite.
//
// Implementation:
//   - Stage 1: validate the augmented shape.
//   - Stage 2: scan rows; a structurally-zero row with a non-negligible
//     constant makes the system inconsistent; every other non-zero row adds 1 to rank.
//   - Stage 3: take red.PivotCols, or re-derive them from leading coefficients
//     when the reduction carries none, and check they agree with the rank.
//
// Behavior highlights:
//   - NoSolution wins over rank considerations (0 = c is decisive).
//   - Unique ⇔ consistent ∧ rank == n.
//
// Errors:
//   - matrix.ErrNilMatrix / matrix.ErrDimensionMismatch (shape).
//   - ErrInvalidReduction when the pivot list does not match the matrix.
//
// Complexity: O(n²).
func Classify(red Reduction) (Classification, error) {
	m := red.Matrix
	if err := matrix.ValidateAugmented(m); err != nil {
		return Classification{}, gaussErrorf(opClassify, err)
	}
	n := m.Rows()

	inconsistent := false
	rank := 0
	for i := 0; i < n; i++ {
		if !isZeroRow(m, i) {
			rank++
			continue
		}
		if !isNegligible(at(m, i, n)) {
			inconsistent = true // 0 = c, c ≠ 0
		}
	}

	var pivots []int
	if red.PivotCols == nil {
		derived, err := derivePivotColumns(m)
		if err != nil {
			return Classification{}, gaussErrorf(opClassify, err)
		}
		pivots = derived
	} else {
		if err := checkPivotColumns(red.PivotCols, n); err != nil {
			return Classification{}, gaussErrorf(opClassify, err)
		}
		pivots = slices.Clone(red.PivotCols)
	}
	if len(pivots) != rank {
		return Classification{}, gaussErrorf(opClassify,
			fmt.Errorf("%d pivot columns for rank %d: %w", len(pivots), rank, ErrInvalidReduction))
	}

	cls := Classification{Rank: rank, N: n, PivotCols: pivots}
	switch {
	case inconsistent:
		cls.Kind = NoSolution
	case rank == n:
		cls.Kind = Unique
	default:
		cls.Kind = Infinite
	}

	return cls, nil
}

// derivePivotColumns takes each non-zero row's first non-negligible
// coefficient as that row's pivot. The rows must be in echelon order:
// strictly increasing leading columns, zero rows only at the bottom.
func derivePivotColumns(m *matrix.Dense) ([]int, error) {
	n := m.Rows()
	pivots := make([]int, 0, n)
	seenZero := false
	for i := 0; i < n; i++ {
		lead := -1
		for j := 0; j < n; j++ {
			if !isNegligible(at(m, i, j)) {
				lead = j
				break
			}
		}
		if lead < 0 {
			seenZero = true
			continue
		}
		if seenZero {
			return nil, fmt.Errorf("row %d follows a zero row: %w", i, ErrInvalidReduction)
		}
		if len(pivots) > 0 && lead <= pivots[len(pivots)-1] {
			return nil, fmt.Errorf("row %d leads at column %d: %w", i, lead, ErrInvalidReduction)
		}
		pivots = append(pivots, lead)
	}

	return pivots, nil
}

// checkPivotColumns requires strictly increasing columns inside [0,n).
func checkPivotColumns(pivots []int, n int) error {
	for k, c := range pivots {
		if c < 0 || c >= n || (k > 0 && c <= pivots[k-1]) {
			return fmt.Errorf("pivot columns %v: %w", pivots, ErrInvalidReduction)
		}
	}

	return nil
}
