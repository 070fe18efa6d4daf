// SPDX-License-Identifier: MIT

package gauss

import (
	"fmt"

	"github.com/katalvlaran/linsys/matrix"
)

// EliminateRow zeroes m[target][col] by subtracting factor × (pivot row),
// factor = m[target][col] / m[pivotRow][col], across all columns including
// the constants and the pivot column itself.
//
// Returns (false, 0, nil) without touching m when the target entry is
// already negligible. Only the target row is mutated.
//
// Errors:
//   - ErrNegligiblePivot if |m[pivotRow][col]| ≤ Tolerance (precondition).
//   - matrix.ErrOutOfRange for invalid indices or pivotRow == target.
//   - matrix.ErrNaNInf if the update overflows.
//
// Complexity: O(Cols).
func EliminateRow(m *matrix.Dense, pivotRow, col, target int) (bool, float64, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return false, 0, gaussErrorf(opEliminateRow, err)
	}
	pv, err := m.At(pivotRow, col)
	if err != nil {
		return false, 0, gaussErrorf(opEliminateRow, err)
	}
	tv, err := m.At(target, col)
	if err != nil {
		return false, 0, gaussErrorf(opEliminateRow, err)
	}
	if pivotRow == target {
		return false, 0, gaussErrorf(opEliminateRow, fmt.Errorf("row %d against itself: %w", target, matrix.ErrOutOfRange))
	}
	if isNegligible(pv) {
		return false, 0, gaussErrorf(opEliminateRow, ErrNegligiblePivot)
	}
	if isNegligible(tv) {
		return false, 0, nil
	}

	factor := tv / pv
	if err = m.AddScaledRow(target, pivotRow, -factor); err != nil {
		return false, 0, gaussErrorf(opEliminateRow, err)
	}
	// rounding may leave a residue of order ε·|tv|; the entry is zero by construction.
	if err = m.Set(target, col, 0); err != nil {
		return false, 0, gaussErrorf(opEliminateRow, err)
	}

	return true, factor, nil
}
