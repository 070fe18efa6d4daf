// SPDX-License-Identifier: MIT

package gauss

import (
	"math"

	"github.com/katalvlaran/linsys/matrix"
)

// isNegligible is the one zero test used throughout the package.
func isNegligible(v float64) bool { return math.Abs(v) <= Tolerance }

// at reads m[i][j]; callers have already validated the augmented shape,
// so the bounds error cannot occur.
func at(m *matrix.Dense, i, j int) float64 {
	v, _ := m.At(i, j) // safe: bounds ensured by ValidateAugmented

	return v
}

// SelectPivot returns the row in [start, Rows) whose entry in column col has
// the largest absolute value (partial pivoting).
//
// Behavior highlights:
//   - Ties keep the first row encountered (lowest index).
//   - Returns NoPivot when the best magnitude is ≤ Tolerance, or when col/start
//     fall outside the matrix.
//   - Pure: never mutates m.
//
// Complexity: O(Rows − start).
func SelectPivot(m *matrix.Dense, col, start int) int {
	if m == nil || col < 0 || col >= m.Cols() || start < 0 || start >= m.Rows() {
		return NoPivot
	}

	best, bestAbs := start, math.Abs(at(m, start, col))
	var a float64
	for i := start + 1; i < m.Rows(); i++ {
		a = math.Abs(at(m, i, col))
		if a > bestAbs { // strict: earlier row wins ties
			best, bestAbs = i, a
		}
	}
	if isNegligible(bestAbs) {
		return NoPivot
	}

	return best
}
