// SPDX-License-Identifier: MIT

// Package gauss - elimination engine.
//
// Both variants walk the coefficient columns left to right with a row cursor
// that only advances when a pivot is found. Pivotless columns therefore never
// consume a row, which keeps rank-deficient systems in proper echelon form.
//
// Determinism:
//   - Fixed column order, partial pivoting with lowest-index tie-break,
//     fixed target-row order.
package gauss

import (
	"github.com/katalvlaran/linsys/matrix"
)

// validateInput enforces the n×(n+1), finite-values contract.
func validateInput(m *matrix.Dense) error {
	if err := matrix.ValidateAugmented(m); err != nil {
		return err
	}

	return matrix.ValidateFinite(m)
}

// flushColumn sets every negligible entry of column col in rows [from, Rows)
// to exactly 0, leaving row skip alone (NoPivot skips nothing). Once a column
// is processed, rows without a pivot hold exact zeros there, so later
// eliminations cannot grow leftovers past Tolerance and the zero-row count
// always matches the pivot count.
func flushColumn(m *matrix.Dense, col, from, skip int) error {
	var (
		v   float64
		err error
	)
	for i := from; i < m.Rows(); i++ {
		if i == skip {
			continue
		}
		if v = at(m, i, col); v != 0 && isNegligible(v) {
			if err = m.Set(i, col, 0); err != nil {
				return err
			}
		}
	}

	return nil
}

// EliminateGauss triangularizes the augmented matrix m in place.
//
// Implementation:
//   - Stage 1: validate shape and values.
//   - Stage 2: for each column: SelectPivot among rows ≥ cursor; skip when
//     NoPivot; record the column; swap the pivot row into the cursor row;
//     EliminateRow every row below; advance the cursor.
//
// Behavior highlights:
//   - Produces upper-triangular form for full-rank systems, row-echelon form otherwise.
//   - Pivot columns are recorded as they are found; Classify does not need to guess them.
//   - Negligible leftovers in a processed column are set to exactly 0 below the cursor.
//   - Observer sees OpSwap and OpEliminate steps.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, matrix.ErrNaNInf (input contract).
//
// Complexity:
//   - Time O(n³), Space O(n) besides observer snapshots.
func EliminateGauss(m *matrix.Dense, opts ...Option) (Reduction, error) {
	o := gatherOptions(opts...)
	if err := validateInput(m); err != nil {
		return Reduction{}, gaussErrorf(opEliminateGauss, err)
	}

	n := m.Rows()
	em := newEmitter(o.observer, MethodGauss)
	pivots := make([]int, 0, n)

	var (
		row, col, p, target int
		done                bool
		factor              float64
		err                 error
	)
	for col = 0; col < n && row < n; col++ {
		p = SelectPivot(m, col, row)
		if p == NoPivot {
			// rank deficiency: column stays without a pivot
			if err = flushColumn(m, col, row, NoPivot); err != nil {
				return Reduction{}, gaussErrorf(opEliminateGauss, err)
			}
			continue
		}
		pivots = append(pivots, col)

		if p != row {
			if err = m.SwapRows(row, p); err != nil {
				return Reduction{}, gaussErrorf(opEliminateGauss, err)
			}
			em.emit(Step{Op: OpSwap, Row: row, Source: p, Column: col}, m)
		}

		for target = row + 1; target < n; target++ {
			done, factor, err = EliminateRow(m, row, col, target)
			if err != nil {
				return Reduction{}, gaussErrorf(opEliminateGauss, err)
			}
			if done {
				em.emit(Step{Op: OpEliminate, Row: target, Source: row, Column: col, Factor: factor}, m)
			}
		}
		if err = flushColumn(m, col, row+1, NoPivot); err != nil {
			return Reduction{}, gaussErrorf(opEliminateGauss, err)
		}
		row++
	}

	return Reduction{Matrix: m, Method: MethodGauss, PivotCols: pivots}, nil
}

// EliminateGaussJordan reduces the augmented matrix m to reduced row-echelon
// form in place and returns the ordered pivot-column list.
//
// Implementation:
//   - Stage 1: validate shape and values.
//   - Stage 2: for each column (stop once the cursor passes the last row):
//     SelectPivot among rows ≥ cursor; skip when NoPivot; record the column;
//     swap into the cursor row; divide the row by its pivot; EliminateRow in
//     every other row, above and below; advance the cursor.
//
// Behavior highlights:
//   - Pivots become exactly 1 (division, not reciprocal scaling).
//   - Negligible leftovers in a processed column are set to exactly 0 outside the pivot row.
//   - Normalization is skipped when the pivot already equals 1, so running the
//     reduction on an RREF matrix changes nothing.
//   - Observer sees OpSwap, OpNormalize and OpEliminate steps.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, matrix.ErrNaNInf (input contract).
//
// Complexity:
//   - Time O(n³), Space O(n) besides observer snapshots.
func EliminateGaussJordan(m *matrix.Dense, opts ...Option) (Reduction, error) {
	o := gatherOptions(opts...)
	if err := validateInput(m); err != nil {
		return Reduction{}, gaussErrorf(opEliminateJordan, err)
	}

	n := m.Rows()
	em := newEmitter(o.observer, MethodGaussJordan)
	pivots := make([]int, 0, n)

	var (
		row, col, p, target int
		pivot, factor       float64
		done                bool
		err                 error
	)
	for col = 0; col < n; col++ {
		if row >= n {
			break // every row already holds a pivot
		}
		p = SelectPivot(m, col, row)
		if p == NoPivot {
			if err = flushColumn(m, col, row, NoPivot); err != nil {
				return Reduction{}, gaussErrorf(opEliminateJordan, err)
			}
			continue
		}
		pivots = append(pivots, col)

		if p != row {
			if err = m.SwapRows(row, p); err != nil {
				return Reduction{}, gaussErrorf(opEliminateJordan, err)
			}
			em.emit(Step{Op: OpSwap, Row: row, Source: p, Column: col}, m)
		}

		if pivot = at(m, row, col); pivot != 1 {
			if err = m.DivideRow(row, pivot); err != nil {
				return Reduction{}, gaussErrorf(opEliminateJordan, err)
			}
			em.emit(Step{Op: OpNormalize, Row: row, Source: row, Column: col, Factor: pivot}, m)
		}

		for target = 0; target < n; target++ {
			if target == row {
				continue
			}
			done, factor, err = EliminateRow(m, row, col, target)
			if err != nil {
				return Reduction{}, gaussErrorf(opEliminateJordan, err)
			}
			if done {
				em.emit(Step{Op: OpEliminate, Row: target, Source: row, Column: col, Factor: factor}, m)
			}
		}
		if err = flushColumn(m, col, 0, row); err != nil {
			return Reduction{}, gaussErrorf(opEliminateJordan, err)
		}
		row++
	}

	return Reduction{Matrix: m, Method: MethodGaussJordan, PivotCols: pivots}, nil
}
