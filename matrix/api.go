// SPDX-License-Identifier: MIT
// Package matrix: public constructors and converters.
//
// Purpose:
//   - Provide thin, well-documented entry points for moving data in and out of Dense.
//   - Keep ownership explicit: every constructor here returns fresh storage.
//
// AI-Hints:
//   - Use FromRows to ingest validated [][]float64 input (e.g., an augmented system).
//   - Use CloneDense to hand an independent copy to an in-place kernel.

package matrix

import "fmt"

const (
	opFromRows   = "FromRows"
	opCloneDense = "CloneDense"
)

// FromRows builds a Dense from a rectangular [][]float64 (row-major copy).
// Implementation:
//   - Stage 1: reject empty input and ragged rows.
//   - Stage 2: allocate with the resolved numeric policy.
//   - Stage 3: copy values; under the policy, NaN/±Inf are rejected.
//
// Errors:
//   - ErrInvalidDimensions (no rows or empty rows), ErrRagged, ErrNaNInf.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opFromRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	for i := 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, matrixErrorf(opFromRows, fmt.Errorf("row %d has %d values, want %d: %w", i, len(rows[i]), c, ErrRagged))
		}
	}

	d, err := newDenseWithPolicy(r, c, o.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if o.validateNaNInf && isNonFinite(rows[i][j]) {
				return nil, matrixErrorf(opFromRows, denseErrorf(ctxSet, i, j, ErrNaNInf))
			}
			d.data[i*c+j] = rows[i][j]
		}
	}

	return d, nil
}

// ToRows exports m into a freshly allocated [][]float64.
// Complexity: O(r*c).
func ToRows(m Matrix) ([][]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ToRows", err)
	}
	r, c := m.Rows(), m.Cols()
	out := make([][]float64, r)
	if d, ok := m.(*Dense); ok {
		for i := 0; i < r; i++ {
			out[i] = append([]float64(nil), d.data[i*c:(i+1)*c]...)
		}

		return out, nil
	}
	var err error
	for i := 0; i < r; i++ {
		out[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			if out[i][j], err = m.At(i, j); err != nil {
				return nil, matrixErrorf("ToRows", err)
			}
		}
	}

	return out, nil
}

// CloneDense returns an independent *Dense copy of any Matrix.
// Fast-path: *Dense is copied with a single slice copy and keeps its policy;
// other implementations are read through At with the default policy.
//
// AI-Hints:
//   - The gauss package calls this once per solve so two methods never share storage.
func CloneDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opCloneDense, err)
	}
	if d, ok := m.(*Dense); ok {
		return d.cloneDense(), nil
	}

	r, c := m.Rows(), m.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opCloneDense, err)
	}
	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opCloneDense, err)
			}
			if err = out.Set(i, j, v); err != nil {
				return nil, matrixErrorf(opCloneDense, err)
			}
		}
	}

	return out, nil
}
