// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/row operations return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// AI-Hints:
//   - Elimination kernels use SwapRows/DivideRow/AddScaledRow; each is one flat pass over a row.
//   - Clone before mutating when the caller must keep the original (see CloneDense).
//   - DefaultValidateNaNInf is on; row operations that would produce NaN/Inf fail without writing.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); row ops: O(c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"           // method tag used in error wrappers
	ctxSet      = "Set"          // method tag used in error wrappers
	ctxRow      = "Row"          // method tag used in error wrappers
	ctxSwap     = "SwapRows"     // row operation tag
	ctxDivide   = "DivideRow"    // row operation tag
	ctxAddScale = "AddScaledRow" // row operation tag
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// MAIN DESCRIPTION:
//   - Attach method context and coordinates to a sentinel error for diagnostics.
//
// Behavior highlights:
//   - Stable, human-friendly messages; preserves sentinel via %w.
//
// Inputs:
//   - method: context tag (ctxAt/ctxSet/ctxSwap/...)
//   - row, col: coordinates (for row operations: the two row indices)
//   - err: sentinel (e.g., ErrOutOfRange, ErrNaNInf)
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables NaN/Inf rejection in Set and row operations.
type Dense struct {
	r, c           int       // row and column counts (>0)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf writes when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil) // *Dense implements our public Matrix interface
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation and default numeric policy.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and initialize policy from defaults.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Prefer FromRows when the values already exist as [][]float64.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate a contiguous flat buffer; make() zero-fills it deterministically.
	buf := make([]float64, rows*cols)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           buf,
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// newDenseWithPolicy is a helper for constructors to override numeric policy.
// Implementation:
//   - Stage 1: call NewDense(rows, cols).
//   - Stage 2: set policy flag.
func newDenseWithPolicy(rows, cols int, validateNaNInf bool) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	m.validateNaNInf = validateNaNInf

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods wrap the sentinel with coordinates and method name.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// checkRow reports whether i is a valid row index.
func (m *Dense) checkRow(i int) bool { return i >= 0 && i < m.r }

// At returns the value at (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Errors:
//   - ErrOutOfRange when out of bounds
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Prefer At in external code; internal hot paths may index directly.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// MAIN DESCRIPTION:
//   - Safe element write with optional finite-only policy.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for invalid numbers
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	// Numeric policy: optional finite-only enforcement.
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v // direct flat write

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) Clone() Matrix {
	return m.cloneDense()
}

// cloneDense is the typed variant of Clone used inside the package.
func (m *Dense) cloneDense() *Dense {
	cp := make([]float64, len(m.data)) // allocate same length
	copy(cp, m.data)                   // deep copy

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
	}
}

// Row returns a copy of row i.
// Errors: ErrOutOfRange when i is not a valid row.
// Complexity: Time O(c), Space O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if !m.checkRow(i) {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// SwapRows exchanges rows i and j in place. Swapping a row with itself is a no-op.
// MAIN DESCRIPTION:
//   - Elementary row operation Ri ↔ Rj.
//
// Errors:
//   - ErrOutOfRange if either index is invalid.
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Dense) SwapRows(i, j int) error {
	if !m.checkRow(i) || !m.checkRow(j) {
		return denseErrorf(ctxSwap, i, j, ErrOutOfRange)
	}
	if i == j {
		return nil
	}
	bi, bj := i*m.c, j*m.c
	for k := 0; k < m.c; k++ { // fixed column order
		m.data[bi+k], m.data[bj+k] = m.data[bj+k], m.data[bi+k]
	}

	return nil
}

// DivideRow divides every entry of row i by d in place (Ri = Ri / d).
// Division (rather than multiplying by 1/d) keeps d/d == 1 exact, which is what
// pivot normalization relies on.
//
// Errors:
//   - ErrOutOfRange; ErrNaNInf when d == 0 or a quotient is non-finite under the policy.
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Dense) DivideRow(i int, d float64) error {
	if !m.checkRow(i) {
		return denseErrorf(ctxDivide, i, i, ErrOutOfRange)
	}
	if d == 0 || isNonFinite(d) {
		return denseErrorf(ctxDivide, i, i, ErrNaNInf)
	}
	base := i * m.c
	if m.validateNaNInf {
		for k := 0; k < m.c; k++ {
			if isNonFinite(m.data[base+k] / d) {
				return denseErrorf(ctxDivide, i, k, ErrNaNInf)
			}
		}
	}
	for k := 0; k < m.c; k++ {
		m.data[base+k] /= d
	}

	return nil
}

// AddScaledRow performs dst = dst + alpha·src in place across all columns.
// MAIN DESCRIPTION:
//   - Elementary row operation behind every elimination step
//     (Rdst = Rdst − factor·Rsrc is AddScaledRow(dst, src, −factor)).
//
// Implementation:
//   - Stage 1: bounds check both rows; dst == src is rejected (aliasing).
//   - Stage 2: policy check on all results when validateNaNInf is on.
//   - Stage 3: single flat pass writing dst.
//
// Behavior highlights:
//   - All-or-nothing under the numeric policy; src is never mutated.
//
// Errors:
//   - ErrOutOfRange (invalid rows or dst == src), ErrNaNInf.
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Dense) AddScaledRow(dst, src int, alpha float64) error {
	if !m.checkRow(dst) || !m.checkRow(src) || dst == src {
		return denseErrorf(ctxAddScale, dst, src, ErrOutOfRange)
	}
	bd, bs := dst*m.c, src*m.c
	if m.validateNaNInf {
		for k := 0; k < m.c; k++ {
			if isNonFinite(m.data[bd+k] + alpha*m.data[bs+k]) {
				return denseErrorf(ctxAddScale, dst, k, ErrNaNInf)
			}
		}
	}
	for k := 0; k < m.c; k++ {
		m.data[bd+k] += alpha * m.data[bs+k]
	}

	return nil
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write values (%g) into strings.Builder with standard delimiters.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen) // open row
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate cols
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }
