// SPDX-License-Identifier: MIT

// Package matrix offers the dense storage used by the linear-system solvers.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with bounds-checked At/Set, deep Clone
//     and in-place elementary row operations (SwapRows, DivideRow, AddScaledRow).
//   - Constructors (NewDense, FromRows, CloneDense) and exporters
//     (ToRows) for moving between [][]float64 and Dense.
//   - Central validators (ValidateNotNil, ValidateSameShape, ValidateAugmented,
//     ValidateFinite) returning plain sentinel errors.
//   - Small kernels used for verification: MatVec and AllClose.
//
// Augmented systems are stored as n×(n+1) matrices whose last column holds the
// constants. Elimination kernels in package gauss mutate a Dense in place; take
// a CloneDense first whenever the original must survive.
package matrix
