// SPDX-License-Identifier: MIT

// Package gauss: sentinel error set.
//
// Two families:
//   - input contract violations come from package matrix (ErrNilMatrix,
//     ErrDimensionMismatch, ErrNaNInf) wrapped with an operation tag;
//   - ErrMisuse and its children signal caller logic errors (calling the
//     solver on a non-unique system, building a parametric form with no free
//     variables, ...). They never describe a mathematical outcome; those are
//     always reported through Kind.
package gauss

import (
	"errors"
	"fmt"
)

var (
	// ErrMisuse is the parent of every programming-contract violation.
	ErrMisuse = errors.New("gauss: misuse")

	// ErrNotUnique is returned by SolveUnique on a non-Unique classification.
	ErrNotUnique = fmt.Errorf("%w: solver requires a unique classification", ErrMisuse)

	// ErrNotInfinite is returned by BuildParametric on a NoSolution classification.
	ErrNotInfinite = fmt.Errorf("%w: parametric form requires a consistent system", ErrMisuse)

	// ErrNoFreeVariables is returned by BuildParametric when every column has a pivot.
	ErrNoFreeVariables = fmt.Errorf("%w: no free variables identified", ErrMisuse)

	// ErrNegligiblePivot is returned by EliminateRow when |pivot| ≤ Tolerance.
	ErrNegligiblePivot = fmt.Errorf("%w: pivot entry is negligible", ErrMisuse)

	// ErrInvalidReduction flags a Reduction that is not in row-echelon form or
	// whose pivot list disagrees with the matrix.
	ErrInvalidReduction = fmt.Errorf("%w: reduction is not a valid row-echelon form", ErrMisuse)

	// ErrUnknownMethod flags a Method value outside MethodGauss/MethodGaussJordan.
	ErrUnknownMethod = fmt.Errorf("%w: unknown elimination method", ErrMisuse)

	// ErrParameterCount is returned by Parametric.Evaluate when the number of
	// supplied parameter values differs from the number of free variables.
	ErrParameterCount = errors.New("gauss: parameter count mismatch")
)

// Operation tags for uniform error wrapping.
const (
	opEliminateGauss  = "EliminateGauss"
	opEliminateJordan = "EliminateGaussJordan"
	opEliminateRow    = "EliminateRow"
	opClassify        = "Classify"
	opSolveUnique     = "SolveUnique"
	opParametric      = "BuildParametric"
	opSolve           = "Solve"
)

// gaussErrorf wraps err with an operation tag, preserving it for errors.Is.
func gaussErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
