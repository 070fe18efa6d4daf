// SPDX-License-Identifier: MIT

package gauss

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/linsys/matrix"
)

// ClassifyAndSolve turns a Reduction into a complete Result:
// Classify, then SolveUnique (Unique) or BuildParametric (Infinite).
// NoSolution yields a Result with neither Solution nor Parametric.
//
// The Reduction matrix is not copied; Result.Reduced aliases it.
func ClassifyAndSolve(red Reduction, opts ...Option) (Result, error) {
	cls, err := Classify(red)
	if err != nil {
		return Result{}, err
	}

	o := gatherOptions(opts...)
	res := Result{Classification: cls, Method: red.Method, Reduced: red.Matrix}
	res.Names = make([]string, cls.N)
	for j := range res.Names {
		res.Names[j] = o.varPrefix + strconv.Itoa(j+1)
	}
	switch cls.Kind {
	case Unique:
		if res.Solution, err = SolveUnique(red, cls, opts...); err != nil {
			return Result{}, err
		}
	case Infinite:
		if res.Parametric, err = BuildParametric(red, cls, opts...); err != nil {
			return Result{}, err
		}
	}

	return res, nil
}

// Solve runs the full pipeline on an independent copy of m:
// validate → clone → eliminate with the chosen method → classify → solve.
//
// Behavior highlights:
//   - m is never mutated; Result.Reduced is the private working copy.
//   - Any matrix.Matrix implementation is accepted; *matrix.Dense is cloned directly.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, matrix.ErrNaNInf (input contract).
//   - ErrUnknownMethod for a Method outside the two supported variants.
//
// Example:
//
//	res, err := gauss.Solve(a, gauss.MethodGauss, gauss.WithObserver(printer))
func Solve(m matrix.Matrix, method Method, opts ...Option) (Result, error) {
	if err := matrix.ValidateAugmented(m); err != nil {
		return Result{}, gaussErrorf(opSolve, err)
	}
	work, err := matrix.CloneDense(m)
	if err != nil {
		return Result{}, gaussErrorf(opSolve, err)
	}

	var red Reduction
	switch method {
	case MethodGauss:
		red, err = EliminateGauss(work, opts...)
	case MethodGaussJordan:
		red, err = EliminateGaussJordan(work, opts...)
	default:
		return Result{}, gaussErrorf(opSolve, fmt.Errorf("%v: %w", method, ErrUnknownMethod))
	}
	if err != nil {
		return Result{}, err
	}

	return ClassifyAndSolve(red, opts...)
}
