// SPDX-License-Identifier: MIT

// Package linsys solves square linear systems A·x = b given as an n×(n+1)
// augmented matrix, by Gauss elimination with partial pivoting or by
// Gauss-Jordan reduction to reduced row-echelon form.
//
// Every system is classified as having a unique solution, no solution, or
// infinitely many solutions; the last case is described in parametric form
// (x1 = 3.00 - 2.00t1, x2 = t1, where t1 ∈ ℝ).
//
// Packages:
//
//	matrix/         Dense storage, row operations, validators, MatVec
//	gauss/          elimination engines, classification, solver, parametric form
//	system/         system files (YAML/JSON or plain rows) and row parsing
//	report/         worked-solution text, JSON/YAML/CBOR reports, residuals
//	internal/cli/   cobra commands behind cmd/linsys
//
// Quick example:
//
//	a, _ := matrix.FromRows([][]float64{{2, 1, -1, 8}, {-3, -1, 2, -11}, {-2, 1, 2, -3}})
//	res, _ := gauss.Solve(a, gauss.MethodGauss)
//	fmt.Println(res.Kind, res.Solution) // unique [2 3 -1]
//
// Command line:
//
//	go install github.com/katalvlaran/linsys/cmd/linsys@latest
//	linsys solve --steps system.yaml
//	linsys interactive
package linsys
