// SPDX-License-Identifier: MIT

// Package gauss solves square linear systems given as augmented matrices,
// using Gauss elimination with partial pivoting or Gauss-Jordan reduction.
//
// 🚀 What does it do?
//
//	Given [A | b] with A n×n, the package reduces the matrix in place,
//	classifies the system and extracts the answer:
//	  • Unique:     one solution vector x (A·x = b)
//	  • NoSolution: a row reads 0 = c with c ≠ 0
//	  • Infinite:   rank < n; pivot variables expressed through free parameters
//
// ✨ Key features:
//   - partial pivoting (largest |a| in the remaining column, first row wins ties)
//   - one tolerance (Tolerance = 1e-10) for every pivot/zero/consistency decision
//   - pivot columns recorded during elimination for both methods
//   - parametric form x_p = c + Σ k·t_i for under-determined systems
//   - Observer hook receiving every swap, normalization, elimination and
//     back-substitution step (for step-by-step printing or logging)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/linsys/gauss"
//
//	a, _ := matrix.FromRows([][]float64{
//	  {2, 1, -1, 8},
//	  {-3, -1, 2, -11},
//	  {-2, 1, 2, -3},
//	})
//	res, err := gauss.Solve(a, gauss.MethodGaussJordan)
//	// res.Kind == gauss.Unique, res.Solution ≈ [2 3 -1]
//
// Ownership:
//
//	Solve clones its input, so the caller's matrix is never touched.
//	EliminateGauss and EliminateGaussJordan mutate the *matrix.Dense they
//	receive; pass an independent copy per run.
//
// Performance:
//
//   - Time:   O(n³) for either method
//   - Memory: O(n²) for the working copy (Solve), O(n) extra otherwise
package gauss
