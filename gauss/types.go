// SPDX-License-Identifier: MIT

// Package gauss: result and classification types.
package gauss

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/katalvlaran/linsys/matrix"
)

// Tolerance is the single threshold below which a value counts as zero.
// Pivot search, elimination skips, zero-row detection, consistency checks and
// term omission in parametric forms all compare |v| ≤ Tolerance.
const Tolerance = 1e-10

// NoPivot is returned by SelectPivot when the column has no usable pivot.
const NoPivot = -1

// Method selects the elimination variant.
//
//   - MethodGauss: triangularize, then back-substitute.
//   - MethodGaussJordan: reduce to RREF, then read the constants column.
type Method int

const (
	// MethodGauss is Gauss elimination with partial pivoting + back-substitution.
	MethodGauss Method = iota

	// MethodGaussJordan is Gauss-Jordan reduction to reduced row-echelon form.
	MethodGaussJordan
)

// String returns the canonical CLI spelling of the method.
func (m Method) String() string {
	switch m {
	case MethodGauss:
		return "gauss"
	case MethodGaussJordan:
		return "gauss-jordan"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// Title returns the human heading used by step-by-step output.
func (m Method) Title() string {
	switch m {
	case MethodGauss:
		return "GAUSS ELIMINATION METHOD"
	case MethodGaussJordan:
		return "GAUSS-JORDAN METHOD"
	default:
		return strings.ToUpper(m.String())
	}
}

// ParseMethod accepts the CLI spellings ("gauss", "gauss-jordan") and the
// menu numbers ("1", "2"). Matching is case-insensitive.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gauss", "g", "1":
		return MethodGauss, nil
	case "gauss-jordan", "gaussjordan", "gauss_jordan", "gj", "2":
		return MethodGaussJordan, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownMethod)
	}
}

// Kind is the classification of a reduced system.
type Kind int

const (
	// Unique: rank == n, exactly one solution.
	Unique Kind = iota

	// NoSolution: some structurally-zero row has a non-negligible constant.
	NoSolution

	// Infinite: consistent with rank < n; free variables parametrize the solutions.
	Infinite
)

// String returns a stable lowercase identifier (used in JSON/YAML reports).
func (k Kind) String() string {
	switch k {
	case Unique:
		return "unique"
	case NoSolution:
		return "no_solution"
	case Infinite:
		return "infinite_solutions"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Reduction is the outcome of one elimination run.
// Matrix is the mutated working matrix (owned by the caller after return).
// PivotCols lists pivot columns in pivot-row order; nil means "unknown" and
// makes Classify re-derive them from the leading coefficients.
type Reduction struct {
	Matrix    *matrix.Dense
	Method    Method
	PivotCols []int
}

// Classification is what RankClassifier learns from a reduced matrix.
type Classification struct {
	Kind      Kind
	Rank      int   // number of structurally non-zero rows
	N         int   // number of unknowns
	PivotCols []int // pivot columns in pivot-row order
}

// FreeVars returns the columns in [0,N) that carry no pivot, increasing.
func (c Classification) FreeVars() []int {
	free := make([]int, 0, c.N-len(c.PivotCols))
	for j := 0; j < c.N; j++ {
		if !slices.Contains(c.PivotCols, j) {
			free = append(free, j)
		}
	}

	return free
}

// Result is one fully-formed answer: exactly one of Solution (Unique) or
// Parametric (Infinite) is set; both are nil for NoSolution.
type Result struct {
	Classification

	Method     Method
	Names      []string      // variable names, len N
	Solution   []float64     // len N when Kind == Unique
	Parametric *Parametric   // set when Kind == Infinite
	Reduced    *matrix.Dense // final triangular / RREF matrix
}

// Term is one parameter contribution Coef·Name inside an Expression.
type Term struct {
	Param int     // index into Parametric.Params
	Name  string  // parameter name, e.g. "t1"
	Coef  float64 // never negligible
}

// Expression describes one variable as Constant + Σ Terms.
// A free variable is the single term 1·t_k with IsFree set.
type Expression struct {
	Var      int    // variable (column) index
	Name     string // variable name, e.g. "x1"
	IsFree   bool
	Constant float64
	Terms    []Term
}

// Parametric is the free-variable description of an Infinite system.
type Parametric struct {
	Free   []int        // free variable columns, increasing
	Params []string     // parameter names, Params[k] belongs to Free[k]
	Exprs  []Expression // one per variable, indexed by column
}
