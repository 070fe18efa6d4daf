// SPDX-License-Identifier: MIT

// Package gauss - parametric form of under-determined systems.
//
// Free variables are the non-pivot columns in increasing order; the k-th one
// is assigned the parameter t_k. Each pivot variable becomes
//
//	x_p = c + Σ_k coef_k · t_k
//
// On an RREF matrix this is c = b_row and coef_k = −a[row][free_k]. On a
// triangular (non-reduced) matrix the pivot rows are back-substituted
// bottom-up with affine expressions, which yields the same description
// without a second reduction pass.
package gauss

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/katalvlaran/linsys/matrix"
)

// BuildParametric derives the free-variable description of an Infinite system.
//
// Implementation:
//   - Stage 1: reject NoSolution (ErrNotInfinite) and pivot-complete systems (ErrNoFreeVariables).
//   - Stage 2: name free variables and parameters in increasing column order.
//   - Stage 3: walk pivot rows from last to first; each pivot variable's
//     expression is (b − Σ a·(known expressions) − Σ a·t) / pivot.
//   - Stage 4: drop negligible terms.
//
// Errors:
//   - ErrNotInfinite, ErrNoFreeVariables (misuse), shape errors from matrix,
//     ErrInvalidReduction when a pivot entry is negligible.
//
// Complexity: O(r·n·f) for rank r and f free variables.
func BuildParametric(red Reduction, cls Classification, opts ...Option) (*Parametric, error) {
	if cls.Kind == NoSolution {
		return nil, gaussErrorf(opParametric, ErrNotInfinite)
	}
	free := cls.FreeVars()
	if len(free) == 0 {
		return nil, gaussErrorf(opParametric, ErrNoFreeVariables)
	}
	m := red.Matrix
	if err := matrix.ValidateAugmented(m); err != nil {
		return nil, gaussErrorf(opParametric, err)
	}
	n := m.Rows()
	if cls.N != n {
		return nil, gaussErrorf(opParametric, ErrInvalidReduction)
	}

	o := gatherOptions(opts...)
	p := &Parametric{
		Free:   free,
		Params: make([]string, len(free)),
		Exprs:  make([]Expression, n),
	}
	for k := range free {
		p.Params[k] = o.paramPrefix + strconv.Itoa(k+1)
	}

	// coefs[col] holds the dense parameter coefficients of variable col.
	consts := make([]float64, n)
	coefs := make([][]float64, n)
	for k, col := range free {
		coefs[col] = make([]float64, len(free))
		coefs[col][k] = 1
	}

	var (
		row, col, j, k int
		a, pivot       float64
	)
	for row = len(cls.PivotCols) - 1; row >= 0; row-- {
		col = cls.PivotCols[row]
		pivot = at(m, row, col)
		if isNegligible(pivot) {
			return nil, gaussErrorf(opParametric, fmt.Errorf("pivot (%d,%d): %w", row, col, ErrInvalidReduction))
		}
		c := at(m, row, n)
		cf := make([]float64, len(free))
		for j = col + 1; j < n; j++ {
			a = at(m, row, j)
			if isNegligible(a) {
				continue
			}
			// columns right of the pivot are either free or pivots of lower rows,
			// both of which already have an expression.
			c -= a * consts[j]
			for k = range cf {
				cf[k] -= a * coefs[j][k]
			}
		}
		consts[col] = c / pivot
		for k = range cf {
			cf[k] /= pivot
		}
		coefs[col] = cf
	}

	for j = 0; j < n; j++ {
		p.Exprs[j] = newExpression(j, o.varPrefix, consts[j], coefs[j], p.Params, slices.Contains(free, j))
	}

	return p, nil
}

// newExpression assembles an Expression, omitting negligible coefficients.
func newExpression(col int, prefix string, constant float64, coefs []float64, params []string, isFree bool) Expression {
	e := Expression{
		Var:    col,
		Name:   prefix + strconv.Itoa(col+1),
		IsFree: isFree,
	}
	if !isNegligible(constant) {
		e.Constant = constant
	}
	for k, cf := range coefs {
		if isNegligible(cf) {
			continue
		}
		e.Terms = append(e.Terms, Term{Param: k, Name: params[k], Coef: cf})
	}

	return e
}

// Eval returns the variable's value for the given parameter values
// (indexed like Parametric.Params).
func (e Expression) Eval(params []float64) float64 {
	v := e.Constant
	for _, t := range e.Terms {
		if t.Param < len(params) {
			v += t.Coef * params[t.Param]
		}
	}

	return v
}

// Format renders "c + k·t" in the worked-solution style with prec decimals:
// "3.00 - 2.00t1", "t1", "0". Free variables render as their parameter.
func (e Expression) Format(prec int) string {
	if e.IsFree && len(e.Terms) == 1 && e.Terms[0].Coef == 1 && e.Constant == 0 {
		return e.Terms[0].Name
	}

	var b strings.Builder
	if e.Constant != 0 {
		b.WriteString(strconv.FormatFloat(e.Constant, 'f', prec, 64))
	}
	for _, t := range e.Terms {
		mag := strconv.FormatFloat(abs(t.Coef), 'f', prec, 64)
		switch {
		case b.Len() == 0 && t.Coef < 0:
			b.WriteString("-" + mag + t.Name)
		case b.Len() == 0:
			b.WriteString(mag + t.Name)
		case t.Coef < 0:
			b.WriteString(" - " + mag + t.Name)
		default:
			b.WriteString(" + " + mag + t.Name)
		}
	}
	if b.Len() == 0 {
		return "0"
	}

	return b.String()
}

// String is Format(2).
func (e Expression) String() string { return e.Format(2) }

// Evaluate substitutes parameter values (one per free variable, in Params
// order) and returns the full solution vector.
//
// Errors: ErrParameterCount when len(params) != len(p.Params).
func (p *Parametric) Evaluate(params []float64) ([]float64, error) {
	if len(params) != len(p.Params) {
		return nil, fmt.Errorf("got %d values for %d parameters: %w", len(params), len(p.Params), ErrParameterCount)
	}
	x := make([]float64, len(p.Exprs))
	for j, e := range p.Exprs {
		x[j] = e.Eval(params)
	}

	return x, nil
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}

	return v
}
