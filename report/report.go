// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linsys/gauss"
	"github.com/katalvlaran/linsys/matrix"
	"github.com/katalvlaran/linsys/system"
)

const (
	opFromResult = "FromResult"
	opResidual   = "Residual"
)

// Variable is one named value of a unique solution.
type Variable struct {
	Name  string  `json:"name" yaml:"name"`
	Value float64 `json:"value" yaml:"value"`
}

// Assignment is one line of a parametric solution, e.g. x1 = 3 - 2t1.
type Assignment struct {
	Name string `json:"name" yaml:"name"`
	Expr string `json:"expr" yaml:"expr"`
	Free bool   `json:"free,omitempty" yaml:"free,omitempty"`
}

// Report is the serialisable form of one solve.
// Exactly one of Solution (unique) or Parametric (infinite) is filled.
type Report struct {
	ID          string       `json:"id,omitempty" yaml:"id,omitempty"`
	System      string       `json:"system,omitempty" yaml:"system,omitempty"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Method      string       `json:"method" yaml:"method"`
	Kind        string       `json:"kind" yaml:"kind"`
	Rank        int          `json:"rank" yaml:"rank"`
	Unknowns    int          `json:"unknowns" yaml:"unknowns"`
	PivotCols   []int        `json:"pivot_columns" yaml:"pivot_columns"`
	Solution    []Variable   `json:"solution,omitempty" yaml:"solution,omitempty"`
	Free        []string     `json:"free_variables,omitempty" yaml:"free_variables,omitempty"`
	Params      []string     `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Parametric  []Assignment `json:"parametric,omitempty" yaml:"parametric,omitempty"`
	Reduced     [][]float64  `json:"reduced" yaml:"reduced"`
	Residual    *float64     `json:"residual,omitempty" yaml:"residual,omitempty"`
}

// FromResult flattens res into a Report. sys may be nil; when set, its name
// and description are copied. Parametric expressions use the shortest exact
// float spelling ("3 - 2t1") rather than the two-decimal text rendering.
//
// Errors: ErrNoResult when res carries no reduced matrix.
func FromResult(res gauss.Result, sys *system.System) (*Report, error) {
	if res.Reduced == nil {
		return nil, reportErrorf(opFromResult, ErrNoResult)
	}
	reduced, err := matrix.ToRows(res.Reduced)
	if err != nil {
		return nil, reportErrorf(opFromResult, err)
	}

	r := &Report{
		Method:    res.Method.String(),
		Kind:      res.Kind.String(),
		Rank:      res.Rank,
		Unknowns:  res.N,
		PivotCols: append([]int{}, res.PivotCols...),
		Reduced:   reduced,
	}
	if sys != nil {
		r.System = sys.Name
		r.Description = sys.Description
	}

	switch res.Kind {
	case gauss.Unique:
		r.Solution = make([]Variable, len(res.Solution))
		for i, v := range res.Solution {
			r.Solution[i] = Variable{Name: varName(res, i), Value: v}
		}
	case gauss.Infinite:
		if res.Parametric == nil {
			break
		}
		p := res.Parametric
		r.Params = append([]string{}, p.Params...)
		for _, col := range p.Free {
			r.Free = append(r.Free, varName(res, col))
		}
		r.Parametric = make([]Assignment, len(p.Exprs))
		for j, e := range p.Exprs {
			r.Parametric[j] = Assignment{Name: e.Name, Expr: e.Format(-1), Free: e.IsFree}
		}
	}

	return r, nil
}

// varName falls back to the default prefix for results built by hand.
func varName(res gauss.Result, i int) string {
	if i < len(res.Names) {
		return res.Names[i]
	}

	return fmt.Sprintf("%s%d", gauss.DefaultVariablePrefix, i+1)
}

// Residual returns ‖A·x − b‖∞ for the augmented matrix orig = [A | b].
//
// Errors: the shape errors of matrix.SplitAugmented and matrix.MatVec
// (x must have one entry per unknown).
func Residual(orig matrix.Matrix, x []float64) (float64, error) {
	a, b, err := matrix.SplitAugmented(orig)
	if err != nil {
		return 0, reportErrorf(opResidual, err)
	}
	ax, err := matrix.MatVec(a, x)
	if err != nil {
		return 0, reportErrorf(opResidual, err)
	}

	var worst float64
	for i := range ax {
		worst = math.Max(worst, math.Abs(ax[i]-b[i]))
	}

	return worst, nil
}
