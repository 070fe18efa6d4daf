// SPDX-License-Identifier: MIT

// Package gauss_test: shared fixtures.
//
// The three worked systems below (plus the 1×1 boundary) are the reference
// cases every layer is checked against.
package gauss_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsys/gauss"
	"github.com/katalvlaran/linsys/matrix"
)

// approx compares float slices up to an absolute margin.
var approx = cmpopts.EquateApprox(0, 1e-9)

// Reference systems.
var (
	uniqueSystem = [][]float64{
		{2, 1, -1, 8},
		{-3, -1, 2, -11},
		{-2, 1, 2, -3},
	}
	inconsistentSystem = [][]float64{
		{1, 1, 1, 6},
		{0, 0, 0, 5},
		{2, 2, 2, 12},
	}
	dependentSystem = [][]float64{
		{1, 2, 3},
		{2, 4, 6},
	}
	singleSystem = [][]float64{
		{5, 10},
	}
)

// methods lists every supported elimination variant.
var methods = []gauss.Method{gauss.MethodGauss, gauss.MethodGaussJordan}

// mustDense builds a *Dense from rows or fails the test.
func mustDense(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(tb, err)

	return m
}

// mustRows exports m or fails the test.
func mustRows(tb testing.TB, m matrix.Matrix) [][]float64 {
	tb.Helper()
	rows, err := matrix.ToRows(m)
	require.NoError(tb, err)

	return rows
}

// eliminate runs the requested method on m in place.
func eliminate(tb testing.TB, m *matrix.Dense, method gauss.Method, opts ...gauss.Option) gauss.Reduction {
	tb.Helper()
	var (
		red gauss.Reduction
		err error
	)
	switch method {
	case gauss.MethodGauss:
		red, err = gauss.EliminateGauss(m, opts...)
	default:
		red, err = gauss.EliminateGaussJordan(m, opts...)
	}
	require.NoError(tb, err)

	return red
}

// requireApprox fails when got and want differ beyond the shared margin.
func requireApprox(tb testing.TB, want, got []float64) {
	tb.Helper()
	if diff := cmp.Diff(want, got, approx); diff != "" {
		tb.Fatalf("vector mismatch (-want +got):\n%s", diff)
	}
}

// residual returns max_i |A_i·x − b_i| for the augmented rows.
func residual(rows [][]float64, x []float64) float64 {
	var worst float64
	n := len(x)
	for _, row := range rows {
		s := -row[n]
		for j := 0; j < n; j++ {
			s += row[j] * x[j]
		}
		if s < 0 {
			s = -s
		}
		if s > worst {
			worst = s
		}
	}

	return worst
}

// hidden masks the concrete *Dense type so the generic Matrix paths run.
type hidden struct{ matrix.Matrix }

// recorder collects observed steps.
type recorder struct{ steps []gauss.Step }

func (r *recorder) Observe(s gauss.Step) { r.steps = append(r.steps, s) }

// descriptions renders the recorded steps.
func (r *recorder) descriptions() []string {
	out := make([]string, len(r.steps))
	for i, s := range r.steps {
		out[i] = s.Description()
	}

	return out
}
