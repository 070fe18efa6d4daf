// SPDX-License-Identifier: MIT

package report_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsys/gauss"
	"github.com/katalvlaran/linsys/matrix"
	"github.com/katalvlaran/linsys/report"
)

func newGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()

	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestWalkthrough_Golden(t *testing.T) {
	t.Parallel()

	tests := []struct {
		golden string
		rows   [][]float64
		method gauss.Method
		kind   gauss.Kind
	}{
		{"walkthrough_gauss_unique", uniqueRows, gauss.MethodGauss, gauss.Unique},
		{"walkthrough_gauss_jordan_dependent", dependentRows, gauss.MethodGaussJordan, gauss.Infinite},
		{"walkthrough_gauss_jordan_inconsistent", inconsistentRows, gauss.MethodGaussJordan, gauss.NoSolution},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.golden, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			res, err := report.Walkthrough(&buf, mustDense(t, tc.rows), tc.method, nil)
			require.NoError(t, err)
			assert.Equal(t, tc.kind, res.Kind)
			newGoldie(t).Assert(t, tc.golden, buf.Bytes())
		})
	}
}

func TestWalkthrough_ExtraObserver(t *testing.T) {
	t.Parallel()

	var ops []gauss.StepOp
	extra := gauss.ObserverFunc(func(s gauss.Step) { ops = append(ops, s.Op) })

	var buf bytes.Buffer
	_, err := report.Walkthrough(&buf, mustDense(t, uniqueRows), gauss.MethodGauss, extra)
	require.NoError(t, err)
	assert.Equal(t, []gauss.StepOp{
		gauss.OpSwap, gauss.OpEliminate, gauss.OpEliminate, gauss.OpSwap, gauss.OpEliminate,
		gauss.OpSubstitute, gauss.OpSubstitute, gauss.OpSubstitute,
	}, ops)
}

func TestWalkthrough_Errors(t *testing.T) {
	t.Parallel()

	_, err := report.Walkthrough(&bytes.Buffer{}, nil, gauss.MethodGauss, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = report.Walkthrough(&bytes.Buffer{}, mustDense(t, uniqueRows), gauss.Method(7), nil)
	assert.ErrorIs(t, err, gauss.ErrUnknownMethod)

	_, err = report.Walkthrough(failingWriter{}, mustDense(t, uniqueRows), gauss.MethodGauss, nil)
	assert.ErrorIs(t, err, errWrite)
}

func TestWriteText_Golden(t *testing.T) {
	t.Parallel()

	tests := []struct {
		golden string
		rows   [][]float64
		method gauss.Method
	}{
		{"text_unique", uniqueRows, gauss.MethodGauss},
		{"text_unique", uniqueRows, gauss.MethodGaussJordan},
		{"text_infinite", dependentRows, gauss.MethodGauss},
		{"text_infinite", dependentRows, gauss.MethodGaussJordan},
		{"text_no_solution", inconsistentRows, gauss.MethodGauss},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.golden+"/"+tc.method.String(), func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			require.NoError(t, report.WriteText(&buf, mustSolve(t, tc.rows, tc.method)))
			newGoldie(t).Assert(t, tc.golden, buf.Bytes())
		})
	}
}

func TestWriteText_CustomNames(t *testing.T) {
	t.Parallel()

	res, err := gauss.Solve(mustDense(t, dependentRows), gauss.MethodGaussJordan,
		gauss.WithVariablePrefix("y"), gauss.WithParameterPrefix("s"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.WriteText(&buf, res))
	out := buf.String()
	assert.Contains(t, out, "Free variables: y2\nLet y2 = s1\n")
	assert.Contains(t, out, "y1 = 3.00 - 2.00s1\ny2 = s1\n")
	assert.Contains(t, out, "where s1 ∈ ℝ\n")
}

func TestWriteText_InfiniteWithoutParametric(t *testing.T) {
	t.Parallel()

	res := gauss.Result{Classification: gauss.Classification{Kind: gauss.Infinite}}
	var buf bytes.Buffer
	require.NoError(t, report.WriteText(&buf, res))
	assert.Contains(t, buf.String(), "The system has infinitely many solutions.\n")

	res.Kind = gauss.Kind(9)
	assert.Error(t, report.WriteText(&buf, res))
}

func TestWriteMatrix(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, report.WriteMatrix(&buf, "", mustDense(t, [][]float64{{5, 10}})))
	rule := strings.Repeat("-", report.RuleWidth)
	assert.Equal(t, rule+"\n[     5.00    10.00 ]\n"+rule+"\n", buf.String())

	buf.Reset()
	require.NoError(t, report.WriteMatrix(&buf, "Caption:", mustDense(t, [][]float64{{-0.126, 1234.5}})))
	assert.Equal(t, "\nCaption:\n"+rule+"\n[    -0.13  1234.50 ]\n"+rule+"\n", buf.String())

	assert.ErrorIs(t, report.WriteMatrix(&buf, "", nil), matrix.ErrNilMatrix)
}

func TestWriteBanner(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, report.WriteBanner(&buf, "LINEAR EQUATIONS SOLVER"))
	rule := strings.Repeat("=", report.RuleWidth)
	assert.Equal(t, "\n"+rule+"\nLINEAR EQUATIONS SOLVER\n"+rule+"\n", buf.String())
}

func TestStepPrinter_KeepsFirstError(t *testing.T) {
	t.Parallel()

	p := report.NewStepPrinter(failingWriter{})
	_, err := gauss.Solve(mustDense(t, uniqueRows), gauss.MethodGauss, gauss.WithObserver(p))
	require.NoError(t, err)
	assert.ErrorIs(t, p.Err(), errWrite)
}

var errWrite = errors.New("write failed")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }
