// SPDX-License-Identifier: MIT

package report_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/linsys/gauss"
	"github.com/katalvlaran/linsys/matrix"
	"github.com/katalvlaran/linsys/report"
	"github.com/katalvlaran/linsys/system"
)

var (
	uniqueRows       = [][]float64{{2, 1, -1, 8}, {-3, -1, 2, -11}, {-2, 1, 2, -3}}
	inconsistentRows = [][]float64{{1, 1, 1, 6}, {0, 0, 0, 5}, {2, 2, 2, 12}}
	dependentRows    = [][]float64{{1, 2, 3}, {2, 4, 6}}

	approx = cmpopts.EquateApprox(0, 1e-9)
)

func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

func mustSolve(t *testing.T, rows [][]float64, method gauss.Method) gauss.Result {
	t.Helper()
	res, err := gauss.Solve(mustDense(t, rows), method)
	require.NoError(t, err)

	return res
}

func TestFromResult_Unique(t *testing.T) {
	t.Parallel()

	sys := &system.System{Name: "three-by-three", Description: "classic", Rows: uniqueRows}
	r, err := report.FromResult(mustSolve(t, uniqueRows, gauss.MethodGaussJordan), sys)
	require.NoError(t, err)

	want := &report.Report{
		System:      "three-by-three",
		Description: "classic",
		Method:      "gauss-jordan",
		Kind:        "unique",
		Rank:        3,
		Unknowns:    3,
		PivotCols:   []int{0, 1, 2},
		Solution:    []report.Variable{{Name: "x1", Value: 2}, {Name: "x2", Value: 3}, {Name: "x3", Value: -1}},
		Reduced:     [][]float64{{1, 0, 0, 2}, {0, 1, 0, 3}, {0, 0, 1, -1}},
	}
	if diff := cmp.Diff(want, r, approx); diff != "" {
		t.Fatalf("report mismatch (-want +got):\n%s", diff)
	}
}

func TestFromResult_Infinite(t *testing.T) {
	t.Parallel()

	r, err := report.FromResult(mustSolve(t, dependentRows, gauss.MethodGauss), nil)
	require.NoError(t, err)

	assert.Equal(t, "infinite_solutions", r.Kind)
	assert.Equal(t, 1, r.Rank)
	assert.Equal(t, []int{0}, r.PivotCols)
	assert.Nil(t, r.Solution)
	assert.Equal(t, []string{"x2"}, r.Free)
	assert.Equal(t, []string{"t1"}, r.Params)
	assert.Equal(t, []report.Assignment{
		{Name: "x1", Expr: "3 - 2t1"},
		{Name: "x2", Expr: "t1", Free: true},
	}, r.Parametric)
	assert.Empty(t, r.System)
}

func TestFromResult_NoSolution(t *testing.T) {
	t.Parallel()

	r, err := report.FromResult(mustSolve(t, inconsistentRows, gauss.MethodGauss), nil)
	require.NoError(t, err)
	assert.Equal(t, "no_solution", r.Kind)
	assert.Nil(t, r.Solution)
	assert.Nil(t, r.Parametric)
	assert.Len(t, r.Reduced, 3)

	_, err = report.FromResult(gauss.Result{}, nil)
	assert.ErrorIs(t, err, report.ErrNoResult)
}

func TestFromResult_EmptyPivotsEncodeAsList(t *testing.T) {
	t.Parallel()

	r, err := report.FromResult(mustSolve(t, [][]float64{{0, 0}}, gauss.MethodGauss), nil)
	require.NoError(t, err)
	assert.Equal(t, "infinite_solutions", r.Kind)

	var buf bytes.Buffer
	require.NoError(t, report.WriteJSON(&buf, r))
	assert.Contains(t, buf.String(), `"pivot_columns": []`)
}

func TestResidual(t *testing.T) {
	t.Parallel()

	orig := mustDense(t, uniqueRows)
	res, err := report.Residual(orig, []float64{2, 3, -1})
	require.NoError(t, err)
	assert.InDelta(t, 0, res, 1e-12)

	res, err = report.Residual(orig, []float64{2, 3, 0})
	require.NoError(t, err)
	assert.InDelta(t, 2, res, 1e-12) // rows 2 and 3 both miss by 2

	_, err = report.Residual(orig, []float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = report.Residual(mustDense(t, [][]float64{{1, 2}, {3, 4}}), []float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestEncode_RoundTrip(t *testing.T) {
	t.Parallel()

	r, err := report.FromResult(mustSolve(t, uniqueRows, gauss.MethodGauss), &system.System{Name: "u"})
	require.NoError(t, err)
	v := 1e-15
	r.ID = "0190f5c2-0000-7000-8000-000000000000"
	r.Residual = &v

	decode := map[report.Format]func([]byte, any) error{
		report.FormatJSON: json.Unmarshal,
		report.FormatYAML: yaml.Unmarshal,
		report.FormatCBOR: cbor.Unmarshal,
	}
	for f, unmarshal := range decode {
		var buf bytes.Buffer
		require.NoError(t, report.Encode(&buf, f, r), f)

		var got report.Report
		require.NoError(t, unmarshal(buf.Bytes(), &got), f)
		if diff := cmp.Diff(r, &got, approx); diff != "" {
			t.Errorf("%s round trip (-want +got):\n%s", f, diff)
		}
	}

	assert.ErrorIs(t, report.Encode(&bytes.Buffer{}, report.FormatText, r), report.ErrUnknownFormat)
}

func TestWriteYAML_FieldNames(t *testing.T) {
	t.Parallel()

	r, err := report.FromResult(mustSolve(t, dependentRows, gauss.MethodGaussJordan), nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.WriteYAML(&buf, r))
	out := buf.String()
	assert.Contains(t, out, "kind: infinite_solutions\n")
	assert.Contains(t, out, "free_variables:\n  - x2\n")
	assert.Contains(t, out, "expr: 3 - 2t1\n")
	assert.NotContains(t, out, "solution:")
}

func TestWriteCBOR_Deterministic(t *testing.T) {
	t.Parallel()

	r, err := report.FromResult(mustSolve(t, uniqueRows, gauss.MethodGauss), nil)
	require.NoError(t, err)

	var a, b bytes.Buffer
	require.NoError(t, report.WriteCBOR(&a, r))
	require.NoError(t, report.WriteCBOR(&b, r))
	assert.Equal(t, a.Bytes(), b.Bytes())
	assert.True(t, report.FormatCBOR.Binary())
	assert.False(t, report.FormatJSON.Binary())
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]report.Format{
		"text": report.FormatText,
		"JSON": report.FormatJSON,
		"yml":  report.FormatYAML,
		"CBOR": report.FormatCBOR,
	} {
		got, err := report.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := report.ParseFormat("xml")
	assert.ErrorIs(t, err, report.ErrUnknownFormat)
	assert.Len(t, report.Formats, 4)
}
