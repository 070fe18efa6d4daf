// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for AllClose.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsys/matrix"
)

func TestAllClose(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustFromRows(t, [][]float64{{1, 2 + 1e-12}, {3, 4}})
	c := MustFromRows(t, [][]float64{{1, 2.1}, {3, 4}})

	tests := []struct {
		name       string
		x, y       matrix.Matrix
		rtol, atol float64
		want       bool
	}{
		{"identical", a, a, 0, 0, true},
		{"within atol", a, b, 0, 1e-9, true},
		{"outside atol", a, c, 0, 1e-9, false},
		{"within rtol", a, c, 0.1, 0, true},
		{"negative tolerances are normalized", a, b, -0, -1e-9, true},
		{"generic path", hide{a}, hide{b}, 0, 1e-9, true},
		{"generic path outside", hide{a}, c, 0, 1e-9, false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := matrix.AllClose(tc.x, tc.y, tc.rtol, tc.atol)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestAllClose_Special(t *testing.T) {
	t.Parallel()

	nan := MustFromRows(t, [][]float64{{math.NaN()}}, matrix.WithNoValidateNaNInf())
	got, err := matrix.AllClose(nan, nan, 1, 1)
	require.NoError(t, err)
	require.False(t, got, "NaN is never close")

	inf := MustFromRows(t, [][]float64{{math.Inf(1)}}, matrix.WithNoValidateNaNInf())
	got, err = matrix.AllClose(inf, inf, 0, 0)
	require.NoError(t, err)
	require.True(t, got, "equal infinities compare equal")

	_, err = matrix.AllClose(inf, inf, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.AllClose(MustDense(t, 1, 2), MustDense(t, 2, 1), 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
