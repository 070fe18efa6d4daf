// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for MatVec and SplitAugmented.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsys/matrix"
)

func TestMatVec(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{
		{2, 1, -1},
		{-3, -1, 2},
		{-2, 1, 2},
	})
	x := []float64{2, 3, -1}
	want := []float64{8, -11, -3}

	y, err := matrix.MatVec(m, x)
	require.NoError(t, err)
	require.Equal(t, want, y)

	// generic path gives the same result bit for bit
	y, err = matrix.MatVec(hide{m}, x)
	require.NoError(t, err)
	require.Equal(t, want, y)
}

func TestMatVec_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.MatVec(nil, []float64{1})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.MatVec(MustDense(t, 2, 2), []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.MatVec(MustDense(t, 2, 2), nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestSplitAugmented(t *testing.T) {
	t.Parallel()

	aug := MustFromRows(t, [][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})
	a, b, err := matrix.SplitAugmented(aug)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2}, {4, 5}}, MustRows(t, a))
	require.Equal(t, []float64{3, 6}, b)

	require.NoError(t, a.Set(0, 0, 9)) // fresh storage
	require.Equal(t, 1.0, MustAt(t, aug, 0, 0))

	_, _, err = matrix.SplitAugmented(MustDense(t, 2, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
