// SPDX-License-Identifier: MIT

package system_test

import (
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsys/matrix"
	"github.com/katalvlaran/linsys/system"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		file        string
		name        string
		description string
		rows        [][]float64
	}{
		{"unique.yaml", "three-by-three", "unique solution x = (2, 3, -1)", [][]float64{{2, 1, -1, 8}, {-3, -1, 2, -11}, {-2, 1, 2, -3}}},
		{"inconsistent.yaml", "inconsistent", "second equation reads 0 = 5", [][]float64{{1, 1, 1, 6}, {0, 0, 0, 5}, {2, 2, 2, 12}}},
		{"dependent.txt", "dependent", "", [][]float64{{1, 2, 3}, {2, 4, 6}}},
		{"single.json", "one-unknown", "", [][]float64{{5, 10}}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.file, func(t *testing.T) {
			t.Parallel()
			s, err := system.Load(filepath.Join("testdata", tc.file))
			require.NoError(t, err)
			assert.Equal(t, tc.name, s.Name)
			assert.Equal(t, tc.description, s.Description)
			assert.Equal(t, tc.rows, s.Rows)
			assert.Equal(t, len(tc.rows), s.N())
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		file string
		want error
	}{
		{"typo.yaml", system.ErrDecode},
		{"ragged.yaml", system.ErrRowLength},
		{"badnumber.txt", system.ErrBadNumber},
	}
	for _, tc := range tests {
		_, err := system.Load(filepath.Join("testdata", tc.file))
		assert.ErrorIs(t, err, tc.want, tc.file)
		assert.Contains(t, err.Error(), tc.file)
	}

	_, err := system.Load(filepath.Join("testdata", "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read system file")
}

func TestDecode(t *testing.T) {
	t.Parallel()

	s, err := system.Decode(strings.NewReader("rows: [[5, 10]]\n"))
	require.NoError(t, err)
	assert.Empty(t, s.Name)
	assert.Equal(t, [][]float64{{5, 10}}, s.Rows)

	_, err = system.Decode(strings.NewReader(""))
	assert.ErrorIs(t, err, system.ErrDecode)

	_, err = system.Decode(strings.NewReader("rows: []\n"))
	assert.ErrorIs(t, err, system.ErrNoEquations)

	_, err = system.Decode(strings.NewReader("rows: [[1, .nan]]\n"))
	assert.ErrorIs(t, err, system.ErrNonFinite)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, (&system.System{}).Validate(), system.ErrNoEquations)

	err := (&system.System{Rows: [][]float64{{1, 2, 3}, {4, 5}}}).Validate()
	assert.ErrorIs(t, err, system.ErrRowLength)
	assert.EqualError(t, err, "row 2: system: wrong number of values: expected 3 values, got 2")

	err = (&system.System{Rows: [][]float64{{math.Inf(1), 1}}}).Validate()
	assert.ErrorIs(t, err, system.ErrNonFinite)

	assert.NoError(t, (&system.System{Rows: [][]float64{{5, 10}}}).Validate())
}

func TestMatrix(t *testing.T) {
	t.Parallel()

	s := &system.System{Rows: [][]float64{{1, 2, 3}, {4, 5, 6}}}
	m, err := s.Matrix()
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateAugmented(m))

	rows, err := matrix.ToRows(m)
	require.NoError(t, err)
	assert.Equal(t, s.Rows, rows)

	s.Rows[0][0] = 99 // the matrix owns a copy
	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	_, err = (&system.System{}).Matrix()
	assert.ErrorIs(t, err, system.ErrNoEquations)
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		rows [][]float64
		err  error
	}{
		{"rows", "# two equations\n1 2 3\n2 4 6\n", [][]float64{{1, 2, 3}, {2, 4, 6}}, nil},
		{"negative first", "-5 10\n", [][]float64{{-5, 10}}, nil},
		{"yaml", "name: s\nrows:\n  - [5, 10]\n", [][]float64{{5, 10}}, nil},
		{"json", `{"rows": [[1, 1, 3], [1, -1, 1]]}`, [][]float64{{1, 1, 3}, {1, -1, 1}}, nil},
		{"empty", "", nil, system.ErrDecode},
		{"bad rows", "1 2 x\n3 4 5\n", nil, system.ErrBadNumber},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s, err := system.Parse([]byte(tc.in))
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.rows, s.Rows)
		})
	}
}
