// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for Dense, row operations and validators.
//   • Keep all data finite unless a test targets the NaN/Inf policy explicitly.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/linsys/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Implementation:
//   - Stage 1: Embed matrix.Matrix to forward all methods.
//   - Stage 2: Use hide{X} in tests to force non-*Dense (fallback) paths.
//
// Behavior highlights:
//   - Prevents "*Dense" fast-path via type switch in code under test.
//
// AI-Hints:
//   - Wrap ONLY the operand you want to de-opt; keep the other one *Dense.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
//
// Complexity:
//   - Time O(r*c) zeroing by runtime, Space O(r*c).
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustFromRows BUILDS a *Dense from literal rows or fails the test.
//
// Notes:
//   - Prefer for small exact-equality tests and augmented systems.
func MustFromRows(t testing.TB, rows [][]float64, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows, opts...)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}

	return m
}

// MustRows EXPORTS m as [][]float64 or fails the test.
func MustRows(t testing.TB, m matrix.Matrix) [][]float64 {
	t.Helper()
	rows, err := matrix.ToRows(m)
	if err != nil {
		t.Fatalf("ToRows: %v", err)
	}

	return rows
}

// MustAt READS m[i][j] or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// RandomFill FILLS a Matrix with deterministic U(-1,1) values by seed.
// Implementation:
//   - Stage 1: rng := rand.New(rand.NewSource(seed)).
//   - Stage 2: For each cell, Set(i,j, rng.Float64()*2-1).
//
// Determinism:
//   - Deterministic for a fixed seed.
func RandomFill(t testing.TB, m matrix.Matrix, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if err := m.Set(i, j, rng.Float64()*2-1); err != nil {
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}
}
