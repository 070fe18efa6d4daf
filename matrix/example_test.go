// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/linsys/matrix"
)

// ExampleDense_AddScaledRow performs one elimination step by hand.
func ExampleDense_AddScaledRow() {
	m, _ := matrix.FromRows([][]float64{
		{2, 4, 6},
		{1, 3, 5},
	})
	_ = m.AddScaledRow(1, 0, -0.5) // R2 = R2 - 0.5·R1
	fmt.Print(m)
	// Output:
	// [2, 4, 6]
	// [0, 1, 2]
}

// ExampleMatVec checks a candidate solution against the original system.
func ExampleMatVec() {
	aug, _ := matrix.FromRows([][]float64{
		{2, 1, -1, 8},
		{-3, -1, 2, -11},
		{-2, 1, 2, -3},
	})
	a, b, _ := matrix.SplitAugmented(aug)
	ax, _ := matrix.MatVec(a, []float64{2, 3, -1})
	fmt.Println(ax, b)
	// Output:
	// [8 -11 -3] [8 -11 -3]
}
