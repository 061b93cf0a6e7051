package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/numlab/matrix"
)

// ExampleArgMaxAbsInColumn shows one partial-pivoting sweep built from the
// package primitives: for each column, the largest remaining entry is
// swapped onto the diagonal.
func ExampleArgMaxAbsInColumn() {
	m, _ := matrix.NewDenseFrom([][]float64{
		{1, 5, 1},
		{6, 1, 1},
		{1, 1, 4},
	})
	for col := 0; col < m.Cols(); col++ {
		r, _ := matrix.ArgMaxAbsInColumn(m, col, col)
		_ = m.SwapRows(col, r)
	}
	fmt.Print(m)
	// Output:
	// [6, 1, 1]
	// [1, 5, 1]
	// [1, 1, 4]
}

// ExampleResidual computes the defect A·x − b of an exact solution.
func ExampleResidual() {
	a, _ := matrix.NewDenseFrom([][]float64{{2, 0}, {0, 4}})
	r, _ := matrix.Residual(a, []float64{1, 0.5}, []float64{2, 2})
	fmt.Println(r)
	// Output:
	// [0 0]
}
