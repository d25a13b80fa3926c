package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cacheoblivious/matrix"
)

// ExampleMatrix_Transpose shows the out-of-place transpose of a 2×3 matrix.
func ExampleMatrix_Transpose() {
	m, _ := matrix.FromSlice([]int{1, 2, 3, 4, 5, 6}, 2, 3)
	fmt.Print(m.Transpose())
	// Output:
	// [1, 4]
	// [2, 5]
	// [3, 6]
}

// ExampleMatrix_Mul multiplies with all three strategies and compares them.
func ExampleMatrix_Mul() {
	a, _ := matrix.FromSlice([]int{1, 2, 3, 4}, 2, 2)
	b, _ := matrix.FromSlice([]int{2, 0, 1, 2}, 2, 2)

	simple, _ := a.SimpleMul(b)
	viaT, _ := a.TransposeMul(b)
	rec, _ := a.Mul(b)

	fmt.Print(rec)
	fmt.Println(simple.Equal(rec), viaT.Equal(rec))
	// Output:
	// [4, 4]
	// [10, 8]
	// true true
}

// ExampleMatrix_Mul_dimensionMismatch shows the fail-fast error path.
func ExampleMatrix_Mul_dimensionMismatch() {
	a, _ := matrix.New[float64](2, 3)
	b, _ := matrix.New[float64](2, 3)

	res, err := a.Mul(b)
	fmt.Println(res == nil, errors.Is(err, matrix.ErrDimensionMismatch))
	// Output:
	// true true
}
