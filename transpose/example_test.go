package transpose_test

import (
	"fmt"

	"github.com/katalvlaran/cacheoblivious/transpose"
)

// ExampleCacheObliviousFast transposes a 3×3 matrix in place.
func ExampleCacheObliviousFast() {
	buf := []int{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}
	transpose.CacheObliviousFast(buf, 3)
	fmt.Println(buf)
	// Output:
	// [1 4 7 2 5 8 3 6 9]
}

// ExampleQuadrant transposes the bottom-right 2×2 block of a 3×3 buffer.
func ExampleQuadrant() {
	buf := []int{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}
	transpose.Quadrant(buf[1*3+1:], 2, 3)
	fmt.Println(buf)
	// Output:
	// [1 2 3 4 5 8 7 6 9]
}
