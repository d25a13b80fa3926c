// Package cacheoblivious is a small library of cache-efficient dense-matrix
// kernels built on divide-and-conquer recursion that adapts to the memory
// hierarchy without knowing cache or line sizes.
//
// 🚀 What is inside?
//
//	A compact set of verified kernels:
//		• transpose/ - in-place square transpose on flat buffers:
//		  naive, quadrant recursion, bounded-box recursion
//		• matrix/    - generic dense Matrix[T] with an out-of-place
//		  cache-oblivious transpose and three multiply strategies
//		  (naive, transpose-then-multiply, recursive block multiply)
//
// ✨ Why three multiply strategies?
//
//	They are an oracle, not redundancy: SimpleMul, TransposeMul and Mul are
//	written independently and must agree cell for cell. Benchmarks in each
//	package compare their speed at the same sizes.
//
// Quick example:
//
//	a, _ := matrix.FromSlice([]int{1, 2, 3, 4}, 2, 2)
//	b, _ := matrix.FromSlice([]int{2, 0, 1, 2}, 2, 2)
//	c, _ := a.Mul(b) // [[4 4] [10 8]]
//
// Everything is synchronous, single-threaded and pure Go. Base-case
// thresholds are tunable through functional options and never change a
// result, only the recursion depth.
package cacheoblivious
