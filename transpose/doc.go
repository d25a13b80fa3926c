// Package transpose implements in-place transposition of square matrices
// stored in row-major flat buffers.
//
// 🚀 What is here?
//
//	Three strategies with the same contract (buf[i*n+j] ↔ buf[j*n+i]):
//	  • InPlace            – naive triangular swap, O(n²), O(1) extra space
//	  • CacheOblivious     – quadrant recursion on sub-slice views
//	  • CacheObliviousFast – bounded-box recursion, splits the longer axis
//
//	Quadrant and Region expose the recursive kernels directly so callers can
//	transpose a block embedded in a larger buffer (row stride ≠ n).
//
// ✨ Cache-oblivious?
//
//	The recursive variants never ask how big the cache is. They keep halving
//	the problem until it fits a base case; at some depth every sub-problem
//	fits every cache level. The base-case thresholds are tunable through
//	Option values and only affect speed, never the result.
//
// ⚙️ Usage:
//
//	buf := []int{1, 2, 3, 4} // 2×2
//	transpose.CacheObliviousFast(buf, 2)
//	// buf == [1 3 2 4]
//
// Preconditions (len(buf) ≥ n*n, block fits inside the buffer) are
// documented but not checked; a violation panics with a Go bounds error.
//
// Performance:
//
//   - Time:   O(n²) for every strategy
//   - Memory: O(1) extra, recursion depth O(log n)
package transpose
