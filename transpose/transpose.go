// SPDX-License-Identifier: MIT

// Package transpose - square in-place transposition kernels.
//
// Purpose:
//   - Provide three interchangeable strategies over a row-major flat buffer.
//   - Keep the recursive kernels addressable on embedded blocks (stride ≠ n)
//     so they can be composed by callers working on larger matrices.
//
// Complexity quicksheet:
//   - InPlace, CacheOblivious, CacheObliviousFast: Time O(n²), Space O(1) extra.
package transpose

// InPlace transposes the n×n row-major matrix held in buf[:n*n].
// Implementation:
//   - Stage 1: for every i in [0,n) and j in [0,i) swap (i,j) with (j,i).
//
// Behavior highlights:
//   - Diagonal and upper triangle are never visited; each pair is swapped once.
//   - n ≤ 0 is a no-op.
//
// Inputs:
//   - buf: row-major buffer, len(buf) ≥ n*n (not checked).
//   - n  : matrix order.
//
// Complexity:
//   - Time O(n²), Space O(1).
func InPlace[T any](buf []T, n int) {
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < i; j++ {
			buf[i*n+j], buf[j*n+i] = buf[j*n+i], buf[i*n+j]
		}
	}
}

// CacheOblivious transposes the n×n row-major matrix in buf using quadrant
// recursion (see Quadrant).
// Complexity: Time O(n²), Space O(log n) stack.
func CacheOblivious[T any](buf []T, n int, opts ...Option) {
	if n <= 0 {
		return
	}
	o := gatherOptions(opts...)
	quadrant(buf, n, n, o.quadrantThreshold)
}

// Quadrant transposes the n×n block whose top-left cell is block[0] inside a
// larger row-major buffer with row stride `stride`.
// Implementation:
//   - Stage 1 (base): n ≤ threshold → triangular swap addressed with stride.
//   - Stage 2 (recurse): mid = n/2; transpose the four mid×mid quadrants
//     in place, then swap the off-diagonal quadrants cell by cell.
//   - Stage 3 (odd n): swap the trailing row with the trailing column.
//
// Behavior highlights:
//   - Every recursive call receives its own sub-slice view; sibling calls
//     touch disjoint cells.
//   - Cells of the buffer outside the block are never written.
//
// Inputs:
//   - block : sub-slice starting at the block origin; it must cover
//     (n-1)*stride+n cells (not checked).
//   - n     : block order.
//   - stride: row stride of the enclosing buffer (stride ≥ n).
//
// Complexity:
//   - Time O(n²), Space O(log n) stack.
func Quadrant[T any](block []T, n, stride int, opts ...Option) {
	if n <= 0 {
		return
	}
	o := gatherOptions(opts...)
	quadrant(block, n, stride, o.quadrantThreshold)
}

// quadrant is the recursive worker behind CacheOblivious and Quadrant.
func quadrant[T any](block []T, n, stride, threshold int) {
	var i, j int
	if n <= threshold {
		for i = 0; i < n; i++ {
			for j = 0; j < i; j++ {
				block[i*stride+j], block[j*stride+i] = block[j*stride+i], block[i*stride+j]
			}
		}

		return
	}

	mid := n / 2
	quadrant(block, mid, stride, threshold)                  // top-left
	quadrant(block[mid:], mid, stride, threshold)            // top-right
	quadrant(block[mid*stride:], mid, stride, threshold)     // bottom-left
	quadrant(block[mid*stride+mid:], mid, stride, threshold) // bottom-right

	// Each off-diagonal quadrant now holds its own transpose; exchanging them
	// completes the block identity [A B; C D]ᵀ = [Aᵀ Cᵀ; Bᵀ Dᵀ].
	var tr, bl int
	for i = 0; i < mid; i++ {
		for j = 0; j < mid; j++ {
			tr = i*stride + j + mid
			bl = (i+mid)*stride + j
			block[tr], block[bl] = block[bl], block[tr]
		}
	}

	if n%2 == 1 {
		last := n - 1
		for i = 0; i < last; i++ {
			block[last*stride+i], block[i*stride+last] = block[i*stride+last], block[last*stride+i]
		}
	}
}

// CacheObliviousFast transposes the n×n row-major matrix in buf using
// bounded-box recursion over the full index range (see Region).
// Complexity: Time O(n²), Space O(log n) stack.
func CacheObliviousFast[T any](buf []T, n int, opts ...Option) {
	if n <= 0 {
		return
	}
	o := gatherOptions(opts...)
	region(buf, 0, 0, n, n, n, o.boxThreshold)
}

// Region swaps every cell (i,j) with j < i of the index range
// [x0,x1) × [y0,y1) against its mirror (j,i), in a buffer of row stride
// `stride`.
// Implementation:
//   - Stage 1 (base): both spans ≤ threshold → loop i ∈ [x0,x1),
//     j ∈ [y0, min(y1,i)) and swap.
//   - Stage 2 (recurse): split the axis with the larger span at its midpoint.
//
// Behavior highlights:
//   - The min(y1,i) bound keeps the diagonal untouched and prevents a pair
//     from being swapped twice when the region straddles the diagonal.
//   - Calling Region over [0,n)×[0,n) with stride n transposes the matrix.
//   - Degenerate ranges (x0 ≥ x1 or y0 ≥ y1) are no-ops.
//
// Inputs:
//   - buf: row-major buffer containing both (i,j) and (j,i) for every cell
//     in the range (not checked).
//   - x0,y0,x1,y1: half-open row and column bounds.
//   - stride: row stride of buf.
//
// Complexity:
//   - Time O((x1-x0)·(y1-y0)), Space O(log) stack.
func Region[T any](buf []T, x0, y0, x1, y1, stride int, opts ...Option) {
	if x0 >= x1 || y0 >= y1 {
		return
	}
	o := gatherOptions(opts...)
	region(buf, x0, y0, x1, y1, stride, o.boxThreshold)
}

// region is the recursive worker behind CacheObliviousFast and Region.
func region[T any](buf []T, x0, y0, x1, y1, stride, threshold int) {
	dx, dy := x1-x0, y1-y0
	if dx <= threshold && dy <= threshold {
		var i, j, jEnd int
		for i = x0; i < x1; i++ {
			jEnd = min(y1, i)
			for j = y0; j < jEnd; j++ {
				buf[i*stride+j], buf[j*stride+i] = buf[j*stride+i], buf[i*stride+j]
			}
		}

		return
	}

	if dx > dy {
		midX := x0 + dx/2
		region(buf, x0, y0, midX, y1, stride, threshold)
		region(buf, midX, y0, x1, y1, stride, threshold)

		return
	}

	midY := y0 + dy/2
	region(buf, x0, y0, x1, midY, stride, threshold)
	region(buf, x0, midY, x1, y1, stride, threshold)
}
