// SPDX-License-Identifier: MIT

// Package matrix - out-of-place cache-oblivious transpose.
//
// Purpose:
//   - Materialize mᵀ into a fresh Matrix without touching the receiver.
//   - Walk the source with bounded-box recursion (split the longer axis) so
//     both the row-major reads and the column-strided writes stay local at
//     every cache level.

package matrix

// Transpose returns a new cols×rows matrix with result(j,i) == m(i,j).
// Implementation:
//   - Stage 1: allocate the zero-filled target (cols×rows).
//   - Stage 2: recurse over rows [0,r) × cols [0,c); split the axis with the
//     larger span at its midpoint; when both spans ≤ BoxThreshold copy
//     source(i,j) → target(j,i) with direct loops.
//
// Behavior highlights:
//   - The receiver is never mutated; the result owns its own buffer.
//   - Transposing twice yields a matrix Equal to the original.
//   - Zero-area inputs produce zero-area outputs with swapped shape.
//
// Inputs:
//   - opts: WithBoxThreshold tunes the base case; results do not depend on it.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the result plus O(log(r*c)) stack.
func (m *Matrix[T]) Transpose(opts ...Option) *Matrix[T] {
	o := gatherOptions(opts...)
	target := newZero[T](m.cols, m.rows)
	m.transposeTo(target, span{0, m.rows}, span{0, m.cols}, o.boxThreshold)

	return target
}

// transposeTo copies the region rows×cols of m into target at mirrored coordinates.
// Sibling calls cover disjoint halves, so no target cell is written twice.
func (m *Matrix[T]) transposeTo(target *Matrix[T], rows, cols span, threshold int) {
	dr, dc := rows.width(), cols.width()
	if dr <= threshold && dc <= threshold {
		var i, j int
		// target has m.rows columns: target(j,i) lives at j*m.rows + i.
		for i = rows.lo; i < rows.hi; i++ {
			for j = cols.lo; j < cols.hi; j++ {
				target.data[j*m.rows+i] = m.data[i*m.cols+j]
			}
		}

		return
	}

	if dr > dc {
		top, bottom := rows.halves()
		m.transposeTo(target, top, cols, threshold)
		m.transposeTo(target, bottom, cols, threshold)

		return
	}

	left, right := cols.halves()
	m.transposeTo(target, rows, left, threshold)
	m.transposeTo(target, rows, right, threshold)
}
