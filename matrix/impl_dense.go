// SPDX-License-Identifier: MIT

// Package matrix - dense row-major storage & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Ptr return errors instead of panicking.
//   - Keep ownership explicit: constructors either allocate or take ownership of a slice;
//     nothing hands out the backing buffer.
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; FromSlice: O(1); At/Set/Ptr: O(1); Clone/Data/Equal: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
	ctxPtr = "Ptr" // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// matrixIndexErrorf wraps an error with a uniform Matrix context and callsite indices.
// Produces "Matrix.<method>(row,col): <err>"; the sentinel is preserved via %w.
func matrixIndexErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// validShape reports whether rows×cols is non-negative and rows*cols fits in an int.
func validShape(rows, cols int) bool {
	if rows < 0 || cols < 0 {
		return false
	}

	return cols == 0 || rows <= math.MaxInt/cols
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[float64])(nil)

// New creates a rows×cols zero matrix using row-major storage.
// Implementation:
//   - Stage 1: validate rows ≥ 0 && cols ≥ 0 and that rows*cols does not
//     overflow int; else ErrBadShape.
//   - Stage 2: allocate a zero-filled buffer (make() zero-fills deterministically).
//
// Behavior highlights:
//   - Zero-area shapes (0×k, k×0) are legal and hold an empty buffer.
//
// Errors:
//   - ErrBadShape (negative dimension or overflowing area).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T Numeric](rows, cols int) (*Matrix[T], error) {
	if !validShape(rows, cols) {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Matrix[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}, nil
}

// newZero allocates a rows×cols zero matrix for kernels whose shapes are
// already validated.
func newZero[T Numeric](rows, cols int) *Matrix[T] {
	return &Matrix[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}
}

// FromSlice wraps data as a rows×cols row-major matrix.
// Implementation:
//   - Stage 1: validate rows ≥ 0 && cols ≥ 0 and that rows*cols does not
//     overflow int; else ErrBadShape.
//   - Stage 2: require len(data) == rows*cols; else ErrDimensionMismatch.
//   - Stage 3: take ownership of data (no copy).
//
// Behavior highlights:
//   - Never truncates or pads: a length mismatch is always an error.
//   - The matrix owns data afterwards; the caller must not keep writing to it,
//     otherwise two values would alias one buffer.
//
// Errors:
//   - ErrBadShape, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(1), Space O(1).
func FromSlice[T Numeric](data []T, rows, cols int) (*Matrix[T], error) {
	if !validShape(rows, cols) {
		return nil, fmt.Errorf("FromSlice(%d,%d): %w", rows, cols, ErrBadShape)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("FromSlice(%d,%d): len(data)=%d: %w", rows, cols, len(data), ErrDimensionMismatch)
	}
	if data == nil {
		data = []T{} // keep Data()/Equal semantics uniform for 0-area inputs
	}

	return &Matrix[T]{rows: rows, cols: cols, data: data}, nil
}

// Identity returns the n×n identity matrix (main diagonal = 1, else 0).
// Errors: ErrBadShape when n < 0.
// Complexity: Time O(n²), Space O(n²).
func Identity[T Numeric](n int) (*Matrix[T], error) {
	m, err := New[T](n, n)
	if err != nil {
		return nil, err
	}
	var i int
	for i = 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Matrix[T]) Cols() int { return m.cols }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Matrix[T]) Shape() (rows, cols int) { return m.rows, m.cols }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Returns the bare sentinel; public methods wrap it with coordinates.
// Complexity: O(1).
func (m *Matrix[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.rows {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.cols {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.cols + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Behavior highlights:
//   - Never panics on out-of-range; never wraps indices around.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T

		return zero, matrixIndexErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return matrixIndexErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v // direct flat write

	return nil
}

// Ptr returns a pointer to the cell (row, col) for in-place updates,
// or ErrOutOfRange.
// Behavior highlights:
//   - The pointer stays valid for the matrix lifetime (storage is never resized).
//   - Writes through it are visible via At; it must not be retained across
//     goroutines without external synchronization.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Matrix[T]) Ptr(row, col int) (*T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return nil, matrixIndexErrorf(ctxPtr, row, col, err)
	}

	return &m.data[off], nil
}

// Clone returns a deep copy (new buffer, same shape).
// Complexity: Time O(r*c), Space O(r*c).
func (m *Matrix[T]) Clone() *Matrix[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Matrix[T]{rows: m.rows, cols: m.cols, data: cp}
}

// Data returns a row-major copy of the elements.
// The backing buffer itself is never exposed.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Matrix[T]) Data() []T {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return cp
}

// Equal reports whether m and other have the same shape and identical elements.
// Two nil matrices are equal; a nil and a non-nil one are not.
// Complexity: Time O(r*c), Space O(1).
func (m *Matrix[T]) Equal(other *Matrix[T]) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i := range m.data {
		if m.data[i] != other.data[i] {
			return false
		}
	}

	return true
}

// String renders rows as lines with comma-separated values.
// Not for hot paths; intended for logs, examples and debugging.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Matrix[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.rows; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.cols
		for j = 0; j < m.cols; j++ {
			b.WriteString(fmt.Sprintf("%v", m.data[base+j]))
			if j+1 < m.cols {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
