// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file contains ONLY the element constraint and the Matrix storage type.
// Constructors and accessors live in impl_dense.go, kernels in impl_*.go,
// errors and options in dedicated files.
package matrix

// Numeric is the element capability required by Matrix: a zero value,
// value copy, addition and multiplication. Transposition only needs the
// copy; the multiply kernels use + and *.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 |
		~complex64 | ~complex128
}

// Matrix is a dense row-major matrix of T.
//   - rows,cols hold dimensions (≥0; zero-area matrices are legal).
//   - data is a flat buffer of length rows*cols (offset = i*cols + j).
//
// Invariant: len(data) == rows*cols for the whole lifetime; no resize exists.
// Two Matrix values never share a backing buffer: every operation returning
// a *Matrix allocates a fresh one.
type Matrix[T Numeric] struct {
	rows, cols int // row and column counts
	data       []T // contiguous row-major storage (len == rows*cols)
}

// span is a half-open index range [lo,hi) used as recursion state by the
// region-based kernels.
type span struct {
	lo, hi int
}

// width returns hi-lo.
func (s span) width() int { return s.hi - s.lo }

// halves splits s at its midpoint; the midpoint belongs to the upper half only.
func (s span) halves() (span, span) {
	mid := s.lo + s.width()/2

	return span{s.lo, mid}, span{mid, s.hi}
}
