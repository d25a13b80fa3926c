// SPDX-License-Identifier: MIT
// Package matrix - three independent multiplication strategies.
//
// Purpose:
//   - SimpleMul    : textbook i→j→k triple loop (baseline).
//   - TransposeMul : pay one transpose up front, then both operands are read row-wise.
//   - Mul          : cache-oblivious recursive block multiply.
//
// Notes:
//   - The three kernels share validation only. Their loop bodies stay separate
//     on purpose: agreement between them is the package's correctness oracle.
//   - Every kernel validates before allocating; a failing call returns a nil
//     result and never a partially filled one.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opSimpleMul    = "SimpleMul"
	opTransposeMul = "TransposeMul"
	opMul          = "Mul"
	opMulFloat64   = "MulFloat64"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// SimpleMul returns m·other computed with a direct triple loop (k innermost).
// Implementation:
//   - Stage 1: ValidateMulCompatible(m, other).
//   - Stage 2: for each (i,j) accumulate Σ_k m(i,k)·other(k,j) from zero.
//
// Behavior highlights:
//   - Reads other column-wise over a row-major store: poor locality, which is
//     exactly what makes it a useful baseline.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "SimpleMul").
//
// Complexity:
//   - Time O(n·k·m), Space O(n·m).
func (m *Matrix[T]) SimpleMul(other *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateMulCompatible(m, other); err != nil {
		return nil, matrixErrorf(opSimpleMul, err)
	}

	n, inner, p := m.rows, m.cols, other.cols
	res := newZero[T](n, p)
	var i, j, k int
	for i = 0; i < n; i++ {
		for j = 0; j < p; j++ {
			var sum T
			for k = 0; k < inner; k++ {
				sum += m.data[i*inner+k] * other.data[k*p+j]
			}
			res.data[i*p+j] = sum
		}
	}

	return res, nil
}

// TransposeMul returns m·other after transposing other first.
// Implementation:
//   - Stage 1: ValidateMulCompatible(m, other).
//   - Stage 2: otherT = other.Transpose(opts...).
//   - Stage 3: res(i,j) = Σ_k m(i,k)·otherT(j,k); both inner reads are contiguous.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "TransposeMul").
//
// Complexity:
//   - Time O(k·m) transpose + O(n·k·m) accumulation, Space O(k·m + n·m).
func (m *Matrix[T]) TransposeMul(other *Matrix[T], opts ...Option) (*Matrix[T], error) {
	if err := ValidateMulCompatible(m, other); err != nil {
		return nil, matrixErrorf(opTransposeMul, err)
	}

	n, inner, p := m.rows, m.cols, other.cols
	otherT := other.Transpose(opts...) // p×inner
	res := newZero[T](n, p)
	var (
		i, j, k    int
		rowA, rowB []T
	)
	for i = 0; i < n; i++ {
		rowA = m.data[i*inner : (i+1)*inner]
		for j = 0; j < p; j++ {
			rowB = otherT.data[j*inner : (j+1)*inner]
			var sum T
			for k = 0; k < inner; k++ {
				sum += rowA[k] * rowB[k]
			}
			res.data[i*p+j] = sum
		}
	}

	return res, nil
}

// Mul returns m·other using cache-oblivious recursive block multiplication.
// Implementation:
//   - Stage 1: ValidateMulCompatible(m, other); allocate a zero result (n×p).
//   - Stage 2: recurse over three ranges: rows of m, the shared dimension,
//     columns of other/result.
//   - Base case: all three widths ≤ MulThreshold → read-modify-write
//     accumulation into the current result block.
//   - Recursive case, in priority order:
//     1. shared width > threshold: split it; both halves target the SAME
//     result block, so the first half completes before the second starts.
//     2. row width > threshold: split rows (disjoint result rows).
//     3. otherwise split columns (disjoint result columns).
//
// Behavior highlights:
//   - No cache-size constant appears; only the base-case threshold, which
//     changes speed but not the result.
//   - For every result cell the partial products are added in ascending k,
//     the same order SimpleMul and TransposeMul use.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Mul").
//
// Complexity:
//   - Time O(n·k·m), Space O(n·m) + O(log) stack.
func (m *Matrix[T]) Mul(other *Matrix[T], opts ...Option) (*Matrix[T], error) {
	if err := ValidateMulCompatible(m, other); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	o := gatherOptions(opts...)
	res := newZero[T](m.rows, other.cols)
	mulRec(m, other, res, span{0, m.rows}, span{0, m.cols}, span{0, other.cols}, o.mulThreshold)

	return res, nil
}

// mulRec accumulates a[rows, shared] · b[shared, cols] into res[rows, cols].
func mulRec[T Numeric](a, b, res *Matrix[T], rows, shared, cols span, threshold int) {
	if rows.width() <= threshold && shared.width() <= threshold && cols.width() <= threshold {
		inner, p := a.cols, b.cols
		var (
			i, j, k int
			sum     T
		)
		for i = rows.lo; i < rows.hi; i++ {
			for j = cols.lo; j < cols.hi; j++ {
				sum = res.data[i*p+j]
				for k = shared.lo; k < shared.hi; k++ {
					sum += a.data[i*inner+k] * b.data[k*p+j]
				}
				res.data[i*p+j] = sum
			}
		}

		return
	}

	if shared.width() > threshold {
		lo, hi := shared.halves()
		mulRec(a, b, res, rows, lo, cols, threshold)
		mulRec(a, b, res, rows, hi, cols, threshold)

		return
	}

	if rows.width() > threshold {
		top, bottom := rows.halves()
		mulRec(a, b, res, top, shared, cols, threshold)
		mulRec(a, b, res, bottom, shared, cols, threshold)

		return
	}

	left, right := cols.halves()
	mulRec(a, b, res, rows, shared, left, threshold)
	mulRec(a, b, res, rows, shared, right, threshold)
}
