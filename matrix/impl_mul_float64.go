// SPDX-License-Identifier: MIT
// Package matrix - float64 fast path of the recursive block multiply.
//
// Purpose:
//   - Same recursion schedule as Mul, specialised for float64 so the base case
//     can walk contiguous row slices (i→k→j) with bounds checks hoisted out of
//     the inner loop.
//
// Notes:
//   - Per result cell, products are still added in ascending k, so on exactly
//     representable data the result is bit-identical to Mul.

package matrix

// MulFloat64 returns a·b for float64 matrices using the recursive schedule of
// Mul with a slice-based base-case kernel.
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b); allocate zero result (n×p).
//   - Stage 2: split shared → rows → cols exactly like Mul.
//   - Base case: for each row i and shared index k, add a(i,k)·b(k,cols) to the
//     result row segment res(i,cols).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "MulFloat64").
//
// Complexity:
//   - Time O(n·k·m), Space O(n·m) + O(log) stack.
//
// AI-Hints:
//   - Prefer this over Mul for float64 workloads; keep Mul for generic T.
func MulFloat64(a, b *Matrix[float64], opts ...Option) (*Matrix[float64], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMulFloat64, err)
	}

	o := gatherOptions(opts...)
	res := newZero[float64](a.rows, b.cols)
	mulRecFloat64(a.data, b.data, res.data, a.cols, b.cols,
		span{0, a.rows}, span{0, a.cols}, span{0, b.cols}, o.mulThreshold)

	return res, nil
}

// mulRecFloat64 accumulates a[rows,shared]·b[shared,cols] into c[rows,cols].
// lda is the row stride of a; ldb is the row stride of both b and c.
func mulRecFloat64(a, b, c []float64, lda, ldb int, rows, shared, cols span, threshold int) {
	if rows.width() <= threshold && shared.width() <= threshold && cols.width() <= threshold {
		var (
			i, k, j    int
			av         float64
			cRow, bRow []float64
		)
		for i = rows.lo; i < rows.hi; i++ {
			cRow = c[i*ldb+cols.lo : i*ldb+cols.hi]
			for k = shared.lo; k < shared.hi; k++ {
				av = a[i*lda+k]
				bRow = b[k*ldb+cols.lo : k*ldb+cols.hi]
				bRow = bRow[:len(cRow)]
				for j = range cRow {
					cRow[j] += av * bRow[j]
				}
			}
		}

		return
	}

	if shared.width() > threshold {
		lo, hi := shared.halves()
		mulRecFloat64(a, b, c, lda, ldb, rows, lo, cols, threshold)
		mulRecFloat64(a, b, c, lda, ldb, rows, hi, cols, threshold)

		return
	}

	if rows.width() > threshold {
		top, bottom := rows.halves()
		mulRecFloat64(a, b, c, lda, ldb, top, shared, cols, threshold)
		mulRecFloat64(a, b, c, lda, ldb, bottom, shared, cols, threshold)

		return
	}

	left, right := cols.halves()
	mulRecFloat64(a, b, c, lda, ldb, rows, shared, left, threshold)
	mulRecFloat64(a, b, c, lda, ldb, rows, shared, right, threshold)
}
