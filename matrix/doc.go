// Package matrix offers a generic dense row-major Matrix with a
// cache-oblivious out-of-place transpose and three multiplication strategies.
//
// The matrix package provides:
//
//   - Matrix[T Numeric]: flat row-major storage (offset i*cols + j) with
//     bounds-checked At/Set/Ptr that return ErrOutOfRange instead of panicking.
//   - Transpose: bounded-box recursion, splitting the longer axis until a
//     block fits the base case; the receiver is never mutated.
//   - SimpleMul, TransposeMul, Mul: naive, transpose-then-multiply and
//     cache-oblivious recursive block multiply. They are deliberately kept as
//     three independent kernels: their agreement is the correctness oracle.
//   - MulFloat64: the recursive multiply specialised for float64.
//
// Failure model: shape problems (ErrDimensionMismatch, ErrBadShape,
// ErrNilMatrix) are detected before any allocation or arithmetic; no partial
// result is ever returned. Base-case thresholds are tunable via Option values
// and never influence results.
//
// All operations are synchronous and single-threaded. A *Matrix is not safe
// for concurrent mutation.
//
// See the examples in this package for usage patterns.
package matrix
