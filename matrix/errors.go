// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All public operations MUST return these sentinels (possibly wrapped
// with operation context) and tests MUST check them via errors.Is. No public
// operation panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping. Call sites wrap with fmt.Errorf("ctx: %w", ErrX); callers
// still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> shape -> dimension mismatch -> index.

var (
	// ErrBadShape is returned when a requested shape is invalid (rows<0, cols<0, or rows*cols overflows int).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Ptr) MUST return this, never wrap around or panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions: a multiply where
	// a.Cols != b.Rows, or constructor data whose length is not rows*cols.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
