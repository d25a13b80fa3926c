// SPDX-License-Identifier: MIT

// Package matrix: functional configuration of the recursive kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each threshold is consumed by exactly one kernel.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Thresholds are empirical base-case sizes. They never change a result,
//     only how deep the recursion goes before a direct loop takes over.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultBoxThreshold is the span at or below which (on both axes)
	// Transpose copies a region with direct loops.
	DefaultBoxThreshold = 16

	// DefaultMulThreshold is the range width at or below which (on all three
	// ranges) Mul and MulFloat64 accumulate a block with direct loops.
	DefaultMulThreshold = 16
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicBoxThresholdInvalid = "matrix: WithBoxThreshold: threshold must be >= 1"
	panicMulThresholdInvalid = "matrix: WithMulThreshold: threshold must be >= 1"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	boxThreshold int // DefaultBoxThreshold
	mulThreshold int // DefaultMulThreshold
}

// WithBoxThreshold sets the base-case span of the out-of-place Transpose
// (and of the transpose step inside TransposeMul).
// Panics when n < 1.
func WithBoxThreshold(n int) Option {
	if n < 1 {
		panic(panicBoxThresholdInvalid)
	}

	return func(o *Options) { o.boxThreshold = n }
}

// WithMulThreshold sets the base-case range width of the recursive multiply.
// Panics when n < 1.
//
// AI-Hints:
//   - 1 exercises the deepest recursion (useful in tests); 16–64 are the
//     usual performance sweet spots for float64.
func WithMulThreshold(n int) Option {
	if n < 1 {
		panic(panicMulThresholdInvalid)
	}

	return func(o *Options) { o.mulThreshold = n }
}

// defaultOptions returns Options populated from the Default* constants.
func defaultOptions() Options {
	return Options{
		boxThreshold: DefaultBoxThreshold,
		mulThreshold: DefaultMulThreshold,
	}
}

// gatherOptions applies opts in order over the defaults (last writer wins).
// nil entries are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
