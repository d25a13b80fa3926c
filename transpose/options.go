// SPDX-License-Identifier: MIT

// Package transpose: functional configuration of the recursive kernels.
//
// Notes:
//   - Thresholds are empirical and non-semantic: any value ≥ 1 yields the
//     same transposed buffer; only the recursion depth changes.
//   - Constructors panic on nonsensical values (programmer error).
package transpose

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultQuadrantThreshold is the block size at or below which the
	// quadrant recursion switches to the direct triangular swap.
	DefaultQuadrantThreshold = 32

	// DefaultBoxThreshold is the span at or below which (on both axes) the
	// bounded-box recursion switches to the direct triangular swap.
	DefaultBoxThreshold = 16
)

const (
	panicQuadrantThresholdInvalid = "transpose: WithQuadrantThreshold: threshold must be >= 1"
	panicBoxThresholdInvalid      = "transpose: WithBoxThreshold: threshold must be >= 1"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	quadrantThreshold int // DefaultQuadrantThreshold
	boxThreshold      int // DefaultBoxThreshold
}

// WithQuadrantThreshold sets the base-case block size of CacheOblivious/Quadrant.
// Panics when n < 1.
func WithQuadrantThreshold(n int) Option {
	if n < 1 {
		panic(panicQuadrantThresholdInvalid)
	}

	return func(o *Options) { o.quadrantThreshold = n }
}

// WithBoxThreshold sets the base-case span of CacheObliviousFast/Region.
// Panics when n < 1.
func WithBoxThreshold(n int) Option {
	if n < 1 {
		panic(panicBoxThresholdInvalid)
	}

	return func(o *Options) { o.boxThreshold = n }
}

// defaultOptions returns Options populated from the Default* constants.
func defaultOptions() Options {
	return Options{
		quadrantThreshold: DefaultQuadrantThreshold,
		boxThreshold:      DefaultBoxThreshold,
	}
}

// gatherOptions applies opts over the defaults; nil entries are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
