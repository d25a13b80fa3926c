// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for the options snapshot.
//
// Purpose:
//   - Expose the resolved internal Options to matrix_test without widening the prod API.
//   - Lives in a _test.go file, so it never compiles into production builds.

// OptionsSnapshot is a read-only view of the resolved Options.
type OptionsSnapshot struct {
	BoxThreshold int
	MulThreshold int
}

// GatherOptionsSnapshot_TestOnly resolves opts exactly like the public kernels do.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{BoxThreshold: o.boxThreshold, MulThreshold: o.mulThreshold}
}

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicBoxThresholdInvalid_TestOnly = panicBoxThresholdInvalid
	PanicMulThresholdInvalid_TestOnly = panicMulThresholdInvalid
)
