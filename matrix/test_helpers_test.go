// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the transpose and multiply kernels.
//   • Keep generated values exactly representable so every strategy must agree bit-for-bit.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/cacheoblivious/matrix"
)

// MustNew ALLOCATES an r×c zero matrix or fails the test (fatal on error).
func MustNew[T matrix.Numeric](t testing.TB, r, c int) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.New[T](r, c)
	if err != nil {
		t.Fatalf("New(%d,%d): %v", r, c, err)
	}

	return m
}

// MustFromSlice WRAPS data as an r×c matrix or fails the test.
func MustFromSlice[T matrix.Numeric](t testing.TB, data []T, r, c int) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.FromSlice(data, r, c)
	if err != nil {
		t.Fatalf("FromSlice(%d,%d): %v", r, c, err)
	}

	return m
}

// RandomInts RETURNS an r×c int64 matrix with values in [lo, hi) from a fixed seed.
func RandomInts(t testing.TB, r, c int, lo, hi int64, seed int64) *matrix.Matrix[int64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]int64, r*c)
	for i := range data {
		data[i] = lo + rng.Int63n(hi-lo)
	}

	return MustFromSlice(t, data, r, c)
}

// RandomIntFloats RETURNS an r×c float64 matrix of integers in [0,100).
// Integer-valued inputs keep every product and partial sum exact, so results
// do not depend on summation grouping or fused multiply-add.
func RandomIntFloats(t testing.TB, r, c int, seed int64) *matrix.Matrix[float64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, r*c)
	for i := range data {
		data[i] = float64(rng.Intn(100))
	}

	return MustFromSlice(t, data, r, c)
}

// Sequential RETURNS an r×c matrix holding 0,1,2,... in row-major order.
func Sequential(t testing.TB, r, c int) *matrix.Matrix[int] {
	t.Helper()
	data := make([]int, r*c)
	for i := range data {
		data[i] = i
	}

	return MustFromSlice(t, data, r, c)
}

// MustAt READS (i,j) or fails the test.
func MustAt[T matrix.Numeric](t testing.TB, m *matrix.Matrix[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}
