// Package transpose_test provides benchmarks for the square transpose
// strategies, using deterministic random fill.
package transpose_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/cacheoblivious/transpose"
)

// benchSizes are the matrix orders to benchmark.
var benchSizes = []int{256, 1000, 2000}

func randomFloats(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	buf := make([]float64, n)
	for i := range buf {
		buf[i] = rng.Float64()
	}

	return buf
}

func benchmarkTranspose(b *testing.B, fn func(buf []float64, n int)) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			buf := randomFloats(n*n, 0)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				fn(buf, n)
			}
		})
	}
}

func BenchmarkInPlace(b *testing.B) {
	benchmarkTranspose(b, func(buf []float64, n int) { transpose.InPlace(buf, n) })
}

func BenchmarkCacheOblivious(b *testing.B) {
	benchmarkTranspose(b, func(buf []float64, n int) { transpose.CacheOblivious(buf, n) })
}

func BenchmarkCacheObliviousFast(b *testing.B) {
	benchmarkTranspose(b, func(buf []float64, n int) { transpose.CacheObliviousFast(buf, n) })
}
