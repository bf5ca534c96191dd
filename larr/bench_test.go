// Package larr_test provides benchmarks for the labeled-array hot paths,
// using deterministic random fill for the buffers.
package larr_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/larray/larr"
	"github.com/katalvlaran/larray/nd"
)

// benchSizes are the square array extents to benchmark.
var benchSizes = []int{64, 128, 256}

// sink to defeat dead-code elimination
var sinkA *larr.Array

// randArray builds an n x n array with default labels and deterministic
// random fill.
func randArray(b *testing.B, n int, seed int64) *larr.Array {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, n*n)
	for i := range data {
		data[i] = rng.Float64()
	}
	d, err := nd.NewDense([]int{n, n}, data)
	if err != nil {
		b.Fatal(err)
	}

	return larr.New(d)
}

func BenchmarkSel(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := randArray(b, n, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				s, err := a.Sel(larr.S(0, n/2), "3")
				if err != nil {
					b.Fatal(err)
				}
				sinkA = s
			}
		})
	}
}

func BenchmarkCombine(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := randArray(b, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				flat, err := a.Combine(0, 1)
				if err != nil {
					b.Fatal(err)
				}
				sinkA = flat
			}
		})
	}
}
