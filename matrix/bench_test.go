// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for the operators on owned,
// strided and transposed operands, comparing accelerated and generic kernels.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/linalg/matrix"
)

// benchSizes are the square sizes to benchmark.
var benchSizes = []int{64, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Mat[float64]
	sinkF float64
)

// benchMat fills an n×n matrix from a normal distribution with a fixed seed.
func benchMat(b *testing.B, n int, seed int64) *matrix.Mat[float64] {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	norm := distuv.Normal{Mu: 0, Sigma: 1}
	m, err := matrix.Random(n, n, func() float64 { return norm.Quantile(rng.Float64()*0.998 + 0.001) })
	if err != nil {
		b.Fatal(err)
	}

	return m
}

func BenchmarkMul(b *testing.B) {
	for _, n := range benchSizes {
		for _, mode := range kernelModes {
			b.Run(fmt.Sprintf("n=%d/%s", n, mode.name), func(b *testing.B) {
				b.ReportAllocs()
				A := benchMat(b, n, 1337)
				B := benchMat(b, n, 4242)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					m, err := matrix.Mul(A, B.T(), mode.opts...)
					if err != nil {
						b.Fatal(err)
					}
					sinkM = m
				}
			})
		}
	}
}

func BenchmarkAddAssign_Transposed(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			A := benchMat(b, n, 11)
			B := benchMat(b, n, 22)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := matrix.AddAssign(A, B.T()); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkNorm2Mat_View(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			A := benchMat(b, n+2, 7)
			v, err := A.Slice(1, 1, n+1, n+1)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				f, err := matrix.Norm2Mat(v)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = f
			}
		})
	}
}

// BenchmarkHStripesMut measures borrow bookkeeping for many stripes.
func BenchmarkHStripesMut(b *testing.B) {
	A := benchMat(b, 256, 3)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, err := A.HStripesMut(4)
		if err != nil {
			b.Fatal(err)
		}
		if err = s.Release(); err != nil {
			b.Fatal(err)
		}
	}
}
