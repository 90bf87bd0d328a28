// Package matrix_test provides benchmarks for products and inverses.
package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/glmath/matrix"
	"github.com/katalvlaran/glmath/vector"
)

// sinks to defeat dead-code elimination
var (
	sinkM4 matrix.Mat4x4[float64]
	sinkV4 vector.Vec4d
	sinkF  float64
)

func BenchmarkMat4x4_Mul4x4(b *testing.B) {
	b.ReportAllocs()
	rng := rand.New(rand.NewSource(1337))
	x, y := rand4x4(rng), rand4x4(rng)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkM4 = x.Mul4x4(y)
	}
}

func BenchmarkMat4x4_MulVec(b *testing.B) {
	b.ReportAllocs()
	rng := rand.New(rand.NewSource(4242))
	x := rand4x4(rng)
	v := vector.New4(1.0, 2.0, 3.0, 1.0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkV4 = x.MulVec(v)
	}
}

func BenchmarkMat4x4_Inverse(b *testing.B) {
	b.ReportAllocs()
	rng := rand.New(rand.NewSource(11))
	x := rand4x4(rng)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkM4 = x.Inverse()
	}
}

func BenchmarkMat4x4_Determinant(b *testing.B) {
	b.ReportAllocs()
	rng := rand.New(rand.NewSource(22))
	x := rand4x4(rng)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkF = x.Determinant()
	}
}
