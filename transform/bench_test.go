package transform_test

import (
	"testing"

	"github.com/katalvlaran/glmath/matrix"
	"github.com/katalvlaran/glmath/transform"
	"github.com/katalvlaran/glmath/vector"
)

var (
	sinkM matrix.Mat4x4[float32]
	sinkV vector.Vec3f
)

func BenchmarkPerspective(b *testing.B) {
	pb := transform.New[float32](transform.WithDepthZeroToOne())
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkM = pb.Perspective(0.8, 16.0/9, 0.1, 100)
	}
}

func BenchmarkRotate(b *testing.B) {
	m := matrix.Ident4x4[float32]()
	axis := vector.New3[float32](1, 2, 3)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkM = transform.Rotate(m, 0.25, axis)
	}
}

func BenchmarkUnproject(b *testing.B) {
	model := transform.Translate(matrix.Ident4x4[float32](), vector.New3[float32](0, 0, -5))
	proj := transform.Perspective[float32](transform.OpenGL, 0.8, 4.0/3, 0.1, 100)
	vp := vector.New4[float32](0, 0, 800, 600)
	win := vector.New3[float32](400, 300, 0.5)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkV = transform.Unproject(win, model, proj, vp)
	}
}
