// SPDX-License-Identifier: MIT

package transform_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/glmath/interop"
	"github.com/katalvlaran/glmath/matrix"
	"github.com/katalvlaran/glmath/transform"
	"github.com/katalvlaran/glmath/vector"
)

var viewport = vector.New4(0.0, 0.0, 800.0, 600.0)

func scene() (model, proj matrix.Mat4d) {
	model = transform.Translate(matrix.Ident4x4[float64](), vector.New3(0.0, 0.0, -6.0))
	model = transform.Rotate(model, 0.3, vector.New3(1.0, 1.0, 0.0))
	proj = transform.Perspective(transform.OpenGL, math.Pi/4, 4.0/3, 0.1, 100)
	return model, proj
}

func TestProject_CenterOfView(t *testing.T) {
	model, proj := scene()
	win := transform.Project(vector.Vec3d{}, model, proj, viewport)
	require.InDelta(t, 400.0, win[0], tol)
	require.InDelta(t, 300.0, win[1], tol)
	require.True(t, win[2] > 0 && win[2] < 1, "depth %v", win[2])
}

func TestProject_AgainstMathgl(t *testing.T) {
	model, proj := scene()
	rng := rand.New(rand.NewSource(31))
	for n := 0; n < 50; n++ {
		obj := randVec3(rng)

		want := mgl64.Project(interop.ToMgl64Vec3(obj), interop.ToMgl64Mat4(model), interop.ToMgl64Mat4(proj), 0, 0, 800, 600)
		got := transform.Project(obj, model, proj, viewport)
		require.True(t, got.ApproxEqual(interop.FromMgl64Vec3(want), 1e-9), "%v %v", got, want)

		back, err := mgl64.UnProject(want, interop.ToMgl64Mat4(model), interop.ToMgl64Mat4(proj), 0, 0, 800, 600)
		require.NoError(t, err)
		require.True(t, transform.Unproject(got, model, proj, viewport).ApproxEqual(interop.FromMgl64Vec3(back), 1e-8))
	}
}

func TestUnproject_RoundTrip(t *testing.T) {
	model, proj := scene()
	vp := vector.New4(20.0, 10.0, 640.0, 480.0)
	rng := rand.New(rand.NewSource(32))
	for n := 0; n < 100; n++ {
		p := randVec3(rng)
		win := transform.Project(p, model, proj, vp)
		require.True(t, transform.Unproject(win, model, proj, vp).ApproxEqual(p, 1e-8), "n=%d", n)
	}

	// float32 with an orthographic projection
	o := transform.Ortho(transform.Vulkan, float32(-4), 4, -3, 3, 0.1, 20)
	m := transform.Translate(matrix.Ident4x4[float32](), vector.New3[float32](0, 0, -5))
	p := vector.New3[float32](1, -2, 0.5)
	vp32 := vector.Cast4[float32](vp)
	require.True(t, transform.Unproject(transform.Project(p, m, o, vp32), m, o, vp32).ApproxEqual(p, 1e-4))
}

func TestPickMatrix(t *testing.T) {
	pick := transform.PickMatrix(vector.New2(200.0, 150.0), vector.New2(10.0, 10.0), viewport)

	// window (200,150) is NDC (-0.5,-0.5); the pick region centre maps to 0
	got := pick.MulVec(vector.New4(-0.5, -0.5, 0.25, 1))
	require.True(t, got.ApproxEqual(vector.New4(0, 0, 0.25, 1.0), tol), "%v", got)

	// the region's corner (205,155) maps to the NDC corner
	corner := pick.MulVec(vector.New4(205.0/400-1, 155.0/300-1, 0, 1))
	require.True(t, corner.ApproxEqual(vector.New4(1, 1, 0, 1.0), tol), "%v", corner)
}

func TestPickMatrix_PanicsOnDelta(t *testing.T) {
	center := vector.New2(1.0, 1.0)
	require.PanicsWithValue(t, "transform: PickMatrix: delta must be > 0 on both axes, got (0, 1)", func() {
		transform.PickMatrix(center, vector.New2(0.0, 1.0), viewport)
	})
	require.PanicsWithValue(t, "transform: PickMatrix: delta must be > 0 on both axes, got (1, -1)", func() {
		transform.PickMatrix(center, vector.New2(1.0, -1.0), viewport)
	})
	require.Panics(t, func() { transform.PickMatrix(center, vector.New2(math.NaN(), 1), viewport) })
}
