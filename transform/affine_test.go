// SPDX-License-Identifier: MIT
// Package transform_test: translate, rotate and scale.

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

const tol = 1e-9

func randVec3(rng *rand.Rand) vector.Vec3d {
	return vector.New3(rng.Float64()*4-2, rng.Float64()*4-2, rng.Float64()*4-2)
}

func rand4x4(rng *rand.Rand) (m matrix.Mat4d) {
	for j := range m {
		for i := range m[j] {
			m[j][i] = rng.Float64()*4 - 2
		}
	}
	return m
}

func TestTranslate(t *testing.T) {
	m := transform.Translate(matrix.Ident4x4[float64](), vector.New3(1.0, 2.0, 3.0))
	require.Equal(t, vector.New4(1.0, 2.0, 3.0, 1.0), m[3])
	require.Equal(t, vector.New4(5.0, 7.0, 9.0, 1.0), m.MulVec(vector.New4(4.0, 5.0, 6.0, 1.0)))

	rng := rand.New(rand.NewSource(10))
	for n := 0; n < 100; n++ {
		base, v := rand4x4(rng), randVec3(rng)

		// translate(translate(M, v), -v) == M
		back := transform.Translate(transform.Translate(base, v), v.Neg())
		require.True(t, back.ApproxEqual(base, tol), "n=%d", n)

		// translate(M, v) == M · T(v)
		want := base.Mul4x4(transform.Translate(matrix.Ident4x4[float64](), v))
		require.True(t, transform.Translate(base, v).ApproxEqual(want, tol))
	}
}

func TestRotation_AgainstMathgl(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for n := 0; n < 100; n++ {
		angle := rng.Float64()*4*math.Pi - 2*math.Pi
		axis := randVec3(rng)

		want := interop.FromMgl64Mat4(mgl64.HomogRotate3D(angle, interop.ToMgl64Vec3(axis.Normalize())))
		got := transform.Rotation(angle, axis)
		require.True(t, got.ApproxEqual(want, 1e-12), "n=%d\n%v\n%v", n, got, want)

		// the axis is fixed by its own rotation
		a4 := axis.Vec4(0)
		require.True(t, got.MulVec(a4).ApproxEqual(a4, tol))
	}
}

func TestRotate_ComposesOnTheRight(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	for n := 0; n < 100; n++ {
		base, axis := rand4x4(rng), randVec3(rng)
		angle := rng.Float64() * 2 * math.Pi

		got := transform.Rotate(base, angle, axis)
		require.True(t, got.ApproxEqual(base.Mul4x4(transform.Rotation(angle, axis)), tol))
		require.Equal(t, base[3], got[3])
	}

	require.Equal(t,
		transform.Rotation(0.7, vector.New3(1.0, 2.0, 3.0)),
		transform.Rotate(matrix.Ident4x4[float64](), 0.7, vector.New3(1.0, 2.0, 3.0)))
}

func TestRotate_RightHandRule(t *testing.T) {
	// A quarter turn about +z carries +x to +y and +y to −x.
	r := transform.Rotation(math.Pi/2, vector.New3(0.0, 0.0, 2.0))
	require.True(t, r.MulVec(vector.New4(1.0, 0.0, 0.0, 1.0)).ApproxEqual(vector.New4(0.0, 1.0, 0.0, 1.0), tol))
	require.True(t, r.MulVec(vector.New4(0.0, 1.0, 0.0, 1.0)).ApproxEqual(vector.New4(-1.0, 0.0, 0.0, 1.0), tol))

	// float32 instantiation
	r32 := transform.Rotation[float32](math.Pi/2, vector.New3[float32](1, 0, 0))
	require.True(t, r32.MulVec(vector.New4[float32](0, 1, 0, 1)).ApproxEqual(vector.New4[float32](0, 0, 1, 1), 1e-6))
}

func TestScale(t *testing.T) {
	m := transform.Scale(matrix.Ident4x4[float64](), vector.New3(2.0, 3.0, 4.0))
	require.Equal(t, matrix.Mat4x4[float64]{{2, 0, 0, 0}, {0, 3, 0, 0}, {0, 0, 4, 0}, {0, 0, 0, 1}}, m)

	rng := rand.New(rand.NewSource(13))
	base, v := rand4x4(rng), randVec3(rng)
	got := transform.Scale(base, v)
	require.True(t, got.ApproxEqual(base.Mul4x4(transform.Scale(matrix.Ident4x4[float64](), v)), tol))
	require.Equal(t, base[3], got[3])
}
