// SPDX-License-Identifier: MIT

package transform_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/glmath/matrix"
	"github.com/katalvlaran/glmath/transform"
	"github.com/katalvlaran/glmath/vector"
)

func TestLookAt_AlongZ(t *testing.T) {
	eye := vector.New3(0.0, 0.0, 5.0)
	center := vector.Vec3d{}
	up := vector.New3(0.0, 1.0, 0.0)

	rh := transform.LookAtRH(eye, center, up)
	// side = up × forward = (0,1,0) × (0,0,-1)
	want := matrix.Mat4x4[float64]{
		{-1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, -5, 1},
	}
	require.True(t, rh.ApproxEqual(want, tol), "%v", rh)

	// the RH matrix stores −forward in row 2
	require.True(t, rh.Row(2).XYZ().Neg().ApproxEqual(vector.New3(0.0, 0.0, -1.0), tol))

	lh := transform.LookAtLH(eye, center, up)
	want[2][2], want[3][2] = -1, 5
	require.True(t, lh.ApproxEqual(want, tol), "%v", lh)

	require.Equal(t, rh, transform.LookAt(transform.OpenGL, eye, center, up))
	require.Equal(t, lh, transform.LookAt(transform.D3D, eye, center, up))
}

func TestLookAt_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	up := vector.New3(0.0, 1.0, 0.0)
	for n := 0; n < 100; n++ {
		eye, center := randVec3(rng).Scale(5), randVec3(rng)
		dist := center.Distance(eye)

		for _, c := range conventions {
			v := transform.LookAt(c, eye, center, up)

			// eye goes to the origin
			require.True(t, v.MulVec(eye.Vec4(1)).ApproxEqual(vector.New4(0, 0, 0, 1.0), 1e-9))

			// center lies straight ahead at its distance
			got := v.MulVec(center.Vec4(1))
			require.True(t, got.ApproxEqual(vector.New4(0, 0, viewZ(c, dist), 1), 1e-9), "%s %v", c, got)

			// the rotation block is orthonormal
			r := v.Mat3x3()
			require.True(t, r.Mul3x3(r.Transpose()).ApproxEqual(matrix.Ident3x3[float64](), 1e-9))
		}
	}
}
