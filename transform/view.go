// SPDX-License-Identifier: MIT

package transform

import (
	"github.com/katalvlaran/glmath/matrix"
	"github.com/katalvlaran/glmath/scalar"
	"github.com/katalvlaran/glmath/vector"
)

func lookAt[T scalar.Float](h Handedness, eye, center, up vector.Vec3[T]) matrix.Mat4x4[T] {
	f := center.Sub(eye).Normalize()
	s := up.Cross(f).Normalize()
	u := f.Cross(s)

	r32 := -f.Dot(eye)
	if h == RightHanded {
		f = f.Neg()
		r32 = -r32
	}

	return matrix.Mat4x4[T]{
		{s[0], u[0], f[0], 0},
		{s[1], u[1], f[1], 0},
		{s[2], u[2], f[2], 0},
		{-s.Dot(eye), -u.Dot(eye), r32, 1},
	}
}

// LookAt returns a view matrix for a camera at eye looking at center.
// Rows 0..2 are side = normalize(up × forward), up' = forward × side and
// forward = normalize(center − eye); the right-handed form negates the
// forward row and its translation. eye == center, or up parallel to the
// view direction, yields NaN.
func LookAt[T scalar.Float](c Convention, eye, center, up vector.Vec3[T]) matrix.Mat4x4[T] {
	return lookAt(c.Handedness, eye, center, up)
}

// LookAtLH is LookAt for a left-handed view space.
func LookAtLH[T scalar.Float](eye, center, up vector.Vec3[T]) matrix.Mat4x4[T] {
	return lookAt(LeftHanded, eye, center, up)
}

// LookAtRH is LookAt for a right-handed view space.
func LookAtRH[T scalar.Float](eye, center, up vector.Vec3[T]) matrix.Mat4x4[T] {
	return lookAt(RightHanded, eye, center, up)
}
