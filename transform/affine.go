// SPDX-License-Identifier: MIT

package transform

import (
	"github.com/katalvlaran/glmath/matrix"
	"github.com/katalvlaran/glmath/scalar"
	"github.com/katalvlaran/glmath/vector"
)

// Translate returns m · T(v). Columns 0..2 are unchanged and column 3
// becomes m0·v.x + m1·v.y + m2·v.z + m3.
func Translate[T scalar.Float](m matrix.Mat4x4[T], v vector.Vec3[T]) matrix.Mat4x4[T] {
	r := m
	r[3] = m[0].Scale(v[0]).Add(m[1].Scale(v[1])).Add(m[2].Scale(v[2])).Add(m[3])
	return r
}

// rodrigues returns the 3×3 rotation block for angle radians about the
// normalized axis, column-major: b[j] is column j.
func rodrigues[T scalar.Float](angle T, axis vector.Vec3[T]) matrix.Mat3x3[T] {
	c := scalar.Cos(angle)
	s := scalar.Sin(angle)
	a := axis.Normalize()
	t := a.Scale(1 - c)

	return matrix.Mat3x3[T]{
		{c + t[0]*a[0], t[0]*a[1] + s*a[2], t[0]*a[2] - s*a[1]},
		{t[1]*a[0] - s*a[2], c + t[1]*a[1], t[1]*a[2] + s*a[0]},
		{t[2]*a[0] + s*a[1], t[2]*a[1] - s*a[0], c + t[2]*a[2]},
	}
}

// Rotate returns m · R(angle, axis), where R turns counter-clockwise by
// angle radians about axis when viewed from its tip (right-hand rule). The
// rotation direction does not depend on any Convention. Column 3 is kept.
func Rotate[T scalar.Float](m matrix.Mat4x4[T], angle T, axis vector.Vec3[T]) matrix.Mat4x4[T] {
	b := rodrigues(angle, axis)

	r := m
	for j := 0; j < 3; j++ {
		r[j] = m[0].Scale(b[j][0]).Add(m[1].Scale(b[j][1])).Add(m[2].Scale(b[j][2]))
	}
	return r
}

// Rotation returns the bare rotation matrix R(angle, axis), equal to
// Rotate(Ident4x4(), angle, axis).
func Rotation[T scalar.Float](angle T, axis vector.Vec3[T]) matrix.Mat4x4[T] {
	return rodrigues(angle, axis).Mat4x4()
}

// Scale returns m · S(v): columns 0..2 scaled by v.x, v.y, v.z.
func Scale[T scalar.Float](m matrix.Mat4x4[T], v vector.Vec3[T]) matrix.Mat4x4[T] {
	r := m
	r[0] = m[0].Scale(v[0])
	r[1] = m[1].Scale(v[1])
	r[2] = m[2].Scale(v[2])
	return r
}
