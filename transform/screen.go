// SPDX-License-Identifier: MIT
// Package transform: mapping between object space and window coordinates.
//
// A viewport is (x, y, width, height) in window units. Window depth is
// always reported in [0, 1], whatever depth range proj was built with.

package transform

import (
	"github.com/katalvlaran/glmath/matrix"
	"github.com/katalvlaran/glmath/scalar"
	"github.com/katalvlaran/glmath/vector"
)

// Project maps obj through model then proj, divides by w and scales the
// result into viewport.
func Project[T scalar.Float](obj vector.Vec3[T], model, proj matrix.Mat4x4[T], viewport vector.Vec4[T]) vector.Vec3[T] {
	tmp := proj.MulVec(model.MulVec(obj.Vec4(1)))
	tmp = tmp.DivScalar(tmp[3])
	tmp = tmp.Scale(0.5).AddScalar(0.5)

	tmp[0] = tmp[0]*viewport[2] + viewport[0]
	tmp[1] = tmp[1]*viewport[3] + viewport[1]
	return tmp.XYZ()
}

// Unproject is the inverse of Project: it maps a window coordinate back to
// object space through inverse(proj · model). A singular proj · model
// yields NaN/Inf.
func Unproject[T scalar.Float](win vector.Vec3[T], model, proj matrix.Mat4x4[T], viewport vector.Vec4[T]) vector.Vec3[T] {
	inv := proj.Mul4x4(model).Inverse()

	tmp := win.Vec4(1)
	tmp[0] = (tmp[0] - viewport[0]) / viewport[2]
	tmp[1] = (tmp[1] - viewport[1]) / viewport[3]
	tmp = tmp.Scale(2).SubScalar(1)

	obj := inv.MulVec(tmp)
	obj = obj.DivScalar(obj[3])
	return obj.XYZ()
}

// PickMatrix returns a matrix that restricts drawing to a delta-sized
// window region centred on center, for selection rendering. Multiply it in
// front of the projection. Panics unless both delta components are > 0.
func PickMatrix[T scalar.Float](center, delta vector.Vec2[T], viewport vector.Vec4[T]) matrix.Mat4x4[T] {
	if !(delta[0] > 0 && delta[1] > 0) {
		violate(panicPickDelta, delta[0], delta[1])
	}

	trans := vector.Vec3[T]{
		(viewport[2] - 2*(center[0]-viewport[0])) / delta[0],
		(viewport[3] - 2*(center[1]-viewport[1])) / delta[1],
		0,
	}
	m := Translate(matrix.Ident4x4[T](), trans)
	return Scale(m, vector.Vec3[T]{viewport[2] / delta[0], viewport[3] / delta[1], 1})
}
