// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"

	"github.com/katalvlaran/glmath"
	"github.com/katalvlaran/glmath/matrix"
	"github.com/katalvlaran/glmath/scalar"
	"github.com/katalvlaran/glmath/vector"
)

// Builder binds a Convention once and exposes the convention-dependent
// transforms as methods. A Builder is an immutable value; copies and
// concurrent use are safe.
//
// Example:
//
//	vk := transform.New[float32](transform.WithDepthZeroToOne())
//	proj := vk.Perspective(scalar.Radians[float32](45), 16.0/9.0, 0.1, 100)
type Builder[T scalar.Float] struct {
	conv Convention
}

// New returns a Builder configured by opts over the defaults
// (right-handed, depth in [-1, 1]).
func New[T scalar.Float](opts ...Option) Builder[T] {
	o := gatherOptions(opts...)
	var zero T
	glmath.Logger().Debug("glmath: transform builder",
		"convention", o.Convention.String(),
		"scalar", fmt.Sprintf("%T", zero))
	return Builder[T]{conv: o.Convention}
}

// Convention returns the bound convention.
func (b Builder[T]) Convention() Convention { return b.conv }

// Ortho is Ortho under the bound convention.
func (b Builder[T]) Ortho(left, right, bottom, top, near, far T) matrix.Mat4x4[T] {
	return Ortho(b.conv, left, right, bottom, top, near, far)
}

// Frustum is Frustum under the bound convention.
func (b Builder[T]) Frustum(left, right, bottom, top, near, far T) matrix.Mat4x4[T] {
	return Frustum(b.conv, left, right, bottom, top, near, far)
}

// Perspective is Perspective under the bound convention. Panics if aspect <= 0.
func (b Builder[T]) Perspective(fovy, aspect, near, far T) matrix.Mat4x4[T] {
	return Perspective(b.conv, fovy, aspect, near, far)
}

// PerspectiveFov is PerspectiveFov under the bound convention. Panics if fov, width or height is <= 0.
func (b Builder[T]) PerspectiveFov(fov, width, height, near, far T) matrix.Mat4x4[T] {
	return PerspectiveFov(b.conv, fov, width, height, near, far)
}

// InfinitePerspective is InfinitePerspective under the bound convention. Panics if aspect <= 0.
func (b Builder[T]) InfinitePerspective(fovy, aspect, near, epsilon T) matrix.Mat4x4[T] {
	return InfinitePerspective(b.conv, fovy, aspect, near, epsilon)
}

// LookAt is LookAt under the bound handedness.
func (b Builder[T]) LookAt(eye, center, up vector.Vec3[T]) matrix.Mat4x4[T] {
	return LookAt(b.conv, eye, center, up)
}
