// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/glmath/scalar"

// Concrete instantiations, named after GLM's vec/dvec/ivec/uvec.
type (
	Vec2f = Vec2[float32]
	Vec3f = Vec3[float32]
	Vec4f = Vec4[float32]

	Vec2d = Vec2[float64]
	Vec3d = Vec3[float64]
	Vec4d = Vec4[float64]

	Vec2i = Vec2[int32]
	Vec3i = Vec3[int32]
	Vec4i = Vec4[int32]

	Vec2u = Vec2[uint32]
	Vec3u = Vec3[uint32]
	Vec4u = Vec4[uint32]
)

// Cast2 converts every component of v to U with Go conversion semantics
// (float→int truncates toward zero).
func Cast2[U, T scalar.Number](v Vec2[T]) Vec2[U] {
	return Vec2[U]{U(v[0]), U(v[1])}
}

// Cast3 converts every component of v to U.
func Cast3[U, T scalar.Number](v Vec3[T]) Vec3[U] {
	return Vec3[U]{U(v[0]), U(v[1]), U(v[2])}
}

// Cast4 converts every component of v to U.
func Cast4[U, T scalar.Number](v Vec4[T]) Vec4[U] {
	return Vec4[U]{U(v[0]), U(v[1]), U(v[2]), U(v[3])}
}
