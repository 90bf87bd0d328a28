// SPDX-License-Identifier: MIT

package interop

import (
	"golang.org/x/image/math/f32"

	"github.com/katalvlaran/glmath/matrix"
	"github.com/katalvlaran/glmath/vector"
)

// ToF32Mat4 returns m in row-major order: out[4*r+c] = m[c][r].
func ToF32Mat4(m matrix.Mat4x4[float32]) (out f32.Mat4) {
	for c := range m {
		for r := range m[c] {
			out[4*r+c] = m[c][r]
		}
	}
	return out
}

// FromF32Mat4 is the inverse of ToF32Mat4.
func FromF32Mat4(a f32.Mat4) (m matrix.Mat4x4[float32]) {
	for c := range m {
		for r := range m[c] {
			m[c][r] = a[4*r+c]
		}
	}
	return m
}

// ToF32Mat3 returns m in row-major order: out[3*r+c] = m[c][r].
func ToF32Mat3(m matrix.Mat3x3[float32]) (out f32.Mat3) {
	for c := range m {
		for r := range m[c] {
			out[3*r+c] = m[c][r]
		}
	}
	return out
}

// FromF32Mat3 is the inverse of ToF32Mat3.
func FromF32Mat3(a f32.Mat3) (m matrix.Mat3x3[float32]) {
	for c := range m {
		for r := range m[c] {
			m[c][r] = a[3*r+c]
		}
	}
	return m
}

// ToAff3 converts a 2D affine map (3 columns: x axis, y axis, translation)
// to the row-major form x/image/draw.Transformer expects.
func ToAff3(m matrix.Mat3x2[float32]) f32.Aff3 {
	return f32.Aff3{
		m[0][0], m[1][0], m[2][0],
		m[0][1], m[1][1], m[2][1],
	}
}

// FromAff3 is the inverse of ToAff3.
func FromAff3(a f32.Aff3) matrix.Mat3x2[float32] {
	return matrix.Mat3x2[float32]{
		{a[0], a[3]},
		{a[1], a[4]},
		{a[2], a[5]},
	}
}

// ToF32Vec3 converts v to f32.Vec3.
func ToF32Vec3(v vector.Vec3[float32]) f32.Vec3 { return f32.Vec3(v) }

// FromF32Vec3 converts v from f32.Vec3.
func FromF32Vec3(v f32.Vec3) vector.Vec3[float32] { return vector.Vec3[float32](v) }

// ToF32Vec4 converts v to f32.Vec4.
func ToF32Vec4(v vector.Vec4[float32]) f32.Vec4 { return f32.Vec4(v) }

// FromF32Vec4 converts v from f32.Vec4.
func FromF32Vec4(v f32.Vec4) vector.Vec4[float32] { return vector.Vec4[float32](v) }
