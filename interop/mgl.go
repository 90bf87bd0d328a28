// SPDX-License-Identifier: MIT

package interop

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/glmath/matrix"
	"github.com/katalvlaran/glmath/scalar"
	"github.com/katalvlaran/glmath/vector"
)

func flatten4[T scalar.Float](m matrix.Mat4x4[T]) (out [16]T) {
	for j := range m {
		for i := range m[j] {
			out[j*4+i] = m[j][i]
		}
	}
	return out
}

func unflatten4[T scalar.Float](a [16]T) (m matrix.Mat4x4[T]) {
	for j := range m {
		for i := range m[j] {
			m[j][i] = a[j*4+i]
		}
	}
	return m
}

func flatten3[T scalar.Float](m matrix.Mat3x3[T]) (out [9]T) {
	for j := range m {
		for i := range m[j] {
			out[j*3+i] = m[j][i]
		}
	}
	return out
}

func unflatten3[T scalar.Float](a [9]T) (m matrix.Mat3x3[T]) {
	for j := range m {
		for i := range m[j] {
			m[j][i] = a[j*3+i]
		}
	}
	return m
}

// ToMgl32Mat4 copies m into an mgl32.Mat4. Both are column-major, so element j*4+i is m[j][i].
func ToMgl32Mat4(m matrix.Mat4x4[float32]) mgl32.Mat4 { return mgl32.Mat4(flatten4(m)) }

// FromMgl32Mat4 is the inverse of ToMgl32Mat4.
func FromMgl32Mat4(m mgl32.Mat4) matrix.Mat4x4[float32] { return unflatten4([16]float32(m)) }

// ToMgl32Mat3 copies m into an mgl32.Mat3, column-major: element j*3+i is m[j][i].
func ToMgl32Mat3(m matrix.Mat3x3[float32]) mgl32.Mat3 { return mgl32.Mat3(flatten3(m)) }

// FromMgl32Mat3 is the inverse of ToMgl32Mat3.
func FromMgl32Mat3(m mgl32.Mat3) matrix.Mat3x3[float32] { return unflatten3([9]float32(m)) }

// ToMgl64Mat4 copies m into an mgl64.Mat4. Both are column-major, so element j*4+i is m[j][i].
func ToMgl64Mat4(m matrix.Mat4x4[float64]) mgl64.Mat4 { return mgl64.Mat4(flatten4(m)) }

// FromMgl64Mat4 is the inverse of ToMgl64Mat4.
func FromMgl64Mat4(m mgl64.Mat4) matrix.Mat4x4[float64] { return unflatten4([16]float64(m)) }

// ToMgl64Mat3 copies m into an mgl64.Mat3, column-major: element j*3+i is m[j][i].
func ToMgl64Mat3(m matrix.Mat3x3[float64]) mgl64.Mat3 { return mgl64.Mat3(flatten3(m)) }

// FromMgl64Mat3 is the inverse of ToMgl64Mat3.
func FromMgl64Mat3(m mgl64.Mat3) matrix.Mat3x3[float64] { return unflatten3([9]float64(m)) }

// ToMgl32Vec3 converts v to mgl32.Vec3.
func ToMgl32Vec3(v vector.Vec3[float32]) mgl32.Vec3 { return mgl32.Vec3(v) }

// FromMgl32Vec3 converts v from mgl32.Vec3.
func FromMgl32Vec3(v mgl32.Vec3) vector.Vec3[float32] { return vector.Vec3[float32](v) }

// ToMgl32Vec4 converts v to mgl32.Vec4.
func ToMgl32Vec4(v vector.Vec4[float32]) mgl32.Vec4 { return mgl32.Vec4(v) }

// FromMgl32Vec4 converts v from mgl32.Vec4.
func FromMgl32Vec4(v mgl32.Vec4) vector.Vec4[float32] { return vector.Vec4[float32](v) }

// ToMgl64Vec3 converts v to mgl64.Vec3.
func ToMgl64Vec3(v vector.Vec3[float64]) mgl64.Vec3 { return mgl64.Vec3(v) }

// FromMgl64Vec3 converts v from mgl64.Vec3.
func FromMgl64Vec3(v mgl64.Vec3) vector.Vec3[float64] { return vector.Vec3[float64](v) }

// ToMgl64Vec4 converts v to mgl64.Vec4.
func ToMgl64Vec4(v vector.Vec4[float64]) mgl64.Vec4 { return mgl64.Vec4(v) }

// FromMgl64Vec4 converts v from mgl64.Vec4.
func FromMgl64Vec4(v mgl64.Vec4) vector.Vec4[float64] { return vector.Vec4[float64](v) }
