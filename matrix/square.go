// SPDX-License-Identifier: MIT
// Package matrix: determinant, inverse and resizing for the square shapes.
//
// Inverses use the closed-form adjugate expansion GLM uses, term for term,
// so float results agree with GLM bit for bit on the same inputs:
//   - Mat2x2: swap/negate, scaled by 1/det.
//   - Mat3x3: cofactor matrix transposed, scaled by 1/det.
//   - Mat4x4: 2×2 sub-factor (Coef/Fac) expansion, determinant recovered
//     from the first row of the adjugate.
//
// Singular inputs are not rejected. For floats 1/det becomes ±Inf and the
// result fills with Inf/NaN. For integers the division by a zero determinant
// panics, so integer callers should use InverseChecked.

package matrix

import (
	"github.com/katalvlaran/glmath/scalar"
	"github.com/katalvlaran/glmath/vector"
)

// Concrete square instantiations, named after GLM's mat/dmat.
type (
	Mat2f = Mat2x2[float32]
	Mat3f = Mat3x3[float32]
	Mat4f = Mat4x4[float32]

	Mat2d = Mat2x2[float64]
	Mat3d = Mat3x3[float64]
	Mat4d = Mat4x4[float64]

	Mat2i = Mat2x2[int32]
	Mat3i = Mat3x3[int32]
	Mat4i = Mat4x4[int32]
)

// invScale scales an adjugate by 1/det. Floats multiply by the reciprocal
// (GLM's order of operations); integers divide, since 1/det truncates to zero.
func invScale[V column[T], T scalar.Number](adj []V, det T) {
	if scalar.IsFloat[T]() {
		broadcast(adj, adj, 1/det, mul[T])
		return
	}
	broadcast(adj, adj, det, div[T])
}

// Determinant returns m00·m11 − m10·m01.
func (m Mat2x2[T]) Determinant() T {
	return m[0][0]*m[1][1] - m[1][0]*m[0][1]
}

// Inverse returns m⁻¹. See the package notes for singular input.
func (m Mat2x2[T]) Inverse() Mat2x2[T] {
	r := Mat2x2[T]{
		{m[1][1], -m[0][1]},
		{-m[1][0], m[0][0]},
	}
	invScale(r[:], m.Determinant())
	return r
}

// InverseChecked returns m⁻¹, or ErrSingular when the determinant is zero.
func (m Mat2x2[T]) InverseChecked() (Mat2x2[T], error) {
	if m.Determinant() == 0 {
		return Mat2x2[T]{}, matrixErrorf(opInverse2, ErrSingular)
	}
	return m.Inverse(), nil
}

// Mat3x3 embeds m in the upper-left corner of a 3×3 identity.
func (m Mat2x2[T]) Mat3x3() Mat3x3[T] {
	return Mat3x3[T]{
		m[0].Vec3(0),
		m[1].Vec3(0),
		{0, 0, 1},
	}
}

// Determinant expands along the first column.
func (m Mat3x3[T]) Determinant() T {
	return m[0][0]*(m[1][1]*m[2][2]-m[2][1]*m[1][2]) -
		m[1][0]*(m[0][1]*m[2][2]-m[2][1]*m[0][2]) +
		m[2][0]*(m[0][1]*m[1][2]-m[1][1]*m[0][2])
}

// Inverse returns m⁻¹. See the package notes for singular input.
func (m Mat3x3[T]) Inverse() Mat3x3[T] {
	var r Mat3x3[T]
	r[0][0] = +(m[1][1]*m[2][2] - m[2][1]*m[1][2])
	r[1][0] = -(m[1][0]*m[2][2] - m[2][0]*m[1][2])
	r[2][0] = +(m[1][0]*m[2][1] - m[2][0]*m[1][1])
	r[0][1] = -(m[0][1]*m[2][2] - m[2][1]*m[0][2])
	r[1][1] = +(m[0][0]*m[2][2] - m[2][0]*m[0][2])
	r[2][1] = -(m[0][0]*m[2][1] - m[2][0]*m[0][1])
	r[0][2] = +(m[0][1]*m[1][2] - m[1][1]*m[0][2])
	r[1][2] = -(m[0][0]*m[1][2] - m[1][0]*m[0][2])
	r[2][2] = +(m[0][0]*m[1][1] - m[1][0]*m[0][1])
	invScale(r[:], m.Determinant())
	return r
}

// InverseChecked returns m⁻¹, or ErrSingular when the determinant is zero.
func (m Mat3x3[T]) InverseChecked() (Mat3x3[T], error) {
	if m.Determinant() == 0 {
		return Mat3x3[T]{}, matrixErrorf(opInverse3, ErrSingular)
	}
	return m.Inverse(), nil
}

// Mat2x2 keeps the upper-left 2×2 block.
func (m Mat3x3[T]) Mat2x2() Mat2x2[T] {
	return Mat2x2[T]{m[0].XY(), m[1].XY()}
}

// Mat4x4 embeds m in the upper-left corner of a 4×4 identity, the usual way
// to lift a rotation/scale block into a homogeneous transform.
func (m Mat3x3[T]) Mat4x4() Mat4x4[T] {
	return Mat4x4[T]{
		m[0].Vec4(0),
		m[1].Vec4(0),
		m[2].Vec4(0),
		{0, 0, 0, 1},
	}
}

// Determinant expands along the first column using 2×2 sub-factors of the
// last two columns.
func (m Mat4x4[T]) Determinant() T {
	sf00 := m[2][2]*m[3][3] - m[3][2]*m[2][3]
	sf01 := m[2][1]*m[3][3] - m[3][1]*m[2][3]
	sf02 := m[2][1]*m[3][2] - m[3][1]*m[2][2]
	sf03 := m[2][0]*m[3][3] - m[3][0]*m[2][3]
	sf04 := m[2][0]*m[3][2] - m[3][0]*m[2][2]
	sf05 := m[2][0]*m[3][1] - m[3][0]*m[2][1]

	cof0 := +(m[1][1]*sf00 - m[1][2]*sf01 + m[1][3]*sf02)
	cof1 := -(m[1][0]*sf00 - m[1][2]*sf03 + m[1][3]*sf04)
	cof2 := +(m[1][0]*sf01 - m[1][1]*sf03 + m[1][3]*sf05)
	cof3 := -(m[1][0]*sf02 - m[1][1]*sf04 + m[1][2]*sf05)

	return m[0][0]*cof0 + m[0][1]*cof1 + m[0][2]*cof2 + m[0][3]*cof3
}

// Inverse returns m⁻¹. See the package notes for singular input.
func (m Mat4x4[T]) Inverse() Mat4x4[T] {
	c00 := m[2][2]*m[3][3] - m[3][2]*m[2][3]
	c02 := m[1][2]*m[3][3] - m[3][2]*m[1][3]
	c03 := m[1][2]*m[2][3] - m[2][2]*m[1][3]

	c04 := m[2][1]*m[3][3] - m[3][1]*m[2][3]
	c06 := m[1][1]*m[3][3] - m[3][1]*m[1][3]
	c07 := m[1][1]*m[2][3] - m[2][1]*m[1][3]

	c08 := m[2][1]*m[3][2] - m[3][1]*m[2][2]
	c10 := m[1][1]*m[3][2] - m[3][1]*m[1][2]
	c11 := m[1][1]*m[2][2] - m[2][1]*m[1][2]

	c12 := m[2][0]*m[3][3] - m[3][0]*m[2][3]
	c14 := m[1][0]*m[3][3] - m[3][0]*m[1][3]
	c15 := m[1][0]*m[2][3] - m[2][0]*m[1][3]

	c16 := m[2][0]*m[3][2] - m[3][0]*m[2][2]
	c18 := m[1][0]*m[3][2] - m[3][0]*m[1][2]
	c19 := m[1][0]*m[2][2] - m[2][0]*m[1][2]

	c20 := m[2][0]*m[3][1] - m[3][0]*m[2][1]
	c22 := m[1][0]*m[3][1] - m[3][0]*m[1][1]
	c23 := m[1][0]*m[2][1] - m[2][0]*m[1][1]

	fac0 := vector.Vec4[T]{c00, c00, c02, c03}
	fac1 := vector.Vec4[T]{c04, c04, c06, c07}
	fac2 := vector.Vec4[T]{c08, c08, c10, c11}
	fac3 := vector.Vec4[T]{c12, c12, c14, c15}
	fac4 := vector.Vec4[T]{c16, c16, c18, c19}
	fac5 := vector.Vec4[T]{c20, c20, c22, c23}

	v0 := vector.Vec4[T]{m[1][0], m[0][0], m[0][0], m[0][0]}
	v1 := vector.Vec4[T]{m[1][1], m[0][1], m[0][1], m[0][1]}
	v2 := vector.Vec4[T]{m[1][2], m[0][2], m[0][2], m[0][2]}
	v3 := vector.Vec4[T]{m[1][3], m[0][3], m[0][3], m[0][3]}

	inv0 := v1.Mul(fac0).Sub(v2.Mul(fac1)).Add(v3.Mul(fac2))
	inv1 := v0.Mul(fac0).Sub(v2.Mul(fac3)).Add(v3.Mul(fac4))
	inv2 := v0.Mul(fac1).Sub(v1.Mul(fac3)).Add(v3.Mul(fac5))
	inv3 := v0.Mul(fac2).Sub(v1.Mul(fac4)).Add(v2.Mul(fac5))

	// Sign pattern (+,-,+,-) on columns 0 and 2, (-,+,-,+) on 1 and 3.
	r := Mat4x4[T]{
		{inv0[0], -inv0[1], inv0[2], -inv0[3]},
		{-inv1[0], inv1[1], -inv1[2], inv1[3]},
		{inv2[0], -inv2[1], inv2[2], -inv2[3]},
		{-inv3[0], inv3[1], -inv3[2], inv3[3]},
	}

	row0 := vector.Vec4[T]{r[0][0], r[1][0], r[2][0], r[3][0]}
	dot0 := m[0].Mul(row0)
	det := (dot0[0] + dot0[1]) + (dot0[2] + dot0[3])

	invScale(r[:], det)
	return r
}

// InverseChecked returns m⁻¹, or ErrSingular when the determinant is zero.
func (m Mat4x4[T]) InverseChecked() (Mat4x4[T], error) {
	if m.Determinant() == 0 {
		return Mat4x4[T]{}, matrixErrorf(opInverse4, ErrSingular)
	}
	return m.Inverse(), nil
}

// Mat3x3 keeps the upper-left 3×3 block, dropping translation and the
// projective row.
func (m Mat4x4[T]) Mat3x3() Mat3x3[T] {
	return Mat3x3[T]{m[0].XYZ(), m[1].XYZ(), m[2].XYZ()}
}
