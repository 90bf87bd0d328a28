// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/glmath/scalar"
	"github.com/katalvlaran/glmath/vector"
)

// Mat3x2 has three columns of two rows: a linear map from R^3 to R^2.
type Mat3x2[T scalar.Number] [3]vector.Vec2[T]

// Ident3x2 returns the identity block of Mat3x2 with zero padding.
func Ident3x2[T scalar.Number]() (m Mat3x2[T]) {
	diagonal(m[:], T(1))
	return m
}

// Col returns column j, panicking when j is outside [0,3).
func (m Mat3x2[T]) Col(j int) vector.Vec2[T] {
	checkColumn(j, 3)
	return m[j]
}

// Row returns row i, panicking when i is outside [0,2).
func (m Mat3x2[T]) Row(i int) vector.Vec3[T] {
	checkRow(i, 2)
	return row[vector.Vec2[T], vector.Vec3[T], T](m[:], i)
}

// At returns the element in column j, row i.
func (m Mat3x2[T]) At(j, i int) T {
	checkColumn(j, 3)
	checkRow(i, 2)
	return m[j][i]
}

// Set assigns the element in column j, row i.
func (m *Mat3x2[T]) Set(j, i int, x T) {
	checkColumn(j, 3)
	checkRow(i, 2)
	m[j][i] = x
}

func (m Mat3x2[T]) Add(o Mat3x2[T]) Mat3x2[T]     { zip(m[:], m[:], o[:], add[T]); return m }
func (m Mat3x2[T]) Sub(o Mat3x2[T]) Mat3x2[T]     { zip(m[:], m[:], o[:], sub[T]); return m }
func (m Mat3x2[T]) CompMul(o Mat3x2[T]) Mat3x2[T] { zip(m[:], m[:], o[:], mul[T]); return m }

func (m Mat3x2[T]) AddScalar(s T) Mat3x2[T] { broadcast(m[:], m[:], s, add[T]); return m }
func (m Mat3x2[T]) SubScalar(s T) Mat3x2[T] { broadcast(m[:], m[:], s, sub[T]); return m }
func (m Mat3x2[T]) Scale(s T) Mat3x2[T]     { broadcast(m[:], m[:], s, mul[T]); return m }
func (m Mat3x2[T]) DivScalar(s T) Mat3x2[T] { broadcast(m[:], m[:], s, div[T]); return m }
func (m Mat3x2[T]) Neg() Mat3x2[T]          { broadcast(m[:], m[:], 0, negate[T]); return m }

// ApproxEqual reports whether every element is within eps of o's.
func (m Mat3x2[T]) ApproxEqual(o Mat3x2[T], eps T) bool { return approxEqual(m[:], o[:], eps) }

// Transpose returns the 2×3 matrix with rows and columns swapped.
func (m Mat3x2[T]) Transpose() (t Mat2x3[T]) {
	transpose[vector.Vec2[T], vector.Vec3[T], T](t[:], m[:])
	return t
}

// MulVec returns m·v for a column vector v.
func (m Mat3x2[T]) MulVec(v vector.Vec3[T]) vector.Vec2[T] {
	return combine[vector.Vec2[T], vector.Vec3[T], T](m[:], v)
}

// VecMul returns v·m for a row vector v.
func (m Mat3x2[T]) VecMul(v vector.Vec2[T]) vector.Vec3[T] {
	return rowTimes[vector.Vec2[T], vector.Vec3[T], T](m[:], v)
}

// Mul2x3 returns m·b, a 2-column 2-row matrix.
func (m Mat3x2[T]) Mul2x3(b Mat2x3[T]) (r Mat2x2[T]) {
	product[vector.Vec2[T], vector.Vec3[T], T](r[:], m[:], b[:])
	return r
}

// Mul3x3 returns m·b, a 3-column 2-row matrix.
func (m Mat3x2[T]) Mul3x3(b Mat3x3[T]) (r Mat3x2[T]) {
	product[vector.Vec2[T], vector.Vec3[T], T](r[:], m[:], b[:])
	return r
}

// Mul4x3 returns m·b, a 4-column 2-row matrix.
func (m Mat3x2[T]) Mul4x3(b Mat4x3[T]) (r Mat4x2[T]) {
	product[vector.Vec2[T], vector.Vec3[T], T](r[:], m[:], b[:])
	return r
}

// Cast3x2 converts every element of m to U.
func Cast3x2[U, T scalar.Number](m Mat3x2[T]) (r Mat3x2[U]) {
	for j := range m {
		r[j] = vector.Cast2[U](m[j])
	}
	return r
}

// Mat3x3 is a square 3×3 matrix stored as three columns.
type Mat3x3[T scalar.Number] [3]vector.Vec3[T]

// Ident3x3 returns the 3×3 identity matrix.
func Ident3x3[T scalar.Number]() (m Mat3x3[T]) {
	diagonal(m[:], T(1))
	return m
}

// Col returns column j, panicking when j is outside [0,3).
func (m Mat3x3[T]) Col(j int) vector.Vec3[T] {
	checkColumn(j, 3)
	return m[j]
}

// Row returns row i, panicking when i is outside [0,3).
func (m Mat3x3[T]) Row(i int) vector.Vec3[T] {
	checkRow(i, 3)
	return row[vector.Vec3[T], vector.Vec3[T], T](m[:], i)
}

// At returns the element in column j, row i.
func (m Mat3x3[T]) At(j, i int) T {
	checkColumn(j, 3)
	checkRow(i, 3)
	return m[j][i]
}

// Set assigns the element in column j, row i.
func (m *Mat3x3[T]) Set(j, i int, x T) {
	checkColumn(j, 3)
	checkRow(i, 3)
	m[j][i] = x
}

func (m Mat3x3[T]) Add(o Mat3x3[T]) Mat3x3[T]     { zip(m[:], m[:], o[:], add[T]); return m }
func (m Mat3x3[T]) Sub(o Mat3x3[T]) Mat3x3[T]     { zip(m[:], m[:], o[:], sub[T]); return m }
func (m Mat3x3[T]) CompMul(o Mat3x3[T]) Mat3x3[T] { zip(m[:], m[:], o[:], mul[T]); return m }

func (m Mat3x3[T]) AddScalar(s T) Mat3x3[T] { broadcast(m[:], m[:], s, add[T]); return m }
func (m Mat3x3[T]) SubScalar(s T) Mat3x3[T] { broadcast(m[:], m[:], s, sub[T]); return m }
func (m Mat3x3[T]) Scale(s T) Mat3x3[T]     { broadcast(m[:], m[:], s, mul[T]); return m }
func (m Mat3x3[T]) DivScalar(s T) Mat3x3[T] { broadcast(m[:], m[:], s, div[T]); return m }
func (m Mat3x3[T]) Neg() Mat3x3[T]          { broadcast(m[:], m[:], 0, negate[T]); return m }

// ApproxEqual reports whether every element is within eps of o's.
func (m Mat3x3[T]) ApproxEqual(o Mat3x3[T], eps T) bool { return approxEqual(m[:], o[:], eps) }

// Transpose returns the 3×3 matrix with rows and columns swapped.
func (m Mat3x3[T]) Transpose() (t Mat3x3[T]) {
	transpose[vector.Vec3[T], vector.Vec3[T], T](t[:], m[:])
	return t
}

// MulVec returns m·v for a column vector v.
func (m Mat3x3[T]) MulVec(v vector.Vec3[T]) vector.Vec3[T] {
	return combine[vector.Vec3[T], vector.Vec3[T], T](m[:], v)
}

// VecMul returns v·m for a row vector v.
func (m Mat3x3[T]) VecMul(v vector.Vec3[T]) vector.Vec3[T] {
	return rowTimes[vector.Vec3[T], vector.Vec3[T], T](m[:], v)
}

// Mul2x3 returns m·b, a 2-column 3-row matrix.
func (m Mat3x3[T]) Mul2x3(b Mat2x3[T]) (r Mat2x3[T]) {
	product[vector.Vec3[T], vector.Vec3[T], T](r[:], m[:], b[:])
	return r
}

// Mul3x3 returns m·b, a 3-column 3-row matrix.
func (m Mat3x3[T]) Mul3x3(b Mat3x3[T]) (r Mat3x3[T]) {
	product[vector.Vec3[T], vector.Vec3[T], T](r[:], m[:], b[:])
	return r
}

// Mul4x3 returns m·b, a 4-column 3-row matrix.
func (m Mat3x3[T]) Mul4x3(b Mat4x3[T]) (r Mat4x3[T]) {
	product[vector.Vec3[T], vector.Vec3[T], T](r[:], m[:], b[:])
	return r
}

// Cast3x3 converts every element of m to U.
func Cast3x3[U, T scalar.Number](m Mat3x3[T]) (r Mat3x3[U]) {
	for j := range m {
		r[j] = vector.Cast3[U](m[j])
	}
	return r
}

// Mat3x4 has three columns of four rows: a linear map from R^3 to R^4.
type Mat3x4[T scalar.Number] [3]vector.Vec4[T]

// Ident3x4 returns the identity block of Mat3x4 with zero padding.
func Ident3x4[T scalar.Number]() (m Mat3x4[T]) {
	diagonal(m[:], T(1))
	return m
}

// Col returns column j, panicking when j is outside [0,3).
func (m Mat3x4[T]) Col(j int) vector.Vec4[T] {
	checkColumn(j, 3)
	return m[j]
}

// Row returns row i, panicking when i is outside [0,4).
func (m Mat3x4[T]) Row(i int) vector.Vec3[T] {
	checkRow(i, 4)
	return row[vector.Vec4[T], vector.Vec3[T], T](m[:], i)
}

// At returns the element in column j, row i.
func (m Mat3x4[T]) At(j, i int) T {
	checkColumn(j, 3)
	checkRow(i, 4)
	return m[j][i]
}

// Set assigns the element in column j, row i.
func (m *Mat3x4[T]) Set(j, i int, x T) {
	checkColumn(j, 3)
	checkRow(i, 4)
	m[j][i] = x
}

func (m Mat3x4[T]) Add(o Mat3x4[T]) Mat3x4[T]     { zip(m[:], m[:], o[:], add[T]); return m }
func (m Mat3x4[T]) Sub(o Mat3x4[T]) Mat3x4[T]     { zip(m[:], m[:], o[:], sub[T]); return m }
func (m Mat3x4[T]) CompMul(o Mat3x4[T]) Mat3x4[T] { zip(m[:], m[:], o[:], mul[T]); return m }

func (m Mat3x4[T]) AddScalar(s T) Mat3x4[T] { broadcast(m[:], m[:], s, add[T]); return m }
func (m Mat3x4[T]) SubScalar(s T) Mat3x4[T] { broadcast(m[:], m[:], s, sub[T]); return m }
func (m Mat3x4[T]) Scale(s T) Mat3x4[T]     { broadcast(m[:], m[:], s, mul[T]); return m }
func (m Mat3x4[T]) DivScalar(s T) Mat3x4[T] { broadcast(m[:], m[:], s, div[T]); return m }
func (m Mat3x4[T]) Neg() Mat3x4[T]          { broadcast(m[:], m[:], 0, negate[T]); return m }

// ApproxEqual reports whether every element is within eps of o's.
func (m Mat3x4[T]) ApproxEqual(o Mat3x4[T], eps T) bool { return approxEqual(m[:], o[:], eps) }

// Transpose returns the 4×3 matrix with rows and columns swapped.
func (m Mat3x4[T]) Transpose() (t Mat4x3[T]) {
	transpose[vector.Vec4[T], vector.Vec3[T], T](t[:], m[:])
	return t
}

// MulVec returns m·v for a column vector v.
func (m Mat3x4[T]) MulVec(v vector.Vec3[T]) vector.Vec4[T] {
	return combine[vector.Vec4[T], vector.Vec3[T], T](m[:], v)
}

// VecMul returns v·m for a row vector v.
func (m Mat3x4[T]) VecMul(v vector.Vec4[T]) vector.Vec3[T] {
	return rowTimes[vector.Vec4[T], vector.Vec3[T], T](m[:], v)
}

// Mul2x3 returns m·b, a 2-column 4-row matrix.
func (m Mat3x4[T]) Mul2x3(b Mat2x3[T]) (r Mat2x4[T]) {
	product[vector.Vec4[T], vector.Vec3[T], T](r[:], m[:], b[:])
	return r
}

// Mul3x3 returns m·b, a 3-column 4-row matrix.
func (m Mat3x4[T]) Mul3x3(b Mat3x3[T]) (r Mat3x4[T]) {
	product[vector.Vec4[T], vector.Vec3[T], T](r[:], m[:], b[:])
	return r
}

// Mul4x3 returns m·b, a 4-column 4-row matrix.
func (m Mat3x4[T]) Mul4x3(b Mat4x3[T]) (r Mat4x4[T]) {
	product[vector.Vec4[T], vector.Vec3[T], T](r[:], m[:], b[:])
	return r
}

// Cast3x4 converts every element of m to U.
func Cast3x4[U, T scalar.Number](m Mat3x4[T]) (r Mat3x4[U]) {
	for j := range m {
		r[j] = vector.Cast4[U](m[j])
	}
	return r
}
