// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/glmath/scalar"

// Vec2 is a 2-component vector aliased as x/y, r/g and s/t.
type Vec2[T scalar.Number] [2]T

// New2 builds a Vec2 from its components.
func New2[T scalar.Number](x, y T) Vec2[T] {
	return Vec2[T]{x, y}
}

// Splat2 returns a Vec2 with both components set to s.
func Splat2[T scalar.Number](s T) Vec2[T] {
	return Vec2[T]{s, s}
}

// X returns component 0.
func (v Vec2[T]) X() T { return v[0] }

// Y returns component 1.
func (v Vec2[T]) Y() T { return v[1] }

// R returns component 0.
func (v Vec2[T]) R() T { return v[0] }

// G returns component 1.
func (v Vec2[T]) G() T { return v[1] }

// S returns component 0.
func (v Vec2[T]) S() T { return v[0] }

// T returns component 1.
func (v Vec2[E]) T() E { return v[1] }

// SetX assigns component 0.
func (v *Vec2[T]) SetX(x T) { v[0] = x }

// SetY assigns component 1.
func (v *Vec2[T]) SetY(y T) { v[1] = y }

// SetR assigns component 0.
func (v *Vec2[T]) SetR(r T) { v[0] = r }

// SetG assigns component 1.
func (v *Vec2[T]) SetG(g T) { v[1] = g }

// SetS assigns component 0.
func (v *Vec2[T]) SetS(s T) { v[0] = s }

// SetT assigns component 1.
func (v *Vec2[E]) SetT(t E) { v[1] = t }

// At returns component i, panicking when i is outside [0,2).
func (v Vec2[T]) At(i int) T {
	checkIndex(i, 2)
	return v[i]
}

// Set assigns component i, panicking when i is outside [0,2).
func (v *Vec2[T]) Set(i int, x T) {
	checkIndex(i, 2)
	v[i] = x
}

// Vec3 extends v with z.
func (v Vec2[T]) Vec3(z T) Vec3[T] { return Vec3[T]{v[0], v[1], z} }

// Add returns the componentwise sum v + o.
func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] { ewAdd(v[:], v[:], o[:]); return v }

// Sub returns the componentwise difference v - o.
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] { ewSub(v[:], v[:], o[:]); return v }

// Mul returns the componentwise product of v and o.
func (v Vec2[T]) Mul(o Vec2[T]) Vec2[T] { ewMul(v[:], v[:], o[:]); return v }

// Div returns the componentwise quotient v / o.
func (v Vec2[T]) Div(o Vec2[T]) Vec2[T] { ewDiv(v[:], v[:], o[:]); return v }

// AddScalar adds s to every component.
func (v Vec2[T]) AddScalar(s T) Vec2[T] { ewAddScalar(v[:], v[:], s); return v }

// SubScalar subtracts s from every component.
func (v Vec2[T]) SubScalar(s T) Vec2[T] { ewSubScalar(v[:], v[:], s); return v }

// Scale multiplies every component by s.
func (v Vec2[T]) Scale(s T) Vec2[T] { ewScale(v[:], v[:], s); return v }

// DivScalar divides every component by s.
func (v Vec2[T]) DivScalar(s T) Vec2[T] { ewDivScalar(v[:], v[:], s); return v }

// Neg returns -v.
func (v Vec2[T]) Neg() Vec2[T] { ewNeg(v[:], v[:]); return v }

// Dot returns the sum of the componentwise products.
func (v Vec2[T]) Dot(o Vec2[T]) T { return ewDot(v[:], o[:]) }

// Length returns sqrt(v·v).
func (v Vec2[T]) Length() T { return scalar.Sqrt(v.Dot(v)) }

// Distance returns the length of v-o.
func (v Vec2[T]) Distance(o Vec2[T]) T { return v.Sub(o).Length() }

// Normalize returns v / Length(v). A zero float vector yields NaN components.
func (v Vec2[T]) Normalize() Vec2[T] { return v.DivScalar(v.Length()) }

// ApproxEqual reports whether every component is within eps of o's.
func (v Vec2[T]) ApproxEqual(o Vec2[T], eps T) bool { return ewApproxEqual(v[:], o[:], eps) }

// LessThan reports v[i] < o[i] per component.
func (v Vec2[T]) LessThan(o Vec2[T]) (r BVec2) { ewCompare(r[:], v[:], o[:], cmpLT); return }

// LessThanEqual reports v[i] <= o[i] per component.
func (v Vec2[T]) LessThanEqual(o Vec2[T]) (r BVec2) { ewCompare(r[:], v[:], o[:], cmpLE); return }

// GreaterThan reports v[i] > o[i] per component.
func (v Vec2[T]) GreaterThan(o Vec2[T]) (r BVec2) { ewCompare(r[:], v[:], o[:], cmpGT); return }

// GreaterThanEqual reports v[i] >= o[i] per component.
func (v Vec2[T]) GreaterThanEqual(o Vec2[T]) (r BVec2) { ewCompare(r[:], v[:], o[:], cmpGE); return }

// Equal reports v[i] == o[i] per component.
func (v Vec2[T]) Equal(o Vec2[T]) (r BVec2) { ewCompare(r[:], v[:], o[:], cmpEQ); return }

// NotEqual reports v[i] != o[i] per component.
func (v Vec2[T]) NotEqual(o Vec2[T]) (r BVec2) { ewCompare(r[:], v[:], o[:], cmpNE); return }

// Min returns the componentwise minimum of v and o.
func (v Vec2[T]) Min(o Vec2[T]) Vec2[T] { ewMin(v[:], v[:], o[:]); return v }

// Max returns the componentwise maximum of v and o.
func (v Vec2[T]) Max(o Vec2[T]) Vec2[T] { ewMax(v[:], v[:], o[:]); return v }

// Clamp limits every component to [lo[i], hi[i]]: min(max(v, lo), hi).
func (v Vec2[T]) Clamp(lo, hi Vec2[T]) Vec2[T] { return v.Max(lo).Min(hi) }
