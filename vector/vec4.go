// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/glmath/scalar"

// Vec4 is a 4-component vector aliased as x/y/z/w, r/g/b/a and s/t/p/q.
// In homogeneous coordinates w is 1 for points and 0 for directions.
type Vec4[T scalar.Number] [4]T

// New4 builds a Vec4 from its components.
func New4[T scalar.Number](x, y, z, w T) Vec4[T] {
	return Vec4[T]{x, y, z, w}
}

// Splat4 returns a Vec4 with every component set to s.
func Splat4[T scalar.Number](s T) Vec4[T] {
	return Vec4[T]{s, s, s, s}
}

// X returns component 0.
func (v Vec4[T]) X() T { return v[0] }

// Y returns component 1.
func (v Vec4[T]) Y() T { return v[1] }

// Z returns component 2.
func (v Vec4[T]) Z() T { return v[2] }

// W returns component 3.
func (v Vec4[T]) W() T { return v[3] }

// R returns component 0.
func (v Vec4[T]) R() T { return v[0] }

// G returns component 1.
func (v Vec4[T]) G() T { return v[1] }

// B returns component 2.
func (v Vec4[T]) B() T { return v[2] }

// A returns component 3.
func (v Vec4[T]) A() T { return v[3] }

// S returns component 0.
func (v Vec4[T]) S() T { return v[0] }

// T returns component 1.
func (v Vec4[E]) T() E { return v[1] }

// P returns component 2.
func (v Vec4[T]) P() T { return v[2] }

// Q returns component 3.
func (v Vec4[T]) Q() T { return v[3] }

// SetX assigns component 0.
func (v *Vec4[T]) SetX(x T) { v[0] = x }

// SetY assigns component 1.
func (v *Vec4[T]) SetY(y T) { v[1] = y }

// SetZ assigns component 2.
func (v *Vec4[T]) SetZ(z T) { v[2] = z }

// SetW assigns component 3.
func (v *Vec4[T]) SetW(w T) { v[3] = w }

// SetR assigns component 0.
func (v *Vec4[T]) SetR(r T) { v[0] = r }

// SetG assigns component 1.
func (v *Vec4[T]) SetG(g T) { v[1] = g }

// SetB assigns component 2.
func (v *Vec4[T]) SetB(b T) { v[2] = b }

// SetA assigns component 3.
func (v *Vec4[T]) SetA(a T) { v[3] = a }

// SetS assigns component 0.
func (v *Vec4[T]) SetS(s T) { v[0] = s }

// SetT assigns component 1.
func (v *Vec4[E]) SetT(t E) { v[1] = t }

// SetP assigns component 2.
func (v *Vec4[T]) SetP(p T) { v[2] = p }

// SetQ assigns component 3.
func (v *Vec4[T]) SetQ(q T) { v[3] = q }

// At returns component i, panicking when i is outside [0,4).
func (v Vec4[T]) At(i int) T {
	checkIndex(i, 4)
	return v[i]
}

// Set assigns component i, panicking when i is outside [0,4).
func (v *Vec4[T]) Set(i int, x T) {
	checkIndex(i, 4)
	v[i] = x
}

// XY truncates to the first two components.
func (v Vec4[T]) XY() Vec2[T] { return Vec2[T]{v[0], v[1]} }

// XYZ drops w.
func (v Vec4[T]) XYZ() Vec3[T] { return Vec3[T]{v[0], v[1], v[2]} }

// Add returns the componentwise sum v + o.
func (v Vec4[T]) Add(o Vec4[T]) Vec4[T] { ewAdd(v[:], v[:], o[:]); return v }

// Sub returns the componentwise difference v - o.
func (v Vec4[T]) Sub(o Vec4[T]) Vec4[T] { ewSub(v[:], v[:], o[:]); return v }

// Mul returns the componentwise product of v and o.
func (v Vec4[T]) Mul(o Vec4[T]) Vec4[T] { ewMul(v[:], v[:], o[:]); return v }

// Div returns the componentwise quotient v / o.
func (v Vec4[T]) Div(o Vec4[T]) Vec4[T] { ewDiv(v[:], v[:], o[:]); return v }

// AddScalar adds s to every component.
func (v Vec4[T]) AddScalar(s T) Vec4[T] { ewAddScalar(v[:], v[:], s); return v }

// SubScalar subtracts s from every component.
func (v Vec4[T]) SubScalar(s T) Vec4[T] { ewSubScalar(v[:], v[:], s); return v }

// Scale multiplies every component by s.
func (v Vec4[T]) Scale(s T) Vec4[T] { ewScale(v[:], v[:], s); return v }

// DivScalar divides every component by s.
func (v Vec4[T]) DivScalar(s T) Vec4[T] { ewDivScalar(v[:], v[:], s); return v }

// Neg returns -v.
func (v Vec4[T]) Neg() Vec4[T] { ewNeg(v[:], v[:]); return v }

// Dot returns the sum of the componentwise products.
func (v Vec4[T]) Dot(o Vec4[T]) T { return ewDot(v[:], o[:]) }

// Length returns sqrt(v·v).
func (v Vec4[T]) Length() T { return scalar.Sqrt(v.Dot(v)) }

// Distance returns the length of v-o.
func (v Vec4[T]) Distance(o Vec4[T]) T { return v.Sub(o).Length() }

// Normalize returns v / Length(v). A zero float vector yields NaN components.
func (v Vec4[T]) Normalize() Vec4[T] { return v.DivScalar(v.Length()) }

// ApproxEqual reports whether every component is within eps of o's.
func (v Vec4[T]) ApproxEqual(o Vec4[T], eps T) bool { return ewApproxEqual(v[:], o[:], eps) }

// LessThan reports v[i] < o[i] per component.
func (v Vec4[T]) LessThan(o Vec4[T]) (r BVec4) { ewCompare(r[:], v[:], o[:], cmpLT); return }

// LessThanEqual reports v[i] <= o[i] per component.
func (v Vec4[T]) LessThanEqual(o Vec4[T]) (r BVec4) { ewCompare(r[:], v[:], o[:], cmpLE); return }

// GreaterThan reports v[i] > o[i] per component.
func (v Vec4[T]) GreaterThan(o Vec4[T]) (r BVec4) { ewCompare(r[:], v[:], o[:], cmpGT); return }

// GreaterThanEqual reports v[i] >= o[i] per component.
func (v Vec4[T]) GreaterThanEqual(o Vec4[T]) (r BVec4) { ewCompare(r[:], v[:], o[:], cmpGE); return }

// Equal reports v[i] == o[i] per component.
func (v Vec4[T]) Equal(o Vec4[T]) (r BVec4) { ewCompare(r[:], v[:], o[:], cmpEQ); return }

// NotEqual reports v[i] != o[i] per component.
func (v Vec4[T]) NotEqual(o Vec4[T]) (r BVec4) { ewCompare(r[:], v[:], o[:], cmpNE); return }

// Min returns the componentwise minimum of v and o.
func (v Vec4[T]) Min(o Vec4[T]) Vec4[T] { ewMin(v[:], v[:], o[:]); return v }

// Max returns the componentwise maximum of v and o.
func (v Vec4[T]) Max(o Vec4[T]) Vec4[T] { ewMax(v[:], v[:], o[:]); return v }

// Clamp limits every component to [lo[i], hi[i]]: min(max(v, lo), hi).
func (v Vec4[T]) Clamp(lo, hi Vec4[T]) Vec4[T] { return v.Max(lo).Min(hi) }
