// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/glmath/scalar"

// Vec3 is a 3-component vector. Components are aliased as x/y/z, r/g/b and
// s/t/p; every alias reads and writes the same slot.
type Vec3[T scalar.Number] [3]T

// New3 builds a Vec3 from its components.
func New3[T scalar.Number](x, y, z T) Vec3[T] {
	return Vec3[T]{x, y, z}
}

// Splat3 returns a Vec3 with every component set to s.
func Splat3[T scalar.Number](s T) Vec3[T] {
	return Vec3[T]{s, s, s}
}

// X returns component 0.
func (v Vec3[T]) X() T { return v[0] }

// Y returns component 1.
func (v Vec3[T]) Y() T { return v[1] }

// Z returns component 2.
func (v Vec3[T]) Z() T { return v[2] }

// R returns component 0.
func (v Vec3[T]) R() T { return v[0] }

// G returns component 1.
func (v Vec3[T]) G() T { return v[1] }

// B returns component 2.
func (v Vec3[T]) B() T { return v[2] }

// S returns component 0.
func (v Vec3[T]) S() T { return v[0] }

// T returns component 1.
func (v Vec3[E]) T() E { return v[1] }

// P returns component 2.
func (v Vec3[T]) P() T { return v[2] }

// SetX assigns component 0.
func (v *Vec3[T]) SetX(x T) { v[0] = x }

// SetY assigns component 1.
func (v *Vec3[T]) SetY(y T) { v[1] = y }

// SetZ assigns component 2.
func (v *Vec3[T]) SetZ(z T) { v[2] = z }

// SetR assigns component 0.
func (v *Vec3[T]) SetR(r T) { v[0] = r }

// SetG assigns component 1.
func (v *Vec3[T]) SetG(g T) { v[1] = g }

// SetB assigns component 2.
func (v *Vec3[T]) SetB(b T) { v[2] = b }

// SetS assigns component 0.
func (v *Vec3[T]) SetS(s T) { v[0] = s }

// SetT assigns component 1.
func (v *Vec3[E]) SetT(t E) { v[1] = t }

// SetP assigns component 2.
func (v *Vec3[T]) SetP(p T) { v[2] = p }

// At returns component i, panicking when i is outside [0,3).
func (v Vec3[T]) At(i int) T {
	checkIndex(i, 3)
	return v[i]
}

// Set assigns component i, panicking when i is outside [0,3).
func (v *Vec3[T]) Set(i int, x T) {
	checkIndex(i, 3)
	v[i] = x
}

// XY truncates to the first two components.
func (v Vec3[T]) XY() Vec2[T] { return Vec2[T]{v[0], v[1]} }

// Vec4 extends v with w; use w=1 for points and w=0 for directions.
func (v Vec3[T]) Vec4(w T) Vec4[T] { return Vec4[T]{v[0], v[1], v[2], w} }

// Add returns the componentwise sum v + o.
func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] { ewAdd(v[:], v[:], o[:]); return v }

// Sub returns the componentwise difference v - o.
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] { ewSub(v[:], v[:], o[:]); return v }

// Mul returns the componentwise product of v and o.
func (v Vec3[T]) Mul(o Vec3[T]) Vec3[T] { ewMul(v[:], v[:], o[:]); return v }

// Div returns the componentwise quotient v / o.
func (v Vec3[T]) Div(o Vec3[T]) Vec3[T] { ewDiv(v[:], v[:], o[:]); return v }

// AddScalar adds s to every component.
func (v Vec3[T]) AddScalar(s T) Vec3[T] { ewAddScalar(v[:], v[:], s); return v }

// SubScalar subtracts s from every component.
func (v Vec3[T]) SubScalar(s T) Vec3[T] { ewSubScalar(v[:], v[:], s); return v }

// Scale multiplies every component by s.
func (v Vec3[T]) Scale(s T) Vec3[T] { ewScale(v[:], v[:], s); return v }

// DivScalar divides every component by s.
func (v Vec3[T]) DivScalar(s T) Vec3[T] { ewDivScalar(v[:], v[:], s); return v }

// Neg returns -v.
func (v Vec3[T]) Neg() Vec3[T] { ewNeg(v[:], v[:]); return v }

// Dot returns x·x' + y·y' + z·z'.
func (v Vec3[T]) Dot(o Vec3[T]) T { return ewDot(v[:], o[:]) }

// Cross returns the right-handed cross product v × o.
func (v Vec3[T]) Cross(o Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v[1]*o[2] - o[1]*v[2],
		v[2]*o[0] - o[2]*v[0],
		v[0]*o[1] - o[0]*v[1],
	}
}

// Length returns sqrt(v·v).
func (v Vec3[T]) Length() T { return scalar.Sqrt(v.Dot(v)) }

// Distance returns the length of v-o.
func (v Vec3[T]) Distance(o Vec3[T]) T { return v.Sub(o).Length() }

// Normalize returns v / Length(v). A zero float vector yields NaN components.
func (v Vec3[T]) Normalize() Vec3[T] { return v.DivScalar(v.Length()) }

// ApproxEqual reports whether every component is within eps of o's.
func (v Vec3[T]) ApproxEqual(o Vec3[T], eps T) bool { return ewApproxEqual(v[:], o[:], eps) }

// LessThan reports v[i] < o[i] per component.
func (v Vec3[T]) LessThan(o Vec3[T]) (r BVec3) { ewCompare(r[:], v[:], o[:], cmpLT); return }

// LessThanEqual reports v[i] <= o[i] per component.
func (v Vec3[T]) LessThanEqual(o Vec3[T]) (r BVec3) { ewCompare(r[:], v[:], o[:], cmpLE); return }

// GreaterThan reports v[i] > o[i] per component.
func (v Vec3[T]) GreaterThan(o Vec3[T]) (r BVec3) { ewCompare(r[:], v[:], o[:], cmpGT); return }

// GreaterThanEqual reports v[i] >= o[i] per component.
func (v Vec3[T]) GreaterThanEqual(o Vec3[T]) (r BVec3) { ewCompare(r[:], v[:], o[:], cmpGE); return }

// Equal reports v[i] == o[i] per component.
func (v Vec3[T]) Equal(o Vec3[T]) (r BVec3) { ewCompare(r[:], v[:], o[:], cmpEQ); return }

// NotEqual reports v[i] != o[i] per component.
func (v Vec3[T]) NotEqual(o Vec3[T]) (r BVec3) { ewCompare(r[:], v[:], o[:], cmpNE); return }

// Min returns the componentwise minimum of v and o.
func (v Vec3[T]) Min(o Vec3[T]) Vec3[T] { ewMin(v[:], v[:], o[:]); return v }

// Max returns the componentwise maximum of v and o.
func (v Vec3[T]) Max(o Vec3[T]) Vec3[T] { ewMax(v[:], v[:], o[:]); return v }

// Clamp limits every component to [lo[i], hi[i]]: min(max(v, lo), hi).
func (v Vec3[T]) Clamp(lo, hi Vec3[T]) Vec3[T] { return v.Max(lo).Min(hi) }
