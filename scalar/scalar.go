// SPDX-License-Identifier: MIT

// Package scalar classifies the primitive element types usable by vector and
// matrix values and names the elementary operations the rest of glmath
// builds on.
//
// Two families exist:
//   - Float: float32, float64 (and named types over them).
//   - Integer: int32, uint32 (and named types over them).
//
// Number is the union of both. Transcendental helpers (Sin, Cos, Tan, Sqrt)
// evaluate in float64 and narrow the result back to T, so float32 callers get
// the correctly rounded float32 value.
package scalar

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Float is the floating scalar family.
type Float interface {
	constraints.Float
}

// Integer is the integer scalar family.
type Integer interface {
	~int32 | ~uint32
}

// Number is every scalar a vector or matrix may hold.
type Number interface {
	Float | Integer
}

// Tolerances returned by Epsilon.
const (
	Epsilon32 = 1e-5
	Epsilon64 = 1e-12
)

// IsFloat reports whether T belongs to the floating family.
func IsFloat[T Number]() bool {
	var zero T
	switch any(zero).(type) {
	case float32, float64:
		return true
	}
	// Named types over float kinds do not match the switch above; probe
	// with a fractional value instead.
	half := 0.5
	return T(half) != 0
}

// IsSigned reports whether T can represent negative values.
func IsSigned[T Number]() bool {
	var zero T
	return zero-1 < zero
}

// Epsilon returns the default comparison tolerance for T: Epsilon32 for
// 4-byte floats, Epsilon64 for 8-byte floats and 0 for integers. Named
// float types get the tolerance of their storage width.
func Epsilon[T Number]() T {
	if !IsFloat[T]() {
		return 0
	}
	eps32, eps64 := Epsilon32, Epsilon64
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return T(eps32)
	}
	return T(eps64)
}

// Abs returns |x|. Unsigned values are returned unchanged.
func Abs[T Number](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of a and b.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Clamp returns x limited to [lo, hi], i.e. Min(Max(x, lo), hi).
func Clamp[T constraints.Ordered](x, lo, hi T) T {
	return Min(Max(x, lo), hi)
}

// Sqrt returns the square root of x. For integers the result is truncated.
func Sqrt[T Number](x T) T {
	return T(math.Sqrt(float64(x)))
}

// Sin returns the sine of the radian argument x.
func Sin[T Float](x T) T {
	return T(math.Sin(float64(x)))
}

// Cos returns the cosine of the radian argument x.
func Cos[T Float](x T) T {
	return T(math.Cos(float64(x)))
}

// Tan returns the tangent of the radian argument x.
func Tan[T Float](x T) T {
	return T(math.Tan(float64(x)))
}

// Radians converts degrees to radians.
func Radians[T Float](deg T) T {
	return deg * T(math.Pi/180)
}

// Degrees converts radians to degrees.
func Degrees[T Float](rad T) T {
	return rad * T(180/math.Pi)
}

// ApproxEqual reports whether |a-b| <= eps. NaN never compares equal.
func ApproxEqual[T Number](a, b, eps T) bool {
	if a > b {
		return a-b <= eps
	}
	return b-a <= eps
}

// IsNaN reports whether x is an IEEE NaN. Always false for integers.
func IsNaN[T Number](x T) bool {
	return x != x
}

// IsInf reports whether x is ±Inf. Always false for integers.
func IsInf[T Number](x T) bool {
	return math.IsInf(float64(x), 0)
}
