// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Private element-wise and broadcast kernels (ew*) shared by Vec2/3/4 so
//     each method body stays a one-liner over v[:].
//
// Determinism:
//   - Fixed loop order 0..n-1; callers pass equal-length slices (guaranteed by
//     the fixed-size array types), so no length checks are performed.

package vector

import "github.com/katalvlaran/glmath/scalar"

func ewAdd[T scalar.Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func ewSub[T scalar.Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

func ewMul[T scalar.Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

func ewDiv[T scalar.Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] / b[i]
	}
}

func ewAddScalar[T scalar.Number](dst, a []T, s T) {
	for i := range dst {
		dst[i] = a[i] + s
	}
}

func ewSubScalar[T scalar.Number](dst, a []T, s T) {
	for i := range dst {
		dst[i] = a[i] - s
	}
}

func ewScale[T scalar.Number](dst, a []T, s T) {
	for i := range dst {
		dst[i] = a[i] * s
	}
}

func ewDivScalar[T scalar.Number](dst, a []T, s T) {
	for i := range dst {
		dst[i] = a[i] / s
	}
}

func ewNeg[T scalar.Number](dst, a []T) {
	for i := range dst {
		dst[i] = -a[i]
	}
}

// ewDot accumulates left to right; the order is part of the result for floats.
func ewDot[T scalar.Number](a, b []T) T {
	var sum T
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func ewApproxEqual[T scalar.Number](a, b []T, eps T) bool {
	for i := range a {
		if !scalar.ApproxEqual(a[i], b[i], eps) {
			return false
		}
	}
	return true
}

// Comparison operators reduced to a tag so one kernel serves all six.
type cmpOp uint8

const (
	cmpLT cmpOp = iota
	cmpLE
	cmpGT
	cmpGE
	cmpEQ
	cmpNE
)

func ewCompare[T scalar.Number](dst []bool, a, b []T, op cmpOp) {
	for i := range dst {
		x, y := a[i], b[i]
		switch op {
		case cmpLT:
			dst[i] = x < y
		case cmpLE:
			dst[i] = x <= y
		case cmpGT:
			dst[i] = x > y
		case cmpGE:
			dst[i] = x >= y
		case cmpEQ:
			dst[i] = x == y
		case cmpNE:
			dst[i] = x != y
		}
	}
}

func allTrue(b []bool) bool {
	for _, v := range b {
		if !v {
			return false
		}
	}
	return true
}

func anyTrue(b []bool) bool {
	for _, v := range b {
		if v {
			return true
		}
	}
	return false
}

func ewMin[T scalar.Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = scalar.Min(a[i], b[i])
	}
}

func ewMax[T scalar.Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = scalar.Max(a[i], b[i])
	}
}
