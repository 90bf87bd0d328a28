// SPDX-License-Identifier: MIT
// Package transform: orthographic and perspective projections.
//
// Every projection dispatches twice: handedness first (the sign of the z
// row and of r23), then depth range (which z interval near..far lands on).
// Coefficients are named rCR after the GLM column/row they occupy, so r32
// is column 3, row 2.
//
//	                 r22 (LH)        r22 (RH)         r32
//	ortho ZO         1/(f−n)         −1/(f−n)         −n/(f−n)
//	ortho NO         2/(f−n)         −2/(f−n)         −(f+n)/(f−n)
//	perspective ZO   f/(f−n)         f/(n−f)          −f·n/(f−n)
//	perspective NO   (f+n)/(f−n)     −(f+n)/(f−n)     −2·f·n/(f−n)
//
// Perspective matrices put +1 (LH) or −1 (RH) in r23 and 0 in r33.

package transform

import (
	"github.com/katalvlaran/glmath/matrix"
	"github.com/katalvlaran/glmath/scalar"
)

// w returns the r23 entry: +1 for left-handed, −1 for right-handed.
func w[T scalar.Float](h Handedness) T {
	if h == LeftHanded {
		return 1
	}
	return -1
}

func orthoDepth[T scalar.Float](h Handedness, d DepthRange, n, f T) (r22, r32 T) {
	if d == ZeroToOne {
		r22, r32 = 1/(f-n), -n/(f-n)
	} else {
		r22, r32 = 2/(f-n), -(f+n)/(f-n)
	}
	if h == RightHanded {
		r22 = -r22
	}
	return r22, r32
}

func perspectiveDepth[T scalar.Float](h Handedness, d DepthRange, n, f T) (r22, r32 T) {
	switch {
	case h == LeftHanded && d == ZeroToOne:
		return f / (f - n), -(f * n) / (f - n)
	case h == LeftHanded:
		return (f + n) / (f - n), -(2 * f * n) / (f - n)
	case d == ZeroToOne:
		return f / (n - f), -(f * n) / (f - n)
	default:
		return -(f + n) / (f - n), -(2 * f * n) / (f - n)
	}
}

// perspectiveMatrix assembles the shared layout of every finite
// perspective: scale on the diagonal, depth terms in column 2/3.
func perspectiveMatrix[T scalar.Float](h Handedness, d DepthRange, r00, r11, n, f T) matrix.Mat4x4[T] {
	r22, r32 := perspectiveDepth(h, d, n, f)
	return matrix.Mat4x4[T]{
		{r00, 0, 0, 0},
		{0, r11, 0, 0},
		{0, 0, r22, w[T](h)},
		{0, 0, r32, 0},
	}
}

// Ortho2D returns an orthographic projection for 2D drawing. The z row is
// fixed at −1 and has no near/far planes.
func Ortho2D[T scalar.Float](left, right, bottom, top T) matrix.Mat4x4[T] {
	return matrix.Mat4x4[T]{
		{2 / (right - left), 0, 0, 0},
		{0, 2 / (top - bottom), 0, 0},
		{0, 0, -1, 0},
		{-(right + left) / (right - left), -(top + bottom) / (top - bottom), 0, 1},
	}
}

func ortho[T scalar.Float](h Handedness, d DepthRange, left, right, bottom, top, near, far T) matrix.Mat4x4[T] {
	m := Ortho2D(left, right, bottom, top)
	m[2][2], m[3][2] = orthoDepth(h, d, near, far)
	return m
}

// Ortho returns an orthographic projection of the box [left,right] ×
// [bottom,top] × [near,far] under c.
func Ortho[T scalar.Float](c Convention, left, right, bottom, top, near, far T) matrix.Mat4x4[T] {
	return ortho(c.Handedness, c.Depth, left, right, bottom, top, near, far)
}

// OrthoLH is Ortho for a left-handed view space.
func OrthoLH[T scalar.Float](d DepthRange, left, right, bottom, top, near, far T) matrix.Mat4x4[T] {
	return ortho(LeftHanded, d, left, right, bottom, top, near, far)
}

// OrthoRH is Ortho for a right-handed view space.
func OrthoRH[T scalar.Float](d DepthRange, left, right, bottom, top, near, far T) matrix.Mat4x4[T] {
	return ortho(RightHanded, d, left, right, bottom, top, near, far)
}

func frustum[T scalar.Float](h Handedness, d DepthRange, left, right, bottom, top, near, far T) matrix.Mat4x4[T] {
	m := perspectiveMatrix(h, d, 2*near/(right-left), 2*near/(top-bottom), near, far)
	m[2][0] = (right + left) / (right - left)
	m[2][1] = (top + bottom) / (top - bottom)
	return m
}

// Frustum returns a perspective projection of the (possibly off-axis)
// viewing frustum whose near plane spans [left,right] × [bottom,top].
func Frustum[T scalar.Float](c Convention, left, right, bottom, top, near, far T) matrix.Mat4x4[T] {
	return frustum(c.Handedness, c.Depth, left, right, bottom, top, near, far)
}

// FrustumLH is Frustum for a left-handed view space.
func FrustumLH[T scalar.Float](d DepthRange, left, right, bottom, top, near, far T) matrix.Mat4x4[T] {
	return frustum(LeftHanded, d, left, right, bottom, top, near, far)
}

// FrustumRH is Frustum for a right-handed view space.
func FrustumRH[T scalar.Float](d DepthRange, left, right, bottom, top, near, far T) matrix.Mat4x4[T] {
	return frustum(RightHanded, d, left, right, bottom, top, near, far)
}

func perspective[T scalar.Float](op string, h Handedness, d DepthRange, fovy, aspect, near, far T) matrix.Mat4x4[T] {
	positive(aspect, panicAspect, op)
	tanHalf := scalar.Tan(fovy / 2)
	return perspectiveMatrix(h, d, 1/(aspect*tanHalf), 1/tanHalf, near, far)
}

// Perspective returns a symmetric perspective projection with vertical
// field of view fovy (radians) and aspect = width/height. Panics if
// aspect <= 0.
func Perspective[T scalar.Float](c Convention, fovy, aspect, near, far T) matrix.Mat4x4[T] {
	return perspective("Perspective", c.Handedness, c.Depth, fovy, aspect, near, far)
}

// PerspectiveLH is Perspective for a left-handed view space.
func PerspectiveLH[T scalar.Float](d DepthRange, fovy, aspect, near, far T) matrix.Mat4x4[T] {
	return perspective("PerspectiveLH", LeftHanded, d, fovy, aspect, near, far)
}

// PerspectiveRH is Perspective for a right-handed view space.
func PerspectiveRH[T scalar.Float](d DepthRange, fovy, aspect, near, far T) matrix.Mat4x4[T] {
	return perspective("PerspectiveRH", RightHanded, d, fovy, aspect, near, far)
}

func perspectiveFov[T scalar.Float](op string, h Handedness, d DepthRange, fov, width, height, near, far T) matrix.Mat4x4[T] {
	positive(width, panicWidth, op)
	positive(height, panicHeight, op)
	positive(fov, panicFov, op)

	r00 := scalar.Cos(fov/2) / scalar.Sin(fov/2)
	r11 := r00 * height / width
	return perspectiveMatrix(h, d, r00, r11, near, far)
}

// PerspectiveFov builds a perspective projection from a field of view and
// a viewport size: r00 = cot(fov/2) and r11 = r00·height/width. Panics if
// fov, width or height is <= 0.
func PerspectiveFov[T scalar.Float](c Convention, fov, width, height, near, far T) matrix.Mat4x4[T] {
	return perspectiveFov("PerspectiveFov", c.Handedness, c.Depth, fov, width, height, near, far)
}

// PerspectiveFovLH is PerspectiveFov for a left-handed view space.
func PerspectiveFovLH[T scalar.Float](d DepthRange, fov, width, height, near, far T) matrix.Mat4x4[T] {
	return perspectiveFov("PerspectiveFovLH", LeftHanded, d, fov, width, height, near, far)
}

// PerspectiveFovRH is PerspectiveFov for a right-handed view space.
func PerspectiveFovRH[T scalar.Float](d DepthRange, fov, width, height, near, far T) matrix.Mat4x4[T] {
	return perspectiveFov("PerspectiveFovRH", RightHanded, d, fov, width, height, near, far)
}

func infinitePerspective[T scalar.Float](op string, h Handedness, fovy, aspect, near, epsilon T) matrix.Mat4x4[T] {
	positive(aspect, panicAspect, op)
	rng := scalar.Tan(fovy/2) * near
	left, right := -rng*aspect, rng*aspect
	bottom, top := -rng, rng

	r22 := epsilon - 1
	if h == LeftHanded {
		r22 = 1 - epsilon
	}
	return matrix.Mat4x4[T]{
		{2 * near / (right - left), 0, 0, 0},
		{0, 2 * near / (top - bottom), 0, 0},
		{0, 0, r22, w[T](h)},
		{0, 0, epsilon - 2*near, 0},
	}
}

// InfinitePerspective returns a perspective projection whose far plane is
// at infinity. A small positive epsilon pulls the far limit inside the clip
// volume to hide depth precision loss; pass 0 for the exact limit. The depth
// range does not affect the result. Panics if aspect <= 0.
func InfinitePerspective[T scalar.Float](c Convention, fovy, aspect, near, epsilon T) matrix.Mat4x4[T] {
	return infinitePerspective("InfinitePerspective", c.Handedness, fovy, aspect, near, epsilon)
}

// InfinitePerspectiveLH is InfinitePerspective for a left-handed view space.
func InfinitePerspectiveLH[T scalar.Float](fovy, aspect, near, epsilon T) matrix.Mat4x4[T] {
	return infinitePerspective("InfinitePerspectiveLH", LeftHanded, fovy, aspect, near, epsilon)
}

// InfinitePerspectiveRH is InfinitePerspective for a right-handed view space.
func InfinitePerspectiveRH[T scalar.Float](fovy, aspect, near, epsilon T) matrix.Mat4x4[T] {
	return infinitePerspective("InfinitePerspectiveRH", RightHanded, fovy, aspect, near, epsilon)
}
