// Package glmath is a generic linear-algebra library for real-time graphics
// whose numeric conventions follow GLM.
//
// What is in the box:
//
//	scalar/     Float, Integer and Number constraints plus the elementary
//	            functions (Sqrt, Sin, Cos, Tan, Abs) every other package uses
//	vector/     Vec2, Vec3, Vec4 over any scalar, boolean BVecN results,
//	            swizzle aliases (x/y/z/w, r/g/b/a, s/t/p/q) and casts
//	matrix/     every MatCxR shape from 2×2 to 4×4, column-major, with
//	            shape-checked products, transpose, determinant and inverse
//	transform/  translate/rotate/scale, orthographic and perspective
//	            projections, look-at views, project/unproject/pick, all under
//	            an explicit handedness + depth-range Convention
//	interop/    lossless hand-off to go-gl/mathgl and x/image/math/f32
//
// Layout matches GLM: m[j] is column j, a Mat3x2 has three columns of two
// rows, and the product A·B type-checks only when B has as many rows as A
// has columns.
//
// Quick start:
//
//	b := transform.New[float32](transform.WithDepthZeroToOne())
//	proj := b.Perspective(scalar.Radians[float32](60), 16.0/9.0, 0.1, 100)
//	view := b.LookAt(vector.New3[float32](0, 2, 5), vector.Vec3f{}, vector.New3[float32](0, 1, 0))
//	model := transform.Rotate(matrix.Ident4x4[float32](), 0.5, vector.New3[float32](0, 1, 0))
//	mvp := proj.Mul4x4(view).Mul4x4(model)
//
// The library is silent by default. Pass a *slog.Logger to SetLogger to see
// convention binding at Debug and contract violations at Error.
package glmath
