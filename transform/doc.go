// Package transform builds the 4×4 matrices a renderer needs: model
// transforms (Translate, Rotate, Scale), projections (Ortho, Frustum,
// Perspective, PerspectiveFov, InfinitePerspective), views (LookAt) and
// window-space helpers (Project, Unproject, PickMatrix).
//
// Formulas follow GLM element for element. Projections and views depend on
// a Convention: the handedness of view space and the NDC depth range. There
// is no global convention. Pass one explicitly,
//
//	proj := transform.Perspective(transform.Vulkan, fovy, aspect, near, far)
//
// call the LH/RH variant with a DepthRange,
//
//	proj := transform.PerspectiveLH(transform.ZeroToOne, fovy, aspect, near, far)
//
// or bind it once into a Builder:
//
//	b := transform.New[float32](transform.WithLeftHanded(), transform.WithDepthZeroToOne())
//	proj := b.Perspective(fovy, aspect, near, far)
//	view := b.LookAt(eye, center, up)
//
// Rotation always follows the right-hand rule; no Convention affects it.
//
// Non-positive aspect, fov, viewport width/height or pick size is a
// programming error: it is logged through glmath.Logger and panics.
// Degenerate geometry (near == far, zero axis) propagates NaN/Inf.
package transform
