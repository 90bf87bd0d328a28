// Package interop converts glmath values to and from the types of other Go
// graphics math libraries, so matrices built here can be handed to code that
// expects them.
//
//   - github.com/go-gl/mathgl (mgl32, mgl64): column-major, same element order
//     as matrix.Mat4x4, so conversion is a straight copy.
//   - golang.org/x/image/math/f32: row-major, so conversion transposes.
//     f32.Aff3 is the 2×3 affine matrix used by x/image/draw and maps to
//     matrix.Mat3x2.
//
// Every conversion is lossless and To(From(x)) == x.
package interop
