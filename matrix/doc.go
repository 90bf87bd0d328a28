// Package matrix provides every fixed matrix shape from 2×2 through 4×4 over
// any scalar.Number, stored column-major as arrays of vector columns.
//
// Naming follows GLM: MatCxR has C columns and R rows, so Mat3x2 is
// [3]vector.Vec2 and maps R^3 to R^2. m[j] is column j and m[j][i] is the
// element in column j, row i.
//
// Shapes are checked by the type system. Elementwise operations (Add, Sub,
// CompMul) only accept the same shape, and a product A·B exists only as the
// method A.MulKxC(B), whose operand has as many rows as A has columns:
//
//	a := matrix.Ident3x2[float32]()       // 3 columns, 2 rows
//	b := matrix.Ident4x3[float32]()       // 4 columns, 3 rows
//	c := a.Mul4x3(b)                      // Mat4x2: 4 columns, 2 rows
//	v := c.MulVec(vector.Vec4f{1, 2, 3, 4}) // vector.Vec2f
//
// Square shapes add Determinant, Inverse and InverseChecked. Inverse follows
// IEEE semantics on singular float input (NaN/Inf, no error); InverseChecked
// reports ErrSingular for every scalar type.
//
// Matrices are comparable Go arrays: == compares elementwise and they can be
// used as map keys.
package matrix
