// Package vector provides fixed-size 2, 3 and 4 component vectors over any
// scalar.Number, plus the boolean vectors produced by comparisons.
//
// Vectors are plain Go arrays, so they copy by value, compare with == and
// work as map keys. Every operation returns a new value:
//
//	a := vector.New3[float32](1, 2, 3)
//	b := a.Add(vector.Splat3[float32](1)).Normalize()
//	mask := a.LessThan(b) // BVec3, reduce with mask.All() / mask.Any()
//
// Named component aliases (X/R/S, Y/G/T, Z/B/P, W/A/Q) read and write the
// same slot. Indexing past the dimension panics, either through native
// indexing or through At/Set.
//
// Numeric-degenerate cases are not errors: normalizing a zero float vector
// yields NaN components. Integer vectors follow Go integer arithmetic, so
// normalizing a zero integer vector panics with a division by zero.
package vector
