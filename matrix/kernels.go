// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Column-major kernels shared by all nine shapes. A matrix is passed as a
//     slice of its columns (m[:]) and every column is a fixed-size array, so
//     one kernel covers every R for a given loop structure.
//
// Determinism:
//   - Fixed loop orders (column j outer, row i inner). Products accumulate
//     over the shared dimension k in increasing order, so float results are
//     reproducible and match a left-to-right sum of row·column terms.
//
// Notes:
//   - Kernels never validate shapes: the array types already guarantee them.
//   - T cannot be inferred from a column type parameter, so callers of the
//     product kernels spell the type arguments out.

package matrix

import "github.com/katalvlaran/glmath/scalar"

// column is the set of array types a matrix column may have.
type column[T scalar.Number] interface {
	~[2]T | ~[3]T | ~[4]T
}

func add[T scalar.Number](x, y T) T { return x + y }
func sub[T scalar.Number](x, y T) T { return x - y }
func mul[T scalar.Number](x, y T) T { return x * y }
func div[T scalar.Number](x, y T) T { return x / y }

// zip computes dst[j][i] = op(a[j][i], b[j][i]).
func zip[V column[T], T scalar.Number](dst, a, b []V, op func(x, y T) T) {
	for j := range dst {
		for i := 0; i < len(dst[j]); i++ {
			dst[j][i] = op(a[j][i], b[j][i])
		}
	}
}

// broadcast computes dst[j][i] = op(a[j][i], s).
func broadcast[V column[T], T scalar.Number](dst, a []V, s T, op func(x, y T) T) {
	for j := range dst {
		for i := 0; i < len(dst[j]); i++ {
			dst[j][i] = op(a[j][i], s)
		}
	}
}

// diagonal writes s on the main diagonal and zero everywhere else. For
// non-square shapes this is the identity block plus zero padding.
func diagonal[V column[T], T scalar.Number](dst []V, s T) {
	for j := range dst {
		var c V
		if j < len(c) {
			c[j] = s
		}
		dst[j] = c
	}
}

// product computes dst = a·b where a has len(a) columns of R and b has
// len(dst) columns of K, len(K) == len(a). Column j of the result is the
// linear combination of a's columns weighted by b[j].
func product[R, K column[T], T scalar.Number](dst, a []R, b []K) {
	for j := range dst {
		dst[j] = combine[R, K, T](a, b[j])
	}
}

// combine returns Σ_k a[k]·w[k], i.e. matrix a times column vector w.
func combine[R, K column[T], T scalar.Number](a []R, w K) R {
	var out R
	for i := 0; i < len(out); i++ {
		var sum T
		for k := range a {
			sum += a[k][i] * w[k]
		}
		out[i] = sum
	}
	return out
}

// rowTimes returns the row vector v times matrix a: out[j] = dot(v, a[j]).
func rowTimes[R, O column[T], T scalar.Number](a []R, v R) O {
	var out O
	for j := range a {
		var sum T
		for i := 0; i < len(v); i++ {
			sum += v[i] * a[j][i]
		}
		out[j] = sum
	}
	return out
}

// transpose writes dst[i][j] = src[j][i].
func transpose[S, D column[T], T scalar.Number](dst []D, src []S) {
	for j := range src {
		for i := 0; i < len(src[j]); i++ {
			dst[i][j] = src[j][i]
		}
	}
}

// row extracts row i across every column.
func row[V, O column[T], T scalar.Number](cols []V, i int) O {
	var out O
	for j := range cols {
		out[j] = cols[j][i]
	}
	return out
}

func approxEqual[V column[T], T scalar.Number](a, b []V, eps T) bool {
	for j := range a {
		for i := 0; i < len(a[j]); i++ {
			if !scalar.ApproxEqual(a[j][i], b[j][i], eps) {
				return false
			}
		}
	}
	return true
}

func negate[T scalar.Number](x, _ T) T { return -x }
