// SPDX-License-Identifier: MIT

package vector

import "fmt"

// Index violations are programmer errors: accessors panic instead of
// returning an error, matching native array indexing.
const panicIndexOutOfRange = "vector: index %d out of range [0,%d)"

func checkIndex(i, n int) {
	if i < 0 || i >= n {
		panic(fmt.Sprintf(panicIndexOutOfRange, i, n))
	}
}
