// SPDX-License-Identifier: MIT
// Package matrix: sentinel errors and panic messages.
//
// Two tiers, mirroring the rest of glmath:
//   - Programmer errors (bad column/row index) panic with a stable,
//     "matrix:"-prefixed message.
//   - The only recoverable error is ErrSingular from InverseChecked, wrapped
//     with the operation tag via matrixErrorf; match it with errors.Is.
//
// Plain Inverse never returns an error: a float singular matrix propagates
// NaN/Inf through the result instead.

package matrix

import (
	"errors"
	"fmt"
)

// ErrSingular is returned by InverseChecked when the determinant is exactly zero.
var ErrSingular = errors.New("matrix: singular matrix")

// Operation tags for error wrapping.
const (
	opInverse2 = "Mat2x2.InverseChecked"
	opInverse3 = "Mat3x3.InverseChecked"
	opInverse4 = "Mat4x4.InverseChecked"
)

const (
	panicColumnOutOfRange = "matrix: column %d out of range [0,%d)"
	panicRowOutOfRange    = "matrix: row %d out of range [0,%d)"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

func checkColumn(j, n int) {
	if j < 0 || j >= n {
		panic(fmt.Sprintf(panicColumnOutOfRange, j, n))
	}
}

func checkRow(i, n int) {
	if i < 0 || i >= n {
		panic(fmt.Sprintf(panicRowOutOfRange, i, n))
	}
}
