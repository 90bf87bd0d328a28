// SPDX-License-Identifier: MIT
// Package transform: sentinel errors and contract-violation messages.
//
// Error policy:
//   - Invalid arguments to a transform (non-positive aspect, fov, viewport
//     size or pick region) are programmer errors: they are logged at Error
//     through glmath.Logger and then panic with one of the messages below.
//   - Degenerate geometry (near == far, zero-length axis, eye == center)
//     is not checked and surfaces as NaN/Inf in the result.
//   - Parsing a textual convention is the only recoverable failure.

package transform

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/glmath"
	"github.com/katalvlaran/glmath/scalar"
)

// ErrUnknownConvention is returned by ParseConvention for unrecognized input.
var ErrUnknownConvention = errors.New("transform: unknown convention")

const opParse = "ParseConvention"

const (
	panicAspect     = "transform: %s: aspect must be > 0, got %v"
	panicFov        = "transform: %s: fov must be > 0, got %v"
	panicWidth      = "transform: %s: width must be > 0, got %v"
	panicHeight     = "transform: %s: height must be > 0, got %v"
	panicPickDelta  = "transform: PickMatrix: delta must be > 0 on both axes, got (%v, %v)"
	panicConvention = "transform: invalid convention %s"
)

// violate logs a contract violation and panics with the formatted message.
func violate(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	glmath.Logger().Error("glmath: contract violation", "reason", msg)
	panic(msg)
}

// positive rejects x <= 0 and NaN.
func positive[T scalar.Float](x T, format, op string) {
	if !(x > 0) {
		violate(format, op, x)
	}
}
