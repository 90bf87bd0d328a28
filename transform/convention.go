// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"
	"strings"
)

// Handedness selects the orientation of the view-space z axis.
//
//   - RightHanded: x × y = z, the camera looks down −z (OpenGL, GLM default).
//   - LeftHanded: the z axis is mirrored, the camera looks down +z (Direct3D).
type Handedness uint8

const (
	RightHanded Handedness = iota // camera looks down −z
	LeftHanded                    // camera looks down +z
)

// DepthRange selects the NDC z interval a projection maps near..far onto.
//
//   - NegativeOneToOne: [-1, 1] (OpenGL, GLM default).
//   - ZeroToOne: [0, 1] (Vulkan, Direct3D, Metal).
type DepthRange uint8

const (
	NegativeOneToOne DepthRange = iota // NDC z in [-1, 1]
	ZeroToOne                          // NDC z in [0, 1]
)

// Convention pairs a handedness with a depth range. The zero value is the
// GLM default, right-handed with depth in [-1, 1].
type Convention struct {
	Handedness Handedness
	Depth      DepthRange
}

// Common conventions by graphics API.
var (
	OpenGL = Convention{Handedness: RightHanded, Depth: NegativeOneToOne}
	Vulkan = Convention{Handedness: RightHanded, Depth: ZeroToOne}
	D3D    = Convention{Handedness: LeftHanded, Depth: ZeroToOne}
)

// String returns "rh" or "lh".
func (h Handedness) String() string {
	switch h {
	case RightHanded:
		return "rh"
	case LeftHanded:
		return "lh"
	default:
		return fmt.Sprintf("Handedness(%d)", uint8(h))
	}
}

// String returns "no" for [-1, 1] or "zo" for [0, 1].
func (d DepthRange) String() string {
	switch d {
	case NegativeOneToOne:
		return "no"
	case ZeroToOne:
		return "zo"
	default:
		return fmt.Sprintf("DepthRange(%d)", uint8(d))
	}
}

// String returns the short form accepted by ParseConvention, e.g. "rh_zo".
func (c Convention) String() string {
	return c.Handedness.String() + "_" + c.Depth.String()
}

// Valid reports whether both fields hold a declared constant.
func (c Convention) Valid() bool {
	return c.Handedness <= LeftHanded && c.Depth <= ZeroToOne
}

// ParseConvention parses "rh_no", "rh_zo", "lh_no" or "lh_zo". Case and
// surrounding space are ignored, and '-' is accepted in place of '_'.
// Anything else wraps ErrUnknownConvention.
func ParseConvention(s string) (Convention, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	hand, depth, ok := strings.Cut(key, "_")
	if !ok {
		return Convention{}, fmt.Errorf("%s %q: %w", opParse, s, ErrUnknownConvention)
	}

	var c Convention
	switch hand {
	case "rh":
		c.Handedness = RightHanded
	case "lh":
		c.Handedness = LeftHanded
	default:
		return Convention{}, fmt.Errorf("%s %q: %w", opParse, s, ErrUnknownConvention)
	}
	switch depth {
	case "no":
		c.Depth = NegativeOneToOne
	case "zo":
		c.Depth = ZeroToOne
	default:
		return Convention{}, fmt.Errorf("%s %q: %w", opParse, s, ErrUnknownConvention)
	}

	return c, nil
}
