// SPDX-License-Identifier: MIT

package vector

// BVec2, BVec3 and BVec4 hold the componentwise result of a comparison.
// Reduce them explicitly with All or Any.
type (
	BVec2 [2]bool
	BVec3 [3]bool
	BVec4 [4]bool
)

func (b BVec2) All() bool { return allTrue(b[:]) }
func (b BVec3) All() bool { return allTrue(b[:]) }
func (b BVec4) All() bool { return allTrue(b[:]) }

func (b BVec2) Any() bool { return anyTrue(b[:]) }
func (b BVec3) Any() bool { return anyTrue(b[:]) }
func (b BVec4) Any() bool { return anyTrue(b[:]) }

// Not negates every component.
func (b BVec2) Not() BVec2 { return BVec2{!b[0], !b[1]} }

// Not negates every component.
func (b BVec3) Not() BVec3 { return BVec3{!b[0], !b[1], !b[2]} }

// Not negates every component.
func (b BVec4) Not() BVec4 { return BVec4{!b[0], !b[1], !b[2], !b[3]} }
