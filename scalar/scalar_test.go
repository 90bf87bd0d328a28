// SPDX-License-Identifier: MIT

package scalar_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/glmath/scalar"
)

type (
	meters  float32
	seconds float64
)

func TestIsFloat(t *testing.T) {
	require.True(t, scalar.IsFloat[float32]())
	require.True(t, scalar.IsFloat[float64]())
	require.True(t, scalar.IsFloat[meters]()) // named float type takes the probe path
	require.False(t, scalar.IsFloat[int32]())
	require.False(t, scalar.IsFloat[uint32]())
}

func TestIsSigned(t *testing.T) {
	require.True(t, scalar.IsSigned[int32]())
	require.True(t, scalar.IsSigned[float64]())
	require.False(t, scalar.IsSigned[uint32]())
}

func TestEpsilon(t *testing.T) {
	require.Equal(t, float32(scalar.Epsilon32), scalar.Epsilon[float32]())
	require.Equal(t, scalar.Epsilon64, scalar.Epsilon[float64]())
	require.Equal(t, int32(0), scalar.Epsilon[int32]())
	require.Equal(t, uint32(0), scalar.Epsilon[uint32]())

	// named types take the tolerance of their storage width
	require.Equal(t, meters(scalar.Epsilon32), scalar.Epsilon[meters]())
	require.Equal(t, seconds(scalar.Epsilon64), scalar.Epsilon[seconds]())
}

func TestEpsilon_AbsorbsFloat32Rounding(t *testing.T) {
	// 0.1/len·len differs from 0.1 only by float32 rounding
	x, y, z := meters(0.1), meters(0.2), meters(0.3)
	n := scalar.Sqrt(x*x + y*y + z*z)
	for _, c := range []meters{x, y, z} {
		require.True(t, scalar.ApproxEqual(c/n*n, c, scalar.Epsilon[meters]()), "%v", c/n*n)
	}
}

func TestMinMaxClamp(t *testing.T) {
	require.Equal(t, int32(-2), scalar.Min(int32(-2), 3))
	require.Equal(t, uint32(9), scalar.Max(uint32(4), 9))
	require.Equal(t, meters(1.5), scalar.Max(meters(1.5), -1))

	require.Equal(t, 0.0, scalar.Clamp(-0.5, 0, 1))
	require.Equal(t, 1.0, scalar.Clamp(7.0, 0, 1))
	require.Equal(t, 0.25, scalar.Clamp(0.25, 0, 1))
	require.Equal(t, int32(5), scalar.Clamp(int32(5), 5, 5))
}

func TestAbs(t *testing.T) {
	require.Equal(t, int32(3), scalar.Abs(int32(-3)))
	require.Equal(t, uint32(7), scalar.Abs(uint32(7)))
	require.Equal(t, 2.5, scalar.Abs(-2.5))
}

func TestTrig(t *testing.T) {
	require.InDelta(t, 1.0, scalar.Tan(math.Pi/4), 1e-12)
	require.InDelta(t, 0.0, scalar.Sin(float32(0)), 0)
	require.InDelta(t, -1.0, scalar.Cos(math.Pi), 1e-12)
	require.Equal(t, int32(3), scalar.Sqrt(int32(10))) // truncated
}

func TestRadiansDegrees(t *testing.T) {
	require.InDelta(t, math.Pi/2, scalar.Radians(90.0), 1e-12)
	require.InDelta(t, 180.0, scalar.Degrees(math.Pi), 1e-12)
}

func TestNaNInf(t *testing.T) {
	require.True(t, scalar.IsNaN(math.NaN()))
	require.False(t, scalar.IsNaN(1.0))
	require.True(t, scalar.IsInf(float32(math.Inf(-1))))
	require.False(t, scalar.IsInf(int32(5)))
	require.False(t, scalar.ApproxEqual(math.NaN(), math.NaN(), 1))
	require.True(t, scalar.ApproxEqual(1.0, 1.0+1e-13, scalar.Epsilon64))
}
