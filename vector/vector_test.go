// SPDX-License-Identifier: MIT

package vector_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/glmath/scalar"
	"github.com/katalvlaran/glmath/vector"
)

const eps = 1e-9

// randVec3 returns a deterministic pseudo-random Vec3 in [-10,10)^3.
func randVec3(rng *rand.Rand) vector.Vec3d {
	return vector.New3(rng.Float64()*20-10, rng.Float64()*20-10, rng.Float64()*20-10)
}

func TestVec3_Arithmetic(t *testing.T) {
	a := vector.New3(1.0, 2.0, 3.0)
	b := vector.New3(4.0, 5.0, 6.0)

	require.Equal(t, vector.New3(5.0, 7.0, 9.0), a.Add(b))
	require.Equal(t, vector.New3(-3.0, -3.0, -3.0), a.Sub(b))
	require.Equal(t, vector.New3(4.0, 10.0, 18.0), a.Mul(b))
	require.Equal(t, vector.New3(0.25, 0.4, 0.5), a.Div(b))
	require.Equal(t, vector.New3(3.0, 4.0, 5.0), a.AddScalar(2))
	require.Equal(t, vector.New3(0.0, 1.0, 2.0), a.SubScalar(1))
	require.Equal(t, vector.New3(2.0, 4.0, 6.0), a.Scale(2))
	require.Equal(t, vector.New3(0.5, 1.0, 1.5), a.DivScalar(2))
	require.Equal(t, vector.New3(-1.0, -2.0, -3.0), a.Neg())
	require.Equal(t, 32.0, a.Dot(b))

	// operands are values: nothing above mutated a
	require.Equal(t, vector.New3(1.0, 2.0, 3.0), a)
}

func TestVec_Commutativity_Associativity(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(1337))
	for i := 0; i < 200; i++ {
		a, b, c := randVec3(rng), randVec3(rng), randVec3(rng)
		require.Equal(t, a.Add(b), b.Add(a))
		require.True(t, a.Add(b).Add(c).ApproxEqual(a.Add(b.Add(c)), eps))
		require.Equal(t, a.Dot(b), b.Dot(a))
	}
}

func TestVec3_Cross(t *testing.T) {
	x := vector.New3(1.0, 0.0, 0.0)
	y := vector.New3(0.0, 1.0, 0.0)
	require.Equal(t, vector.New3(0.0, 0.0, 1.0), x.Cross(y))
	require.Equal(t, vector.New3(0.0, 0.0, -1.0), y.Cross(x))

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		a, b := randVec3(rng), randVec3(rng)
		c := a.Cross(b)
		assert.InDelta(t, 0, c.Dot(a), 1e-9)
		assert.InDelta(t, 0, c.Dot(b), 1e-9)
		assert.True(t, c.ApproxEqual(b.Cross(a).Neg(), 0))
	}
}

func TestNormalize(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		v := randVec3(rng)
		require.InDelta(t, 1.0, v.Normalize().Length(), eps)
	}

	v2 := vector.New2[float32](3, 4)
	require.Equal(t, float32(5), v2.Length())
	require.Equal(t, vector.New2[float32](0.6, 0.8), v2.Normalize())

	v4 := vector.New4(2.0, 0.0, 0.0, 0.0).Normalize()
	require.Equal(t, vector.New4(1.0, 0.0, 0.0, 0.0), v4)
}

func TestNormalize_ZeroVectorIsNaN(t *testing.T) {
	n := vector.Vec3d{}.Normalize()
	for i := range n {
		require.True(t, math.IsNaN(n[i]), "component %d = %v", i, n[i])
	}

	nf := vector.Vec4f{}.Normalize()
	for i := range nf {
		require.True(t, nf[i] != nf[i], "component %d = %v", i, nf[i])
	}
}

func TestNormalize_ZeroIntegerVectorPanics(t *testing.T) {
	require.Panics(t, func() { _ = vector.Vec3i{}.Normalize() })
}

func TestComparisons(t *testing.T) {
	a := vector.New4[int32](1, 5, 3, 7)
	b := vector.New4[int32](2, 5, 1, 9)

	require.Equal(t, vector.BVec4{true, false, false, true}, a.LessThan(b))
	require.Equal(t, vector.BVec4{true, true, false, true}, a.LessThanEqual(b))
	require.Equal(t, vector.BVec4{false, false, true, false}, a.GreaterThan(b))
	require.Equal(t, vector.BVec4{false, true, true, false}, a.GreaterThanEqual(b))
	require.Equal(t, vector.BVec4{false, true, false, false}, a.Equal(b))
	require.Equal(t, vector.BVec4{true, false, true, true}, a.NotEqual(b))

	require.True(t, a.Equal(a).All())
	require.False(t, a.Equal(b).All())
	require.True(t, a.Equal(b).Any())
	require.False(t, a.NotEqual(a).Any())
	require.Equal(t, vector.BVec4{true, false, true, true}, a.Equal(b).Not())

	u := vector.New2[uint32](1, 2)
	require.Equal(t, vector.BVec2{false, true}, u.GreaterThan(vector.New2[uint32](1, 1)))
	require.True(t, vector.BVec3{true, true, true}.All())
}

func TestSwizzleAliasesShareStorage(t *testing.T) {
	v := vector.New4[float32](1, 2, 3, 4)

	v.SetR(10)
	require.Equal(t, float32(10), v.X())
	require.Equal(t, float32(10), v.S())

	v.SetT(20)
	require.Equal(t, float32(20), v.Y())
	require.Equal(t, float32(20), v.G())

	v.SetP(30)
	require.Equal(t, float32(30), v.Z())
	require.Equal(t, float32(30), v.B())

	v.SetA(40)
	require.Equal(t, float32(40), v.W())
	require.Equal(t, float32(40), v.Q())

	require.Equal(t, vector.New4[float32](10, 20, 30, 40), v)
	require.Equal(t, vector.New3[float32](10, 20, 30), v.XYZ())
	require.Equal(t, vector.New2[float32](10, 20), v.XY())

	w := vector.New3[int32](1, 2, 3)
	w.SetS(9)
	w.SetG(8)
	w.SetZ(7)
	require.Equal(t, vector.New3[int32](9, 8, 7), w)
	require.Equal(t, int32(8), w.T())
	require.Equal(t, vector.New4[int32](9, 8, 7, 1), w.Vec4(1))
	require.Equal(t, vector.New3[int32](5, 6, 0), vector.New2[int32](5, 6).Vec3(0))
}

func TestAtSet(t *testing.T) {
	v := vector.New3(1.0, 2.0, 3.0)
	require.Equal(t, 2.0, v.At(1))
	v.Set(2, 9)
	require.Equal(t, 9.0, v[2])

	require.PanicsWithValue(t, "vector: index 3 out of range [0,3)", func() { v.At(3) })
	require.PanicsWithValue(t, "vector: index -1 out of range [0,3)", func() { v.Set(-1, 0) })
	require.Panics(t, func() {
		var w vector.Vec2f
		w.Set(2, 1)
	})
	require.Panics(t, func() { vector.Vec4u{}.At(4) })
}

func TestEqualityAndHashing(t *testing.T) {
	seen := map[vector.Vec3i]string{
		vector.New3[int32](1, 2, 3): "a",
		vector.New3[int32](3, 2, 1): "b",
	}
	require.Equal(t, "a", seen[vector.New3[int32](1, 2, 3)])
	require.Equal(t, "b", seen[vector.New3[int32](3, 2, 1)]) // order-sensitive
	require.Len(t, seen, 2)
	require.True(t, vector.New2(1.0, 2.0) == vector.New2(1.0, 2.0))
}

func TestCast(t *testing.T) {
	f := vector.New3(1.9, -2.7, 3.0)
	require.Equal(t, vector.New3[int32](1, -2, 3), vector.Cast3[int32](f))
	require.Equal(t, vector.New2[float32](1, 2), vector.Cast2[float32](vector.New2[uint32](1, 2)))
	require.Equal(t, vector.Vec4d{1, 2, 3, 4}, vector.Cast4[float64](vector.Vec4f{1, 2, 3, 4}))
}

func TestSplatAndDistance(t *testing.T) {
	require.Equal(t, vector.Vec2i{3, 3}, vector.Splat2[int32](3))
	require.Equal(t, vector.Vec3u{1, 1, 1}, vector.Splat3[uint32](1))
	require.Equal(t, vector.Vec4d{2, 2, 2, 2}, vector.Splat4(2.0))
	require.Equal(t, 5.0, vector.New3(0.0, 0.0, 0.0).Distance(vector.New3(0.0, 3.0, 4.0)))
}

type meters float32

func TestNormalize_NamedFloat32WithinEpsilon(t *testing.T) {
	v := vector.New3[meters](0.1, 0.2, 0.3)
	back := v.Normalize().Scale(v.Length())
	require.True(t, back.ApproxEqual(v, scalar.Epsilon[meters]()), "%v vs %v", back, v)
}

func TestMinMaxClamp(t *testing.T) {
	a := vector.New4[int32](1, 5, -3, 7)
	b := vector.New4[int32](2, 4, -3, 9)
	require.Equal(t, vector.New4[int32](1, 4, -3, 7), a.Min(b))
	require.Equal(t, vector.New4[int32](2, 5, -3, 9), a.Max(b))

	lo, hi := vector.Splat3(0.0), vector.Splat3(1.0)
	require.Equal(t, vector.New3(0.0, 0.5, 1.0), vector.New3(-2.0, 0.5, 3.0).Clamp(lo, hi))

	c := vector.New2[uint32](3, 12).Clamp(vector.New2[uint32](5, 5), vector.New2[uint32](10, 10))
	require.Equal(t, vector.New2[uint32](5, 10), c)

	// operands are values
	require.Equal(t, vector.New4[int32](1, 5, -3, 7), a)
}
