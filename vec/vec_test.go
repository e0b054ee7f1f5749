package vec_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVec3_Algebra(t *testing.T) {
	a := vec.V3(1.0, 2.0, 3.0)
	b := vec.V3(4.0, -5.0, 6.0)

	assert.Equal(t, vec.V3(5.0, -3.0, 9.0), a.Add(b))
	assert.Equal(t, vec.V3(-3.0, 7.0, -3.0), a.Sub(b))
	assert.Equal(t, vec.V3(2.0, 4.0, 6.0), a.Scale(2))
	assert.Equal(t, vec.V3(0.5, 1.0, 1.5), a.Div(2))
	assert.Equal(t, vec.V3(-1.0, -2.0, -3.0), a.Neg())
	assert.Equal(t, vec.V3(4.0, -10.0, 18.0), a.MulElem(b))
	assert.Equal(t, 12.0, a.Dot(b))
	assert.Equal(t, 14.0, a.Len2())
	assert.InDelta(t, math.Sqrt(14), a.Len(), 1e-15)
}

func TestVec3_Cross_RightHanded(t *testing.T) {
	x, y, z := vec.UnitX[float64](), vec.UnitY[float64](), vec.UnitZ[float64]()
	assert.Equal(t, z, x.Cross(y))
	assert.Equal(t, x, y.Cross(z))
	assert.Equal(t, y, z.Cross(x))
	assert.Equal(t, z.Neg(), y.Cross(x))

	a := vec.V3(1.5, -2.0, 0.25)
	b := vec.V3(0.3, 4.0, -1.0)
	c := a.Cross(b)
	assert.InDelta(t, 0, c.Dot(a), 1e-12)
	assert.InDelta(t, 0, c.Dot(b), 1e-12)
}

func TestVec3_NormalizeAndLerp(t *testing.T) {
	n := vec.V3(3.0, 0.0, 4.0).Normalize()
	assert.True(t, n.ApproxEqual(vec.V3(0.6, 0.0, 0.8)))
	assert.InDelta(t, 1, n.Len(), 1e-15)

	l := vec.V3(0.0, 0.0, 0.0).Lerp(vec.V3(2.0, 4.0, -6.0), 0.25)
	assert.Equal(t, vec.V3(0.5, 1.0, -1.5), l)
}

func TestVec3_IndexAccess(t *testing.T) {
	v := vec.V3(7.0, 8.0, 9.0)
	assert.Equal(t, 7.0, v.At(0))
	assert.Equal(t, 8.0, v.At(1))
	assert.Equal(t, 9.0, v.At(2))
	assert.Equal(t, vec.V3(7.0, -1.0, 9.0), v.With(1, -1))
	assert.Equal(t, vec.V3(0.0, 0.0, 1.0), vec.Axis[float64](2))
	require.Panics(t, func() { v.At(3) })
	require.Panics(t, func() { vec.Axis[float64](-1) })
}

func TestVec2(t *testing.T) {
	a := vec.V2(1.0, 2.0)
	b := vec.V2(3.0, -1.0)
	assert.Equal(t, vec.V2(4.0, 1.0), a.Add(b))
	assert.Equal(t, vec.V2(-2.0, 3.0), a.Sub(b))
	assert.Equal(t, 1.0, a.Dot(b))
	assert.Equal(t, -7.0, a.Cross(b))
	assert.Equal(t, vec.V2(-2.0, 1.0), a.Perp())
	assert.Equal(t, 0.0, a.Perp().Dot(a))
	assert.Equal(t, vec.UnitY2[float64](), vec.UnitX2[float64]().Perp())
	assert.InDelta(t, 1, b.Normalize().Len(), 1e-15)
	assert.Equal(t, vec.V3(1.0, 2.0, 5.0), a.Extend(5))
	assert.Equal(t, vec.V2(2.0, 0.5), a.Lerp(b, 0.5))
	assert.Equal(t, vec.V2(3.0, -2.0), a.MulElem(b))
	assert.Equal(t, vec.V2(0.5, 1.0), a.Div(2))
	assert.Equal(t, vec.V2(-1.0, -2.0), a.Neg())
	assert.Equal(t, vec.V2(2.0, 4.0), a.Scale(2))
	assert.Equal(t, "(1, 2)", a.String())
}

func TestVec4(t *testing.T) {
	v := vec.V4(1.0, 2.0, 2.0, 4.0)
	assert.Equal(t, 25.0, v.Len2())
	assert.Equal(t, 5.0, v.Len())
	assert.True(t, v.Normalize().ApproxEqual(vec.V4(0.2, 0.4, 0.4, 0.8)))
	assert.Equal(t, vec.V3(1.0, 2.0, 2.0), v.Truncate())
	assert.Equal(t, vec.V4(2.0, 4.0, 4.0, 8.0), v.Add(v))
	assert.Equal(t, vec.V4(0.0, 0.0, 0.0, 0.0), v.Sub(v))
	assert.Equal(t, vec.V4(-1.0, -2.0, -2.0, -4.0), v.Neg())
	assert.Equal(t, vec.V4(1.0, 2.0, 3.0, 1.0), vec.V3(1.0, 2.0, 3.0).Extend(1))
}

func TestPoints_AffineSemantics(t *testing.T) {
	p := vec.P3(1.0, 1.0, 1.0)
	q := vec.P3(4.0, 5.0, 1.0)
	d := q.Sub(p)
	assert.Equal(t, vec.V3(3.0, 4.0, 0.0), d)
	assert.Equal(t, q, p.AddVec(d))
	assert.Equal(t, p, q.SubVec(d))
	assert.Equal(t, vec.V4(1.0, 1.0, 1.0, 1.0), p.Homogeneous())
	assert.Equal(t, vec.P3(2.0, 2.0, 2.0), p.Scale(2))
	assert.Equal(t, q, vec.Point3FromVec(q.ToVec()))
	assert.Equal(t, vec.Point3[float64]{}, vec.Origin3[float64]())

	p2 := vec.P2(1.0, 2.0)
	assert.Equal(t, vec.V2(1.0, 2.0), p2.Sub(vec.P2(0.0, 0.0)))
	assert.Equal(t, vec.P2(2.0, 4.0), p2.AddVec(vec.V2(1.0, 2.0)))
	assert.Equal(t, vec.P2(0.0, 0.0), p2.SubVec(vec.V2(1.0, 2.0)))
	assert.Equal(t, vec.P2(3.0, 6.0), p2.Scale(3))
	assert.Equal(t, p2, vec.Point2FromVec(p2.ToVec()))
	assert.True(t, p2.ApproxEqual(vec.P2(1.0+1e-12, 2.0)))
	assert.Equal(t, "[1, 2, 3]", vec.P3(1.0, 2.0, 3.0).String())
}

func TestApproxEqual_Float32(t *testing.T) {
	a := vec.V3[float32](0.1, 0.2, 0.3)
	b := vec.V3[float32](0.1+1e-7, 0.2, 0.3-1e-7)
	assert.True(t, a.ApproxEqual(b))
	assert.False(t, a.ApproxEqual(vec.V3[float32](0.1, 0.21, 0.3)))
	assert.True(t, a.ApproxEqual(vec.V3[float32](0.1, 0.21, 0.3), scalar.WithEpsilon(0.02)))
}
