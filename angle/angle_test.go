package angle_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvgeom/angle"
	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversion_RoundTrip(t *testing.T) {
	for _, x := range []float64{-720, -181, -90, 0, 1e-7, 45, 90, 180, 359.5, 1080} {
		d := angle.Degrees(x)
		back := d.Rad().Deg()
		assert.True(t, back.ApproxEqual(d), "deg %v -> %v", x, back)

		r := angle.Radians(x / 100)
		assert.True(t, r.Deg().Rad().ApproxEqual(r), "rad %v", x/100)
	}
	assert.InDelta(t, math.Pi/2, angle.Degrees(90.0).Rad().Value(), 1e-15)
	assert.InDelta(t, 180, angle.Radians(math.Pi).Deg().Value(), 1e-12)
	assert.InDelta(t, float32(math.Pi), angle.Degrees[float32](180).Rad().Value(), 1e-6)
}

func TestArithmetic(t *testing.T) {
	a := angle.Degrees(30.0)
	b := angle.Degrees(45.0)
	assert.Equal(t, 75.0, a.Add(b).Value())
	assert.Equal(t, -15.0, a.Sub(b).Value())
	assert.Equal(t, -30.0, a.Neg().Value())
	assert.Equal(t, 60.0, a.Scale(2).Value())
	assert.Equal(t, 15.0, a.Div(2).Value())
	assert.Equal(t, 1.5, b.Ratio(a))
	assert.Equal(t, 15.0, b.Rem(a).Value())

	r := angle.Radians(1.0)
	assert.Equal(t, 3.0, r.Add(angle.Radians(2.0)).Value())
	assert.Equal(t, 0.5, r.Div(2).Value())
	assert.InDelta(t, 1.0, angle.Radians(7.0).Rem(angle.Radians(3.0)).Value(), 1e-15)

	// Mixed units go through ToRad.
	sum := angle.ToRad[float64](a).Add(angle.ToRad[float64](angle.Radians(math.Pi / 4)))
	assert.InDelta(t, math.Pi/6+math.Pi/4, sum.Value(), 1e-15)
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, want, wantSigned float64
	}{
		{0, 0, 0},
		{90, 90, 90},
		{360, 0, 0},
		{-90, 270, -90},
		{540, 180, -180},
		{-720.5, 359.5, -0.5},
		{725, 5, 5},
		{190, 190, -170},
	}
	for _, tc := range cases {
		d := angle.Degrees(tc.in)
		assert.InDelta(t, tc.want, d.Normalize().Value(), 1e-9, "Normalize(%v)", tc.in)
		assert.InDelta(t, tc.wantSigned, d.NormalizeSigned().Value(), 1e-9, "NormalizeSigned(%v)", tc.in)
	}

	for _, x := range []float64{-100, -7, -math.Pi, -1e-17, 0, 3, math.Pi, 2 * math.Pi, 50} {
		n := angle.Radians(x).Normalize().Value()
		require.GreaterOrEqual(t, n, 0.0)
		require.Less(t, n, 2*math.Pi)
		s := angle.Radians(x).NormalizeSigned().Value()
		require.GreaterOrEqual(t, s, -math.Pi)
		require.Less(t, s, math.Pi)
		assert.True(t, angle.Radians(x).Equiv(angle.Radians(n)), "x=%v", x)
	}
}

func TestOppositeBisectEquiv(t *testing.T) {
	assert.InDelta(t, 270, angle.Degrees(90.0).Opposite().Value(), 1e-12)
	assert.InDelta(t, 0, angle.Degrees(180.0).Opposite().Value(), 1e-12)
	assert.InDelta(t, 45, angle.Degrees(0.0).Bisect(angle.Degrees(90.0)).Value(), 1e-12)
	assert.InDelta(t, math.Pi/2, angle.Radians(0.0).Bisect(angle.Radians(math.Pi)).Value(), 1e-12)

	assert.True(t, angle.Degrees(-90.0).Equiv(angle.Degrees(270.0)))
	assert.True(t, angle.Degrees(359.99999999999).Equiv(angle.Degrees(0.0)))
	assert.False(t, angle.Degrees(10.0).Equiv(angle.Degrees(20.0)))
	assert.True(t, angle.Radians(-math.Pi).Equiv(angle.Radians(math.Pi)))
}

func TestTurns(t *testing.T) {
	assert.InDelta(t, 2*math.Pi, angle.RadFullTurn[float64]().Value(), 0)
	assert.InDelta(t, math.Pi, angle.RadHalfTurn[float64]().Value(), 0)
	assert.InDelta(t, math.Pi/2, angle.RadTurnDiv4[float64]().Value(), 0)
	assert.True(t, angle.RadTurnDiv3[float64]().Deg().ApproxEqual(angle.DegTurnDiv3[float64]()))
	assert.True(t, angle.RadTurnDiv6[float64]().Deg().ApproxEqual(angle.DegTurnDiv6[float64]()))
	assert.Equal(t, 360.0, angle.DegFullTurn[float64]().Value())
	assert.Equal(t, 180.0, angle.DegHalfTurn[float64]().Value())
	assert.Equal(t, float32(90), angle.DegTurnDiv4[float32]().Value())
}

func TestTrig(t *testing.T) {
	r := angle.Degrees(30.0).Rad()
	assert.InDelta(t, 0.5, angle.Sin(r), 1e-15)
	assert.InDelta(t, math.Sqrt(3)/2, angle.Cos(r), 1e-15)
	assert.InDelta(t, 1/math.Sqrt(3), angle.Tan(r), 1e-15)
	s, c := angle.SinCos(r)
	assert.InDelta(t, 0.5, s, 1e-15)
	assert.InDelta(t, math.Sqrt(3)/2, c, 1e-15)
	assert.InDelta(t, math.Sqrt(3), angle.Cot(r), 1e-12)
	assert.InDelta(t, 2/math.Sqrt(3), angle.Sec(r), 1e-12)
	assert.InDelta(t, 2, angle.Csc(r), 1e-12)

	assert.InDelta(t, math.Pi/2, angle.Asin(1.0000000001).Value(), 0, "clamped")
	assert.InDelta(t, math.Pi, angle.Acos(-1.0000000001).Value(), 0, "clamped")
	assert.InDelta(t, math.Pi/4, angle.Atan(1.0).Value(), 1e-15)
	assert.InDelta(t, 3*math.Pi/4, angle.Atan2(1.0, -1.0).Value(), 1e-15)
}

func TestString(t *testing.T) {
	assert.Equal(t, "1.5 rad", angle.Radians(1.5).String())
	assert.Equal(t, "90°", angle.Degrees(90.0).String())
}

func TestApproxEqual_Options(t *testing.T) {
	a := angle.Degrees(10.0)
	b := angle.Degrees(10.01)
	assert.False(t, a.ApproxEqual(b))
	assert.True(t, a.ApproxEqual(b, scalar.WithEpsilon(0.01)))
	assert.True(t, a.Equiv(b, scalar.WithEpsilon(0.02)))
}
