package rotation_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvgeom/angle"
	"github.com/katalvlaran/lvgeom/mat"
	"github.com/katalvlaran/lvgeom/quat"
	"github.com/katalvlaran/lvgeom/rotation"
	"github.com/katalvlaran/lvgeom/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasis2_InvertIsNegativeAngle(t *testing.T) {
	for _, d := range []float64{0, 15, 90, -135, 179, 360} {
		b := rotation.FromAngle(deg(d))
		assert.True(t, b.Invert().ApproxEqual(rotation.FromAngle(deg(-d))), "θ=%v", d)
		assert.True(t, b.Compose(b.Invert()).ApproxEqual(rotation.Identity2[float64]()))
	}
}

func TestBasis2_RotateAndCompose(t *testing.T) {
	b := rotation.FromAngle(deg(90))
	got := b.RotateVec(vec.UnitX2[float64]())
	assert.True(t, got.ApproxEqual(vec.UnitY2[float64]()), "got %v", got)
	assert.True(t, b.RotatePoint(vec.P2(2.0, 1.0)).ApproxEqual(vec.P2(-1.0, 2.0)))

	sum := rotation.FromAngle(deg(30)).Compose(rotation.FromAngle(deg(50)))
	assert.InDelta(t, deg(80).Value(), sum.Angle().Value(), 1e-12)
	assert.InDelta(t, deg(-170).Value(), rotation.FromAngle(deg(190)).Angle().Value(), 1e-12)
}

func TestBasis2_BetweenVectors(t *testing.T) {
	a, b := vec.V2(2.0, 0.0), vec.V2(-1.0, -1.0)
	r := rotation.BetweenVectors2(a, b)
	assert.True(t, r.RotateVec(a.Normalize()).ApproxEqual(b.Normalize()))
	assert.InDelta(t, deg(-135).Value(), r.Angle().Value(), 1e-12)
}

func TestBasis2_Orthonormalize(t *testing.T) {
	drifted := rotation.Unchecked2(mat.Mat2[float64]{1.02, -0.01, 0.03, 0.97})
	require.Greater(t, drifted.OrthonormalityError(), 1e-3)
	fixed := drifted.Orthonormalize()
	assert.Less(t, fixed.OrthonormalityError(), 1e-12)
	assert.InDelta(t, 1.0, fixed.Mat2().Determinant(), 1e-12)
}

func TestBasis3_AgreesWithQuat(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	for n := 0; n < 40; n++ {
		axis := vec.V3(rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()).Normalize()
		theta := angle.Radians(rng.Float64()*4*math.Pi - 2*math.Pi)

		q := quat.FromAxisAngle(axis, theta)
		b := rotation.FromAxisAngle(axis, theta)
		require.True(t, b.IsValid())
		assert.True(t, rotation.FromQuat(q).ApproxEqual(b))
		assert.True(t, b.ToQuat().SameRotation(q))
		for _, p := range probes {
			assert.True(t, b.RotateVec(p).ApproxEqual(q.RotateVec(p)))
		}
	}
}

func TestBasis3_CompositionMatchesQuat(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for n := 0; n < 40; n++ {
		q1 := quat.New(rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()).Normalize()
		q2 := quat.New(rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()).Normalize()
		bm := rotation.FromQuat(q1).Compose(rotation.FromQuat(q2))
		qm := q1.Compose(q2)
		for _, p := range probes {
			assert.True(t, bm.RotateVec(p).ApproxEqual(qm.RotateVec(p)), "case %d", n)
		}
	}
}

func TestBasis3_QuarterTurnsAboutZ(t *testing.T) {
	z90 := rotation.FromAngleZ(deg(90))
	assert.True(t, z90.RotateVec(vec.UnitX[float64]()).ApproxEqual(vec.UnitY[float64]()))
	assert.True(t, z90.Compose(z90).ApproxEqual(rotation.FromAngleZ(deg(180))))
	assert.True(t, rotation.FromAngleX(deg(37)).ApproxEqual(rotation.FromQuat(quat.FromAngleX(deg(37)))))
	assert.True(t, rotation.FromAngleY(deg(-64)).ApproxEqual(rotation.FromQuat(quat.FromAngleY(deg(-64)))))
}

func TestBasis3_Invert(t *testing.T) {
	b := rotation.FromEuler(rotation.NewEuler(deg(10), deg(-50), deg(20), rotation.YZX))
	assert.True(t, b.Compose(b.Invert()).ApproxEqual(rotation.Identity3[float64]()))
	inv, err := b.Mat3().Invert()
	require.NoError(t, err)
	assert.True(t, b.Invert().Mat3().ApproxEqual(inv))
	assert.True(t, b.ToEuler(rotation.YZX).ApproxEqual(rotation.NewEuler(deg(10), deg(-50), deg(20), rotation.YZX), scalarEps(1e-7)))
}

func TestBasis3_DriftAndOrthonormalize(t *testing.T) {
	step := rotation.FromAxisAngle(vec.V3[float32](0.267, 0.535, 0.802).Normalize(), angle.Degrees[float32](0.7).Rad())
	b := rotation.Identity3[float32]()
	for i := 0; i < 5000; i++ {
		b = b.Compose(step)
	}
	fixed := b.Orthonormalize()
	assert.LessOrEqual(t, fixed.OrthonormalityError(), float32(1e-5))
	assert.True(t, fixed.IsValid())
	assert.True(t, fixed.ApproxEqual(b, scalarEps(1e-2)))

	skewed := rotation.Unchecked3(mat.Mat3[float64]{
		1.05, 0.02, 0,
		0.01, 0.98, 0.03,
		0, -0.04, 1.01,
	})
	require.False(t, skewed.IsValid())
	assert.True(t, skewed.Orthonormalize().IsValid())
}

func TestBasis3_OrthonormalizeFixesHandedness(t *testing.T) {
	flipped := rotation.Unchecked3(mat.Diagonal3(vec.V3(1.0, 1.0, -1.0)))
	assert.True(t, flipped.Orthonormalize().ApproxEqual(rotation.Identity3[float64]()))
}

func TestBasis3_LookAtAndBetween(t *testing.T) {
	dir := vec.V3(0.0, -3.0, 4.0)
	b := rotation.LookAt(dir, vec.UnitY[float64]())
	require.True(t, b.IsValid())
	assert.True(t, b.RotateVec(dir.Normalize()).ApproxEqual(vec.UnitZ[float64]()))
	assert.True(t, b.ToQuat().SameRotation(quat.LookAt(dir, vec.UnitY[float64]())))

	a, c := vec.V3(0.0, 0.6, 0.8), vec.V3(1.0, 0.0, 0.0)
	assert.True(t, rotation.BetweenVectors(a, c).RotateVec(a).ApproxEqual(c))

	phi := 2e-4
	near := vec.V3(-math.Cos(phi), 0, math.Sin(phi))
	r := rotation.BetweenVectors(vec.UnitX[float64](), near)
	require.True(t, r.IsValid())
	assert.True(t, r.RotateVec(vec.UnitX[float64]()).ApproxEqual(near))
}

func TestAxisAngle(t *testing.T) {
	aa := rotation.NewAxisAngle(vec.V3(0.0, 0.0, 5.0), deg(90))
	assert.Equal(t, vec.UnitZ[float64](), aa.Axis)
	assert.True(t, aa.RotateVec(vec.UnitX[float64]()).ApproxEqual(vec.UnitY[float64]()))
	assert.True(t, aa.ToMat3().ApproxEqual(aa.ToQuat().ToMat3()))

	rng := rand.New(rand.NewSource(17))
	for n := 0; n < 40; n++ {
		axis := vec.V3(rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()).Normalize()
		in := rotation.AxisAngle[float64]{Axis: axis, Angle: angle.Radians(rng.Float64() * math.Pi)}
		out := rotation.AxisAngleFromQuat(in.ToQuat())
		assert.True(t, out.Axis.ApproxEqual(in.Axis, scalarEps(1e-7)), "axis %v want %v", out.Axis, in.Axis)
		assert.InDelta(t, in.Angle.Value(), out.Angle.Value(), 1e-9)
		assert.True(t, in.ToMat3().ApproxEqual(out.ToMat3()))

		// The negated quaternion canonicalizes to the same axis-angle.
		neg := rotation.AxisAngleFromQuat(in.ToQuat().Neg())
		assert.True(t, neg.Axis.ApproxEqual(out.Axis))
	}

	id := rotation.AxisAngleFromQuat(quat.Identity[float64]())
	assert.Equal(t, vec.UnitX[float64](), id.Axis)
	assert.Zero(t, id.Angle.Value())
}

// spin applies r n times to v using only the Rotation3 contract.
func spin[R rotation.Rotation3[float64, R]](r R, n int, v vec.Vec3[float64]) vec.Vec3[float64] {
	acc := r
	for i := 1; i < n; i++ {
		acc = acc.Compose(r)
	}
	return acc.Invert().RotateVec(acc.RotateVec(v)).Add(acc.RotateVec(v))
}

func TestRotation3_GenericOverRepresentations(t *testing.T) {
	q := quat.FromAxisAngle(vec.V3(0.0, 0.6, 0.8), deg(30))
	b := rotation.FromQuat(q)
	v := vec.V3(1.0, -1.0, 2.0)
	assert.True(t, spin(q, 7, v).ApproxEqual(spin(b, 7, v)))
	assert.True(t, b.ToMat3().ApproxEqual(q.ToMat3()))
	assert.True(t, b.ToQuat().SameRotation(q.ToQuat()))
}
