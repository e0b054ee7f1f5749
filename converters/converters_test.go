package converters_test

import (
	"math"
	"testing"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/katalvlaran/lvgeom/angle"
	"github.com/katalvlaran/lvgeom/converters"
	"github.com/katalvlaran/lvgeom/mat"
	"github.com/katalvlaran/lvgeom/quat"
	"github.com/katalvlaran/lvgeom/rotation"
	"github.com/katalvlaran/lvgeom/transform"
	"github.com/katalvlaran/lvgeom/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gonumquat "gonum.org/v1/gonum/num/quat"
	"golang.org/x/image/math/f32"
)

func deg(d float64) angle.Rad[float64] { return angle.Degrees(d).Rad() }

var probes = []vec.Point3[float64]{
	vec.P3(0.0, 0.0, 0.0),
	vec.P3(1.0, 0.0, 0.0),
	vec.P3(-0.5, 2.0, 3.0),
}

func TestGonum_RoundTripAndProduct(t *testing.T) {
	q := quat.New(0.5, -1.0, 2.0, 0.25)
	n := converters.ToGonum(q)
	assert.Equal(t, gonumquat.Number{Real: 0.5, Imag: -1, Jmag: 2, Kmag: 0.25}, n)
	assert.Equal(t, q, converters.FromGonum[float64](n))

	a := quat.FromAxisAngle(vec.V3(0.0, 0.6, 0.8), deg(40))
	b := quat.FromAngleX(deg(-75))
	got := converters.FromGonum[float64](gonumquat.Mul(converters.ToGonum(a), converters.ToGonum(b)))
	assert.True(t, got.ApproxEqual(a.Compose(b)))

	// Rotation by conjugation in gonum matches RotateVec.
	v := vec.V3(1.0, -2.0, 0.5)
	pure := gonumquat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
	r := gonumquat.Mul(gonumquat.Mul(converters.ToGonum(a), pure), gonumquat.Conj(converters.ToGonum(a)))
	assert.True(t, vec.V3(r.Imag, r.Jmag, r.Kmag).ApproxEqual(a.RotateVec(v)))

	q32 := converters.FromGonum[float32](n)
	assert.Equal(t, float32(0.25), q32.V.Z)
}

func TestF32_Layout(t *testing.T) {
	m := mat.Mat3[float64]{1, 2, 3, 4, 5, 6, 7, 8, 9}
	fm := converters.Mat3ToF32(m)
	// f32.Mat3 is row-major: m[3*r + c].
	assert.Equal(t, float32(6), fm[3*1+2])
	assert.Equal(t, m, converters.Mat3FromF32[float64](fm))

	r := quat.FromAngleZ(deg(30)).ToMat4()
	assert.True(t, converters.Mat4FromF32[float64](converters.Mat4ToF32(r)).ApproxEqual(r, scalarEps(1e-6)))

	assert.Equal(t, f32.Vec2{1, 2}, converters.Vec2ToF32(vec.V2(1.0, 2.0)))
	assert.Equal(t, f32.Vec3{1, 2, 3}, converters.Vec3ToF32(vec.V3(1.0, 2.0, 3.0)))
	assert.Equal(t, f32.Vec4{1, 2, 3, 4}, converters.Vec4ToF32(vec.V4(1.0, 2.0, 3.0, 4.0)))
	assert.Equal(t, vec.V2(1.0, 2.0), converters.Vec2FromF32[float64](f32.Vec2{1, 2}))
	assert.Equal(t, vec.V3(1.0, 2.0, 3.0), converters.Vec3FromF32[float64](f32.Vec3{1, 2, 3}))
	assert.Equal(t, vec.V4(1.0, 2.0, 3.0, 4.0), converters.Vec4FromF32[float64](f32.Vec4{1, 2, 3, 4}))
}

func TestF32_Transforms(t *testing.T) {
	t2 := transform.New2(2.0, rotation.FromAngle(deg(90)), vec.V2(3.0, 4.0))
	m := converters.Decomposed2ToF32(t2)
	assert.Equal(t, float32(3), m[2])
	assert.Equal(t, float32(4), m[5])
	assert.Equal(t, float32(1), m[8])

	a := transform.FromTRS(vec.V3(1.0, 2.0, 3.0), quat.FromAngleY(deg(20)), vec.V3(1.0, 2.0, 0.5))
	back, err := converters.Affine3FromF32[float64](converters.Affine3ToF32(a))
	require.NoError(t, err)
	assert.True(t, back.ApproxEqual(a, scalarEps(1e-6)))

	var proj f32.Mat4
	_, err = converters.Affine3FromF32[float64](proj)
	assert.ErrorIs(t, err, transform.ErrNotAffine)
}

func TestSDFX_Vectors(t *testing.T) {
	v := vec.V3(1.5, -2.0, 0.25)
	assert.Equal(t, v3.Vec{X: 1.5, Y: -2, Z: 0.25}, converters.Vec3ToSDFX(v))
	assert.Equal(t, v, converters.Vec3FromSDFX[float64](converters.Vec3ToSDFX(v)))
}

func TestSDFX_M44MatchesTransformPoint(t *testing.T) {
	q := quat.FromAxisAngle(vec.V3(1.0, 2.0, 2.0).Normalize(), deg(110))
	tr := transform.New3(1.5, q, vec.V3(4.0, -1.0, 2.0))
	m := converters.M44FromDecomposed3(tr)
	for _, p := range probes {
		got := converters.Vec3FromSDFX[float64](m.MulPosition(converters.Vec3ToSDFX(p.ToVec())))
		assert.True(t, got.ApproxEqual(tr.TransformPoint(p).ToVec()), "p=%v got %v", p, got)
	}

	// The identity rotation has axis +X and angle 0.
	id := converters.M44FromDecomposed3(transform.Identity3[float64]())
	assert.True(t, id.Equals(sdf.Identity3d(), 1e-12))

	a := transform.FromTRS(vec.V3(0.0, 1.0, 0.0), q, vec.V3(2.0, 1.0, 0.5))
	ma := converters.M44FromAffine3(a)
	for _, p := range probes {
		got := converters.Vec3FromSDFX[float64](ma.MulPosition(converters.Vec3ToSDFX(p.ToVec())))
		assert.True(t, got.ApproxEqual(a.TransformPoint(p).ToVec(), scalarEps(1e-7)), "p=%v", p)
	}
}

func TestSDFX_EulerMatchesPrincipalProduct(t *testing.T) {
	for _, o := range rotation.Orders() {
		e := rotation.NewEuler(deg(15), deg(-35), deg(80), o)
		m := converters.M44FromEuler(e)
		for _, p := range probes {
			got := converters.Vec3FromSDFX[float64](m.MulPosition(converters.Vec3ToSDFX(p.ToVec())))
			assert.True(t, got.ApproxEqual(e.ToMat3().MulVec(p.ToVec())), "%v p=%v", o, p)
		}
	}
}

func TestSDFX_PlaceSDF3(t *testing.T) {
	box, err := sdf.Box3D(v3.Vec{X: 2, Y: 2, Z: 2}, 0)
	require.NoError(t, err)

	tr := transform.New3(1.0, rotation.FromAngleZ(deg(30)), vec.V3(5.0, 0.0, 0.0))
	placed := converters.PlaceSDF3(box, tr)

	center := tr.TransformPoint(vec.P3(0.0, 0.0, 0.0))
	assert.InDelta(t, -1.0, placed.Evaluate(converters.Vec3ToSDFX(center.ToVec())), 1e-9)

	outside := tr.TransformPoint(vec.P3(2.0, 0.0, 0.0))
	assert.InDelta(t, 1.0, placed.Evaluate(converters.Vec3ToSDFX(outside.ToVec())), 1e-9)
	assert.False(t, math.IsNaN(placed.Evaluate(v3.Vec{})))
}
