package quat_test

import (
	"testing"

	"github.com/katalvlaran/lvgeom/mat"
	"github.com/katalvlaran/lvgeom/quat"
	"github.com/katalvlaran/lvgeom/vec"
)

// sinks to defeat dead-code elimination
var (
	sinkQ quat.Quat[float64]
	sinkV vec.Vec3[float64]
	sinkM mat.Mat3[float64]
)

func BenchmarkCompose(b *testing.B) {
	b.ReportAllocs()
	q1 := quat.FromAngleX(deg(30))
	q2 := quat.FromAngleY(deg(45))
	for i := 0; i < b.N; i++ {
		sinkQ = q1.Compose(q2)
	}
}

func BenchmarkRotateVec(b *testing.B) {
	b.ReportAllocs()
	q := quat.FromAxisAngle(vec.V3(0.0, 0.6, 0.8), deg(30))
	v := vec.V3(1.0, 2.0, 3.0)
	for i := 0; i < b.N; i++ {
		sinkV = q.RotateVec(v)
	}
}

func BenchmarkSlerp(b *testing.B) {
	b.ReportAllocs()
	q1 := quat.FromAngleX(deg(10))
	q2 := quat.FromAngleY(deg(120))
	for _, tc := range []struct {
		name string
		to   quat.Quat[float64]
	}{
		{"arc", q2},
		{"nlerp-fallback", quat.FromAngleX(deg(10.01))},
	} {
		b.Run(tc.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				sinkQ = quat.Slerp(q1, tc.to, 0.3)
			}
		})
	}
}

func BenchmarkToMat3(b *testing.B) {
	b.ReportAllocs()
	q := quat.FromAxisAngle(vec.V3(0.0, 0.6, 0.8), deg(30))
	for i := 0; i < b.N; i++ {
		sinkM = q.ToMat3()
	}
}
