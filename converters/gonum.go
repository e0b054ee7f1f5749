// SPDX-License-Identifier: MIT

package converters

import (
	"github.com/katalvlaran/lvgeom/quat"
	"github.com/katalvlaran/lvgeom/scalar"
	gonumquat "gonum.org/v1/gonum/num/quat"
)

// ToGonum converts q to a gonum quaternion number. Real holds the scalar
// part; Imag, Jmag, Kmag hold X, Y, Z.
func ToGonum[T scalar.Float](q quat.Quat[T]) gonumquat.Number {
	return gonumquat.Number{
		Real: float64(q.S),
		Imag: float64(q.V.X),
		Jmag: float64(q.V.Y),
		Kmag: float64(q.V.Z),
	}
}

// FromGonum converts a gonum quaternion number to Quat[T].
func FromGonum[T scalar.Float](n gonumquat.Number) quat.Quat[T] {
	return quat.New(T(n.Real), T(n.Imag), T(n.Jmag), T(n.Kmag))
}
