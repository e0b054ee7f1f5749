// SPDX-License-Identifier: MIT

package angle

import (
	"math"

	"github.com/katalvlaran/lvgeom/scalar"
)

// RadFullTurn returns 2π.
func RadFullTurn[T scalar.Float]() Rad[T] { return Rad[T]{T(2 * math.Pi)} }

// RadHalfTurn returns π.
func RadHalfTurn[T scalar.Float]() Rad[T] { return Rad[T]{T(math.Pi)} }

// RadTurnDiv3 returns 2π/3.
func RadTurnDiv3[T scalar.Float]() Rad[T] { return Rad[T]{T(2 * math.Pi / 3)} }

// RadTurnDiv4 returns π/2.
func RadTurnDiv4[T scalar.Float]() Rad[T] { return Rad[T]{T(math.Pi / 2)} }

// RadTurnDiv6 returns π/3.
func RadTurnDiv6[T scalar.Float]() Rad[T] { return Rad[T]{T(math.Pi / 3)} }

// DegFullTurn returns 360°.
func DegFullTurn[T scalar.Float]() Deg[T] { return Deg[T]{360} }

// DegHalfTurn returns 180°.
func DegHalfTurn[T scalar.Float]() Deg[T] { return Deg[T]{180} }

// DegTurnDiv3 returns 120°.
func DegTurnDiv3[T scalar.Float]() Deg[T] { return Deg[T]{120} }

// DegTurnDiv4 returns 90°.
func DegTurnDiv4[T scalar.Float]() Deg[T] { return Deg[T]{90} }

// DegTurnDiv6 returns 60°.
func DegTurnDiv6[T scalar.Float]() Deg[T] { return Deg[T]{60} }
