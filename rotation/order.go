// SPDX-License-Identifier: MIT

package rotation

import (
	"fmt"
	"strings"
)

// Order names the sequence in which the three extrinsic axis rotations of an
// Euler triple are applied; XYZ applies X first.
type Order uint8

const (
	XYZ Order = iota
	XZY
	YXZ
	YZX
	ZXY
	ZYX
)

// DefaultOrder is used when no order is specified.
const DefaultOrder = XYZ

var orderAxes = [...][3]int{
	XYZ: {0, 1, 2},
	XZY: {0, 2, 1},
	YXZ: {1, 0, 2},
	YZX: {1, 2, 0},
	ZXY: {2, 0, 1},
	ZYX: {2, 1, 0},
}

// Orders lists every supported order.
func Orders() []Order { return []Order{XYZ, XZY, YXZ, YZX, ZXY, ZYX} }

// Valid reports whether o is one of the six supported orders.
func (o Order) Valid() bool { return int(o) < len(orderAxes) }

// Axes returns the axis indices (0=X, 1=Y, 2=Z) in application order.
// Panics on an invalid order.
func (o Order) Axes() (first, second, third int) {
	a := orderAxes[o]
	return a[0], a[1], a[2]
}

// parity is +1 for cyclic orders (XYZ, YZX, ZXY) and -1 otherwise.
func (o Order) parity() float64 {
	i, j, _ := o.Axes()
	if (j-i+3)%3 == 1 {
		return 1
	}
	return -1
}

// String returns the axis letters, e.g. "XYZ".
func (o Order) String() string {
	if !o.Valid() {
		return fmt.Sprintf("Order(%d)", uint8(o))
	}
	const names = "XYZ"
	i, j, k := o.Axes()
	return string([]byte{names[i], names[j], names[k]})
}

// ParseOrder parses "xyz", "ZYX", ... (case-insensitive). An empty string
// yields DefaultOrder.
func ParseOrder(s string) (Order, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return DefaultOrder, nil
	}
	for _, o := range Orders() {
		if o.String() == s {
			return o, nil
		}
	}
	return 0, fmt.Errorf("ParseOrder %q: %w", s, ErrUnknownOrder)
}
