// SPDX-License-Identifier: MIT
// Package rotation: sentinel error set.

package rotation

import "errors"

// ErrUnknownOrder is returned by ParseOrder for strings that do not name one
// of the six Tait-Bryan orders.
var ErrUnknownOrder = errors.New("rotation: unknown Euler order")
