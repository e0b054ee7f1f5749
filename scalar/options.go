// SPDX-License-Identifier: MIT

// Package scalar: functional configuration of the approximate-equality
// policy. Public comparison helpers accept ...Option and resolve them with
// Resolve; a zero-length option list means "width default".
package scalar

import "math"

const panicEpsilonInvalid = "scalar: WithEpsilon: eps must be finite, non-negative"

// Option mutates Options. Constructors panic only on nonsensical values
// (programmer error).
type Option func(*Options)

// Options is the resolved comparison policy.
type Options struct {
	eps    float64
	hasEps bool
}

// WithEpsilon overrides the tolerance used by ApproxEqual and friends.
// Panics if eps is negative, NaN or infinite.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}
	return func(o *Options) {
		o.eps = eps
		o.hasEps = true
	}
}

// Resolve applies opts in order and returns the effective tolerance for T.
func Resolve[T Float](opts ...Option) T {
	if len(opts) == 0 {
		return Epsilon[T]()
	}
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if !o.hasEps {
		return Epsilon[T]()
	}
	return T(o.eps)
}
