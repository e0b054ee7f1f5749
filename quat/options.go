// SPDX-License-Identifier: MIT

package quat

import "math"

// DefaultSlerpThreshold is the dot product above which Slerp switches to
// normalized linear interpolation.
const DefaultSlerpThreshold = 0.9995

const panicSlerpThreshold = "quat: WithSlerpThreshold: threshold must be in [0, 1)"

// Option configures interpolation.
type Option func(*Options)

// Options holds the resolved interpolation policy.
type Options struct {
	SlerpThreshold float64
}

// DefaultOptions returns the policy used when no Option is given.
func DefaultOptions() Options {
	return Options{SlerpThreshold: DefaultSlerpThreshold}
}

// WithSlerpThreshold overrides DefaultSlerpThreshold.
// Panics unless 0 <= threshold < 1: at 1 the exact-parallel case would
// reach the sin(θ) = 0 division.
func WithSlerpThreshold(threshold float64) Option {
	if math.IsNaN(threshold) || threshold < 0 || threshold >= 1 {
		panic(panicSlerpThreshold)
	}
	return func(o *Options) { o.SlerpThreshold = threshold }
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
