// Package doubling defines options and sentinel errors for the
// doubling-algorithm series summation.
package doubling

import "errors"

// DefaultMaxIterations caps the number of doubling steps. Each step squares
// the transition operator, so 50 steps already cover 2⁵⁰ series terms; a sum
// that has not settled by then is diverging, not slow.
const DefaultMaxIterations = 50

// convergenceTol is the fixed acceptance threshold on the largest absolute
// entrywise change of the running sum. It is intentionally not configurable:
// the doubling recursion reaches machine precision or it does not converge.
const convergenceTol = 1e-15

// ErrMaxIterations indicates the series did not settle within the iteration
// cap — in practice, that spectral radius(a₁) ≥ 1. Returned wrapped with the
// cap that was exceeded; match with errors.Is.
var ErrMaxIterations = errors.New("doubling: exceeded maximum iterations; check that a1 is stable")

// Options configures the behavior of Sum.
//
// MaxIterations – cap on doubling steps before giving up with
// ErrMaxIterations. Must be ≥ 1 to allow any progress; DefaultOptions sets
// DefaultMaxIterations.
type Options struct {
	MaxIterations int // Cap on doubling steps
}

// Option represents a functional option for configuring Sum.
type Option func(*Options)

// WithMaxIterations overrides the doubling-step cap.
// Values below 1 are kept as passed and fail on the first pass, which is
// occasionally useful in tests; they are not rejected here.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		o.MaxIterations = n
	}
}

// DefaultOptions returns an Options struct initialized with the package
// defaults. Use as the starting point for functional-option overrides.
//
// Defaults:
//   - MaxIterations: DefaultMaxIterations (50).
func DefaultOptions() Options {
	return Options{
		MaxIterations: DefaultMaxIterations,
	}
}
