// Package riccati defines options and sentinel errors for the
// doubling-algorithm Riccati solver.
package riccati

import "errors"

// DefaultTol is the default acceptance threshold on max(k₁ − k₀) between
// successive candidate Kalman gains.
const DefaultTol = 1e-15

// Unbounded disables the iteration cap: the historical solver runs until
// the gain settles, however long that takes.
const Unbounded = 0

// ErrMaxIterations indicates the opt-in iteration cap was exhausted before
// the candidate gains settled. Never returned under DefaultOptions, which
// keep the historical unbounded loop. Returned wrapped with the cap that
// was exceeded; match with errors.Is.
var ErrMaxIterations = errors.New("riccati: exceeded maximum iterations; doubling did not converge")

// Options configures the behavior of Solve.
//
// Tol           – acceptance threshold on max(k₁ − k₀); must be > 0.
// MaxIterations – opt-in cap on doubling steps; Unbounded (0 or negative)
//
//	preserves the historical run-to-convergence behavior.
type Options struct {
	Tol           float64 // Convergence tolerance on the gain delta
	MaxIterations int     // Opt-in doubling-step cap; Unbounded by default
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithTol overrides the convergence tolerance.
func WithTol(tol float64) Option {
	return func(o *Options) {
		o.Tol = tol
	}
}

// WithMaxIterations bounds the doubling loop, turning a non-convergent
// input into ErrMaxIterations instead of an infinite spin. Pass Unbounded
// to restore the default.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		o.MaxIterations = n
	}
}

// DefaultOptions returns an Options struct initialized with the package
// defaults. Use as the starting point for functional-option overrides.
//
// Defaults:
//   - Tol:           DefaultTol (1e-15).
//   - MaxIterations: Unbounded (run until the gain settles).
func DefaultOptions() Options {
	return Options{
		Tol:           DefaultTol,
		MaxIterations: Unbounded,
	}
}
