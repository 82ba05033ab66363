// Package lqr defines options and sentinel errors for the optimal linear
// regulator solver.
package lqr

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// DefaultTol is the default acceptance threshold on max(F₁ − F₀) in the
// fallback value iteration. The primary (duality) route converges at the
// riccati package's own tolerance instead.
const DefaultTol = 1e-6

// DefaultMaxIterations caps the fallback value iteration.
const DefaultMaxIterations = 1000

// singularThreshold separates the two solution routes: R with largest
// eigenvalue modulus at or below it is treated as numerically singular.
const singularThreshold = 1e-5

var (
	// ErrBadDiscount indicates beta was outside the half-open interval (0, 1].
	ErrBadDiscount = errors.New("lqr: discount factor must satisfy 0 < beta <= 1")

	// ErrMaxIterations indicates the fallback value iteration did not
	// converge within the iteration limit. Returned wrapped with the limit
	// that was exceeded; match with errors.Is.
	ErrMaxIterations = errors.New("lqr: exceeded maximum iterations in value-iteration fallback")
)

// Options configures the behavior of Solve.
//
// CrossTerm     – the n×k matrix W of state–control cross products in the
//
//	objective. nil resolves to a fresh zero matrix at call
//	entry; the resolved default is never shared across calls.
//
// Tol           – fallback acceptance threshold on max(F₁ − F₀).
// MaxIterations – fallback pass cap; 0 fails immediately with
//
//	ErrMaxIterations, by contract.
type Options struct {
	CrossTerm     *mat.Dense // W; nil → zero matrix of shape n×k
	Tol           float64    // Fallback convergence tolerance
	MaxIterations int        // Fallback iteration cap
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithCrossTerm supplies the objective's cross-product matrix W (n×k).
// The matrix is read-only to Solve.
func WithCrossTerm(w *mat.Dense) Option {
	return func(o *Options) {
		o.CrossTerm = w
	}
}

// WithTol overrides the fallback convergence tolerance.
func WithTol(tol float64) Option {
	return func(o *Options) {
		o.Tol = tol
	}
}

// WithMaxIterations overrides the fallback iteration cap.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		o.MaxIterations = n
	}
}

// DefaultOptions returns an Options struct initialized with the package
// defaults. Use as the starting point for functional-option overrides.
//
// Defaults:
//   - CrossTerm:     nil (resolved to a fresh zero n×k matrix per call).
//   - Tol:           DefaultTol (1e-6).
//   - MaxIterations: DefaultMaxIterations (1000).
func DefaultOptions() Options {
	return Options{
		CrossTerm:     nil,
		Tol:           DefaultTol,
		MaxIterations: DefaultMaxIterations,
	}
}
