package riccati

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lqdouble/lqmat"
)

// Solve computes the stabilizing Kalman gain K (n×k) and the steady-state
// one-step-ahead forecast error covariance S (n×n) for the system
//
//	x_{t+1} = a·x_t + e_{t+1},  y_t = c·x_t + v_t,
//
// with E[e·eᵀ] = q and E[v·vᵀ] = r, using the doubling algorithm.
//
// Shapes: a, q are n×n; c is k×n; r is k×k. r must be invertible — a
// singular r surfaces as lqmat.ErrSingular from the derivation solve and
// is not caught here.
//
// The default loop is unbounded (historical behavior); pass
// WithMaxIterations to trade a potential infinite spin for
// ErrMaxIterations. The acceptance metric max(k₁ − k₀) is signed; see the
// package doc.
//
// Inputs are never mutated; the returned matrices alias nothing.
func Solve(a, c, q, r *mat.Dense, opts ...Option) (k, s *mat.Dense, err error) {
	n, err := lqmat.CheckSquare(a)
	if err != nil {
		return nil, nil, err
	}
	if c == nil {
		return nil, nil, lqmat.ErrNilMatrix
	}
	kDim, cn := c.Dims()
	if cn != n {
		return nil, nil, fmt.Errorf("c is %dx%d, want kx%d: %w", kDim, cn, n, lqmat.ErrDimensionMismatch)
	}
	if err = lqmat.CheckDims(q, n, n); err != nil {
		return nil, nil, err
	}
	if err = lqmat.CheckDims(r, kDim, kDim); err != nil {
		return nil, nil, err
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Derivation: a0 = aᵀ; b0 = cᵀ·r⁻¹·c via a solve; g0 = q; v = I.
	var a0 mat.Dense
	a0.CloneFrom(a.T())

	rc, err := lqmat.Solve(r, c) // r·X = c
	if err != nil {
		return nil, nil, fmt.Errorf("riccati: observation-noise solve: %w", err)
	}
	var b0 mat.Dense
	b0.Mul(c.T(), rc)

	g0 := lqmat.Clone(q)
	v := lqmat.Eye(n)

	var (
		a1, b1, g1 mat.Dense
		vbg        mat.Dense // v + b0·g0, rebuilt fresh for every solve
		tmp        mat.Dense
	)

	for it := 0; o.MaxIterations <= Unbounded || it < o.MaxIterations; it++ {
		// a1 = a0·(v + b0·g0)⁻¹·a0
		refreshIntermediate(&vbg, v, &b0, g0)
		x, solveErr := lqmat.Solve(&vbg, &a0)
		if solveErr != nil {
			return nil, nil, fmt.Errorf("riccati: state update solve: %w", solveErr)
		}
		a1.Mul(&a0, x)

		// b1 = b0 + a0·(v + b0·g0)⁻¹·(b0·a0ᵀ)
		refreshIntermediate(&vbg, v, &b0, g0)
		tmp.Mul(&b0, a0.T())
		x, solveErr = lqmat.Solve(&vbg, &tmp)
		if solveErr != nil {
			return nil, nil, fmt.Errorf("riccati: gain-pair update solve: %w", solveErr)
		}
		tmp.Mul(&a0, x)
		b1.Add(&b0, &tmp)

		// g1 = g0 + a0ᵀ·g0·(v + b0·g0)⁻¹·a0
		refreshIntermediate(&vbg, v, &b0, g0)
		x, solveErr = lqmat.Solve(&vbg, &a0)
		if solveErr != nil {
			return nil, nil, fmt.Errorf("riccati: covariance update solve: %w", solveErr)
		}
		var atg mat.Dense
		atg.Mul(a0.T(), g0)
		tmp.Mul(&atg, x)
		g1.Add(g0, &tmp)

		// Candidate gains from the fresh and the outgoing covariance.
		k1, gainErr := candidateGain(a, c, r, &g1)
		if gainErr != nil {
			return nil, nil, gainErr
		}
		k0, gainErr := candidateGain(a, c, r, g0)
		if gainErr != nil {
			return nil, nil, gainErr
		}

		a0.Copy(&a1)
		b0.Copy(&b1)
		g0.Copy(&g1)

		// Signed acceptance rule, preserved for compatibility.
		if lqmat.MaxDelta(k1, k0) <= o.Tol {
			return k1, lqmat.Clone(&g1), nil
		}
	}

	return nil, nil, fmt.Errorf("%w (cap %d)", ErrMaxIterations, o.MaxIterations)
}

// refreshIntermediate rebuilds dst = v + b0·g0. The intermediate depends
// only on the current (b0, g0), but it is recomputed before each solve to
// mirror the reference recursion exactly.
func refreshIntermediate(dst *mat.Dense, v, b0, g0 *mat.Dense) {
	dst.Mul(b0, g0)
	dst.Add(v, dst)
}

// candidateGain forms k = a·g·solve(c·gᵀ·cᵀ + rᵀ, c)ᵀ, the Kalman gain a
// covariance estimate g implies.
func candidateGain(a, c, r *mat.Dense, g *mat.Dense) (*mat.Dense, error) {
	var cg, cgc, coeff mat.Dense
	cg.Mul(c, g.T())
	cgc.Mul(&cg, c.T())
	coeff.Add(&cgc, r.T())

	x, err := lqmat.Solve(&coeff, c) // (c·gᵀ·cᵀ + rᵀ)·X = c
	if err != nil {
		return nil, fmt.Errorf("riccati: innovation covariance solve: %w", err)
	}

	var ag, gain mat.Dense
	ag.Mul(a, g)
	gain.Mul(&ag, x.T())

	return &gain, nil
}
