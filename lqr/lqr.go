package lqr

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lqdouble/lqmat"
	"github.com/katalvlaran/lqdouble/riccati"
)

// Solve computes the feedback gain F (k×n) of the law u = −F·x and the
// steady-state value matrix P (n×n) for the discounted LQR problem with
// law of motion x_{t+1} = a·x_t + b·u_t and objective weights q, r and
// optional cross term W (via WithCrossTerm).
//
// Shapes: a, q are n×n; b is n×k; r is k×k; W is n×k. beta must lie in
// (0, 1]. A well-conditioned r routes through control/filtering duality
// and the Riccati doubling; a (near-)singular r falls back to discounted
// value iteration capped at MaxIterations.
//
// Inputs are never mutated; the returned matrices alias nothing.
func Solve(beta float64, a, b, q, r *mat.Dense, opts ...Option) (f, p *mat.Dense, err error) {
	if beta <= 0 || beta > 1 || math.IsNaN(beta) {
		return nil, nil, fmt.Errorf("beta=%v: %w", beta, ErrBadDiscount)
	}
	n, err := lqmat.CheckSquare(a)
	if err != nil {
		return nil, nil, err
	}
	if b == nil {
		return nil, nil, lqmat.ErrNilMatrix
	}
	br, kDim := b.Dims()
	if br != n {
		return nil, nil, fmt.Errorf("b is %dx%d, want %dxk: %w", br, kDim, n, lqmat.ErrDimensionMismatch)
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

	// Resolve the cross term to a fresh zero matrix per call; a caller's W
	// stays read-only either way.
	w := o.CrossTerm
	if w == nil {
		w = lqmat.Zeros(n, kDim)
	} else if err = lqmat.CheckDims(w, n, kDim); err != nil {
		return nil, nil, err
	}

	radius, err := lqmat.SpectralRadius(r)
	if err != nil {
		return nil, nil, err
	}
	if radius > singularThreshold {
		return solveByDuality(beta, a, b, q, r, w)
	}

	return solveByValueIteration(beta, a, b, q, r, w, o.Tol, o.MaxIterations)
}

// solveByDuality absorbs the discount and cross term into a change of
// variables and solves the dual Kalman filtering problem.
func solveByDuality(beta float64, a, b, q, r, w *mat.Dense) (*mat.Dense, *mat.Dense, error) {
	rw, err := lqmat.Solve(r, w.T()) // R⁻¹·Wᵀ, k×n
	if err != nil {
		return nil, nil, fmt.Errorf("lqr: control-cost solve: %w", err)
	}

	root := math.Sqrt(beta)

	// Ã = √β·(A − B·R⁻¹·Wᵀ)
	var at mat.Dense
	at.Mul(b, rw)
	at.Sub(a, &at)
	at.Scale(root, &at)

	// B̃ = √β·B
	var bt mat.Dense
	bt.Scale(root, b)

	// Q̃ = Q − W·R⁻¹·Wᵀ
	var qt mat.Dense
	qt.Mul(w, rw)
	qt.Sub(q, &qt)

	// Duality: the regulator is the filter of the transposed system.
	var atT, btT mat.Dense
	atT.CloneFrom(at.T())
	btT.CloneFrom(bt.T())
	k, s, err := riccati.Solve(&atT, &btT, &qt, r)
	if err != nil {
		return nil, nil, err
	}

	// F = Kᵀ + R⁻¹·Wᵀ, P = S.
	var f mat.Dense
	f.Add(k.T(), rw)

	return &f, s, nil
}

// solveByValueIteration iterates the discounted Bellman/Riccati recursion
// directly from P₀ = −0.1·I, for control costs too ill-conditioned to
// invert. Each pass recomputes the implied gain before and after the value
// update; acceptance uses the historical signed metric max(F₁ − F₀).
func solveByValueIteration(beta float64, a, b, q, r, w *mat.Dense, tol float64, maxIter int) (*mat.Dense, *mat.Dense, error) {
	n, _ := a.Dims()

	p0 := lqmat.Eye(n)
	p0.Scale(-0.1, p0)

	for it := 0; it < maxIter; it++ {
		f0, err := impliedGain(beta, a, b, r, w, p0)
		if err != nil {
			return nil, nil, err
		}

		// P₁ = β·Aᵀ·P₀·A + Q − (β·Aᵀ·P₀·B + W)·F₀
		var atp, apa mat.Dense
		atp.Mul(a.T(), p0)
		apa.Mul(&atp, a)
		apa.Scale(beta, &apa)

		var apb mat.Dense
		apb.Mul(&atp, b)
		apb.Scale(beta, &apb)
		apb.Add(&apb, w)

		var corr, p1 mat.Dense
		corr.Mul(&apb, f0)
		p1.Add(&apa, q)
		p1.Sub(&p1, &corr)

		f1, err := impliedGain(beta, a, b, r, w, &p1)
		if err != nil {
			return nil, nil, err
		}

		dd := lqmat.MaxDelta(f1, f0) // signed acceptance, preserved
		p0.Copy(&p1)

		if dd <= tol {
			return f1, p0, nil
		}
	}

	return nil, nil, fmt.Errorf("%w (limit %d)", ErrMaxIterations, maxIter)
}

// impliedGain returns F = (R + β·Bᵀ·P·B)⁻¹·(β·Bᵀ·P·A + Wᵀ), the optimal
// gain a value matrix P implies.
func impliedGain(beta float64, a, b, r, w, p *mat.Dense) (*mat.Dense, error) {
	var btp mat.Dense
	btp.Mul(b.T(), p)

	var coeff mat.Dense
	coeff.Mul(&btp, b)
	coeff.Scale(beta, &coeff)
	coeff.Add(r, &coeff)

	var rhs mat.Dense
	rhs.Mul(&btp, a)
	rhs.Scale(beta, &rhs)
	rhs.Add(&rhs, w.T())

	f, err := lqmat.Solve(&coeff, &rhs)
	if err != nil {
		return nil, fmt.Errorf("lqr: value-iteration gain solve: %w", err)
	}

	return f, nil
}
