package doubling

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lqdouble/lqmat"
)

// Sum computes V = Σ_{j=0..∞} a1ʲ·b1·(a1ʲ)ᵀ by the doubling algorithm.
// Both inputs must be square matrices of the same dimension; neither is
// mutated, and the returned matrix aliases neither.
//
// Contracts:
//   - Convergence requires spectral radius(a1) < 1. This is NOT validated:
//     an unstable a1 surfaces as ErrMaxIterations, never as a bogus value.
//   - The acceptance tolerance is fixed at 1e-15 on the maximum absolute
//     entrywise change of the running sum. The change is measured against
//     the previous estimate, and the FRESH estimate is returned, so the
//     result is one doubling step beyond the estimate that satisfied the
//     test.
//   - A sum that first passes the tolerance test exactly on the cap-th
//     step returns success. The historical recursion checked the cap
//     before re-testing convergence and raised in that case; Sum resolves
//     the tie in favor of the converged value.
//
// Errors: lqmat shape sentinels; ErrMaxIterations (wrapped with the cap)
// on non-convergence.
//
// Complexity: O(n³) per step, ≤ MaxIterations steps.
func Sum(a1, b1 *mat.Dense, opts ...Option) (*mat.Dense, error) {
	n, err := lqmat.CheckSquare(a1)
	if err != nil {
		return nil, err
	}
	if err = lqmat.CheckDims(b1, n, n); err != nil {
		return nil, err
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Work on copies: callers keep their matrices untouched.
	alpha := lqmat.Clone(a1)
	gamma := lqmat.Clone(b1)

	// Scratch buffers reused across steps.
	var (
		alphaNext mat.Dense // α·α
		ag        mat.Dense // α·γ
		aga       mat.Dense // α·γ·αᵀ
		gammaNext mat.Dense // γ + α·γ·αᵀ
	)

	for it := 0; it < o.MaxIterations; it++ {
		alphaNext.Mul(alpha, alpha)
		ag.Mul(alpha, gamma)
		aga.Mul(&ag, alpha.T())
		gammaNext.Add(gamma, &aga)

		// Delta against the outgoing estimate, before it is overwritten.
		diff := lqmat.MaxAbsDelta(&gammaNext, gamma)

		alpha.Copy(&alphaNext)
		gamma.Copy(&gammaNext)

		// diff <= tol (not !(diff > tol)): a NaN delta from a diverging sum
		// must keep iterating until the cap trips.
		if diff <= convergenceTol {
			return gamma, nil
		}
	}

	return nil, fmt.Errorf("%w (cap %d)", ErrMaxIterations, o.MaxIterations)
}
