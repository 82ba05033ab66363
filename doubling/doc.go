// Package doubling computes the infinite matrix series
//
//	V = Σ_{j=0..∞} a₁ʲ · b₁ · (a₁ʲ)ᵀ
//
// by the doubling algorithm: instead of adding one term per pass, each
// step squares the transition operator, so the partial sum covers 2^k
// terms after k steps and convergence is quadratic.
//
// Overview:
//
//   - Sum iterates the pair (α, γ), initialized to (a₁, b₁):
//     α' = α·α
//     γ' = γ + α·γ·αᵀ
//     and accepts once the largest absolute entrywise change of γ drops
//     to 1e-15 (a fixed tolerance, deliberately not configurable).
//   - The returned V is the fixed point of V ↦ b₁ + a₁·V·a₁ᵀ, i.e. the
//     solution of the discrete Lyapunov-type equation, provided every
//     eigenvalue of a₁ lies strictly inside the unit disk.
//   - The change metric is measured before the fresh γ is adopted, so the
//     value returned is always one doubling step fresher than the estimate
//     whose delta satisfied the tolerance. This acceptance rule is part of
//     the contract and is pinned by tests.
//
// When to use:
//
//   - Steady-state covariances of stable vector autoregressions.
//   - Discounted quadratic values of a fixed linear policy.
//   - Any Σ AʲB(Aʲ)ᵀ with spectral radius(A) < 1.
//
// Errors (sentinel):
//
//   - ErrMaxIterations — the change metric never reached tolerance within
//     the iteration cap (default 50 doubling steps ≈ 2⁵⁰ series terms).
//     This is the caller's signal that spectral radius(a₁) ≥ 1; the input
//     is not validated up front, by contract.
//   - lqmat.ErrNilMatrix / ErrNonSquare / ErrDimensionMismatch on shapes.
//
// Complexity: O(n³) per doubling step, at most MaxIterations steps.
// Thread safety: pure function over copies; inputs are never mutated.
package doubling
