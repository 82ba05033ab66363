// Package lqr computes the optimal linear regulator for the discounted
// discrete-time LQR problem: the feedback gain F of the law u = −F·x and
// the steady-state value matrix P that
//
//	maximize  Σ_t βᵗ·(xᵀQx + uᵀRu + 2xᵀWu)
//	subject to x_{t+1} = A·x_t + B·u_t.
//
// Overview:
//
//	Solve picks one of two routes based on the conditioning of the
//	control-cost matrix R (largest eigenvalue modulus vs 1e-5):
//
//	Primary — duality. A well-conditioned R lets the discount and cross
//	term be absorbed into a change of variables,
//
//	  Ã = √β·(A − B·R⁻¹·Wᵀ),  B̃ = √β·B,  Q̃ = Q − W·R⁻¹·Wᵀ,
//
//	after which the regulator is the dual of a Kalman filtering problem:
//	riccati.Solve(Ãᵀ, B̃ᵀ, Q̃, R) yields (K, S) and the regulator reads
//	F = Kᵀ + R⁻¹·Wᵀ, P = S.
//
//	Fallback — value iteration. A (near-)singular R rules out the solves
//	of the dual route; instead P is iterated directly on the discounted
//	Bellman/Riccati recursion from P₀ = −0.1·I, recomputing the implied
//	gain before and after each value update and accepting once
//	max(F₁ − F₀) ≤ tol. The convergence check runs after the value update
//	inside the same pass, and the pass counter runs to MaxIterations−1
//	inclusive, so MaxIterations = 0 fails before attempting any solve.
//
// Known quirk, preserved deliberately: the fallback acceptance metric is
// SIGNED (see lqmat.MaxDelta and the riccati package doc) — a pass whose
// gain moved down in every entry accepts immediately. Pinned by tests.
//
// Errors (sentinel):
//
//   - ErrBadDiscount      — beta outside (0, 1].
//   - ErrMaxIterations    — fallback iteration limit exhausted (wrapped
//     with the limit that was exceeded).
//   - lqmat.ErrSingular   — a derived matrix in the chosen route was not
//     invertible; propagated from the failing solve.
//   - lqmat.ErrEigenFailed and the lqmat shape sentinels.
//
// Complexity: primary route is a handful of O(n³) solves plus the Riccati
// doubling; fallback is O(n³) per value-iteration pass, ≤ MaxIterations.
// Thread safety: pure function over copies; inputs are never mutated, and
// a nil cross term resolves to a fresh zero matrix at every call — there
// is no shared default instance.
package lqr
