// Package riccati solves the discrete algebraic Riccati equation of a
// Kalman filter by the doubling algorithm, returning the stabilizing
// gain K and the steady-state one-step-ahead forecast error covariance S.
//
// Overview:
//
//	The filter is built for the linear system
//
//	  x_{t+1} = A·x_t + e_{t+1}
//	  y_t     = C·x_t + v_t
//
//	with E[e·eᵀ] = Q, E[v·vᵀ] = R and e ⟂ v. Solve returns the observer
//
//	  x̂_{t+1} = A·x̂_t + K·a_t
//	  y_t      = C·x̂_t + a_t
//
//	where a_t is the innovation and S = E[(x_t − x̂_t)(x_t − x̂_t)ᵀ].
//
// Algorithm outline (doubling):
//
//  1. a₀ = Aᵀ; b₀ = Cᵀ·R⁻¹·C (via a linear solve, never an explicit
//     inverse); g₀ = Q; v = Iₙ.
//  2. Each step solves against the fresh intermediate (v + b₀·g₀):
//     a₁ = a₀·(v + b₀·g₀)⁻¹·a₀
//     b₁ = b₀ + a₀·(v + b₀·g₀)⁻¹·(b₀·a₀ᵀ)
//     g₁ = g₀ + a₀ᵀ·g₀·(v + b₀·g₀)⁻¹·a₀
//     The intermediate is recomputed for every solve rather than cached.
//  3. Candidate gains are formed from both the outgoing and the fresh
//     covariance, k = A·g·solve(C·gᵀ·Cᵀ + Rᵀ, C)ᵀ, and the iteration
//     accepts once max(k₁ − k₀) ≤ tol.
//
// Known quirks, preserved deliberately (see lqmat.MaxDelta):
//
//   - The acceptance metric is SIGNED, not an absolute value. An iterate
//     whose gain moved down in every entry satisfies it immediately. This
//     matches the historical solver entry for entry and is pinned by tests.
//   - By default the loop is UNBOUNDED: inputs for which the doubling
//     recursion does not converge spin forever. WithMaxIterations adds an
//     opt-in cap surfaced as ErrMaxIterations without changing the default.
//
// Errors (sentinel):
//
//   - lqmat.ErrSingular       — R (or a derived intermediate) is not
//     invertible; propagated from the failing solve, never caught here.
//   - ErrMaxIterations        — opt-in cap exhausted (off by default).
//   - lqmat.ErrNilMatrix / ErrNonSquare / ErrDimensionMismatch on shapes.
//
// Complexity: O(n³ + k³) per doubling step.
// Thread safety: pure function over copies; inputs are never mutated.
//
// By duality, discounted control problems reduce to this filter form; see
// package lqr.
package riccati
