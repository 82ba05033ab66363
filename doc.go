// Package lqdouble is your toolbox for steady-state linear-quadratic
// control and filtering — doubling-algorithm solvers for Lyapunov sums,
// Kalman-filter Riccati equations, and discounted optimal regulators.
//
// 🚀 What is lqdouble?
//
//	A compact, deterministic library that brings together:
//		• Doubling sums: V = Σ a₁ʲ·b₁·(a₁ʲ)ᵀ by repeated operator squaring
//		• Riccati doubling: stabilizing Kalman gain K and forecast covariance S
//		• Optimal regulators: feedback law F and value matrix P for the
//		  discounted LQR problem, solved through control/filtering duality
//		• Numeric facades: one thin seam over gonum for solve & eigenvalues
//
// ✨ Why choose lqdouble?
//
//   - Quadratic convergence – each doubling step squares the transition
//     operator, covering 2^k terms of the series after k steps
//   - Strict sentinels – every failure mode is a package-level error you
//     can match with errors.Is
//   - Pure functions – inputs are never mutated, outputs never alias them,
//     and concurrent callers need no coordination
//   - Proven kernels – dense solves and eigenvalue decompositions are
//     delegated to gonum.org/v1/gonum/mat, never hand-rolled
//
// Everything is organized under four subpackages:
//
//	doubling/ — infinite-series summation by repeated squaring
//	riccati/  — Kalman-filter Riccati solver (gain + covariance)
//	lqr/      — discounted optimal linear regulator (duality + fallback)
//	lqmat/    — shared numeric primitives and the unified sentinel set
//
// Quick dependency chain:
//
//	lqr ──▶ riccati ──▶ lqmat ──▶ gonum/mat
//	doubling ──────────▶ lqmat
//
// Dive into each package's doc.go for contracts, error sets and worked
// examples, and into examples/ for runnable end-to-end scenarios.
//
//	go get github.com/katalvlaran/lqdouble
package lqdouble
