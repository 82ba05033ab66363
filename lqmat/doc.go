// SPDX-License-Identifier: MIT
// Package lqmat provides the shared numeric primitives used by the
// lqdouble solver packages: a dense linear-system solve, eigenvalue
// extraction, small constructors, and the entrywise delta metrics the
// doubling iterations converge on.
//
// Overview:
//
//   - Every facade is a thin, documented wrapper over gonum.org/v1/gonum/mat.
//     No numerical kernel is reimplemented here — the point of this package
//     is a single seam where gonum failures are translated into the unified
//     sentinel set that all lqdouble packages return and all tests match
//     with errors.Is.
//   - Solve(a, b) answers a·X = b without forming an explicit inverse.
//     A singular or near-singular coefficient matrix surfaces as ErrSingular.
//   - Eigenvalues / SpectralRadius expose the spectrum of a square matrix;
//     a failed factorization surfaces as ErrEigenFailed.
//   - MaxAbsDelta and MaxDelta are the two convergence metrics used across
//     the solvers. MaxDelta is deliberately signed: the historical Riccati
//     and regulator iterations accept on max(aᵢⱼ−bᵢⱼ), not on the absolute
//     value, and the solvers preserve that acceptance rule. Callers wanting
//     a true distance must use MaxAbsDelta.
//
// Errors (sentinel):
//
//   - ErrNilMatrix          — a required matrix argument is nil.
//   - ErrNonSquare          — a square matrix was required.
//   - ErrDimensionMismatch  — operand shapes are incompatible.
//   - ErrSingular           — a linear solve met a singular or
//     ill-conditioned coefficient matrix.
//   - ErrEigenFailed        — the eigenvalue factorization did not converge.
//
// Complexity: Solve is O(n³) (dense LU/QR inside gonum); Eigenvalues is
// O(n³); the delta metrics and constructors are O(r·c).
package lqmat
