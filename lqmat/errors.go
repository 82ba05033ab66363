// SPDX-License-Identifier: MIT
// Package lqmat: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors shared across the
// lqdouble solver packages. All facades MUST return these sentinels and
// tests MUST check them via errors.Is. No facade panics on user-triggered
// error conditions.

package lqmat

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "lqmat: ..." for consistency and to allow
// easy grepping across logs. Do not %w-wrap these sentinels when returning
// directly; if call-site context is essential (the operation tag, an
// exceeded limit), wrap with fmt.Errorf("ctx: %w", ErrX) at the outer
// boundary — callers still match via errors.Is.
var (
	// ErrNilMatrix indicates a required matrix argument was nil.
	ErrNilMatrix = errors.New("lqmat: matrix argument is nil")

	// ErrNonSquare indicates an operation required a square matrix.
	ErrNonSquare = errors.New("lqmat: matrix must be square")

	// ErrDimensionMismatch indicates operand shapes are incompatible.
	ErrDimensionMismatch = errors.New("lqmat: operand dimensions do not match")

	// ErrSingular indicates a linear solve failed because its coefficient
	// matrix is singular or too ill-conditioned to trust the solution.
	ErrSingular = errors.New("lqmat: coefficient matrix is singular or ill-conditioned")

	// ErrEigenFailed indicates the eigenvalue factorization did not converge.
	ErrEigenFailed = errors.New("lqmat: eigenvalue factorization failed")
)
