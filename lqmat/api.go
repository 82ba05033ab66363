// SPDX-License-Identifier: MIT
// Package lqmat — public API facades over gonum/mat.
//
// Purpose:
//   - Provide thin, well-documented entry points for the numeric primitives
//     every lqdouble solver shares.
//   - Avoid any logic duplication — each facade delegates to gonum's
//     canonical implementation and only translates errors.
//   - Keep function names explicit and intention-revealing.
//
// Determinism & Policy:
//   - Facades never change the numeric policy of the underlying kernels.
//   - Inputs are read-only; every returned matrix is freshly allocated and
//     never aliases an argument.
//   - Validation happens here, once, so solver packages stay on the math.

package lqmat

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// ---------- Constructors (O(1) alloc + O(rc) zeroing by runtime) ----------

// Zeros returns a new zero-initialized r×c dense matrix.
// Thin alias of mat.NewDense with an intention-revealing name.
func Zeros(r, c int) *mat.Dense {
	return mat.NewDense(r, c, nil)
}

// Eye returns Iₙ (n×n identity; ones on the diagonal, zeros elsewhere).
// Deterministic: fixed i-loop, single write per diagonal cell.
func Eye(n int) *mat.Dense {
	I := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		I.Set(i, i, 1)
	}

	return I
}

// Clone returns a fresh dense copy of m, detached from its backing storage.
func Clone(m mat.Matrix) *mat.Dense {
	var out mat.Dense
	out.CloneFrom(m)

	return &out
}

// ---------- Validation ----------

// isNil reports whether m is absent: either a nil interface or a nil
// *mat.Dense boxed into the interface. Callers pass concrete *mat.Dense
// everywhere in this module, so a bare `m == nil` comparison would miss
// the boxed case and the subsequent Dims call would dereference nil.
func isNil(m mat.Matrix) bool {
	if m == nil {
		return true
	}
	d, ok := m.(*mat.Dense)

	return ok && d == nil
}

// CheckSquare verifies m is non-nil and square, returning the dimension.
func CheckSquare(m mat.Matrix) (int, error) {
	if isNil(m) {
		return 0, ErrNilMatrix
	}
	r, c := m.Dims()
	if r != c {
		return 0, fmt.Errorf("%dx%d: %w", r, c, ErrNonSquare)
	}

	return r, nil
}

// CheckDims verifies m is non-nil and has exactly the shape r×c.
func CheckDims(m mat.Matrix, r, c int) error {
	if isNil(m) {
		return ErrNilMatrix
	}
	mr, mc := m.Dims()
	if mr != r || mc != c {
		return fmt.Errorf("want %dx%d, got %dx%d: %w", r, c, mr, mc, ErrDimensionMismatch)
	}

	return nil
}

// ---------- Linear Algebra (facades map 1:1 to gonum kernels) ----------

// Solve returns X satisfying a·X = b, computed by dense factorization
// rather than explicit inversion. The coefficient matrix a must be square
// and b must have matching row count.
//
// Errors: ErrNilMatrix / ErrNonSquare / ErrDimensionMismatch on shape
// violations; ErrSingular (wrapping gonum's condition diagnostics) when a
// is singular or too ill-conditioned.
//
// Complexity: O(n³) for the factorization + O(n²·c) back-substitution.
func Solve(a, b mat.Matrix) (*mat.Dense, error) {
	n, err := CheckSquare(a)
	if err != nil {
		return nil, err
	}
	if isNil(b) {
		return nil, ErrNilMatrix
	}
	br, _ := b.Dims()
	if br != n {
		return nil, fmt.Errorf("rhs rows %d vs coefficient dim %d: %w", br, n, ErrDimensionMismatch)
	}

	var x mat.Dense
	if err = x.Solve(a, b); err != nil {
		// gonum reports singularity/conditioning through the error; keep its
		// diagnostics but make the failure matchable via errors.Is.
		return nil, fmt.Errorf("%w: %v", ErrSingular, err)
	}

	return &x, nil
}

// Eigenvalues returns the full complex spectrum of the square matrix m.
//
// Errors: shape sentinels as in CheckSquare; ErrEigenFailed when the
// underlying factorization does not converge.
//
// Complexity: O(n³).
func Eigenvalues(m mat.Matrix) ([]complex128, error) {
	if _, err := CheckSquare(m); err != nil {
		return nil, err
	}

	var eig mat.Eigen
	if ok := eig.Factorize(m, mat.EigenNone); !ok {
		return nil, ErrEigenFailed
	}

	return eig.Values(nil), nil
}

// SpectralRadius returns max |λ| over the eigenvalues of m.
// Returns 0 for the 0×0 matrix.
func SpectralRadius(m mat.Matrix) (float64, error) {
	vals, err := Eigenvalues(m)
	if err != nil {
		return 0, err
	}

	var radius float64
	for _, v := range vals {
		if abs := cmplx.Abs(v); abs > radius {
			radius = abs
		}
	}

	return radius, nil
}

// ---------- Convergence metrics (O(rc), no allocation) ----------

// MaxAbsDelta returns max over |aᵢⱼ − bᵢⱼ|. NaN differences (e.g. Inf−Inf
// from a diverging iterate) propagate to the result, so a caller comparing
// `delta <= tol` keeps iterating instead of accepting garbage. Shapes must
// agree; callers validate.
func MaxAbsDelta(a, b mat.Matrix) float64 {
	r, c := a.Dims()
	var maxDiff float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			maxDiff = math.Max(maxDiff, math.Abs(a.At(i, j)-b.At(i, j)))
		}
	}

	return maxDiff
}

// MaxDelta returns max over (aᵢⱼ − bᵢⱼ) — SIGNED, not a distance.
// This is the historical acceptance rule of the Riccati doubling and the
// regulator fallback iteration; it is preserved verbatim for compatibility
// and can accept early when every entry of a is below b. NaN differences
// propagate as in MaxAbsDelta. See the package doc before reaching for
// this in new code.
func MaxDelta(a, b mat.Matrix) float64 {
	r, c := a.Dims()
	maxDiff := math.Inf(-1)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			maxDiff = math.Max(maxDiff, a.At(i, j)-b.At(i, j))
		}
	}

	return maxDiff
}
