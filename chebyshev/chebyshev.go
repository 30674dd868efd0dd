// SPDX-License-Identifier: MIT

package chebyshev

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Grid returns n Chebyshev–Lobatto points mapped onto [a,b], ascending:
//
//	x_j = (b+a)/2 + (b-a)/2 · cos(θ_j),  θ_j evenly spaced from π down to 0.
//
// The endpoints are pinned to a and b exactly, so the affine map cannot
// drift off the bounds by rounding. Nodes cluster near both ends, which is
// what makes polynomial interpolation and differentiation on them stable.
//
// a > b yields the mirrored, descending grid; a == b yields n copies of a
// (degenerate, rejected later by DiffMatrix).
//
// Errors:
//   - ErrTooFewPoints - n < 2
//   - ErrNotFinite    - a or b is NaN or ±Inf
//
// Complexity: O(n) time, O(n) memory.
func Grid(a, b float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, ErrTooFewPoints
	}
	if isNonFinite(a) || isNonFinite(b) {
		return nil, ErrNotFinite
	}

	var (
		center = (b + a) / 2
		half   = (b - a) / 2
		step   = math.Pi / float64(n-1)
		x      = make([]float64, n)
	)
	for j := 1; j < n-1; j++ {
		x[j] = center + half*math.Cos(math.Pi-float64(j)*step)
	}
	// Pin the endpoints: θ=π and θ=0 map to the bounds themselves.
	x[0] = a
	x[n-1] = b

	return x, nil
}

// DiffMatrix returns the n×n spectral differentiation matrix of order k for
// the Chebyshev–Lobatto nodes x (ascending or descending, as produced by
// Grid). Multiplying sampled values by the matrix approximates the k-th
// derivative at every node.
//
// Construction:
//   - Stage 1: validate nodes (finite, distinct, at least two).
//   - Stage 2: k == 0 → identity; otherwise assemble the first-order matrix
//     from the alternating barycentric weights of the Lobatto family:
//     c_i = (-1)^i, doubled at both endpoints,
//     D_ij = (c_i/c_j)/(x_i - x_j)      for i ≠ j,
//     D_ii = -Σ_{j≠i} D_ij             (negative-sum trick).
//   - Stage 3: raise to the k-th power by repeated mat.Mul.
//
// The weight pattern is tied to the Chebyshev–Lobatto node family; handing
// in arbitrary nodes produces a matrix for a different (wrong) polynomial
// basis. The negative-sum diagonal guarantees each row annihilates
// constants, which keeps the matrix exact on low-degree polynomials.
//
// Errors:
//   - ErrTooFewPoints   - len(x) < 2
//   - ErrNotFinite      - a node is NaN or ±Inf
//   - ErrDuplicateNodes - two nodes coincide
//   - ErrNegativeOrder  - k < 0
//
// Complexity: O(n²) assembly plus O((k-1)·n³) for the power; O(n²) memory.
func DiffMatrix(x []float64, k int) (*mat.Dense, error) {
	// Stage 1: Validate input
	n := len(x)
	if n < 2 {
		return nil, ErrTooFewPoints
	}
	if k < 0 {
		return nil, ErrNegativeOrder
	}
	for i := 0; i < n; i++ {
		if isNonFinite(x[i]) {
			return nil, ErrNotFinite
		}
		for j := i + 1; j < n; j++ {
			if x[i] == x[j] {
				return nil, ErrDuplicateNodes
			}
		}
	}
	if k == 0 {
		return identity(n), nil
	}

	// Stage 2: Assemble the first-order matrix
	var (
		c  = make([]float64, n) // alternating endpoint-doubled weights
		d1 = mat.NewDense(n, n, nil)
	)
	for i := 0; i < n; i++ {
		c[i] = 1.0
		if i == 0 || i == n-1 {
			c[i] = 2.0
		}
		if i%2 == 1 {
			c[i] = -c[i]
		}
	}
	var row float64
	for i := 0; i < n; i++ {
		row = 0
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			v := (c[i] / c[j]) / (x[i] - x[j])
			d1.Set(i, j, v)
			row += v
		}
		d1.Set(i, i, -row) // rows sum to zero: constants differentiate to 0
	}
	if k == 1 {
		return d1, nil
	}

	// Stage 3: Raise to the k-th power
	var (
		dk  = mat.DenseCopyOf(d1)
		tmp = mat.NewDense(n, n, nil)
	)
	for t := 1; t < k; t++ {
		tmp.Mul(dk, d1)
		dk.Copy(tmp)
	}

	return dk, nil
}

// Derivative differentiates samples y on the Chebyshev grid x k times:
// the result is DiffMatrix(x, k) · y evaluated at every node. k == 0
// returns a copy of y.
//
// Errors: ErrLengthMismatch when len(y) != len(x), plus every DiffMatrix
// sentinel.
//
// Complexity: dominated by DiffMatrix, then O(n²) for the product.
func Derivative(y, x []float64, k int) ([]float64, error) {
	n := len(x)
	if len(y) != n {
		return nil, ErrLengthMismatch
	}
	dk, err := DiffMatrix(x, k)
	if err != nil {
		return nil, err
	}

	var (
		v   = mat.NewVecDense(n, y)
		out = mat.NewVecDense(n, nil)
		res = make([]float64, n)
	)
	out.MulVec(dk, v)
	for i := 0; i < n; i++ {
		res[i] = out.AtVec(i)
	}

	return res, nil
}

// identity returns the n×n identity matrix.
func identity(n int) *mat.Dense {
	id := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		id.Set(i, i, 1)
	}

	return id
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
