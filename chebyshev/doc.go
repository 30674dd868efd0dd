// Package chebyshev builds Chebyshev–Lobatto grids and spectral
// differentiation matrices for smooth functions sampled on them.
//
// 🚀 What is spectral differentiation?
//
//	Sample a smooth function at Chebyshev points and one matrix-vector
//	product recovers its derivative at every node - with accuracy that
//	improves exponentially in the node count. Building blocks:
//	  • Grid - Chebyshev–Lobatto points mapped onto [a,b], ascending
//	  • DiffMatrix - the k-th order differentiation matrix
//	  • Derivative - apply the matrix to sampled values
//
// ✨ Key features:
//   - endpoints pinned exactly to the requested bounds
//   - k-th order matrix is the k-fold product of the first-order one
//   - order 0 returns the identity (a no-op derivative)
//   - dense algebra delegated to gonum/mat
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/varia/chebyshev"
//
//	x, _ := chebyshev.Grid(0, 2*math.Pi, 32)
//	y := make([]float64, len(x))
//	for i, v := range x {
//	  y[i] = math.Sin(v)
//	}
//	dy, err := chebyshev.Derivative(y, x, 1) // ≈ cos at every node
//
// Accuracy:
//
//	Exact (to rounding) for polynomials of degree < n; exponentially
//	convergent for analytic functions. Entries of the first-order matrix
//	grow like O(n²), so very large n trades conditioning for resolution.
//
// See examples in example_test.go.
package chebyshev
