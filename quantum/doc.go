// Package quantum solves the stationary one-dimensional Schrödinger
// equation on a Chebyshev grid: bound-state energies and wavefunctions of
// a particle in an arbitrary sampled potential.
//
// 🚀 What is quantum?
//
//	Discretise H = -h²·d²/dx² + V(x) with a spectral differentiation
//	matrix, enforce ψ=0 at both walls, and one eigendecomposition yields
//	the whole low spectrum:
//	  • States - energies + normalised wavefunctions, lowest first
//	  • Spectrum - the result bundle (Energies, Waves)
//
// ✨ Key features:
//   - Dirichlet walls are imposed exactly: boundary rows are replaced by
//     unit rows, then eigenvectors that fail to vanish at a wall (the two
//     synthetic modes this construction injects) are filtered out
//   - eigenvalues with a numerically significant imaginary part are
//     discarded; the reported spectrum is real and ascending
//   - each wavefunction is normalised to unit probability, ∫|ψ|²dx = 1
//   - eigendecomposition via gonum mat.Eigen, integration via varia/quad
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/varia/quantum"
//
//	x, _ := chebyshev.Grid(0, 1, 48)
//	V := make([]float64, len(x)) // the infinite square well
//	s, err := quantum.States(V, x, quantum.WithCount(3))
//	// s.Energies ≈ (nπh)², s.Waves[n] ≈ √2·sin((n+1)πx)
//
// Accuracy:
//
//	Spectral in the grid size for smooth potentials: tens of points
//	resolve the low modes to many digits. The constant h is ħ/√(2m) in
//	physical units (default 0.1); energies scale with h².
//
// See examples in example_test.go.
package quantum
