// Package quad provides trapezoidal quadrature over sampled data,
// in one dimension and over the leading axes of N-dimensional grids.
//
// 🚀 What is quad?
//
//	quad integrates tabulated samples - no closed-form integrand needed.
//	It is the numeric workhorse behind wavefunction normalisation,
//	cumulative observables and any "area under sampled curve" question:
//	  • Trapz - classic trapezoidal rule on one abscissa
//	  • NDTrapz - fold an N-d sample block one leading axis at a time
//	  • Field - a flat, row-major N-d sample container
//
// ✨ Key features:
//   - strict input validation with sentinel errors (no panics on user data)
//   - abscissae must be strictly ascending; duplicates are rejected
//   - N-d reduction composes exactly like nested 1-D integrals
//   - integration itself is delegated to gonum's integrate.Trapezoidal
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/varia/quad"
//
//	// 1-D: ∫ y dx on a sampled grid
//	area, err := quad.Trapz(x, y)
//
//	// N-d: integrate a 2-d block over its first axis
//	f, _ := quad.NewField([]int{len(x), len(t)}, samples)
//	g, err := quad.NDTrapz(f, x)        // g has shape [len(t)]
//	v, err := quad.NDTrapz(f, x2, t2)   // full reduction → rank-0
//	total, _ := v.Scalar()
//
// Performance:
//
//   - Trapz:   O(n) time, O(1) memory
//   - NDTrapz: O(total elements) time per folded axis, O(lead) scratch
//
// See examples in example_test.go.
package quad
