// Package interp provides piecewise-linear interpolation over tabulated
// data, plus nonlinear and logarithmic variants that interpolate in a
// transformed coordinate.
//
// 🚀 What is interp?
//
//	Given knots (xp, fp), interp answers "what is f between the knots?":
//	  • Linear    - classic piecewise-linear with endpoint clamping
//	  • Nonlinear - straight lines in a transformed space
//	    (result = inverse(Linear(forward(x), forward(xp), forward(fp))))
//	  • Log       - Nonlinear with forward=log_b, inverse=b^x; exact for
//	    power-law data that is linear on log axes
//	  • …Slice    - vectorised forms (one fit, many queries)
//
// ✨ Key features:
//   - outside the knot range the value clamps to the edge knot, unless
//     overridden via WithLeft / WithRight fill values
//   - knots must be strictly ascending after the forward transform, so a
//     non-monotone transform is rejected instead of silently misread
//   - interior evaluation delegates to gonum's interp.PiecewiseLinear
//   - sentinel errors; option violations surface at call time
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/varia/interp"
//
//	v, err := interp.Linear(1.5, []float64{0, 1, 2}, []float64{0, 10, 20})
//	// v == 15
//
//	lv, err := interp.Log(316.0, xp, fp, interp.WithBase(10))
//
// Complexity: fit O(n), each query O(log n).
//
// See examples in example_test.go.
package interp
