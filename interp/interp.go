package interp

import (
	"math"

	gonuminterp "gonum.org/v1/gonum/interp"
)

// Linear interpolates the knot table (xp, fp) at x, np.interp style:
// piecewise-linear between knots, clamped to the edge knots outside the
// range unless WithLeft / WithRight override the fills. A single-knot table
// returns left below the knot, right above it and fp[0] at it.
//
// Errors:
//   - ErrLengthMismatch - len(xp) != len(fp)
//   - ErrEmptyInput     - no knots
//   - ErrNotAscending   - xp not strictly ascending
//   - ErrNotFinite      - NaN or ±Inf among the knots
//   - ErrOptionViolation - invalid option value
func Linear(x float64, xp, fp []float64, opts ...Option) (float64, error) {
	o := gatherOptions(opts...)
	if o.err != nil {
		return 0, o.err
	}
	ev, err := newEvaluator(xp, fp, o)
	if err != nil {
		return 0, err
	}

	return ev.at(x), nil
}

// LinearSlice evaluates Linear at every query point with a single fit.
func LinearSlice(xs []float64, xp, fp []float64, opts ...Option) ([]float64, error) {
	o := gatherOptions(opts...)
	if o.err != nil {
		return nil, o.err
	}
	ev, err := newEvaluator(xp, fp, o)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = ev.at(x)
	}

	return out, nil
}

// Nonlinear interpolates in a transformed coordinate: the query, the knots
// and the fill values all pass through forward, the straight-line value is
// read off there, and inverse maps it back:
//
//	inverse(Linear(forward(x), forward(xp), forward(fp)))
//
// forward must be strictly increasing over the knot range; a transform that
// reorders or degenerates the knots is rejected via ErrNotAscending or
// ErrNotFinite rather than silently misread.
//
// Errors: those of Linear, plus ErrNilTransform.
func Nonlinear(x float64, xp, fp []float64, forward, inverse Transform, opts ...Option) (float64, error) {
	o := gatherOptions(opts...)
	if o.err != nil {
		return 0, o.err
	}
	ev, err := newTransformedEvaluator(xp, fp, forward, inverse, o)
	if err != nil {
		return 0, err
	}

	return ev.atTransformed(x), nil
}

// NonlinearSlice evaluates Nonlinear at every query point with a single fit.
func NonlinearSlice(xs []float64, xp, fp []float64, forward, inverse Transform, opts ...Option) ([]float64, error) {
	o := gatherOptions(opts...)
	if o.err != nil {
		return nil, o.err
	}
	ev, err := newTransformedEvaluator(xp, fp, forward, inverse, o)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = ev.atTransformed(x)
	}

	return out, nil
}

// Log interpolates on logarithmic axes: straight lines in log_b space,
// which renders power-law data exactly. The base comes from WithBase
// (default 10). Non-positive knots have no logarithm and surface as
// ErrNotFinite.
func Log(x float64, xp, fp []float64, opts ...Option) (float64, error) {
	o := gatherOptions(opts...)
	if o.err != nil {
		return 0, o.err
	}
	fwd, inv := logPair(o.base)
	ev, err := newTransformedEvaluator(xp, fp, fwd, inv, o)
	if err != nil {
		return 0, err
	}

	return ev.atTransformed(x), nil
}

// LogSlice evaluates Log at every query point with a single fit.
func LogSlice(xs []float64, xp, fp []float64, opts ...Option) ([]float64, error) {
	o := gatherOptions(opts...)
	if o.err != nil {
		return nil, o.err
	}
	fwd, inv := logPair(o.base)
	ev, err := newTransformedEvaluator(xp, fp, fwd, inv, o)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = ev.atTransformed(x)
	}

	return out, nil
}

// logPair builds the forward/inverse transforms for base b.
func logPair(b float64) (Transform, Transform) {
	lnB := math.Log(b)
	fwd := func(v float64) float64 { return math.Log(v) / lnB }
	inv := func(v float64) float64 { return math.Pow(b, v) }

	return fwd, inv
}

// evaluator performs clamped piecewise-linear lookup over validated knots.
// The interior is handled by gonum's PiecewiseLinear; the edges by the
// fill values resolved from Options.
type evaluator struct {
	xpLo, xpHi float64
	fill0      float64 // value at the single knot, when there is only one
	left       float64
	right      float64
	single     bool
	pl         gonuminterp.PiecewiseLinear

	// set for transformed evaluators
	forward Transform
	inverse Transform
}

// newEvaluator validates the knot table and prepares interior fitting.
func newEvaluator(xp, fp []float64, o Options) (*evaluator, error) {
	n := len(xp)
	if n != len(fp) {
		return nil, ErrLengthMismatch
	}
	if n == 0 {
		return nil, ErrEmptyInput
	}
	for i := 0; i < n; i++ {
		if isNonFinite(xp[i]) || isNonFinite(fp[i]) {
			return nil, ErrNotFinite
		}
		if i > 0 && !(xp[i] > xp[i-1]) {
			return nil, ErrNotAscending
		}
	}

	ev := &evaluator{
		xpLo:   xp[0],
		xpHi:   xp[n-1],
		fill0:  fp[0],
		left:   fp[0],
		right:  fp[n-1],
		single: n == 1,
	}
	if o.hasLeft {
		ev.left = o.left
	}
	if o.hasRight {
		ev.right = o.right
	}
	if !ev.single {
		if err := ev.pl.Fit(xp, fp); err != nil {
			return nil, ErrNotAscending // unreachable after validation above
		}
	}

	return ev, nil
}

// newTransformedEvaluator pushes the knots and fills through forward and
// validates the image, then records the pair for query-side use.
func newTransformedEvaluator(xp, fp []float64, forward, inverse Transform, o Options) (*evaluator, error) {
	if forward == nil || inverse == nil {
		return nil, ErrNilTransform
	}
	n := len(xp)
	if n != len(fp) {
		return nil, ErrLengthMismatch
	}
	if n == 0 {
		return nil, ErrEmptyInput
	}

	txp := make([]float64, n)
	tfp := make([]float64, n)
	for i := 0; i < n; i++ {
		txp[i] = forward(xp[i])
		tfp[i] = forward(fp[i])
	}
	// Fill values ride through the same transform.
	to := o
	if o.hasLeft {
		to.left = forward(o.left)
	}
	if o.hasRight {
		to.right = forward(o.right)
	}

	ev, err := newEvaluator(txp, tfp, to)
	if err != nil {
		return nil, err
	}
	ev.forward = forward
	ev.inverse = inverse

	return ev, nil
}

// at answers a query in the evaluator's own coordinate.
func (e *evaluator) at(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return math.NaN() // NaN query stays NaN, never a clamped value
	case x < e.xpLo:
		return e.left
	case x > e.xpHi:
		return e.right
	case e.single:
		return e.fill0
	default:
		return e.pl.Predict(x)
	}
}

// atTransformed answers a raw-coordinate query by mapping it forward,
// reading the straight-line value and mapping the result back.
func (e *evaluator) atTransformed(x float64) float64 {
	return e.inverse(e.at(e.forward(x)))
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
