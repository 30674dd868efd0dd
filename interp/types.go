// Package interp: sentinel errors, the Transform type and functional options.
package interp

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for interpolation routines.
var (
	// ErrLengthMismatch indicates len(xp) != len(fp).
	ErrLengthMismatch = errors.New("interp: knot slices differ in length")

	// ErrEmptyInput indicates an empty knot table.
	ErrEmptyInput = errors.New("interp: no knots supplied")

	// ErrNotAscending indicates knots that are not strictly ascending -
	// either as given, or after the forward transform was applied.
	ErrNotAscending = errors.New("interp: knots must be strictly ascending")

	// ErrNotFinite indicates a NaN or ±Inf knot value, either raw or
	// produced by the forward transform (log of a non-positive value).
	ErrNotFinite = errors.New("interp: non-finite knot value")

	// ErrNilTransform indicates a nil forward or inverse transform.
	ErrNilTransform = errors.New("interp: transform is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("interp: invalid option supplied")
)

// Transform maps one coordinate value; Nonlinear applies it to the query,
// the knots and the fill values alike. It must be strictly increasing over
// the knot range, otherwise the transformed knots stop ascending.
type Transform func(float64) float64

// DefaultBase is the logarithm base used by Log when WithBase is absent.
const DefaultBase = 10.0

// Option configures interpolation via functional arguments. An invalid
// option value is recorded and surfaced as ErrOptionViolation by the next
// interpolation call.
type Option func(*Options)

// Options holds fill values and the logarithm base.
//
// Fields:
//   - Left/Right - values returned for queries below the first or above the
//     last knot. Unset means "clamp to the edge knot" (np.interp behavior).
//     NaN is a legal fill: callers may want out-of-range marked, not clamped.
//   - Base - logarithm base for Log; only read there.
type Options struct {
	left     float64
	hasLeft  bool
	right    float64
	hasRight bool
	base     float64

	// recorded during option parsing, surfaced on use
	err error
}

// DefaultOptions returns clamp-at-edges behavior and base 10.
func DefaultOptions() Options {
	return Options{base: DefaultBase}
}

// WithLeft sets the fill value for queries left of the first knot.
func WithLeft(v float64) Option {
	return func(o *Options) {
		o.left = v
		o.hasLeft = true
	}
}

// WithRight sets the fill value for queries right of the last knot.
func WithRight(v float64) Option {
	return func(o *Options) {
		o.right = v
		o.hasRight = true
	}
}

// WithBase sets the logarithm base for Log.
//
//	b > 0, b != 1, finite: accepted (bases below one descend and are
//	rejected later, when the transformed knots fail the ascending check)
//	anything else: invalid option → ErrOptionViolation
func WithBase(b float64) Option {
	return func(o *Options) {
		if math.IsNaN(b) || math.IsInf(b, 0) || b <= 0 || b == 1 {
			o.err = fmt.Errorf("%w: base must be positive, finite and != 1 (got %v)", ErrOptionViolation, b)

			return
		}
		o.base = b
	}
}

// gatherOptions resolves option setters against DefaultOptions.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, set := range opts {
		set(&o)
	}

	return o
}
