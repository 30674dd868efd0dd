package coords

import (
	"errors"
	"math"
	"math/cmplx"
)

// Sentinel errors for frame transforms.
var (
	// ErrNilBody indicates a nil body function.
	ErrNilBody = errors.New("coords: body function is nil")

	// ErrNotFinite indicates a NaN or ±Inf origin or angle; a non-finite
	// frame could never be undone.
	ErrNotFinite = errors.New("coords: non-finite origin or angle")
)

// InFrame shifts pts by -origin, rotates by e^{-iθ}, runs fn on the
// mutated slice and restores the original frame before returning. The
// restore runs on every exit path: normal return, fn error, and panic
// (the panic is re-raised after the points are put back).
//
// fn receives the same backing array, so index i keeps addressing the
// same point; writes through the slice survive the restore transform.
// The round trip costs one unit of rounding per point.
//
// Returns fn's error unchanged.
//
// Errors:
//   - ErrNilBody   - fn is nil
//   - ErrNotFinite - origin or angle is NaN or ±Inf
func InFrame(pts []complex128, origin complex128, angle float64, fn func([]complex128) error) error {
	if fn == nil {
		return ErrNilBody
	}
	if isNonFinite(real(origin)) || isNonFinite(imag(origin)) || isNonFinite(angle) {
		return ErrNotFinite
	}

	rot := cmplx.Exp(complex(0, angle))
	for i := range pts {
		pts[i] = (pts[i] - origin) / rot
	}
	defer func() {
		for i := range pts {
			pts[i] = pts[i]*rot + origin
		}
	}()

	return fn(pts)
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
