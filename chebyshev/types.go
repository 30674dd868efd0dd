// SPDX-License-Identifier: MIT
// Package chebyshev: sentinel error set. All public routines return these
// sentinels (optionally wrapped with context via %w); tests match them with
// errors.Is. No routine panics on user input.

package chebyshev

import "errors"

var (
	// ErrTooFewPoints is returned when a grid or node set has fewer than
	// two points; differentiation needs at least the two endpoints.
	ErrTooFewPoints = errors.New("chebyshev: need at least two points")

	// ErrNotFinite is returned when a bound or node is NaN or ±Inf.
	ErrNotFinite = errors.New("chebyshev: non-finite bound or node")

	// ErrNegativeOrder is returned for a negative derivative order.
	ErrNegativeOrder = errors.New("chebyshev: derivative order must be non-negative")

	// ErrDuplicateNodes is returned when two nodes coincide; the
	// differentiation weights divide by pairwise node distances.
	ErrDuplicateNodes = errors.New("chebyshev: duplicate nodes")

	// ErrLengthMismatch is returned when samples and nodes differ in length.
	ErrLengthMismatch = errors.New("chebyshev: length mismatch")
)
