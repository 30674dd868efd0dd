// SPDX-License-Identifier: MIT
// Package quantum: sentinel errors, functional options and the Spectrum
// result bundle.

package quantum

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for the eigenstate solver.
var (
	// ErrLengthMismatch indicates len(V) != len(x).
	ErrLengthMismatch = errors.New("quantum: potential and grid differ in length")

	// ErrGridTooSmall indicates fewer than four grid points: two walls
	// plus at least two interior nodes.
	ErrGridTooSmall = errors.New("quantum: need at least four grid points")

	// ErrNotAscending indicates a grid that is not strictly ascending;
	// normalisation integrates over x and needs a forward axis.
	ErrNotAscending = errors.New("quantum: grid must be strictly ascending")

	// ErrNotFinite indicates a NaN or ±Inf potential sample.
	ErrNotFinite = errors.New("quantum: non-finite potential value")

	// ErrEigenFailed indicates the eigendecomposition did not converge.
	ErrEigenFailed = errors.New("quantum: eigen decomposition failed")

	// ErrNoStates indicates that no eigenpair survived the wall filter.
	ErrNoStates = errors.New("quantum: no admissible states found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("quantum: invalid option supplied")
)

// Defaults for the solver options.
const (
	// DefaultHBar is the default h = ħ/√(2m) in the grid's length units.
	DefaultHBar = 0.1

	// DefaultCount is the default number of states returned.
	DefaultCount = 10
)

// Numeric policy of the wall filter.
const (
	// boundaryTol is the largest |ψ| tolerated at a wall. Interior modes
	// carry exact zeros there (the wall rows decouple), so anything above
	// rounding noise marks one of the two synthetic wall modes.
	boundaryTol = 1e-8

	// imagTol bounds |Im(E)| relative to max(1, |Re(E)|). The discrete
	// operator is nonsymmetric, so its upper spectrum may pair up into
	// complex conjugates; those are never physical bound states.
	imagTol = 1e-8
)

// Option configures the solver via functional arguments. An invalid value
// is recorded and surfaced as ErrOptionViolation when States runs.
type Option func(*Options)

// Options holds solver parameters.
type Options struct {
	hbar  float64
	count int

	// recorded during option parsing, surfaced on use
	err error
}

// DefaultOptions returns h = DefaultHBar and DefaultCount states.
func DefaultOptions() Options {
	return Options{hbar: DefaultHBar, count: DefaultCount}
}

// WithHBar sets h = ħ/√(2m); energies scale with h².
//
//	h > 0 and finite: accepted
//	anything else: invalid option → ErrOptionViolation
func WithHBar(h float64) Option {
	return func(o *Options) {
		if math.IsNaN(h) || math.IsInf(h, 0) || h <= 0 {
			o.err = fmt.Errorf("%w: hbar must be positive and finite (got %v)", ErrOptionViolation, h)

			return
		}
		o.hbar = h
	}
}

// WithCount sets how many states to return, lowest energies first.
// Fewer may come back when the filtered spectrum is shorter.
//
//	c >= 1: accepted
//	c < 1:  invalid option → ErrOptionViolation
func WithCount(c int) Option {
	return func(o *Options) {
		if c < 1 {
			o.err = fmt.Errorf("%w: count must be at least 1 (got %d)", ErrOptionViolation, c)

			return
		}
		o.count = c
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

// Spectrum bundles the solver output:
//   - Energies: ascending bound-state energies.
//   - Waves: Waves[k] holds ψ_k sampled on the input grid, normalised to
//     ∫|ψ|²dx = 1. The overall sign of each ψ is arbitrary.
type Spectrum struct {
	Energies []float64
	Waves    [][]float64
}

// Count returns the number of states in the spectrum.
func (s *Spectrum) Count() int { return len(s.Energies) }
