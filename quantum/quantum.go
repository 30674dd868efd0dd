// SPDX-License-Identifier: MIT

package quantum

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"

	"github.com/katalvlaran/varia/chebyshev"
	"github.com/katalvlaran/varia/quad"
	"gonum.org/v1/gonum/mat"
)

// States solves -h²·ψ″ + V·ψ = E·ψ with ψ = 0 at both ends of the grid
// and returns the lowest states, energies ascending.
//
// V samples the potential on the strictly ascending Chebyshev grid x.
// The walls sit at x[0] and x[len(x)-1]; the well between them may hold
// any finite potential shape.
//
// Construction:
//   - Stage 1: validate inputs and options.
//   - Stage 2: H = -h²·D₂ + diag(V) with D₂ the second-order spectral
//     differentiation matrix; overwrite the first and last rows with unit
//     rows, which pins ψ at the walls and decouples the interior block.
//   - Stage 3: general eigendecomposition (mat.Eigen). The wall rows
//     inject two synthetic eigenpairs at E = 1; every genuine interior
//     mode carries exact zeros at the walls, so keeping only eigenvectors
//     that vanish there removes exactly the synthetic pair. Complex
//     eigenvalues (spurious upper spectrum) are discarded alongside.
//   - Stage 4: sort by energy, truncate to WithCount, and normalise each
//     wave to ∫|ψ|²dx = 1 by trapezoidal quadrature.
//
// Errors:
//   - ErrLengthMismatch  - len(V) != len(x)
//   - ErrGridTooSmall    - len(x) < 4
//   - ErrNotAscending    - x not strictly ascending
//   - ErrNotFinite       - NaN or ±Inf potential sample
//   - ErrOptionViolation - invalid option value
//   - ErrEigenFailed     - eigendecomposition did not converge
//   - ErrNoStates        - nothing survived the wall filter
//   - chebyshev sentinels, wrapped, when the grid itself is malformed
//
// Complexity: O(n³) time for the eigendecomposition, O(n²) memory.
func States(V, x []float64, opts ...Option) (*Spectrum, error) {
	// Stage 1: Validate input
	n := len(x)
	if len(V) != n {
		return nil, ErrLengthMismatch
	}
	if n < 4 {
		return nil, ErrGridTooSmall
	}
	o := gatherOptions(opts...)
	if o.err != nil {
		return nil, o.err
	}
	for i := 0; i < n; i++ {
		if math.IsNaN(V[i]) || math.IsInf(V[i], 0) {
			return nil, ErrNotFinite
		}
		if i > 0 && !(x[i] > x[i-1]) {
			return nil, ErrNotAscending
		}
	}

	// Stage 2: Assemble the walled Hamiltonian
	d2, err := chebyshev.DiffMatrix(x, 2)
	if err != nil {
		return nil, fmt.Errorf("quantum: grid: %w", err)
	}
	var (
		h2 = o.hbar * o.hbar
		H  = mat.NewDense(n, n, nil)
		i  int
		j  int
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			H.Set(i, j, -h2*d2.At(i, j))
		}
		H.Set(i, i, H.At(i, i)+V[i])
	}
	for j = 0; j < n; j++ {
		H.Set(0, j, 0)
		H.Set(n-1, j, 0)
	}
	H.Set(0, 0, 1)
	H.Set(n-1, n-1, 1)

	// Stage 3: Decompose and filter
	var eig mat.Eigen
	if ok := eig.Factorize(H, mat.EigenRight); !ok {
		return nil, ErrEigenFailed
	}
	var (
		vals = eig.Values(nil)
		vecs mat.CDense
	)
	eig.VectorsTo(&vecs)

	type mode struct {
		energy float64
		col    int
	}
	admissible := make([]mode, 0, n)
	for j = 0; j < n; j++ {
		re, im := real(vals[j]), imag(vals[j])
		if math.Abs(im) > imagTol*math.Max(1, math.Abs(re)) {
			continue // spurious complex pair, not a bound state
		}
		if cmplx.Abs(vecs.At(0, j)) > boundaryTol || cmplx.Abs(vecs.At(n-1, j)) > boundaryTol {
			continue // synthetic wall mode
		}
		admissible = append(admissible, mode{energy: re, col: j})
	}
	if len(admissible) == 0 {
		return nil, ErrNoStates
	}
	sort.SliceStable(admissible, func(a, b int) bool {
		return admissible[a].energy < admissible[b].energy
	})
	if len(admissible) > o.count {
		admissible = admissible[:o.count]
	}

	// Stage 4: Extract, normalise, bundle
	s := &Spectrum{
		Energies: make([]float64, len(admissible)),
		Waves:    make([][]float64, len(admissible)),
	}
	var (
		psi  []float64
		dens []float64
		norm float64
	)
	dens = make([]float64, n)
	for k, m := range admissible {
		psi = make([]float64, n)
		for i = 0; i < n; i++ {
			psi[i] = real(vecs.At(i, m.col))
			dens[i] = psi[i] * psi[i]
		}
		norm, err = quad.Trapz(x, dens)
		if err != nil {
			return nil, fmt.Errorf("quantum: normalise: %w", err)
		}
		scale := 1 / math.Sqrt(norm)
		for i = 0; i < n; i++ {
			psi[i] *= scale
		}
		s.Energies[k] = m.energy
		s.Waves[k] = psi
	}

	return s, nil
}
