package quantum_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/varia/chebyshev"
	"github.com/katalvlaran/varia/quad"
	"github.com/katalvlaran/varia/quantum"
	"github.com/stretchr/testify/require"
)

// boxSetup samples the infinite square well: V = 0 on [0,1].
func boxSetup(t *testing.T, n int) (V, x []float64) {
	t.Helper()
	x, err := chebyshev.Grid(0, 1, n)
	require.NoError(t, err)

	return make([]float64, n), x
}

// TestStates_ParticleInABox checks the analytic spectrum E_n = (nπh)².
func TestStates_ParticleInABox(t *testing.T) {
	V, x := boxSetup(t, 48)

	s, err := quantum.States(V, x, quantum.WithCount(3))
	require.NoError(t, err)
	require.Equal(t, 3, s.Count())

	h := quantum.DefaultHBar
	for n := 1; n <= 3; n++ {
		want := math.Pow(float64(n)*math.Pi*h, 2)
		require.InDelta(t, want, s.Energies[n-1], 1e-6, "E_%d", n)
	}
}

// TestStates_GroundStateShape compares |ψ₁| against √2·sin(πx). The sign
// of an eigenvector is arbitrary, the magnitude is not.
func TestStates_GroundStateShape(t *testing.T) {
	V, x := boxSetup(t, 48)

	s, err := quantum.States(V, x, quantum.WithCount(1))
	require.NoError(t, err)
	require.Len(t, s.Waves, 1)
	require.Len(t, s.Waves[0], len(x))

	for i, xi := range x {
		want := math.Abs(math.Sqrt2 * math.Sin(math.Pi*xi))
		require.InDelta(t, want, math.Abs(s.Waves[0][i]), 5e-3, "|ψ| at node %d", i)
	}
}

// TestStates_WallsAndNormalisation verifies ψ = 0 at both walls and
// ∫|ψ|²dx = 1 for every returned state.
func TestStates_WallsAndNormalisation(t *testing.T) {
	V, x := boxSetup(t, 40)

	s, err := quantum.States(V, x, quantum.WithCount(4))
	require.NoError(t, err)

	n := len(x)
	dens := make([]float64, n)
	for k, psi := range s.Waves {
		require.InDelta(t, 0.0, psi[0], 1e-10, "state %d left wall", k)
		require.InDelta(t, 0.0, psi[n-1], 1e-10, "state %d right wall", k)

		for i, v := range psi {
			dens[i] = v * v
		}
		prob, errT := quad.Trapz(x, dens)
		require.NoError(t, errT)
		require.InDelta(t, 1.0, prob, 1e-10, "state %d normalisation", k)
	}
}

// TestStates_HarmonicWell checks the equispaced ladder E_n = h(2n+1)
// for V = x² on a wide box.
func TestStates_HarmonicWell(t *testing.T) {
	x, err := chebyshev.Grid(-4, 4, 64)
	require.NoError(t, err)
	V := make([]float64, len(x))
	for i, xi := range x {
		V[i] = xi * xi
	}

	s, err := quantum.States(V, x, quantum.WithCount(4))
	require.NoError(t, err)
	require.Equal(t, 4, s.Count())

	h := quantum.DefaultHBar
	for n := 0; n < 4; n++ {
		want := h * float64(2*n+1)
		require.InDelta(t, want, s.Energies[n], 1e-4, "E_%d", n)
	}
}

// TestStates_EnergiesAscend confirms the spectrum comes back sorted.
func TestStates_EnergiesAscend(t *testing.T) {
	V, x := boxSetup(t, 32)

	s, err := quantum.States(V, x, quantum.WithCount(6))
	require.NoError(t, err)
	for k := 1; k < s.Count(); k++ {
		require.Greater(t, s.Energies[k], s.Energies[k-1], "spectrum must ascend")
	}
}

// TestStates_HBarScaling verifies E ∝ h²: doubling h quadruples the
// box energies.
func TestStates_HBarScaling(t *testing.T) {
	V, x := boxSetup(t, 40)

	s1, err := quantum.States(V, x, quantum.WithCount(1))
	require.NoError(t, err)
	s2, err := quantum.States(V, x, quantum.WithCount(1), quantum.WithHBar(0.2))
	require.NoError(t, err)

	require.InDelta(t, 4.0, s2.Energies[0]/s1.Energies[0], 1e-6, "E scales with h²")
}

// TestStates_CountCapped confirms an oversized request degrades to the
// number of admissible modes instead of erroring.
func TestStates_CountCapped(t *testing.T) {
	V, x := boxSetup(t, 16)

	s, err := quantum.States(V, x, quantum.WithCount(1000))
	require.NoError(t, err)
	require.Greater(t, s.Count(), 0)
	require.LessOrEqual(t, s.Count(), len(x)-2, "at most the interior modes survive")
}

// TestStates_Validation exercises every States sentinel.
func TestStates_Validation(t *testing.T) {
	V, x := boxSetup(t, 16)

	_, err := quantum.States(V[:4], x)
	require.ErrorIs(t, err, quantum.ErrLengthMismatch)

	_, err = quantum.States([]float64{0, 0, 0}, []float64{0, 0.5, 1})
	require.ErrorIs(t, err, quantum.ErrGridTooSmall)

	desc := make([]float64, len(x))
	for i := range x {
		desc[i] = x[len(x)-1-i]
	}
	_, err = quantum.States(V, desc)
	require.ErrorIs(t, err, quantum.ErrNotAscending)

	bad := append([]float64(nil), V...)
	bad[3] = math.NaN()
	_, err = quantum.States(bad, x)
	require.ErrorIs(t, err, quantum.ErrNotFinite)

	_, err = quantum.States(V, x, quantum.WithHBar(-1))
	require.ErrorIs(t, err, quantum.ErrOptionViolation)

	_, err = quantum.States(V, x, quantum.WithCount(0))
	require.ErrorIs(t, err, quantum.ErrOptionViolation)
}
