package interp_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/varia/interp"
	"github.com/stretchr/testify/require"
)

var (
	knotsX = []float64{0, 1, 2}
	knotsF = []float64{0, 10, 20}
)

// TestLinear_KnotsAndMidpoints verifies exactness at knots and straight
// lines between them.
func TestLinear_KnotsAndMidpoints(t *testing.T) {
	cases := []struct{ x, want float64 }{
		{0, 0}, {1, 10}, {2, 20}, // at knots
		{0.5, 5}, {1.5, 15}, // between knots
	}
	for _, tc := range cases {
		v, err := interp.Linear(tc.x, knotsX, knotsF)
		require.NoError(t, err)
		require.InDelta(t, tc.want, v, 1e-12, "x=%v", tc.x)
	}
}

// TestLinear_ClampsOutside verifies np.interp's default edge behavior.
func TestLinear_ClampsOutside(t *testing.T) {
	v, err := interp.Linear(-5, knotsX, knotsF)
	require.NoError(t, err)
	require.Equal(t, 0.0, v, "below the range clamps to the first knot")

	v, err = interp.Linear(7, knotsX, knotsF)
	require.NoError(t, err)
	require.Equal(t, 20.0, v, "above the range clamps to the last knot")
}

// TestLinear_FillOverrides verifies WithLeft / WithRight fills, including
// a NaN fill marking out-of-range queries.
func TestLinear_FillOverrides(t *testing.T) {
	v, err := interp.Linear(-5, knotsX, knotsF, interp.WithLeft(-99))
	require.NoError(t, err)
	require.Equal(t, -99.0, v)

	v, err = interp.Linear(7, knotsX, knotsF, interp.WithRight(99))
	require.NoError(t, err)
	require.Equal(t, 99.0, v)

	v, err = interp.Linear(7, knotsX, knotsF, interp.WithRight(math.NaN()))
	require.NoError(t, err)
	require.True(t, math.IsNaN(v), "NaN is a legal fill value")
}

// TestLinear_SingleKnot verifies the degenerate one-knot table.
func TestLinear_SingleKnot(t *testing.T) {
	xp, fp := []float64{1}, []float64{7}

	v, err := interp.Linear(0.5, xp, fp)
	require.NoError(t, err)
	require.Equal(t, 7.0, v, "default left fill is the knot value")

	v, err = interp.Linear(0.5, xp, fp, interp.WithLeft(-1))
	require.NoError(t, err)
	require.Equal(t, -1.0, v)

	v, err = interp.Linear(1, xp, fp)
	require.NoError(t, err)
	require.Equal(t, 7.0, v)

	v, err = interp.Linear(2, xp, fp, interp.WithRight(42))
	require.NoError(t, err)
	require.Equal(t, 42.0, v)
}

// TestLinear_Validation exercises every Linear sentinel.
func TestLinear_Validation(t *testing.T) {
	_, err := interp.Linear(0, []float64{0, 1}, []float64{0})
	require.ErrorIs(t, err, interp.ErrLengthMismatch)

	_, err = interp.Linear(0, nil, nil)
	require.ErrorIs(t, err, interp.ErrEmptyInput)

	_, err = interp.Linear(0, []float64{0, 0, 1}, []float64{1, 2, 3})
	require.ErrorIs(t, err, interp.ErrNotAscending)

	_, err = interp.Linear(0, []float64{1, 0}, []float64{1, 2})
	require.ErrorIs(t, err, interp.ErrNotAscending)

	_, err = interp.Linear(0, []float64{0, 1}, []float64{1, math.NaN()})
	require.ErrorIs(t, err, interp.ErrNotFinite)
}

// TestLinear_NaNQueryStaysNaN confirms a NaN query is never clamped.
func TestLinear_NaNQueryStaysNaN(t *testing.T) {
	v, err := interp.Linear(math.NaN(), knotsX, knotsF)
	require.NoError(t, err)
	require.True(t, math.IsNaN(v))
}

// TestLinearSlice_MatchesScalar compares the vectorised form against
// pointwise scalar calls.
func TestLinearSlice_MatchesScalar(t *testing.T) {
	xs := []float64{-1, 0, 0.25, 1.75, 2, 3}

	got, err := interp.LinearSlice(xs, knotsX, knotsF, interp.WithLeft(-7))
	require.NoError(t, err)
	require.Len(t, got, len(xs))
	for i, x := range xs {
		want, errS := interp.Linear(x, knotsX, knotsF, interp.WithLeft(-7))
		require.NoError(t, errS)
		require.InDelta(t, want, got[i], 1e-12, "x=%v", x)
	}
}

// TestNonlinear_IdentityMatchesLinear pins the degenerate transform:
// identity forward/inverse must reproduce Linear exactly.
func TestNonlinear_IdentityMatchesLinear(t *testing.T) {
	id := func(v float64) float64 { return v }

	for _, x := range []float64{-2, 0.3, 1.5, 4} {
		nl, err := interp.Nonlinear(x, knotsX, knotsF, id, id)
		require.NoError(t, err)
		ln, err := interp.Linear(x, knotsX, knotsF)
		require.NoError(t, err)
		require.InDelta(t, ln, nl, 1e-12, "x=%v", x)
	}
}

// TestNonlinear_Validation covers nil transforms and transforms that break
// the knot ordering.
func TestNonlinear_Validation(t *testing.T) {
	id := func(v float64) float64 { return v }
	neg := func(v float64) float64 { return -v }

	_, err := interp.Nonlinear(0, knotsX, knotsF, nil, id)
	require.ErrorIs(t, err, interp.ErrNilTransform)

	_, err = interp.Nonlinear(0, knotsX, knotsF, id, nil)
	require.ErrorIs(t, err, interp.ErrNilTransform)

	_, err = interp.Nonlinear(0, knotsX, knotsF, neg, id)
	require.ErrorIs(t, err, interp.ErrNotAscending, "decreasing transform reorders the knots")
}

// TestLog_PowerLawExact verifies that power-law data is linear on log axes:
// fp = xp² interpolates exactly at x = √10 · 10^k.
func TestLog_PowerLawExact(t *testing.T) {
	xp := []float64{1, 10, 100}
	fp := []float64{1, 100, 10000}

	v, err := interp.Log(math.Sqrt(10), xp, fp)
	require.NoError(t, err)
	require.InDelta(t, 10.0, v, 1e-9, "√10 squared is 10")

	v, err = interp.Log(10, xp, fp)
	require.NoError(t, err)
	require.InDelta(t, 100.0, v, 1e-9, "knots stay exact")
}

// TestLog_BaseOption verifies a custom base and base validation.
func TestLog_BaseOption(t *testing.T) {
	xp := []float64{1, 2, 4}
	fp := []float64{1, 4, 16} // fp = xp² again, exact on log2 axes

	v, err := interp.Log(math.Sqrt2*2, xp, fp, interp.WithBase(2))
	require.NoError(t, err)
	require.InDelta(t, 8.0, v, 1e-9)

	_, err = interp.Log(2, xp, fp, interp.WithBase(1))
	require.ErrorIs(t, err, interp.ErrOptionViolation)

	_, err = interp.Log(2, xp, fp, interp.WithBase(-3))
	require.ErrorIs(t, err, interp.ErrOptionViolation)
}

// TestLog_RejectsNonPositiveKnots confirms log of a non-positive knot
// surfaces as ErrNotFinite.
func TestLog_RejectsNonPositiveKnots(t *testing.T) {
	_, err := interp.Log(1, []float64{0, 1}, []float64{1, 2})
	require.ErrorIs(t, err, interp.ErrNotFinite)

	_, err = interp.Log(1, []float64{1, 2}, []float64{-1, 2})
	require.ErrorIs(t, err, interp.ErrNotFinite)
}

// TestLogSlice_MatchesScalar compares vectorised Log against scalar calls.
func TestLogSlice_MatchesScalar(t *testing.T) {
	xp := []float64{1, 10, 100}
	fp := []float64{2, 20, 200}
	xs := []float64{1, 3, 31.6, 100}

	got, err := interp.LogSlice(xs, xp, fp)
	require.NoError(t, err)
	for i, x := range xs {
		want, errS := interp.Log(x, xp, fp)
		require.NoError(t, errS)
		require.InDelta(t, want, got[i], 1e-12, "x=%v", x)
	}
}
