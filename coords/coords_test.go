package coords_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/varia/coords"
	"github.com/stretchr/testify/require"
)

// TestInFrame_TransformInsideBody verifies the frame seen by the body:
// shift by -origin, rotate by e^{-iθ}.
func TestInFrame_TransformInsideBody(t *testing.T) {
	pts := []complex128{2 + 1i}
	origin := complex(1, 1)

	err := coords.InFrame(pts, origin, math.Pi/2, func(local []complex128) error {
		// (2+1i) - (1+1i) = 1; divided by e^{iπ/2} = i gives -i.
		require.InDelta(t, 0.0, real(local[0]), 1e-12)
		require.InDelta(t, -1.0, imag(local[0]), 1e-12)

		return nil
	})
	require.NoError(t, err)
}

// TestInFrame_RestoresOnSuccess verifies the round trip puts every point
// back, up to rounding.
func TestInFrame_RestoresOnSuccess(t *testing.T) {
	pts := []complex128{2 + 1i, -3, 0.5i, 0}
	want := append([]complex128(nil), pts...)

	err := coords.InFrame(pts, 1-2i, 0.7, func([]complex128) error { return nil })
	require.NoError(t, err)
	for i := range want {
		require.InDelta(t, real(want[i]), real(pts[i]), 1e-12, "point %d", i)
		require.InDelta(t, imag(want[i]), imag(pts[i]), 1e-12, "point %d", i)
	}
}

// TestInFrame_RestoresOnError verifies that a failing body still gets the
// points restored, and the error comes through unchanged.
func TestInFrame_RestoresOnError(t *testing.T) {
	boom := errors.New("body failed")
	pts := []complex128{3 + 4i}
	want := pts[0]

	err := coords.InFrame(pts, 2, 1.3, func([]complex128) error { return boom })
	require.ErrorIs(t, err, boom, "body error must propagate unchanged")
	require.InDelta(t, real(want), real(pts[0]), 1e-12)
	require.InDelta(t, imag(want), imag(pts[0]), 1e-12)
}

// TestInFrame_RestoresOnPanic verifies the defer path: a panicking body
// re-raises after the points are put back.
func TestInFrame_RestoresOnPanic(t *testing.T) {
	pts := []complex128{1 + 1i}

	require.PanicsWithValue(t, "kaboom", func() {
		_ = coords.InFrame(pts, 5, 0.4, func(local []complex128) error {
			local[0] = 0 // mutate, then blow up
			panic("kaboom")
		})
	})
	// The body zeroed the local point; the restore maps 0 back to the origin.
	require.InDelta(t, 5.0, real(pts[0]), 1e-12)
	require.InDelta(t, 0.0, imag(pts[0]), 1e-12)
}

// TestInFrame_BodyWritesSurvive verifies that writes inside the frame are
// carried back through the inverse transform.
func TestInFrame_BodyWritesSurvive(t *testing.T) {
	pts := []complex128{7}

	err := coords.InFrame(pts, 7, 0, func(local []complex128) error {
		local[0] = 2i // place the point at +2i in the local frame

		return nil
	})
	require.NoError(t, err)
	// zero rotation: restore just shifts the origin back.
	require.InDelta(t, 7.0, real(pts[0]), 1e-12)
	require.InDelta(t, 2.0, imag(pts[0]), 1e-12)
}

// TestInFrame_Validation exercises the sentinels and the empty slice.
func TestInFrame_Validation(t *testing.T) {
	err := coords.InFrame(nil, 0, 0, nil)
	require.ErrorIs(t, err, coords.ErrNilBody)

	err = coords.InFrame(nil, complex(math.NaN(), 0), 0, func([]complex128) error { return nil })
	require.ErrorIs(t, err, coords.ErrNotFinite)

	err = coords.InFrame(nil, 0, math.Inf(1), func([]complex128) error { return nil })
	require.ErrorIs(t, err, coords.ErrNotFinite)

	called := false
	err = coords.InFrame([]complex128{}, 1, 1, func(local []complex128) error {
		called = true
		require.Empty(t, local)

		return nil
	})
	require.NoError(t, err)
	require.True(t, called, "empty slice is legal; the body still runs")
}
