package quad

import "gonum.org/v1/gonum/integrate"

// Trapz approximates ∫ y dx by the trapezoidal rule on the sampled grid x.
//
// Contract:
//   - len(x) == len(y), at least two points;
//   - x strictly ascending (gonum's Trapezoidal panics on unsorted input,
//     so the contract is enforced here and surfaced as sentinels instead).
//
// Returns (integral, nil) on success.
//
// Errors:
//   - ErrLengthMismatch - len(x) != len(y)
//   - ErrTooFewPoints   - len(x) < 2
//   - ErrNotAscending   - x not strictly ascending (includes NaN entries)
func Trapz(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, ErrLengthMismatch
	}
	if len(x) < 2 {
		return 0, ErrTooFewPoints
	}
	if err := checkAscending(x); err != nil {
		return 0, err
	}

	return integrate.Trapezoidal(x, y), nil
}

// NDTrapz folds the leading axis of f once per supplied grid, leftmost grid
// first: NDTrapz(f, x0, x1) == NDTrapz(NDTrapz(f, x0), x1). Each grid length
// must match the current leading dimension. Folding every axis yields a
// rank-0 Field; read it with Scalar().
//
// f itself is never mutated; each fold allocates the reduced result.
//
// Errors:
//   - ErrNilField     - f is nil
//   - ErrRankExceeded - len(xs) > f.Rank()
//   - plus every Trapz sentinel, per folded axis
func NDTrapz(f *Field, xs ...[]float64) (*Field, error) {
	if f == nil {
		return nil, ErrNilField
	}
	if len(xs) > len(f.shape) {
		return nil, ErrRankExceeded
	}

	out := f
	var err error
	for _, x := range xs {
		if out, err = foldLead(out, x); err != nil {
			return nil, err
		}
	}
	if out == f {
		out = f.Clone() // zero grids: hand back an independent copy
	}

	return out, nil
}

// foldLead integrates out the leading axis of f against grid x.
func foldLead(f *Field, x []float64) (*Field, error) {
	lead := f.shape[0]
	if len(x) != lead {
		return nil, ErrLengthMismatch
	}
	if lead < 2 {
		return nil, ErrTooFewPoints
	}
	if err := checkAscending(x); err != nil {
		return nil, err
	}

	// Number of lanes still indexed by the trailing axes.
	rest := 1
	for _, d := range f.shape[1:] {
		rest *= d
	}

	res := make([]float64, rest)
	lane := make([]float64, lead)
	for j := 0; j < rest; j++ {
		for i := 0; i < lead; i++ {
			lane[i] = f.data[i*rest+j]
		}
		res[j] = integrate.Trapezoidal(x, lane)
	}

	return &Field{shape: append([]int(nil), f.shape[1:]...), data: res}, nil
}

// checkAscending verifies a strictly ascending abscissa. A NaN anywhere
// fails the comparison chain and is rejected alongside ordering violations.
func checkAscending(x []float64) error {
	for i := 1; i < len(x); i++ {
		if !(x[i] > x[i-1]) {
			return ErrNotAscending
		}
	}

	return nil
}
