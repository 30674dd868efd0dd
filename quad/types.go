// Package quad: sentinel errors and the Field container.
package quad

import "errors"

// Sentinel errors for quadrature routines. Callers match them via errors.Is.
var (
	// ErrLengthMismatch indicates that paired slices (abscissa/ordinate, or a
	// grid against the leading axis it integrates) differ in length.
	ErrLengthMismatch = errors.New("quad: length mismatch")

	// ErrTooFewPoints indicates fewer than two sample points on an axis.
	ErrTooFewPoints = errors.New("quad: need at least two points")

	// ErrNotAscending indicates an abscissa that is not strictly ascending.
	// NaN entries fail this check as well: NaN breaks any ordering.
	ErrNotAscending = errors.New("quad: abscissa must be strictly ascending")

	// ErrBadShape indicates a Field shape with a non-positive dimension.
	ErrBadShape = errors.New("quad: invalid shape")

	// ErrNilField indicates a nil *Field receiver or argument.
	ErrNilField = errors.New("quad: field is nil")

	// ErrRankExceeded indicates more integration grids than the field has axes.
	ErrRankExceeded = errors.New("quad: more grids than axes")

	// ErrBadIndex indicates an index outside the field's shape, or an index
	// list whose length differs from the field's rank.
	ErrBadIndex = errors.New("quad: index out of range")

	// ErrNotScalar indicates Scalar() on a field of rank above zero.
	ErrNotScalar = errors.New("quad: field is not rank-0")
)

// Field is a dense N-dimensional block of float64 samples stored row-major
// (last axis fastest). A rank-0 Field holds exactly one value; NDTrapz
// produces one after folding every axis.
type Field struct {
	shape []int
	data  []float64
}

// NewField builds a Field of the given shape around a copy of data.
// len(data) must equal the product of shape; every dimension must be > 0.
// An empty shape is legal and denotes a rank-0 (scalar) field with one value.
func NewField(shape []int, data []float64) (*Field, error) {
	total := 1
	for _, d := range shape {
		if d <= 0 {
			return nil, ErrBadShape
		}
		total *= d
	}
	if len(data) != total {
		return nil, ErrLengthMismatch
	}
	f := &Field{
		shape: append([]int(nil), shape...),
		data:  append([]float64(nil), data...),
	}

	return f, nil
}

// Zeros builds a zero-filled Field of the given shape.
func Zeros(shape ...int) (*Field, error) {
	total := 1
	for _, d := range shape {
		if d <= 0 {
			return nil, ErrBadShape
		}
		total *= d
	}

	return &Field{shape: append([]int(nil), shape...), data: make([]float64, total)}, nil
}

// Rank returns the number of axes.
func (f *Field) Rank() int { return len(f.shape) }

// Len returns the total number of samples.
func (f *Field) Len() int { return len(f.data) }

// Shape returns a copy of the dimension sizes, outermost first.
func (f *Field) Shape() []int { return append([]int(nil), f.shape...) }

// Clone returns a deep copy.
func (f *Field) Clone() *Field {
	return &Field{
		shape: append([]int(nil), f.shape...),
		data:  append([]float64(nil), f.data...),
	}
}

// At returns the sample at the given multi-index.
// len(idx) must equal Rank(); each idx[k] must lie in [0, shape[k]).
func (f *Field) At(idx ...int) (float64, error) {
	off, err := f.offset(idx)
	if err != nil {
		return 0, err
	}

	return f.data[off], nil
}

// Set stores v at the given multi-index.
func (f *Field) Set(v float64, idx ...int) error {
	off, err := f.offset(idx)
	if err != nil {
		return err
	}
	f.data[off] = v

	return nil
}

// Scalar extracts the single value of a rank-0 field.
func (f *Field) Scalar() (float64, error) {
	if f == nil {
		return 0, ErrNilField
	}
	if len(f.shape) != 0 {
		return 0, ErrNotScalar
	}

	return f.data[0], nil
}

// offset converts a multi-index into a flat row-major offset.
func (f *Field) offset(idx []int) (int, error) {
	if f == nil {
		return 0, ErrNilField
	}
	if len(idx) != len(f.shape) {
		return 0, ErrBadIndex
	}
	off := 0
	for k, i := range idx {
		if i < 0 || i >= f.shape[k] {
			return 0, ErrBadIndex
		}
		off = off*f.shape[k] + i
	}

	return off, nil
}
