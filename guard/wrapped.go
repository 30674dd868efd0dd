package guard

import (
	"fmt"
	"reflect"
)

// Guarded wraps a function with one type constraint per parameter.
// Every Call validates the complete argument list first; the wrapped
// function runs only when all checks pass.
type Guarded struct {
	fn   reflect.Value
	ft   reflect.Type
	want []reflect.Type // per parameter, variadic element type last
	orig any
}

// New wraps fn. With no explicit types the constraints come straight
// from the signature. Explicit types override positionally: types[i]
// replaces the declared constraint of parameter i, a nil entry keeps
// the declared one. Overrides narrow, never widen: a value must still
// be assignable to the declared parameter to be passed through. For a
// variadic fn the final constraint applies to each trailing element.
func New(fn any, types ...reflect.Type) (*Guarded, error) {
	if fn == nil {
		return nil, ErrNotFunction
	}
	ft := reflect.TypeOf(fn)
	if ft.Kind() != reflect.Func {
		return nil, fmt.Errorf("%w: got %s", ErrNotFunction, ft)
	}
	if len(types) > ft.NumIn() {
		return nil, fmt.Errorf("%w: %d types for %d parameters",
			ErrTooManyTypes, len(types), ft.NumIn())
	}

	want := make([]reflect.Type, ft.NumIn())
	for i := range want {
		want[i] = ft.In(i)
	}
	if ft.IsVariadic() {
		// The declared last parameter is a slice; the constraint is on
		// its elements.
		want[len(want)-1] = want[len(want)-1].Elem()
	}
	for i, t := range types {
		if t != nil {
			want[i] = t
		}
	}

	return &Guarded{fn: reflect.ValueOf(fn), ft: ft, want: want, orig: fn}, nil
}

// MustNew is New panicking on error, for package-level wiring where the
// function is known good.
func MustNew(fn any, types ...reflect.Type) *Guarded {
	g, err := New(fn, types...)
	if err != nil {
		panic(err)
	}

	return g
}

// Call validates args and then invokes the wrapped function. On any
// mismatch the function is not invoked and the error wraps
// ErrTypeMismatch; arity errors wrap ErrArity. Results come back as a
// plain []any in declaration order.
func (g *Guarded) Call(args ...any) ([]any, error) {
	fixed := g.ft.NumIn()
	if g.ft.IsVariadic() {
		fixed--
		if len(args) < fixed {
			return nil, fmt.Errorf("%w: got %d, want at least %d", ErrArity, len(args), fixed)
		}
	} else if len(args) != fixed {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrArity, len(args), fixed)
	}

	// Stage 1: validate the whole argument list before touching fn.
	for i, a := range args {
		if err := CheckValue(a, fmt.Sprintf("arg[%d]", i), g.want[min(i, len(g.want)-1)]); err != nil {
			return nil, err
		}
	}

	// Stage 2: build the call frame, zero values standing in for nil.
	in := make([]reflect.Value, len(args))
	for i, a := range args {
		pt := g.paramType(i)
		if a == nil {
			in[i] = reflect.Zero(pt)
			continue
		}
		v := reflect.ValueOf(a)
		if !v.Type().AssignableTo(pt) {
			return nil, fmt.Errorf("%w: argument %q has type %s, not %s",
				ErrTypeMismatch, fmt.Sprintf("arg[%d]", i), v.Type(), pt)
		}
		in[i] = v
	}

	// Stage 3: invoke and unpack the results.
	out := g.fn.Call(in)
	res := make([]any, len(out))
	for i, v := range out {
		res[i] = v.Interface()
	}

	return res, nil
}

// Unwrap returns the original function untouched.
func (g *Guarded) Unwrap() any {
	return g.orig
}

// paramType resolves the declared type at argument position i, with the
// variadic tail flattened to its element type.
func (g *Guarded) paramType(i int) reflect.Type {
	n := g.ft.NumIn()
	if g.ft.IsVariadic() && i >= n-1 {
		return g.ft.In(n - 1).Elem()
	}

	return g.ft.In(i)
}
