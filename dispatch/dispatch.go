package dispatch

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/katalvlaran/varia/guard"
)

// Call scans the registry newest-first and invokes the first candidate
// that accepts args. When none does, the returned error wraps ErrNoMatch
// and joins one reason per rejected candidate. Results come back as a
// plain []any in declaration order.
func (d *Dispatcher) Call(args ...any) ([]any, error) {
	i, in, err := d.match(args)
	if err != nil {
		return nil, err
	}

	return unpack(d.impls[i].fn.Call(in)), nil
}

// Match performs the same scan as Call but defers the invocation: the
// returned thunk runs the candidate selected now, regardless of later
// registrations.
func (d *Dispatcher) Match(args ...any) (func() ([]any, error), error) {
	i, in, err := d.match(args)
	if err != nil {
		return nil, err
	}
	fn := d.impls[i].fn

	return func() ([]any, error) {
		return unpack(fn.Call(in)), nil
	}, nil
}

// match resolves args to a candidate index and a ready call frame.
func (d *Dispatcher) match(args []any) (int, []reflect.Value, error) {
	if d.err != nil {
		return 0, nil, d.err
	}
	if len(d.impls) == 0 {
		return 0, nil, fmt.Errorf("%w: empty registry", ErrNoMatch)
	}

	var failures []error
	for i := len(d.impls) - 1; i >= 0; i-- {
		in, err := d.impls[i].bind(args, d.loose)
		if err != nil {
			failures = append(failures, fmt.Errorf("impl[%d] %s: %w", i, d.impls[i].ft, err))
			continue
		}

		return i, in, nil
	}

	return 0, nil, fmt.Errorf("%w: %w", ErrNoMatch, errors.Join(failures...))
}

// bind checks arity and types and builds the call frame, nil arguments
// becoming parameter zero values. In loose mode the type stage is
// skipped and assignability at frame build decides instead.
func (im impl) bind(args []any, loose bool) ([]reflect.Value, error) {
	n := im.ft.NumIn()
	if im.ft.IsVariadic() {
		if len(args) < n-1 {
			return nil, fmt.Errorf("takes at least %d arguments, got %d", n-1, len(args))
		}
	} else if len(args) != n {
		return nil, fmt.Errorf("takes %d arguments, got %d", n, len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, a := range args {
		pt := im.param(i)
		if !loose && !guard.Satisfies(a, pt) {
			return nil, fmt.Errorf("argument %d: have %s, want %s", i, typeName(a), pt)
		}
		if a == nil {
			in[i] = reflect.Zero(pt)
			continue
		}
		v := reflect.ValueOf(a)
		if !v.Type().AssignableTo(pt) {
			return nil, fmt.Errorf("argument %d: %s is not assignable to %s", i, v.Type(), pt)
		}
		in[i] = v
	}

	return in, nil
}

// param resolves the parameter type at position i, with the variadic
// tail flattened to its element type.
func (im impl) param(i int) reflect.Type {
	n := im.ft.NumIn()
	if im.ft.IsVariadic() && i >= n-1 {
		return im.ft.In(n - 1).Elem()
	}

	return im.ft.In(i)
}

// unpack converts reflect results to a plain []any.
func unpack(out []reflect.Value) []any {
	res := make([]any, len(out))
	for i, v := range out {
		res[i] = v.Interface()
	}

	return res
}

// typeName renders a dynamic type for candidate failure messages.
func typeName(v any) string {
	if v == nil {
		return "nil"
	}

	return reflect.TypeOf(v).String()
}
