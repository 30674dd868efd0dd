package dispatch

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrNotFunction - a registered implementation is nil or not a func.
	ErrNotFunction = errors.New("dispatch: not a function")
	// ErrNoMatch - no registered implementation accepts the arguments.
	ErrNoMatch = errors.New("dispatch: no implementation matches")
)

// Dispatcher is an ordered registry of implementations. It is built by
// New and Register and is not safe for concurrent mutation; share it
// only after registration is finished.
type Dispatcher struct {
	impls []impl
	loose bool  // match on assignability instead of exact types
	err   error // first registration error, surfaced on use
}

// impl is one registered candidate.
type impl struct {
	fn reflect.Value
	ft reflect.Type
}

// New builds a Dispatcher from the given implementations, oldest first.
// Registration problems are recorded and returned by the first Call or
// Match, so construction chains stay fluent.
func New(impls ...any) *Dispatcher {
	d := &Dispatcher{}
	for _, fn := range impls {
		d.Register(fn)
	}

	return d
}

// Register appends one implementation and returns the Dispatcher for
// chaining. The newest registration is tried first at call time. A nil
// or non-func argument is recorded as ErrNotFunction and surfaces on
// the next Call or Match.
func (d *Dispatcher) Register(fn any) *Dispatcher {
	if fn == nil {
		if d.err == nil {
			d.err = fmt.Errorf("%w: nil implementation", ErrNotFunction)
		}

		return d
	}
	ft := reflect.TypeOf(fn)
	if ft.Kind() != reflect.Func {
		if d.err == nil {
			d.err = fmt.Errorf("%w: got %s", ErrNotFunction, ft)
		}

		return d
	}
	d.impls = append(d.impls, impl{fn: reflect.ValueOf(fn), ft: ft})

	return d
}

// WithoutTypeCheck switches matching to plain assignability: any
// candidate whose call frame can be built with the given arguments is
// eligible. Returns the Dispatcher for chaining.
func (d *Dispatcher) WithoutTypeCheck() *Dispatcher {
	d.loose = true

	return d
}

// Len returns the number of registered implementations.
func (d *Dispatcher) Len() int {
	return len(d.impls)
}
