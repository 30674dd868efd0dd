package guard

import "errors"

var (
	// ErrNotFunction - the wrapped value is nil or not a func.
	ErrNotFunction = errors.New("guard: not a function")
	// ErrTooManyTypes - more explicit types than the function has parameters.
	ErrTooManyTypes = errors.New("guard: more types than parameters")
	// ErrArity - the number of call arguments does not fit the signature.
	ErrArity = errors.New("guard: wrong number of arguments")
	// ErrTypeMismatch - an argument failed its type constraint.
	ErrTypeMismatch = errors.New("guard: type mismatch")
)
