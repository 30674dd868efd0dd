package guard

import (
	"fmt"
	"reflect"
	"strings"
)

// T returns the reflect.Type of X. Unlike reflect.TypeOf on a value it
// also names interface types, so T[io.Reader]() means "anything that
// implements io.Reader" rather than one concrete reader.
func T[X any]() reflect.Type {
	return reflect.TypeOf((*X)(nil)).Elem()
}

// Satisfies reports whether v is acceptable where a value of type want
// is expected:
//   - concrete want: the dynamic type of v must match exactly
//   - interface want: the dynamic type must implement it
//   - untyped nil v: accepted for every kind with a legal nil value
//
// A nil want never matches.
func Satisfies(v any, want reflect.Type) bool {
	if want == nil {
		return false
	}
	if v == nil {
		return nilable(want.Kind())
	}
	dt := reflect.TypeOf(v)
	if want.Kind() == reflect.Interface {
		return dt.Implements(want)
	}

	return dt == want
}

// CheckValue tests v against a set of acceptable types and reports the
// first applicable one. No types means no constraint. On failure the
// error wraps ErrTypeMismatch and names the offending value by label.
func CheckValue(v any, label string, want ...reflect.Type) error {
	if len(want) == 0 {
		return nil
	}
	for _, w := range want {
		if Satisfies(v, w) {
			return nil
		}
	}
	if len(want) == 1 {
		return fmt.Errorf("%w: argument %q has type %s, not %s",
			ErrTypeMismatch, label, typeName(v), want[0])
	}

	return fmt.Errorf("%w: type %s of argument %q is not among (%s)",
		ErrTypeMismatch, typeName(v), label, typeList(want))
}

// nilable reports whether kind carries a legal nil value.
func nilable(k reflect.Kind) bool {
	switch k {
	case reflect.Chan, reflect.Func, reflect.Interface,
		reflect.Map, reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}

// typeName renders the dynamic type of v for error messages.
func typeName(v any) string {
	if v == nil {
		return "nil"
	}

	return reflect.TypeOf(v).String()
}

// typeList joins type names for the multi-candidate message.
func typeList(ts []reflect.Type) string {
	names := make([]string, len(ts))
	for i, t := range ts {
		if t == nil {
			names[i] = "nil"
			continue
		}
		names[i] = t.String()
	}

	return strings.Join(names, ", ")
}
