// Package guard validates argument types at runtime, before a wrapped
// function ever executes.
//
// 🚀 What is guard?
//
//	Code that accepts any and dispatches late needs a checkpoint where
//	bad arguments fail loudly instead of deep inside the call:
//	  • CheckValue - test one value against a set of acceptable types
//	  • Satisfies  - the single-type compatibility predicate
//	  • New / Call - wrap a function; every Call validates first, so a
//	    mismatch reports before the wrapped function runs
//	  • T[X]       - a reflect.Type literal for type X
//
// ✨ Compatibility rules:
//   - concrete expected type - the dynamic type must match exactly;
//     a type that merely converts or embeds does not pass
//   - interface expected type - the value must implement it; the empty
//     interface accepts everything
//   - untyped nil - accepted wherever nil is a legal value (pointers,
//     slices, maps, channels, functions, interfaces)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/varia/guard"
//
//	g, err := guard.New(strings.Repeat)         // types from the signature
//	out, err := g.Call("ab", 3)                 // []any{"ababab"}
//	_, err = g.Call("ab", "3")                  // ErrTypeMismatch, not invoked
//
//	// narrow an interface parameter to one implementation:
//	g, err = guard.New(dump, guard.T[*bytes.Buffer]())
//
// Variadic functions are guarded element-wise: the constraint at the
// variadic position applies to every trailing argument.
package guard
