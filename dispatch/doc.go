// Package dispatch selects among several implementations of one
// operation by the runtime types of the actual arguments.
//
// 🚀 What is dispatch?
//
//	A Dispatcher holds an ordered list of candidate functions. A Call
//	scans them newest-first and invokes the first candidate whose
//	signature accepts the argument list:
//	  • New / Register - build the registry; later entries win ties
//	  • Call           - match and invoke in one step
//	  • Match          - match only, returning a ready-to-run thunk
//	  • Len            - number of registered implementations
//
// ✨ Matching:
//   - arity first: the candidate must take exactly the given number of
//     arguments (variadic candidates take at least their fixed count)
//   - then types, with the same rules the guard package uses: exact
//     dynamic type for concrete parameters, implementation for
//     interface parameters, untyped nil for nilable parameters
//   - WithoutTypeCheck relaxes the type stage to plain assignability,
//     so a candidate is tried whenever the call frame can be built
//
// When no candidate accepts, the error wraps ErrNoMatch together with
// one reason per rejected candidate.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/varia/dispatch"
//
//	d := dispatch.New(
//	        func(v any) string    { return "fallback" },
//	        func(n int) string    { return "number" },
//	        func(s string) string { return "text" },
//	)
//	out, err := d.Call("hello") // "text": newest matching candidate
//
// Register the general candidate first and the specific ones after it;
// the newest-first scan then behaves like ordinary overload shadowing.
package dispatch
